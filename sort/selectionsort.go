package sort

// SelectionSort 정렬되지 않은 구간의 최솟값을 찾아 경계 위치로 옮긴다.
// 비교 횟수는 입력과 무관하게 n(n-1)/2, 교환은 최대 n-1 번.
type SelectionSort struct{}

func (SelectionSort) Sort(data Interface) {
	n := data.Len()
	// [sorted | unsorted]
	for unsorted := 0; unsorted < n; unsorted++ {
		smallest := unsorted
		for i := unsorted + 1; i < n; i++ {
			if data.Less(i, smallest) {
				smallest = i
			}
		}
		// 자기 자신과의 교환은 건너뜀
		if smallest != unsorted {
			data.Swap(unsorted, smallest)
		}
	}
}
