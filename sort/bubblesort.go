package sort

// BubbleSort 인접한 역순 쌍을 교환하는 패스를, 교환이 없는 패스가 나올 때까지 반복한다.
type BubbleSort struct{}

func (BubbleSort) Sort(data Interface) {
	n := data.Len()
	swapped := true
	for swapped {
		swapped = false
		for i := 0; i+1 < n; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
				swapped = true
			}
		}
	}
}
