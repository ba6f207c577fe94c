package sort

// InsertionSort [sorted | unsorted] 경계를 한 칸씩 옮기며 삽입한다.
//
// Binary 가 false 면 새 원소를 왼쪽 이웃이 더 클 동안 한 칸씩 교환해 내린다.
// Binary 가 true 면 정렬된 구간에서 이진 탐색으로 삽입 위치를 찾고
// [i, unsorted] 구간을 오른쪽으로 한 칸 회전한다. 비교는 O(n log n) 으로
// 줄지만 이동량은 여전히 O(n²) 이다.
type InsertionSort struct {
	Binary bool
}

func (s InsertionSort) Sort(data Interface) {
	n := data.Len()
	for unsorted := 1; unsorted < n; unsorted++ {
		if !s.Binary {
			for i := unsorted; i > 0 && data.Less(i, i-1); i-- {
				data.Swap(i-1, i)
			}
			continue
		}
		i := insertionPoint(data, unsorted)
		rotateRight(data, i, unsorted)
	}
}

// insertionPoint data[0:unsorted] 에서 data[unsorted] 보다 작지 않은 첫 인덱스.
// 같은 값이 이미 있으면 그 중 가장 왼쪽 인덱스를 돌려준다.
func insertionPoint(data Interface, unsorted int) int {
	lo, hi := 0, unsorted
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if data.Less(mid, unsorted) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// rotateRight data[lo..hi] 를 오른쪽으로 한 칸 회전한다. data[hi] 가 lo 로 간다.
func rotateRight(data Interface, lo, hi int) {
	for k := hi; k > lo; k-- {
		data.Swap(k-1, k)
	}
}
