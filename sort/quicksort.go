package sort

// QuickSort 첫 원소를 피벗으로 하는 재귀 퀵소트.
//
// 재귀 깊이는 최악의 경우(이미 정렬됐거나 역순인 입력) O(n) 이다.
// 꼬리 재귀 제거나 작은 쪽 우선 재귀는 하지 않으므로 아주 큰 퇴화 입력에서는
// 고루틴 스택이 커질 수 있다.
type QuickSort struct{}

func (QuickSort) Sort(data Interface) {
	quickSort(data, 0, data.Len())
}

// quickSort data[lo:hi] 를 정렬한다.
func quickSort(data Interface, lo, hi int) {
	switch hi - lo {
	case 0, 1:
		return
	case 2:
		if data.Less(lo+1, lo) {
			data.Swap(lo, lo+1)
		}
		return
	}

	// 피벗은 lo 에 고정. left 아래는 피벗 이하, right 위는 피벗 초과.
	pivot := lo
	left, right := lo+1, hi-1
	for left <= right {
		switch {
		case !data.Less(pivot, left):
			// 이미 왼쪽 자리
			left++
		case data.Less(pivot, right):
			// 이미 오른쪽 자리. 불필요한 교환 방지
			right--
		default:
			data.Swap(left, right)
			left++
			right--
		}
	}

	// 피벗을 최종 위치로
	mid := left - 1
	data.Swap(pivot, mid)

	quickSort(data, lo, mid)
	quickSort(data, mid+1, hi)
}
