package sort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuickSortBaseCase(t *testing.T) {
	var counter Counter
	data := CountAll([]int{2, 1}, &counter)
	QuickSort{}.Sort(data)

	assert.Equal(t, []int{1, 2}, values(data))
	assert.Equal(t, uint64(1), counter.Load())
}

func TestQuickSortPartitionPlacesPivot(t *testing.T) {
	// 피벗 4 가 제자리에 놓인 뒤 양쪽이 재귀 정렬된다.
	data := Natural[int]{4, 2, 5, 3, 1}
	QuickSort{}.Sort(data)
	assert.Equal(t, Natural[int]{1, 2, 3, 4, 5}, data)
}

func TestQuickSortDegenerateInputs(t *testing.T) {
	const n = 2000
	sorted := make(Natural[int], n)
	reversed := make(Natural[int], n)
	equal := make(Natural[int], n)
	for i := range n {
		sorted[i] = i
		reversed[i] = n - i
		equal[i] = 1
	}

	for _, data := range []Natural[int]{sorted, reversed, equal} {
		QuickSort{}.Sort(data)
		assert.True(t, IsSorted(data))
	}
}

func TestQuickSortComparisonsOnSortedInput(t *testing.T) {
	// 첫 원소 피벗이므로 정렬된 입력은 매 단계 한 원소만 떨어져 나간다.
	input := []int{1, 2, 3, 4, 5, 6}
	var counter Counter
	QuickSort{}.Sort(CountAll(input, &counter))
	// 길이 m 구간마다 피벗 외 원소당 두 번(왼쪽 검사 실패, 오른쪽 검사 성공),
	// 마지막 길이 2 구간은 한 번
	assert.Equal(t, uint64(2*5+2*4+2*3+2*2+1), counter.Load())
}
