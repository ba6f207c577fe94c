// Package sort 는 제자리(in-place) 비교 정렬 알고리즘 모음이다.
//
// 모든 알고리즘은 Sorter 계약 하나를 구현하고, 정렬 대상은 Interface 로만
// 다룬다(비교는 Less, 이동은 Swap). 비교 횟수를 측정하려면 원소를 Counted 로
// 감싸서 Elements 로 넘기면 된다.
package sort

import "cmp"

// Ordered 정렬 가능한 원소의 계약. Compare 는 other 보다 작으면 음수,
// 같으면 0, 크면 양수를 돌려준다.
type Ordered[T any] interface {
	Compare(other T) int
	Equal(other T) bool
}

// Interface 정렬 대상 시퀀스. 정렬 도중 길이는 바뀌지 않아야 한다.
type Interface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

// Sorter 시퀀스를 오름차순으로 제자리 정렬한다. 실패하지 않는다.
type Sorter interface {
	Sort(data Interface)
}

// Elements Ordered 계약을 만족하는 원소 슬라이스 어댑터
type Elements[E Ordered[E]] []E

func (s Elements[E]) Len() int           { return len(s) }
func (s Elements[E]) Less(i, j int) bool { return s[i].Compare(s[j]) < 0 }
func (s Elements[E]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// Natural 내장 정렬 타입(int, float64, string 등) 슬라이스 어댑터
type Natural[E cmp.Ordered] []E

func (s Natural[E]) Len() int           { return len(s) }
func (s Natural[E]) Less(i, j int) bool { return cmp.Less(s[i], s[j]) }
func (s Natural[E]) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// IsSorted data 가 비내림차순인지 확인한다.
func IsSorted(data Interface) bool {
	for i := data.Len() - 1; i > 0; i-- {
		if data.Less(i, i-1) {
			return false
		}
	}
	return true
}
