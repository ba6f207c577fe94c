package sort

import "cmp"

// Counter 비교 횟수를 세는 공유 카운터.
// 한 고루틴에서만 갱신된다. 동시에 측정하려면 측정마다 별도의 Counter 를 쓴다.
type Counter struct {
	n uint64
}

func (c *Counter) Inc()         { c.n++ }
func (c *Counter) Load() uint64 { return c.n }
func (c *Counter) Reset()       { c.n = 0 }

// Counted 원소 V 를 감싸고 비교가 일어날 때마다 공유 카운터를 1 증가시킨다.
// 순서 관계는 V 의 것과 같으므로 정렬 결과에 영향을 주지 않는다.
type Counted[T Ordered[T]] struct {
	V    T
	cmps *Counter
}

// Count v 를 counter 와 묶는다.
func Count[T Ordered[T]](v T, counter *Counter) Counted[T] {
	return Counted[T]{V: v, cmps: counter}
}

func (c Counted[T]) Compare(other Counted[T]) int {
	c.cmps.Inc()
	return c.V.Compare(other.V)
}

func (c Counted[T]) Equal(other Counted[T]) bool {
	c.cmps.Inc()
	return c.V.Equal(other.V)
}

// Value 내장 정렬 타입을 Ordered 계약에 맞춘 래퍼
type Value[E cmp.Ordered] struct {
	V E
}

func (v Value[E]) Compare(other Value[E]) int { return cmp.Compare(v.V, other.V) }
func (v Value[E]) Equal(other Value[E]) bool  { return v.V == other.V }

// CountAll values 각각을 Value 로 감싸 counter 에 묶는다.
func CountAll[E cmp.Ordered](values []E, counter *Counter) Elements[Counted[Value[E]]] {
	out := make(Elements[Counted[Value[E]]], len(values))
	for i, v := range values {
		out[i] = Count(Value[E]{V: v}, counter)
	}
	return out
}
