package bench

import "github.com/rlaau/orst/sort"

// Algorithm 이름 붙은 정렬기
type Algorithm struct {
	Name   string
	Sorter sort.Sorter
}

var algorithms = []Algorithm{
	{"bubble", sort.BubbleSort{}},
	{"insertion-smart", sort.InsertionSort{Binary: true}},
	{"insertion-dumb", sort.InsertionSort{Binary: false}},
	{"quick", sort.QuickSort{}},
	{"selection", sort.SelectionSort{}},
}

// Names 모든 알고리즘 이름 (출력 순서)
func Names() []string {
	names := make([]string, len(algorithms))
	for i, a := range algorithms {
		names[i] = a.Name
	}
	return names
}

// Lookup 이름으로 알고리즘을 찾는다.
func Lookup(name string) (Algorithm, bool) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}

// selectAlgorithms names 중 알려진 것만 기본 출력 순서대로 돌려준다.
func selectAlgorithms(names []string) []Algorithm {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []Algorithm
	for _, a := range algorithms {
		if want[a.Name] {
			out = append(out, a)
		}
	}
	return out
}
