package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

// WriteLines "<algorithm-name> <size> <comparison-count>" 형식으로 한 줄씩 쓴다.
func WriteLines(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(bw, "%s %d %d\n", r.Algorithm, r.Size, r.Comparisons)
	}
	return errors.Wrap(bw.Flush(), "write result lines")
}

// Summary 한 (알고리즘, 크기) 의 평균
type Summary struct {
	Algorithm       string        `json:"algorithm"`
	Size            int           `json:"size"`
	Trials          int           `json:"trials"`
	MeanComparisons float64       `json:"mean_comparisons"`
	MinComparisons  uint64        `json:"min_comparisons"`
	MaxComparisons  uint64        `json:"max_comparisons"`
	MeanDuration    time.Duration `json:"mean_duration"`
}

// Summarize 결과를 (크기, 알고리즘) 별로 묶는다. 처음 나온 순서를 유지한다.
func Summarize(results []Result) []Summary {
	type key struct {
		algo string
		size int
	}
	index := make(map[key]int)
	var out []Summary
	var totalDur []time.Duration
	var totalCmps []uint64

	for _, r := range results {
		k := key{r.Algorithm, r.Size}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Summary{
				Algorithm:      r.Algorithm,
				Size:           r.Size,
				MinComparisons: r.Comparisons,
				MaxComparisons: r.Comparisons,
			})
			totalDur = append(totalDur, 0)
			totalCmps = append(totalCmps, 0)
		}
		s := &out[i]
		s.Trials++
		s.MinComparisons = min(s.MinComparisons, r.Comparisons)
		s.MaxComparisons = max(s.MaxComparisons, r.Comparisons)
		totalCmps[i] += r.Comparisons
		totalDur[i] += r.Duration
	}

	for i := range out {
		out[i].MeanComparisons = float64(totalCmps[i]) / float64(out[i].Trials)
		out[i].MeanDuration = totalDur[i] / time.Duration(out[i].Trials)
	}
	return out
}

// WriteMarkdown 크기별 시행 표와 평균 요약 표를 마크다운으로 쓴다.
func WriteMarkdown(w io.Writer, results []Result, generated time.Time) error {
	bw := bufio.NewWriterSize(w, 32*1024)

	fmt.Fprintf(bw, "# 정렬 알고리즘 비교 횟수 결과\n\n")
	fmt.Fprintf(bw, "실행 시간: %s\n\n", generated.Format("2006-01-02 15:04:05"))

	var sizes []int
	bySize := make(map[int][]Result)
	for _, r := range results {
		if _, ok := bySize[r.Size]; !ok {
			sizes = append(sizes, r.Size)
		}
		bySize[r.Size] = append(bySize[r.Size], r)
	}

	for _, size := range sizes {
		fmt.Fprintf(bw, "## %s개 데이터\n\n", humanize.Comma(int64(size)))
		fmt.Fprintf(bw, "| 알고리즘 | 시행 | 비교 횟수 | 실행시간 |\n")
		fmt.Fprintf(bw, "|----------|------|-----------|----------|\n")
		for _, r := range bySize[size] {
			fmt.Fprintf(bw, "| %s | %d | %s | %v |\n",
				r.Algorithm, r.Trial+1, humanize.Comma(int64(r.Comparisons)), r.Duration)
		}
		fmt.Fprintf(bw, "\n")
	}

	fmt.Fprintf(bw, "## 요약 통계\n\n")
	fmt.Fprintf(bw, "| 알고리즘 | 크기 | 평균 비교 횟수 | 최소 | 최대 | 평균 실행시간 |\n")
	fmt.Fprintf(bw, "|----------|------|----------------|------|------|---------------|\n")
	for _, s := range Summarize(results) {
		fmt.Fprintf(bw, "| %s | %s | %s | %s | %s | %v |\n",
			s.Algorithm, humanize.Comma(int64(s.Size)),
			humanize.CommafWithDigits(s.MeanComparisons, 1),
			humanize.Comma(int64(s.MinComparisons)), humanize.Comma(int64(s.MaxComparisons)),
			s.MeanDuration)
	}

	return errors.Wrap(bw.Flush(), "write markdown")
}

// WriteJSON 결과를 들여쓴 JSON 배열로 쓴다.
func WriteJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(results), "encode json")
}
