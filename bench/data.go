package bench

import (
	"bufio"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/orst/bloomfilter"
)

// Generate n 개의 난수 값. distinct 면 블룸 필터로 이미 나왔을 수 있는 값을 다시 뽑는다.
func Generate(rng *rand.Rand, n int, distinct bool) []uint64 {
	data := make([]uint64, n)
	if !distinct {
		for i := range n {
			data[i] = rng.Uint64()
		}
		return data
	}

	bf := bloomfilter.New(uint64(n), 0.001, rng.Uint64())
	for i := 0; i < n; {
		v := rng.Uint64()
		// 오탐이면 멀쩡한 값을 버릴 뿐이다.
		if bf.Contains(v) {
			continue
		}
		bf.Add(v)
		data[i] = v
		i++
	}
	return data
}

// Shuffle 제자리 셔플
func Shuffle[S ~[]E, E any](rng *rand.Rand, values S) {
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
}

// WriteDataFile 한 줄에 하나씩 10진수로 쓴다.
func WriteDataFile(filename string, data []uint64) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create data file")
	}
	defer file.Close()

	// 64KB 버퍼
	writer := bufio.NewWriterSize(file, 64*1024)
	buf := make([]byte, 0, 24)
	for _, v := range data {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := writer.Write(buf); err != nil {
			return errors.Wrap(err, "write data file")
		}
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "flush data file")
	}
	return errors.Wrap(file.Close(), "close data file")
}

// ReadDataFile WriteDataFile 형식을 읽는다. 빈 줄은 무시한다.
func ReadDataFile(filename string) ([]uint64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open data file")
	}
	defer file.Close()

	var data []uint64
	if info, err := file.Stat(); err == nil {
		// 대략 한 값에 12바이트로 추정
		data = make([]uint64, 0, info.Size()/12)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", filename, line)
		}
		data = append(data, v)
	}
	return data, errors.Wrap(scanner.Err(), "scan data file")
}
