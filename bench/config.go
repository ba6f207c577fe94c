package bench

import (
	"runtime"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/orst/kvdb"
)

// Mode 시행 사이에 입력을 어떻게 바꿀지
type Mode string

const (
	// ModeShuffle 같은 값을 시행마다 다시 섞는다.
	ModeShuffle Mode = "shuffle"
	// ModeRegenerate 시행마다 새 난수 값을 만든다.
	ModeRegenerate Mode = "regenerate"
)

// Config 벤치마크 설정
type Config struct {
	Sizes      []int
	Trials     int
	Seed       int64
	Mode       Mode
	Distinct   bool
	Algorithms []string
	// 동시에 처리할 크기 수
	Workers    int
	// 비어 있지 않으면 난수 대신 이 파일의 값을 쓴다.
	Input      string

	MarkdownPath string
	JSONPath     string
	StoreBackend string
	StorePath    string
	RunID        string
}

// DefaultConfig 기본 설정. 크기와 시행 수는 고전적인 비교 횟수 실험을 따른다.
func DefaultConfig() Config {
	return Config{
		Sizes:      []int{0, 1, 10, 100, 1000, 10000},
		Trials:     10,
		Seed:       42,
		Mode:       ModeShuffle,
		Algorithms: Names(),
		Workers:    runtime.NumCPU(),
	}
}

// Validate 설정 검사
func (c Config) Validate() error {
	if c.Trials <= 0 {
		return errors.Newf("trials must be positive, got %d", c.Trials)
	}
	if c.Workers <= 0 {
		return errors.Newf("workers must be positive, got %d", c.Workers)
	}
	switch c.Mode {
	case ModeShuffle, ModeRegenerate:
	default:
		return errors.Newf("unknown mode %q", c.Mode)
	}
	if c.Input != "" && c.Mode == ModeRegenerate {
		return errors.New("regenerate mode cannot be used with an input file")
	}
	if c.Input == "" && len(c.Sizes) == 0 {
		return errors.New("at least one size is required")
	}
	for _, n := range c.Sizes {
		if n < 0 {
			return errors.Newf("size must not be negative, got %d", n)
		}
	}
	if len(c.Algorithms) == 0 {
		return errors.New("at least one algorithm is required")
	}
	for _, name := range c.Algorithms {
		if _, ok := Lookup(name); !ok {
			return errors.Newf("unknown algorithm %q", name)
		}
	}
	if c.StoreBackend != "" {
		if _, err := kvdb.ParseBackend(c.StoreBackend); err != nil {
			return err
		}
		if c.StorePath == "" {
			return errors.New("store path is required with a store backend")
		}
	}
	return nil
}
