// Package bench 는 정렬 알고리즘의 비교 횟수를 측정하는 하네스다.
//
// 크기마다 값을 한 번 만들고 Counted 로 감싼 뒤, 시행마다 섞거나 새로 만들어
// 각 알고리즘에 복사본을 넘긴다. 크기별 작업은 워커 풀에서 동시에 돌지만
// 카운터와 난수원은 크기마다 따로 둔다.
package bench

import (
	"context"
	"math/rand"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rlaau/orst/sort"
)

// Result 한 알고리즘의 한 시행 결과
type Result struct {
	Algorithm   string        `json:"algorithm"`
	Size        int           `json:"size"`
	Trial       int           `json:"trial"`
	Comparisons uint64        `json:"comparisons"`
	Duration    time.Duration `json:"duration"`
}

type elements = sort.Elements[sort.Counted[sort.Value[uint64]]]

// Run cfg 대로 측정하고 결과를 크기, 시행, 알고리즘 순으로 돌려준다.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	algos := selectAlgorithms(cfg.Algorithms)

	var fixed []uint64
	sizes := cfg.Sizes
	if cfg.Input != "" {
		data, err := ReadDataFile(cfg.Input)
		if err != nil {
			return nil, err
		}
		fixed = data
		sizes = []int{len(data)}
	}

	perSize := make([][]Result, len(sizes))
	pool := newWorkerPool(cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for i, n := range sizes {
		g.Go(func() error {
			pool.acquire()
			defer pool.release()

			rng := rand.New(rand.NewSource(cfg.Seed + int64(i)))
			job := sizeJob{
				cfg:   cfg,
				algos: algos,
				rng:   rng,
				size:  n,
				log:   log.WithField("size", n),
			}
			results, err := job.run(ctx, fixed)
			if err != nil {
				return errors.Wrapf(err, "size %d", n)
			}
			perSize[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Result
	for _, rs := range perSize {
		all = append(all, rs...)
	}
	return all, nil
}

// sizeJob 한 크기에 대한 모든 시행. 고루틴 하나에서만 돈다.
type sizeJob struct {
	cfg     Config
	algos   []Algorithm
	rng     *rand.Rand
	size    int
	counter sort.Counter
	log     logrus.FieldLogger
}

func (j *sizeJob) wrap(raw []uint64) elements {
	return sort.CountAll(raw, &j.counter)
}

func (j *sizeJob) run(ctx context.Context, fixed []uint64) ([]Result, error) {
	var values elements
	if j.cfg.Input != "" {
		values = j.wrap(fixed)
	} else {
		values = j.wrap(Generate(j.rng, j.size, j.cfg.Distinct))
	}

	results := make([]Result, 0, j.cfg.Trials*len(j.algos))
	for trial := range j.cfg.Trials {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if j.cfg.Mode == ModeRegenerate && trial > 0 {
			values = j.wrap(Generate(j.rng, j.size, j.cfg.Distinct))
		}
		Shuffle(j.rng, values)

		for _, algo := range j.algos {
			r, err := j.measure(algo, values, trial)
			if err != nil {
				return nil, err
			}
			results = append(results, r)
		}
		j.log.WithField("trial", trial).Debug("trial done")
	}
	j.log.Info("size done")
	return results, nil
}

// measure values 의 복사본을 정렬하고 비교 횟수를 센다.
func (j *sizeJob) measure(algo Algorithm, values elements, trial int) (Result, error) {
	work := slices.Clone(values)

	j.counter.Reset()
	start := time.Now()
	algo.Sorter.Sort(work)
	elapsed := time.Since(start)
	cmps := j.counter.Load()

	if !sort.IsSorted(work) {
		return Result{}, errors.Newf("%s produced unsorted output at trial %d", algo.Name, trial)
	}
	j.log.WithFields(logrus.Fields{
		"algorithm":   algo.Name,
		"trial":       trial,
		"comparisons": cmps,
	}).Trace("measured")

	return Result{
		Algorithm:   algo.Name,
		Size:        j.size,
		Trial:       trial,
		Comparisons: cmps,
		Duration:    elapsed,
	}, nil
}
