package bench

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlaau/orst/kvdb"
)

func TestSaveLoadResults(t *testing.T) {
	for _, backend := range kvdb.Backends {
		t.Run(string(backend), func(t *testing.T) {
			store, err := kvdb.Open(backend, filepath.Join(t.TempDir(), "results"))
			require.NoError(t, err)
			defer store.Close()

			info := RunInfo{ID: "r1", Created: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), Seed: 42, Mode: ModeShuffle}
			results := sampleResults()
			require.NoError(t, SaveResults(store, info, results))
			require.NoError(t, SaveResults(store, RunInfo{ID: "r10"}, results[:1]))

			gotInfo, got, err := LoadResults(store, "r1")
			require.NoError(t, err)
			assert.Equal(t, results, got)
			assert.Equal(t, len(results), gotInfo.Results)
			assert.Equal(t, int64(42), gotInfo.Seed)

			runs, err := ListRuns(store)
			require.NoError(t, err)
			require.Len(t, runs, 2)
			assert.Equal(t, "r1", runs[0].ID)
			assert.Equal(t, "r10", runs[1].ID)

			_, _, err = LoadResults(store, "missing")
			assert.True(t, errors.Is(err, kvdb.ErrNotFound))
		})
	}
}

func TestSaveResultsRejectsBadRunID(t *testing.T) {
	store, err := kvdb.Open(kvdb.Bbolt, filepath.Join(t.TempDir(), "results.db"))
	require.NoError(t, err)
	defer store.Close()

	assert.Error(t, SaveResults(store, RunInfo{}, nil))
	assert.Error(t, SaveResults(store, RunInfo{ID: "a/b"}, nil))
}
