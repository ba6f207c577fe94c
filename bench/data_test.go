package bench

import (
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(5)), 100, false)
	b := Generate(rand.New(rand.NewSource(5)), 100, false)
	assert.Equal(t, a, b)
	assert.Len(t, a, 100)
	assert.Empty(t, Generate(rand.New(rand.NewSource(5)), 0, true))
}

func TestGenerateDistinct(t *testing.T) {
	data := Generate(rand.New(rand.NewSource(9)), 5000, true)
	seen := make(map[uint64]bool, len(data))
	for _, v := range data {
		require.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}
}

func TestShufflePermutes(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	shuffled := slices.Clone(data)
	Shuffle(rand.New(rand.NewSource(1)), shuffled)
	assert.ElementsMatch(t, data, shuffled)
}

func TestDataFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	data := Generate(rand.New(rand.NewSource(3)), 1000, false)
	data = append(data, 0, ^uint64(0))

	require.NoError(t, WriteDataFile(path, data))
	got, err := ReadDataFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadDataFileSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("3\n\n 1 \n2\n"), 0644))
	got, err := ReadDataFile(path)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 1, 2}, got)
}

func TestReadDataFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nabc\n"), 0644))
	_, err := ReadDataFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "data.txt:2")
}

func TestReadDataFileMissing(t *testing.T) {
	_, err := ReadDataFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
