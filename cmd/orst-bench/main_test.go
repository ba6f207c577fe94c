package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlaau/orst/bench"
)

func TestGenCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "data.txt")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"gen", "--size", "25", "--distinct", "-o", out})
	require.NoError(t, cmd.Execute())

	data, err := bench.ReadDataFile(out)
	require.NoError(t, err)
	assert.Len(t, data, 25)
}

func TestShowCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.db")

	cfg := bench.DefaultConfig()
	cfg.Sizes = []int{3}
	cfg.Trials = 1
	cfg.StoreBackend = "bbolt"
	cfg.StorePath = path
	cfg.RunID = "t1"
	results, err := bench.Run(context.Background(), cfg, newLogger(false))
	require.NoError(t, err)
	require.NoError(t, saveRun(cfg, results))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show", "--store-path", path, "t1"})
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(cfg.Algorithms))
	assert.True(t, strings.HasPrefix(lines[0], "bubble 3 "))

	buf.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"show", "--store-path", path})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.HasPrefix(buf.String(), "t1 "))
}

func TestRootRejectsUnknownMode(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--mode", "sideways", "--sizes", "1"})
	assert.Error(t, cmd.Execute())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.json")
	require.NoError(t, writeFile(path, func(f *os.File) error {
		return bench.WriteJSON(f, nil)
	}))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "null\n", string(got))
}
