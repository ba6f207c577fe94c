package kvdb

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T) map[Backend]Store {
	t.Helper()
	dir := t.TempDir()
	stores := make(map[Backend]Store)
	for _, b := range Backends {
		path := filepath.Join(dir, string(b))
		if b == Bbolt {
			path += ".db"
		}
		s, err := Open(b, path)
		require.NoError(t, err, b)
		t.Cleanup(func() { s.Close() })
		stores[b] = s
	}
	return stores
}

func TestPutGet(t *testing.T) {
	for b, s := range openAll(t) {
		require.NoError(t, s.Put([]byte("k1"), []byte("v1")), b)
		got, err := s.Get([]byte("k1"))
		require.NoError(t, err, b)
		assert.Equal(t, []byte("v1"), got, b)

		// 덮어쓰기
		require.NoError(t, s.Put([]byte("k1"), []byte("v2")), b)
		got, err = s.Get([]byte("k1"))
		require.NoError(t, err, b)
		assert.Equal(t, []byte("v2"), got, b)

		_, err = s.Get([]byte("missing"))
		assert.True(t, errors.Is(err, ErrNotFound), "%s: %v", b, err)
	}
}

func TestScanPrefixInKeyOrder(t *testing.T) {
	for b, s := range openAll(t) {
		for _, k := range []string{"run/b/2", "run/a/1", "run/b/1", "other/x", "run0"} {
			require.NoError(t, s.Put([]byte(k), []byte("v:"+k)), b)
		}

		var keys []string
		err := s.Scan([]byte("run/"), func(key, value []byte) error {
			assert.Equal(t, "v:"+string(key), string(value))
			keys = append(keys, string(key))
			return nil
		})
		require.NoError(t, err, b)
		assert.Equal(t, []string{"run/a/1", "run/b/1", "run/b/2"}, keys, b)
	}
}

func TestScanStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	for b, s := range openAll(t) {
		for i := range 5 {
			require.NoError(t, s.Put([]byte(fmt.Sprintf("p/%d", i)), []byte{byte(i)}), b)
		}
		seen := 0
		err := s.Scan([]byte("p/"), func(key, value []byte) error {
			seen++
			if seen == 2 {
				return stop
			}
			return nil
		})
		assert.True(t, errors.Is(err, stop), b)
		assert.Equal(t, 2, seen, b)
	}
}

func TestPebbleInMemory(t *testing.T) {
	s, err := openPebbleFS("", vfs.NewMem())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put([]byte("a"), []byte("1")))
	got, err := s.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), got)
}

func TestParseBackend(t *testing.T) {
	for _, b := range Backends {
		got, err := ParseBackend(string(b))
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := ParseBackend("leveldb")
	assert.Error(t, err)
}

func TestPrefixEnd(t *testing.T) {
	assert.Equal(t, []byte("rup"), prefixEnd([]byte("ruo")))
	assert.Equal(t, []byte{0x01}, prefixEnd([]byte{0x00, 0xff}))
	assert.Nil(t, prefixEnd([]byte{0xff, 0xff}))
	assert.Nil(t, prefixEnd(nil))
}
