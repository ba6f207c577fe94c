// Package kvdb 는 벤치마크 결과를 저장하는 키-값 저장소다.
// bbolt, BadgerDB, PebbleDB 세 가지 백엔드를 같은 Store 인터페이스로 감싼다.
package kvdb

import (
	"github.com/cockroachdb/errors"
)

// ErrNotFound 키가 없을 때 Get 이 돌려준다.
var ErrNotFound = errors.New("kvdb: key not found")

// Backend 저장소 엔진 이름
type Backend string

const (
	Bbolt  Backend = "bbolt"
	Badger Backend = "badger"
	Pebble Backend = "pebble"
)

// Backends 지원하는 백엔드 목록
var Backends = []Backend{Bbolt, Badger, Pebble}

// Store 정렬된 바이트 키 공간. Scan 은 키 오름차순으로 순회한다.
type Store interface {
	Put(key, value []byte) error
	Get(key []byte) ([]byte, error)
	// fn 이 에러를 돌려주면 순회를 멈추고 그 에러를 돌려준다.
	Scan(prefix []byte, fn func(key, value []byte) error) error
	Close() error
}

// ParseBackend 이름을 Backend 로 바꾼다.
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}
	return "", errors.Newf("kvdb: unknown backend %q", name)
}

// Open backend 저장소를 path 에 연다. bbolt 는 파일, 나머지는 디렉터리 경로다.
func Open(backend Backend, path string) (Store, error) {
	switch backend {
	case Bbolt:
		return openBbolt(path)
	case Badger:
		return openBadger(path)
	case Pebble:
		return openPebble(path)
	default:
		return nil, errors.Newf("kvdb: unknown backend %q", backend)
	}
}

// prefixEnd prefix 로 시작하는 모든 키보다 큰 가장 작은 키. 없으면 nil.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
