// Package bloomfilter 는 uint64 키용 기본 블룸 필터다.
// 벤치마크 입력에서 중복 값을 걸러내는 데 쓴다.
package bloomfilter

import (
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// BloomFilter 기본 블룸 필터. 동시 사용에 안전하지 않다.
type BloomFilter struct {
	bitArray []uint64
	size     uint64
	numHash  uint
	numItems uint64
	hashSeed uint64
}

// New expectedItems 개를 넣었을 때 오탐률이 falsePositiveRate 가 되도록 크기를 잡는다.
func New(expectedItems uint64, falsePositiveRate float64, seed uint64) *BloomFilter {
	expectedItems = max(expectedItems, 1)
	size := uint64(-float64(expectedItems) * math.Log(falsePositiveRate) / (math.Log(2) * math.Log(2)))
	size = max(size, 64)
	numHash := min(max(uint(float64(size)/float64(expectedItems)*math.Log(2)), 1), 15)

	wordCount := (size + 63) / 64

	return &BloomFilter{
		bitArray: make([]uint64, wordCount),
		size:     size,
		numHash:  numHash,
		hashSeed: seed,
	}
}

// 더블 해싱: h1 + i*h2
func (bf *BloomFilter) hashes(key uint64) (uint64, uint64) {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], key)
	binary.LittleEndian.PutUint64(buf[8:], bf.hashSeed)
	hash1 := xxhash.Sum64(buf[:])

	hash2 := hash1>>17 ^ hash1<<47 ^ 0x9e3779b97f4a7c15
	// 홀수로 맞춰 모든 위치를 돌 수 있게
	hash2 |= 1
	return hash1, hash2
}

func (bf *BloomFilter) Add(key uint64) {
	h1, h2 := bf.hashes(key)
	for i := uint64(0); i < uint64(bf.numHash); i++ {
		pos := (h1 + i*h2) % bf.size
		bf.bitArray[pos/64] |= 1 << (pos % 64)
	}
	bf.numItems++
}

// Contains false 면 확실히 없음, true 면 있을 수도 있음.
func (bf *BloomFilter) Contains(key uint64) bool {
	h1, h2 := bf.hashes(key)
	for i := uint64(0); i < uint64(bf.numHash); i++ {
		pos := (h1 + i*h2) % bf.size
		if bf.bitArray[pos/64]&(1<<(pos%64)) == 0 {
			return false
		}
	}
	return true
}

// Len Add 호출 횟수
func (bf *BloomFilter) Len() uint64 { return bf.numItems }

// Stats 켜진 비트 수, 채움 비율, 현재 채움 비율로 추정한 오탐률
func (bf *BloomFilter) Stats() (uint64, float64, float64) {
	setBits := uint64(0)
	for _, word := range bf.bitArray {
		setBits += uint64(bits.OnesCount64(word))
	}

	fillRatio := float64(setBits) / float64(bf.size)
	estimatedFPR := math.Pow(fillRatio, float64(bf.numHash))

	return setBits, fillRatio, estimatedFPR
}
