package rng

import "math"

const (
	murmurM = uint64(0xc6a4a7935bd1e995)
	murmurR = 47
)

// MurmurHash2A64 is the standard 64-bit MurmurHash2-a over data, seeded by
// seed.
func MurmurHash2A64(data []byte, seed uint64) uint64 {
	h := seed ^ (uint64(len(data)) * murmurM)

	for len(data) >= 8 {
		k := le64(data)
		data = data[8:]
		k *= murmurM
		k ^= k >> murmurR
		k *= murmurM
		h ^= k
		h *= murmurM
	}

	if len(data) > 0 {
		var tail uint64
		for i := len(data) - 1; i >= 0; i-- {
			tail = (tail << 8) | uint64(data[i])
		}
		h ^= tail
		h *= murmurM
	}

	h ^= h >> murmurR
	h *= murmurM
	h ^= h >> murmurR
	return h
}

func le64(b []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v
}

// Hash concatenates the pre-encoded operands (built via
// Uint32Bytes/Uint64Bytes/Float32Bytes below) into a buffer of at most 64
// bytes, dropping any bytes past that, and returns their MurmurHash2A64
// under seed. It stands in for the hash! macro of
// original_source/src/hash.rs, since Go has no variadic macro.
func Hash(seed uint64, operands ...[]byte) uint64 {
	var buf [64]byte
	n := 0
	for _, op := range operands {
		n += copy(buf[n:], op)
		if n >= 64 {
			break
		}
	}
	return MurmurHash2A64(buf[:n], seed)
}

func Uint32Bytes(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func Uint64Bytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	return b
}

func Float32Bytes(v float32) []byte {
	return Uint32Bytes(math.Float32bits(v))
}

// HashInts hashes a handful of integer coordinates together — the common
// case for seeding a per-pixel/per-tile/per-dimension stream (spec.md
// §4.3: hash(seed, x, y, dim), hash(seed, tile.x1, tile.y1)).
func HashInts(seed uint64, values ...int64) uint64 {
	var operands [][]byte
	for _, v := range values {
		operands = append(operands, Uint64Bytes(uint64(v)))
	}
	return Hash(seed, operands...)
}
