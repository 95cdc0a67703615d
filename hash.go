package uiraster

import (
	"encoding/binary"
	"math/bits"
)

const (
	hashSeed = 0x1b873593
	hashC1   = 0xcc9e2d51
	hashC2   = 0x1b873593
)

func scramble(k uint32) uint32 {
	k *= hashC1
	k = bits.RotateLeft32(k, 15)
	k *= hashC2
	return k
}

// avalanche is the murmur3 finaliser.
func avalanche(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// hashBytes is 32-bit murmur3 over data with a fixed seed.
func hashBytes(data []byte) uint32 {
	h := uint32(hashSeed)
	n := len(data)

	i := 0
	for ; i+4 <= n; i += 4 {
		h ^= scramble(binary.LittleEndian.Uint32(data[i:]))
		h = bits.RotateLeft32(h, 13)
		h = h*5 + 0xe6546b64
	}

	var k uint32
	for j := n; j > i; j-- {
		k <<= 8
		k |= uint32(data[j-1])
	}
	h ^= scramble(k)

	h ^= uint32(n)
	return avalanche(h)
}

// clearHash is the hash every tile starts from. A clear colour change
// therefore dirties every tile.
func clearHash(clear [4]uint8) uint32 {
	return hashBytes(clear[:])
}

// tileSeed salts base with the tile position so that empty tiles at
// different coordinates do not share a hash.
func tileSeed(base, x, y uint32) uint32 {
	return base ^ x ^ (y << 16)
}

// foldIndex binds a command hash to its position in the list.
func foldIndex(h uint32, i int) uint32 {
	return avalanche(h ^ scramble(uint32(i)+1))
}
