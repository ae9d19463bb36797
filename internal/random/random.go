// Package random contains randomization helpers for tests.
package random

import (
	"math/rand"

	"github.com/trieworks/hashtrie/pkg/util"
)

// String returns a random string with the n as its length.
func String(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(Int(65, 90))
	}

	return string(b)
}

// Int returns a random integer in [minI,maxI).
func Int(minI, maxI int) int {
	return minI + rand.Intn(maxI-minI)
}

// Bytes returns a random byte slice of specified length.
func Bytes(n int) []byte {
	b := make([]byte, n)
	Fill(b)
	return b
}

// Fill fills buffer with random bytes.
func Fill(buf []byte) {
	// Ignore error as it is always nil.
	_, _ = rand.Read(buf)
}

// Uint256 returns a random Uint256.
func Uint256() util.Uint256 {
	str := Bytes(util.Uint256Size)
	u, _ := util.Uint256DecodeBytes(str)
	return u
}
