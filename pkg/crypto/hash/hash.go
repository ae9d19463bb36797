// Package hash contains wrappers for the hash functions the trie is built on.
package hash

import (
	"crypto/sha256"

	"github.com/trieworks/hashtrie/pkg/util"
	"golang.org/x/crypto/sha3"
)

// Keccak256 hashes the incoming byte slice using the keccak256 algorithm.
// It is the digest every trie node is addressed by.
func Keccak256(data []byte) util.Uint256 {
	var hash util.Uint256
	hasher := sha3.NewLegacyKeccak256()
	_, _ = hasher.Write(data)

	hash, _ = util.Uint256DecodeBytes(hasher.Sum(nil))
	return hash
}

// Sha256 hashes the incoming byte slice using the sha256 algorithm.
func Sha256(data []byte) util.Uint256 {
	return util.Uint256(sha256.Sum256(data))
}

// DoubleSha256 performs sha256 twice on the given data.
func DoubleSha256(data []byte) util.Uint256 {
	h1 := sha256.Sum256(data)
	return util.Uint256(sha256.Sum256(h1[:]))
}
