package trie

import (
	"bytes"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/trieworks/hashtrie/pkg/util"
)

// decodedCacheSize is the number of decoded nodes kept around to avoid
// deserializing hot nodes on every traversal.
const decodedCacheSize = 1024

// Store is a content-addressed node storage: a mapping from the node
// digest to the node's canonical serialized representation. A stored node
// is never modified or removed, so digests captured from any trie version
// stay resolvable. Store is safe for concurrent use.
type Store struct {
	mut   sync.RWMutex
	mem   map[util.Uint256][]byte
	cache *lru.Cache
}

// NewStore creates a new in-memory Store.
func NewStore() *Store {
	cache, _ := lru.New(decodedCacheSize) // Never errors for positive size.
	return &Store{
		mem:   make(map[util.Uint256][]byte),
		cache: cache,
	}
}

// Put hashes the node content and inserts the (digest, bytes) pair if it
// is absent. It returns the digest either way, re-inserting identical
// content is a no-op, so concurrent identical puts merge safely.
func (s *Store) Put(n Node) util.Uint256 {
	h := n.Hash()

	s.mut.Lock()
	if _, ok := s.mem[h]; !ok {
		s.mem[h] = bytes.Clone(n.Bytes())
	}
	s.mut.Unlock()
	return h
}

// Get returns the node stored under the given digest. A missing digest is
// always an error: callers only ever ask for digests previously obtained
// from a trie, so absence means the store lost content.
func (s *Store) Get(h util.Uint256) (Node, error) {
	if n, ok := s.cache.Get(h); ok {
		return n.(Node), nil
	}

	data, err := s.GetBytes(h)
	if err != nil {
		return nil, err
	}
	n, err := decodeNode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: node %s: %s", ErrCorruptStore, h, err)
	}
	switch n.Type() {
	case BranchT, ExtensionT, LeafT:
	default:
		return nil, fmt.Errorf("%w: node %s has non-storable type %#x", ErrCorruptStore, h, byte(n.Type()))
	}
	n.(cachedNode).setCache(data, h)
	s.cache.Add(h, n)
	return n, nil
}

// GetBytes returns the raw serialized node stored under the given digest.
// It bypasses the decoded-node cache, which makes it suitable for
// integrity checking.
func (s *Store) GetBytes(h util.Uint256) ([]byte, error) {
	s.mut.RLock()
	data, ok := s.mem[h]
	s.mut.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: node %s is missing", ErrCorruptStore, h)
	}
	return data, nil
}

// Has reports whether the store contains the given digest.
func (s *Store) Has(h util.Uint256) bool {
	s.mut.RLock()
	_, ok := s.mem[h]
	s.mut.RUnlock()
	return ok
}

// Len returns the number of stored nodes across all trie versions.
func (s *Store) Len() int {
	s.mut.RLock()
	defer s.mut.RUnlock()
	return len(s.mem)
}

// delete removes a stored node. It exists for corruption tests only.
func (s *Store) delete(h util.Uint256) {
	s.mut.Lock()
	delete(s.mem, h)
	s.mut.Unlock()
	s.cache.Remove(h)
}

// replace overwrites stored node content. It exists for corruption tests only.
func (s *Store) replace(h util.Uint256, data []byte) {
	s.mut.Lock()
	s.mem[h] = data
	s.mut.Unlock()
	s.cache.Remove(h)
}
