package trie

import (
	"bytes"
	"fmt"

	"github.com/trieworks/hashtrie/pkg/util"
	"go.uber.org/zap"
)

// Trie is a hashed, path-compressed prefix trie storing key-value pairs.
// It holds only the root digest and the live key count, all nodes live in
// the Store and are addressed by digest.
//
// Put follows a single-writer discipline: concurrent writers must be
// serialized externally. Readers may run concurrently with each other and,
// since stored nodes are immutable, a trie opened at a previously captured
// root via NewAt stays readable while another trie instance advances.
type Trie struct {
	store *Store
	root  *util.Uint256
	count uint64
	log   *zap.Logger
}

// Option is a Trie constructor option.
type Option func(*Trie)

// WithLogger returns an option setting the trie logger. The default is a
// no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *Trie) {
		t.log = log
	}
}

// New returns a new empty trie backed by the given store.
func New(store *Store, opts ...Option) *Trie {
	t := &Trie{
		store: store,
		log:   zap.NewNop(),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// NewAt returns a trie opened at a previously published root digest with
// the key count it was captured with. The root subtree must be reachable
// in the given store.
func NewAt(root util.Uint256, count uint64, store *Store, opts ...Option) *Trie {
	t := New(store, opts...)
	t.root = &root
	t.count = count
	return t
}

// Root returns the current root digest or nil if the trie is empty.
func (t *Trie) Root() *util.Uint256 {
	if t.root == nil {
		return nil
	}
	h := *t.root
	return &h
}

// Len returns the number of distinct keys stored in the trie.
func (t *Trie) Len() uint64 {
	return t.count
}

// IsEmpty reports whether the trie holds no keys.
func (t *Trie) IsEmpty() bool {
	return t.count == 0
}

// Put puts the key-value pair into t. Empty keys are disallowed. The new
// root digest is published only after every rebuilt node along the path
// has been stored, superseded nodes stay in the store under their old
// digests.
func (t *Trie) Put(key, value []byte) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}
	if len(key) > MaxKeyLength {
		return fmt.Errorf("%w: %d bytes exceeds the %d limit", ErrInvalidKey, len(key), MaxKeyLength)
	}
	if len(value) > MaxValueLength {
		return fmt.Errorf("%w: %d bytes exceeds the %d limit", ErrInvalidValue, len(value), MaxValueLength)
	}

	path := toNibbles(key)
	val := bytes.Clone(value)
	if val == nil {
		val = []byte{}
	}

	var curr Node = EmptyNode{}
	if t.root != nil {
		r, err := t.store.Get(*t.root)
		if err != nil {
			return err
		}
		curr = r
	}

	n, added, err := t.putIntoNode(curr, path, val)
	if err != nil {
		return err
	}
	h := t.store.Put(n)
	t.root = &h
	if added {
		t.count++
	}
	t.log.Debug("root updated",
		zap.String("root", h.String()),
		zap.Uint64("count", t.count))
	return nil
}

// putIntoNode dispatches on the current node's variant, stores the
// replacement node and reports whether the key was previously absent.
func (t *Trie) putIntoNode(curr Node, path []byte, val []byte) (Node, bool, error) {
	var (
		n     Node
		added bool
		err   error
	)
	switch c := curr.(type) {
	case *LeafNode:
		n, added, err = t.putIntoLeaf(c, path, val)
	case *BranchNode:
		n, added, err = t.putIntoBranch(c, path, val)
	case *ExtensionNode:
		n, added, err = t.putIntoExtension(c, path, val)
	case *HashNode:
		r, err := t.store.Get(c.Hash())
		if err != nil {
			return nil, false, err
		}
		return t.putIntoNode(r, path, val)
	case EmptyNode:
		n, added = NewLeafNode(path, val), true
	default:
		panic("invalid trie node type")
	}
	if err != nil {
		return nil, false, err
	}
	t.store.Put(n)
	return n, added, nil
}

// putIntoLeaf splits the leaf against the new path. Either the keys are
// identical (value replacement), or one path terminates at the split
// point (the branch carries its value), or both continue past the common
// prefix (two leaf children).
func (t *Trie) putIntoLeaf(curr *LeafNode, path []byte, val []byte) (Node, bool, error) {
	pref := lcp(curr.suffix, path)
	lp := len(pref)
	if lp == len(curr.suffix) && lp == len(path) {
		return NewLeafNode(path, val), false, nil
	}

	b := NewBranchNode()
	if lp == len(curr.suffix) {
		b.value = curr.value
	} else {
		l := NewLeafNode(bytes.Clone(curr.suffix[lp+1:]), curr.value)
		t.store.Put(l)
		b.Children[curr.suffix[lp]] = NewHashNode(l.Hash())
	}
	if lp == len(path) {
		b.value = val
	} else {
		l := NewLeafNode(bytes.Clone(path[lp+1:]), val)
		t.store.Put(l)
		b.Children[path[lp]] = NewHashNode(l.Hash())
	}

	if lp > 0 {
		t.store.Put(b)
		return NewExtensionNode(bytes.Clone(pref), b), true, nil
	}
	return b, true, nil
}

// putIntoBranch consumes a nibble and descends into the matching slot or
// sets the branch's own value when no nibbles remain.
func (t *Trie) putIntoBranch(curr *BranchNode, path []byte, val []byte) (Node, bool, error) {
	b := curr.Clone().(*BranchNode)
	if len(path) == 0 {
		added := b.value == nil
		b.value = val
		return b, added, nil
	}

	i, path := splitPath(path)
	r, added, err := t.putIntoNode(b.Children[i], path, val)
	if err != nil {
		return nil, false, err
	}
	b.Children[i] = NewHashNode(r.Hash())
	return b, added, nil
}

// putIntoExtension either descends through a fully matched extension or
// splits it at the divergence point, the first pref nibbles keep an
// extension and a new branch is built at the split.
func (t *Trie) putIntoExtension(curr *ExtensionNode, path []byte, val []byte) (Node, bool, error) {
	if bytes.HasPrefix(path, curr.key) {
		child, err := t.resolve(curr.next)
		if err != nil {
			return nil, false, err
		}
		r, added, err := t.putIntoNode(child, path[len(curr.key):], val)
		if err != nil {
			return nil, false, err
		}
		return NewExtensionNode(bytes.Clone(curr.key), NewHashNode(r.Hash())), added, nil
	}

	pref := lcp(curr.key, path)
	lp := len(pref)
	keyTail := curr.key[lp:]
	pathTail := path[lp:]

	b := NewBranchNode()
	if len(keyTail) == 1 {
		b.Children[keyTail[0]] = NewHashNode(curr.next.Hash())
	} else {
		e := NewExtensionNode(bytes.Clone(keyTail[1:]), curr.next)
		t.store.Put(e)
		b.Children[keyTail[0]] = NewHashNode(e.Hash())
	}
	if len(pathTail) == 0 {
		b.value = val
	} else {
		l := NewLeafNode(bytes.Clone(pathTail[1:]), val)
		t.store.Put(l)
		b.Children[pathTail[0]] = NewHashNode(l.Hash())
	}

	if lp > 0 {
		t.store.Put(b)
		return NewExtensionNode(bytes.Clone(pref), b), true, nil
	}
	return b, true, nil
}

// resolve replaces a hash reference with the stored node it points to.
func (t *Trie) resolve(n Node) (Node, error) {
	h, ok := n.(*HashNode)
	if !ok {
		return n, nil
	}
	return t.store.Get(h.Hash())
}

// Get returns the value for the provided key. A key that was never
// inserted yields ErrNotFound, store corruption along the lookup path is
// surfaced as ErrCorruptStore instead of being masked as a miss.
func (t *Trie) Get(key []byte) ([]byte, error) {
	if len(key) == 0 || len(key) > MaxKeyLength || t.root == nil {
		return nil, ErrNotFound
	}
	r, err := t.store.Get(*t.root)
	if err != nil {
		return nil, err
	}
	return t.getFromNode(r, toNibbles(key))
}

func (t *Trie) getFromNode(curr Node, path []byte) ([]byte, error) {
	switch n := curr.(type) {
	case *LeafNode:
		if bytes.Equal(n.suffix, path) {
			return bytes.Clone(n.value), nil
		}
	case *BranchNode:
		if len(path) == 0 {
			if n.value == nil {
				return nil, ErrNotFound
			}
			return bytes.Clone(n.value), nil
		}
		i, path := splitPath(path)
		if isEmpty(n.Children[i]) {
			return nil, ErrNotFound
		}
		r, err := t.resolve(n.Children[i])
		if err != nil {
			return nil, err
		}
		return t.getFromNode(r, path)
	case *ExtensionNode:
		if bytes.HasPrefix(path, n.key) {
			r, err := t.resolve(n.next)
			if err != nil {
				return nil, err
			}
			return t.getFromNode(r, path[len(n.key):])
		}
	case *HashNode:
		r, err := t.store.Get(n.Hash())
		if err != nil {
			return nil, err
		}
		return t.getFromNode(r, path)
	case EmptyNode:
	default:
		panic("invalid trie node type")
	}
	return nil, ErrNotFound
}

// Has reports whether the key is present in the trie.
func (t *Trie) Has(key []byte) bool {
	_, err := t.Get(key)
	return err == nil
}

// Keys returns every stored key, eagerly materialized. The order is
// deterministic: depth-first, at every branch the key terminating at the
// branch first and then the slots in ascending nibble order.
func (t *Trie) Keys() ([][]byte, error) {
	keys := make([][]byte, 0, t.count)
	if t.root == nil {
		return keys, nil
	}
	r, err := t.store.Get(*t.root)
	if err != nil {
		return nil, err
	}
	if err := t.collectKeys(r, nil, &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func (t *Trie) collectKeys(curr Node, prefix []byte, keys *[][]byte) error {
	switch n := curr.(type) {
	case *LeafNode:
		path := append(prefix[:len(prefix):len(prefix)], n.suffix...)
		*keys = append(*keys, fromNibbles(path))
	case *BranchNode:
		if n.value != nil {
			*keys = append(*keys, fromNibbles(prefix))
		}
		for i := 0; i < childrenCount; i++ {
			if isEmpty(n.Children[i]) {
				continue
			}
			r, err := t.resolve(n.Children[i])
			if err != nil {
				return err
			}
			path := append(prefix[:len(prefix):len(prefix)], byte(i))
			if err := t.collectKeys(r, path, keys); err != nil {
				return err
			}
		}
	case *ExtensionNode:
		r, err := t.resolve(n.next)
		if err != nil {
			return err
		}
		path := append(prefix[:len(prefix):len(prefix)], n.key...)
		return t.collectKeys(r, path, keys)
	case EmptyNode:
	default:
		panic("invalid trie node type")
	}
	return nil
}
