package trie

import (
	"fmt"

	"github.com/trieworks/hashtrie/pkg/io"
	"github.com/trieworks/hashtrie/pkg/util"
)

const (
	// MaxKeyLength is the max length of the key to put in the trie
	// before transforming to nibbles.
	MaxKeyLength = 512

	// maxPathLength is the max length of a nibble path.
	maxPathLength = MaxKeyLength * 2
)

// ExtensionNode represents a trie extension node: a chain of single-child
// nodes compressed into one hop. The key is a non-empty nibble run and the
// next node is always a branch node.
type ExtensionNode struct {
	BaseNode
	key  []byte
	next Node
}

var _ Node = (*ExtensionNode)(nil)

// NewExtensionNode returns an extension node with the specified key and
// the next node. The key must be a non-empty nibble path, i.e. must
// contain only bytes with the high half equal to 0.
func NewExtensionNode(key []byte, next Node) *ExtensionNode {
	return &ExtensionNode{
		key:  key,
		next: next,
	}
}

// Type implements the Node interface.
func (e *ExtensionNode) Type() NodeType { return ExtensionT }

// Hash implements the Node interface.
func (e *ExtensionNode) Hash() util.Uint256 {
	return e.getHash(e)
}

// Bytes implements the Node interface.
func (e *ExtensionNode) Bytes() []byte {
	return e.getBytes(e)
}

// EncodeBinary implements io.Serializable.
func (e *ExtensionNode) EncodeBinary(w *io.BinWriter) {
	w.WriteVarBytes(e.key)
	encodeBinaryAsChild(e.next, w)
}

// DecodeBinary implements io.Serializable.
func (e *ExtensionNode) DecodeBinary(r *io.BinReader) {
	e.key = r.ReadVarBytes(maxPathLength)
	if r.Err == nil && len(e.key) == 0 {
		r.Err = fmt.Errorf("extension node key is empty")
		return
	}
	e.next = decodeBinaryAsChild(r)
	if r.Err == nil && isEmpty(e.next) {
		r.Err = fmt.Errorf("extension node has no child")
		return
	}
	e.invalidateCache()
}

// Clone implements the Node interface.
func (e *ExtensionNode) Clone() Node {
	res := *e
	res.invalidateCache()
	return &res
}
