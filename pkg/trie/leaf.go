package trie

import (
	"github.com/trieworks/hashtrie/pkg/io"
	"github.com/trieworks/hashtrie/pkg/util"
)

// LeafNode represents a trie leaf node: the unmatched tail of the key's
// nibble path together with the stored value. The suffix may be empty when
// the key ends right after the parent's slot.
type LeafNode struct {
	BaseNode
	suffix []byte
	value  []byte
}

var _ Node = (*LeafNode)(nil)

// NewLeafNode returns a leaf node with the specified key suffix and value.
func NewLeafNode(suffix, value []byte) *LeafNode {
	return &LeafNode{
		suffix: suffix,
		value:  value,
	}
}

// Type implements the Node interface.
func (n *LeafNode) Type() NodeType { return LeafT }

// Hash implements the Node interface.
func (n *LeafNode) Hash() util.Uint256 {
	return n.getHash(n)
}

// Bytes implements the Node interface.
func (n *LeafNode) Bytes() []byte {
	return n.getBytes(n)
}

// Value returns the value stored in this node.
func (n *LeafNode) Value() []byte {
	return n.value
}

// EncodeBinary implements io.Serializable.
func (n *LeafNode) EncodeBinary(w *io.BinWriter) {
	w.WriteVarBytes(n.suffix)
	w.WriteVarBytes(n.value)
}

// DecodeBinary implements io.Serializable.
func (n *LeafNode) DecodeBinary(r *io.BinReader) {
	n.suffix = r.ReadVarBytes(maxPathLength)
	n.value = r.ReadVarBytes(MaxValueLength)
	n.invalidateCache()
}

// Clone implements the Node interface.
func (n *LeafNode) Clone() Node {
	res := *n
	res.invalidateCache()
	return &res
}
