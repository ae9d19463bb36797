package trie

import (
	"github.com/trieworks/hashtrie/pkg/io"
	"github.com/trieworks/hashtrie/pkg/util"
)

// childrenCount is the number of child slots of a branch node,
// one per nibble value.
const childrenCount = 16

// MaxValueLength is the max length of a value stored in the trie.
const MaxValueLength = 65535

// BranchNode represents a trie branch node. A slot holds the subtree
// reached by the corresponding nibble, the value belongs to the key whose
// nibble path ends exactly at this node (nil when there is no such key).
type BranchNode struct {
	BaseNode
	Children [childrenCount]Node
	value    []byte
}

var _ Node = (*BranchNode)(nil)

// NewBranchNode returns a new branch node with all child slots empty.
func NewBranchNode() *BranchNode {
	b := new(BranchNode)
	for i := range b.Children {
		b.Children[i] = EmptyNode{}
	}
	return b
}

// Type implements the Node interface.
func (b *BranchNode) Type() NodeType { return BranchT }

// Hash implements the Node interface.
func (b *BranchNode) Hash() util.Uint256 {
	return b.getHash(b)
}

// Bytes implements the Node interface.
func (b *BranchNode) Bytes() []byte {
	return b.getBytes(b)
}

// Value returns the value of the key terminating at this node or nil.
func (b *BranchNode) Value() []byte {
	return b.value
}

// EncodeBinary implements io.Serializable.
func (b *BranchNode) EncodeBinary(w *io.BinWriter) {
	for i := 0; i < childrenCount; i++ {
		encodeBinaryAsChild(b.Children[i], w)
	}
	w.WriteBool(b.value != nil)
	if b.value != nil {
		w.WriteVarBytes(b.value)
	}
}

// DecodeBinary implements io.Serializable.
func (b *BranchNode) DecodeBinary(r *io.BinReader) {
	for i := 0; i < childrenCount; i++ {
		b.Children[i] = decodeBinaryAsChild(r)
	}
	if r.ReadBool() {
		b.value = r.ReadVarBytes(MaxValueLength)
	} else {
		b.value = nil
	}
	b.invalidateCache()
}

// Clone implements the Node interface.
func (b *BranchNode) Clone() Node {
	res := *b
	res.invalidateCache()
	return &res
}
