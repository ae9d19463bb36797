package trie

import (
	"github.com/trieworks/hashtrie/pkg/io"
	"github.com/trieworks/hashtrie/pkg/util"
)

// HashNode represents a by-digest reference to another node. It is the
// only thing that crosses node boundaries in stored nodes.
type HashNode struct {
	BaseNode
}

var _ Node = (*HashNode)(nil)

// NewHashNode returns a hash node with the specified digest.
func NewHashNode(h util.Uint256) *HashNode {
	return &HashNode{
		BaseNode: BaseNode{
			hash:      h,
			hashValid: true,
		},
	}
}

// Type implements the Node interface.
func (h *HashNode) Type() NodeType { return HashT }

// Hash implements the Node interface.
func (h *HashNode) Hash() util.Uint256 {
	if !h.hashValid {
		panic("can't get hash of an empty HashNode")
	}
	return h.hash
}

// Bytes implements the Node interface.
func (h *HashNode) Bytes() []byte {
	return h.getBytes(h)
}

// EncodeBinary implements io.Serializable.
func (h *HashNode) EncodeBinary(w *io.BinWriter) {
	if !h.hashValid {
		return
	}
	w.WriteBytes(h.hash[:])
}

// DecodeBinary implements io.Serializable.
func (h *HashNode) DecodeBinary(r *io.BinReader) {
	r.ReadBytes(h.hash[:])
	h.hashValid = true
	h.bytesValid = false
}

// Clone implements the Node interface.
func (h *HashNode) Clone() Node {
	res := *h
	return &res
}
