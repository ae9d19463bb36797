package trie

import (
	"github.com/trieworks/hashtrie/pkg/io"
	"github.com/trieworks/hashtrie/pkg/util"
)

// EmptyNode represents the "no subtree here" sentinel. It is used only
// during traversal and as a branch slot marker, it is never stored.
type EmptyNode struct{}

var _ Node = EmptyNode{}

// Type implements the Node interface.
func (e EmptyNode) Type() NodeType {
	return EmptyT
}

// Hash implements the Node interface.
func (e EmptyNode) Hash() util.Uint256 {
	panic("can't get hash of an EmptyNode")
}

// Bytes implements the Node interface.
func (e EmptyNode) Bytes() []byte {
	return nil
}

// EncodeBinary implements io.Serializable.
func (e EmptyNode) EncodeBinary(*io.BinWriter) {
}

// DecodeBinary implements io.Serializable.
func (e EmptyNode) DecodeBinary(*io.BinReader) {
}

// Clone implements the Node interface.
func (e EmptyNode) Clone() Node {
	return e
}
