package trie

import (
	"fmt"

	"github.com/trieworks/hashtrie/pkg/io"
	"github.com/trieworks/hashtrie/pkg/util"
)

// NodeType represents a node type.
type NodeType byte

// Node types definitions.
const (
	BranchT    NodeType = 0x00
	ExtensionT NodeType = 0x01
	HashT      NodeType = 0x02
	LeafT      NodeType = 0x03
	EmptyT     NodeType = 0x04
)

// Node represents a common interface of all trie nodes.
type Node interface {
	io.Serializable
	Hash() util.Uint256
	Type() NodeType
	Bytes() []byte
	Clone() Node
}

// NodeObject represents a Node together with its type.
// It is used for serialization/deserialization where type info
// is also expected.
type NodeObject struct {
	Node
}

// EncodeBinary implements io.Serializable.
func (n NodeObject) EncodeBinary(w *io.BinWriter) {
	encodeNodeWithType(n.Node, w)
}

// DecodeBinary implements io.Serializable.
func (n *NodeObject) DecodeBinary(r *io.BinReader) {
	typ := NodeType(r.ReadB())
	switch typ {
	case BranchT:
		n.Node = new(BranchNode)
	case ExtensionT:
		n.Node = new(ExtensionNode)
	case HashT:
		n.Node = new(HashNode)
	case LeafT:
		n.Node = new(LeafNode)
	case EmptyT:
		n.Node = EmptyNode{}
		return
	default:
		r.Err = fmt.Errorf("invalid node type: %x", typ)
		return
	}
	n.Node.DecodeBinary(r)
}

// encodeNodeWithType encodes the node together with its type.
func encodeNodeWithType(n Node, w *io.BinWriter) {
	w.WriteB(byte(n.Type()))
	n.EncodeBinary(w)
}

// encodeBinaryAsChild writes n to w as a parent-side child reference: an
// empty marker for an absent child and a typed hash reference otherwise.
// This keeps child content out of the parent encoding, so a node digest
// pins its children by digest only.
func encodeBinaryAsChild(n Node, w *io.BinWriter) {
	if isEmpty(n) {
		w.WriteB(byte(EmptyT))
		return
	}
	w.WriteB(byte(HashT))
	h := n.Hash()
	w.WriteBytes(h[:])
}

// decodeBinaryAsChild reads a child reference written by encodeBinaryAsChild.
func decodeBinaryAsChild(r *io.BinReader) Node {
	switch typ := NodeType(r.ReadB()); typ {
	case EmptyT:
		return EmptyNode{}
	case HashT:
		h := new(HashNode)
		h.DecodeBinary(r)
		return h
	default:
		if r.Err == nil {
			r.Err = fmt.Errorf("invalid child node type: %x", typ)
		}
		return nil
	}
}

// decodeNode decodes a node from its serialized representation.
func decodeNode(data []byte) (Node, error) {
	var n NodeObject
	r := io.NewBinReaderFromBuf(data)
	n.DecodeBinary(r)
	if r.Err != nil {
		return nil, r.Err
	}
	return n.Node, nil
}

// toBytes is a helper for serializing a node.
func toBytes(n Node) []byte {
	buf := io.NewBufBinWriter()
	encodeNodeWithType(n, buf.BinWriter)
	return buf.Bytes()
}

// isEmpty reports whether n is the empty sentinel.
func isEmpty(n Node) bool {
	_, ok := n.(EmptyNode)
	return ok
}
