package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/trieworks/hashtrie/internal/random"
	"github.com/trieworks/hashtrie/internal/testserdes"
	"github.com/trieworks/hashtrie/pkg/crypto/hash"
)

func newFilledBranch() *BranchNode {
	b := NewBranchNode()
	b.Children[0] = NewHashNode(random.Uint256())
	b.Children[7] = NewHashNode(random.Uint256())
	b.Children[15] = NewHashNode(random.Uint256())
	b.value = []byte("node value")
	return b
}

func TestNodeSerializable(t *testing.T) {
	t.Run("Leaf", func(t *testing.T) {
		l := NewLeafNode([]byte{0x06, 0x0F}, []byte("value"))
		testserdes.EncodeDecodeBinary(t, &NodeObject{l}, new(NodeObject))
	})
	t.Run("Leaf/EmptySuffix", func(t *testing.T) {
		l := NewLeafNode([]byte{}, []byte("value"))
		testserdes.EncodeDecodeBinary(t, &NodeObject{l}, new(NodeObject))
	})
	t.Run("Extension", func(t *testing.T) {
		e := NewExtensionNode([]byte{0x01, 0x02, 0x03}, NewHashNode(random.Uint256()))
		testserdes.EncodeDecodeBinary(t, &NodeObject{e}, new(NodeObject))
	})
	t.Run("Branch", func(t *testing.T) {
		testserdes.EncodeDecodeBinary(t, &NodeObject{newFilledBranch()}, new(NodeObject))
	})
	t.Run("Branch/NoValue", func(t *testing.T) {
		b := NewBranchNode()
		b.Children[3] = NewHashNode(random.Uint256())
		testserdes.EncodeDecodeBinary(t, &NodeObject{b}, new(NodeObject))
	})
	t.Run("Hash", func(t *testing.T) {
		h := NewHashNode(random.Uint256())
		testserdes.EncodeDecodeBinary(t, &NodeObject{h}, new(NodeObject))
	})
}

func TestInvalidNodeDecode(t *testing.T) {
	t.Run("UnknownType", func(t *testing.T) {
		_, err := decodeNode([]byte{0xFF})
		require.Error(t, err)
	})
	t.Run("EmptyExtensionKey", func(t *testing.T) {
		e := NewExtensionNode([]byte{0x01}, NewHashNode(random.Uint256()))
		data := toBytes(e)
		// Rewrite the key length to zero, keeping the tag.
		data = append([]byte{data[0], 0x00}, data[2+1:]...)
		_, err := decodeNode(data)
		require.Error(t, err)
	})
	t.Run("BranchChildContent", func(t *testing.T) {
		// A branch slot must be an empty marker or a hash reference,
		// never inline node content.
		data := []byte{byte(BranchT), byte(LeafT)}
		_, err := decodeNode(data)
		require.Error(t, err)
	})
	t.Run("Truncated", func(t *testing.T) {
		h := NewHashNode(random.Uint256())
		data := toBytes(h)
		_, err := decodeNode(data[:len(data)-1])
		require.Error(t, err)
	})
}

func TestEncodingDeterminism(t *testing.T) {
	h1, h2 := random.Uint256(), random.Uint256()

	// Two branches with identical semantic content built in different
	// slot-assignment orders must encode identically.
	a := NewBranchNode()
	a.Children[1] = NewHashNode(h1)
	a.Children[10] = NewHashNode(h2)
	a.value = []byte("v")

	b := NewBranchNode()
	b.value = []byte("v")
	b.Children[10] = NewHashNode(h2)
	b.Children[1] = NewHashNode(h1)

	require.Equal(t, toBytes(a), toBytes(b))
	require.Equal(t, a.Hash(), b.Hash())
}

func TestNodeHashIsContentHash(t *testing.T) {
	l := NewLeafNode([]byte{0x0A}, []byte("value"))
	require.Equal(t, hash.Keccak256(l.Bytes()), l.Hash())

	e := NewExtensionNode([]byte{0x0B}, NewHashNode(random.Uint256()))
	require.Equal(t, hash.Keccak256(e.Bytes()), e.Hash())

	b := newFilledBranch()
	require.Equal(t, hash.Keccak256(b.Bytes()), b.Hash())
}

func TestBranchValuePresence(t *testing.T) {
	// nil value and empty value are distinct branch states.
	a := NewBranchNode()
	a.Children[2] = NewHashNode(random.Uint256())

	b := a.Clone().(*BranchNode)
	b.value = []byte{}

	require.NotEqual(t, toBytes(a), toBytes(b))
	require.NotEqual(t, a.Hash(), b.Hash())

	n, err := decodeNode(toBytes(b))
	require.NoError(t, err)
	require.NotNil(t, n.(*BranchNode).Value())
	require.Empty(t, n.(*BranchNode).Value())
}

func TestEmptyNode(t *testing.T) {
	e := EmptyNode{}
	require.Equal(t, EmptyT, e.Type())
	require.Nil(t, e.Bytes())
	require.Panics(t, func() { e.Hash() })
}
