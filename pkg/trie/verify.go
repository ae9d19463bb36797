package trie

import (
	"github.com/trieworks/hashtrie/pkg/crypto/hash"
	"github.com/trieworks/hashtrie/pkg/util"
	"go.uber.org/zap"
)

// VerifyIntegrity recursively visits every node reachable from the root,
// recomputing the digest of its stored content and checking the
// structural invariants: an extension carries a non-empty nibble run and
// points to a branch, every referenced digest resolves in the store. Any
// violation yields false, an empty trie is trivially consistent. It never
// returns an error, so it can be used purely as a diagnostic predicate.
func (t *Trie) VerifyIntegrity() bool {
	if t.root == nil {
		return true
	}
	_, ok := t.verifyNode(*t.root)
	return ok
}

// verifyNode checks the subtree rooted at the given digest and returns
// the type of the node stored under it.
func (t *Trie) verifyNode(h util.Uint256) (NodeType, bool) {
	data, err := t.store.GetBytes(h)
	if err != nil {
		t.log.Warn("unresolvable node", zap.String("hash", h.String()))
		return 0, false
	}
	if !hash.Keccak256(data).Equals(h) {
		t.log.Warn("node content does not match its digest", zap.String("hash", h.String()))
		return 0, false
	}
	n, err := decodeNode(data)
	if err != nil {
		t.log.Warn("undecodable node", zap.String("hash", h.String()), zap.Error(err))
		return 0, false
	}

	switch n := n.(type) {
	case *LeafNode:
		if len(n.suffix) > maxPathLength {
			t.log.Warn("leaf suffix is too long", zap.String("hash", h.String()))
			return 0, false
		}
	case *ExtensionNode:
		// Non-empty key and hash child are enforced at decode, the child
		// must additionally be a branch: consecutive extensions collapse.
		typ, ok := t.verifyNode(n.next.Hash())
		if !ok {
			return 0, false
		}
		if typ != BranchT {
			t.log.Warn("extension child is not a branch", zap.String("hash", h.String()))
			return 0, false
		}
	case *BranchNode:
		for i := 0; i < childrenCount; i++ {
			child, ok := n.Children[i].(*HashNode)
			if !ok {
				continue
			}
			if _, ok := t.verifyNode(child.Hash()); !ok {
				return 0, false
			}
		}
	default:
		// Hash and empty nodes are never stored as content.
		t.log.Warn("unexpected stored node type", zap.String("hash", h.String()))
		return 0, false
	}
	return n.Type(), true
}
