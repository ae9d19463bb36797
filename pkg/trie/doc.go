/*
Package trie implements a hashed, path-compressed prefix trie.

Keys are arbitrary byte strings that are decomposed into 4-bit nibbles
(most significant nibble of every byte first). Shared key prefixes are
compressed into extension nodes, keys diverge at 16-way branch nodes and
terminate in leaf nodes carrying the unmatched key tail. Every node is
addressed by the keccak256 digest of its canonical binary encoding and
lives in a content-addressed Store, so the single root digest commits to
the whole key-value state and any subtree can be verified independently.

Nodes are immutable once stored. An update rebuilds the nodes along the
affected path bottom-up and publishes a new root digest; superseded nodes
stay in the store under their old digests, which makes any previously
captured root a consistent read-only snapshot.

The canonical node encoding is a versioned wire format. Each node is
serialized as a tag byte followed by the payload:

	0x00 Branch:    16 child slots in fixed index order, each slot written
	                as an empty marker (0x04) or a hash reference
	                (0x02 ++ 32 digest bytes), then a presence byte and,
	                when present, var-bytes of the value.
	0x01 Extension: var-bytes of the non-empty nibble run, then the child
	                as a hash reference (0x02 ++ 32 digest bytes). The
	                child is always a branch node.
	0x02 Hash:      32 digest bytes. Appears only as a child reference.
	0x03 Leaf:      var-bytes of the suffix nibbles, then var-bytes of
	                the value.
	0x04 Empty:     no payload. Appears only as a branch slot marker.

The layout has no order-dependent parts, so semantically equal nodes
always encode to equal bytes and hash to equal digests regardless of
insertion order.
*/
package trie
