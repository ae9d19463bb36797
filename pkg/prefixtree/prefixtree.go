// Package prefixtree implements a plain string-keyed prefix tree. It is
// the simple companion of the hashed trie: shared key prefixes are
// compressed into edges, but nodes carry no digests and there is no
// backing store.
package prefixtree

import (
	"fmt"
	"io"
	"sort"
)

type node struct {
	children map[string]*node
	value    string
	hasValue bool
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Tree is a prefix tree mapping string keys to string values.
type Tree struct {
	root  *node
	count int
}

// New creates a new empty Tree.
func New() *Tree {
	return &Tree{root: newNode()}
}

func commonPrefixLen(a, b string) int {
	lim := len(a)
	if len(b) < lim {
		lim = len(b)
	}
	var i int
	for i = 0; i < lim; i++ {
		if a[i] != b[i] {
			break
		}
	}
	return i
}

// Insert puts the key-value pair into the tree, replacing the value of an
// already present key.
func (t *Tree) Insert(key, value string) {
	if t.insert(t.root, key, value) {
		t.count++
	}
}

// insert returns true when the key was previously absent.
func (t *Tree) insert(n *node, key, value string) bool {
	if len(key) == 0 {
		added := !n.hasValue
		n.value = value
		n.hasValue = true
		return added
	}

	for edge, child := range n.children {
		cl := commonPrefixLen(edge, key)
		if cl == 0 {
			continue
		}
		if cl == len(edge) {
			return t.insert(child, key[cl:], value)
		}

		// Partial match: split the edge at the divergence point.
		mid := newNode()
		mid.children[edge[cl:]] = child
		delete(n.children, edge)
		n.children[edge[:cl]] = mid
		return t.insert(mid, key[cl:], value)
	}

	leaf := newNode()
	leaf.value = value
	leaf.hasValue = true
	n.children[key] = leaf
	return true
}

// Get returns the value stored under the key and whether it is present.
func (t *Tree) Get(key string) (string, bool) {
	n := t.root
	for len(key) > 0 {
		var next *node
		for edge, child := range n.children {
			cl := commonPrefixLen(edge, key)
			if cl == len(edge) && cl > 0 {
				next = child
				key = key[cl:]
				break
			}
		}
		if next == nil {
			return "", false
		}
		n = next
	}
	if !n.hasValue {
		return "", false
	}
	return n.value, true
}

// Keys returns all keys in the tree sorted at every level, so the result
// is deterministic.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, t.count)
	collectKeys(t.root, "", &keys)
	return keys
}

func collectKeys(n *node, prefix string, keys *[]string) {
	if n.hasValue {
		*keys = append(*keys, prefix)
	}
	for _, edge := range sortedEdges(n) {
		collectKeys(n.children[edge], prefix+edge, keys)
	}
}

// Len returns the number of key-value pairs in the tree.
func (t *Tree) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree) IsEmpty() bool {
	return t.count == 0
}

// DumpTo writes the tree structure to w in a console-friendly form.
func (t *Tree) DumpTo(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "ROOT"); err != nil {
		return err
	}
	return dumpNode(t.root, w, "   ")
}

func dumpNode(n *node, w io.Writer, indent string) error {
	edges := sortedEdges(n)
	for i, edge := range edges {
		connector := "├─"
		if i == len(edges)-1 {
			connector = "└─"
		}
		child := n.children[edge]
		if len(child.children) == 0 {
			if _, err := fmt.Fprintf(w, "%s%s LEAF -> key=%q, value=%q\n",
				indent, connector, edge, child.value); err != nil {
				return err
			}
			continue
		}
		if child.hasValue {
			if _, err := fmt.Fprintf(w, "%s%s NODE -> key=%q, value=%q\n",
				indent, connector, edge, child.value); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, "%s%s NODE -> key=%q\n", indent, connector, edge); err != nil {
				return err
			}
		}
		if err := dumpNode(child, w, indent+"  "); err != nil {
			return err
		}
	}
	return nil
}

func sortedEdges(n *node) []string {
	edges := make([]string, 0, len(n.children))
	for edge := range n.children {
		edges = append(edges, edge)
	}
	sort.Strings(edges)
	return edges
}
