package trie

import (
	"fmt"
	"io"
)

// DumpTo writes an indented listing of the trie structure to w, one line
// per node with its nibble run and digest. It is meant for console
// inspection of small tries.
func (t *Trie) DumpTo(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "empty trie")
		return err
	}
	if _, err := fmt.Fprintf(w, "ROOT %s\n", t.root.String()); err != nil {
		return err
	}
	r, err := t.store.Get(*t.root)
	if err != nil {
		return err
	}
	return t.dumpNode(w, r, " ")
}

func (t *Trie) dumpNode(w io.Writer, curr Node, indent string) error {
	switch n := curr.(type) {
	case *LeafNode:
		_, err := fmt.Fprintf(w, "%s└─ LEAF suffix=%s value=%q hash=%s\n",
			indent, nibblesString(n.suffix), n.value, n.Hash())
		return err
	case *BranchNode:
		if _, err := fmt.Fprintf(w, "%s└─ BRANCH hash=%s\n", indent, n.Hash()); err != nil {
			return err
		}
		if n.value != nil {
			if _, err := fmt.Fprintf(w, "%s   [.] value=%q\n", indent, n.value); err != nil {
				return err
			}
		}
		for i := 0; i < childrenCount; i++ {
			if isEmpty(n.Children[i]) {
				continue
			}
			if _, err := fmt.Fprintf(w, "%s   [%x]\n", indent, i); err != nil {
				return err
			}
			r, err := t.resolve(n.Children[i])
			if err != nil {
				return err
			}
			if err := t.dumpNode(w, r, indent+"   "); err != nil {
				return err
			}
		}
		return nil
	case *ExtensionNode:
		if _, err := fmt.Fprintf(w, "%s└─ EXTENSION key=%s hash=%s\n",
			indent, nibblesString(n.key), n.Hash()); err != nil {
			return err
		}
		r, err := t.resolve(n.next)
		if err != nil {
			return err
		}
		return t.dumpNode(w, r, indent+"   ")
	default:
		panic("invalid trie node type")
	}
}

// nibblesString renders a nibble path as a run of hex digits.
func nibblesString(path []byte) string {
	res := make([]byte, len(path))
	const digits = "0123456789abcdef"
	for i, b := range path {
		res[i] = digits[b&0x0F]
	}
	return string(res)
}
