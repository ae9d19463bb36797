package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToNibbles(t *testing.T) {
	testCases := []struct {
		key      []byte
		nibbles  []byte
	}{
		{[]byte{}, []byte{}},
		{[]byte{0x01}, []byte{0x00, 0x01}},
		{[]byte{0xAC}, []byte{0x0A, 0x0C}},
		{[]byte("foo"), []byte{0x06, 0x06, 0x06, 0x0F, 0x06, 0x0F}},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.nibbles, toNibbles(tc.key))
		require.Equal(t, tc.key, fromNibbles(tc.nibbles))
	}
}

func TestLCP(t *testing.T) {
	testCases := []struct {
		a, b, result []byte
	}{
		{nil, nil, nil},
		{[]byte{0x01}, nil, nil},
		{nil, []byte{0x01}, nil},
		{[]byte{0x01, 0x02}, []byte{0x03}, nil},
		{[]byte{0x01, 0x02}, []byte{0x01, 0x03}, []byte{0x01}},
		{[]byte{0x01, 0x02}, []byte{0x01, 0x02}, []byte{0x01, 0x02}},
		{[]byte{0x01, 0x02, 0x03}, []byte{0x01, 0x02}, []byte{0x01, 0x02}},
	}
	for _, tc := range testCases {
		c := lcp(tc.a, tc.b)
		if len(tc.result) == 0 {
			require.Empty(t, c)
		} else {
			require.Equal(t, tc.result, c)
		}
	}
}

func TestSplitPath(t *testing.T) {
	i, path := splitPath([]byte{0x0A, 0x0B, 0x0C})
	require.Equal(t, byte(0x0A), i)
	require.Equal(t, []byte{0x0B, 0x0C}, path)

	i, path = splitPath([]byte{0x07})
	require.Equal(t, byte(0x07), i)
	require.Empty(t, path)
}
