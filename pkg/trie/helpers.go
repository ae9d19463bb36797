package trie

// lcp returns the longest common prefix of a and b.
// If either is empty or they diverge immediately, the result is empty.
func lcp(a, b []byte) []byte {
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

	return a[:i]
}

// toNibbles mangles the path by splitting every byte into 2 nibbles,
// most significant nibble first. The result is twice as long as the key.
func toNibbles(path []byte) []byte {
	result := make([]byte, len(path)*2)
	for i, b := range path {
		result[i*2] = b >> 4
		result[i*2+1] = b & 0x0F
	}
	return result
}

// fromNibbles performs operation opposite to toNibbles and does no path
// validity checks.
func fromNibbles(path []byte) []byte {
	result := make([]byte, len(path)/2)
	for i := range result {
		result[i] = path[2*i]<<4 + path[2*i+1]
	}
	return result
}

// splitPath splits the path into the first nibble and the rest.
// The path must be non-empty.
func splitPath(path []byte) (byte, []byte) {
	return path[0], path[1:]
}
