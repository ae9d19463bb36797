package trie

import "errors"

var (
	// ErrNotFound is returned when the requested trie item is missing.
	// It is an ordinary lookup outcome, not a failure.
	ErrNotFound = errors.New("item not found")

	// ErrInvalidKey is returned when the key is empty or too big.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidValue is returned when the value is too big.
	ErrInvalidValue = errors.New("invalid value")

	// ErrCorruptStore is returned when a digest reachable from the root
	// is missing from the store or its content fails to decode. It
	// indicates a bug, a truncated backing layer or tampering.
	ErrCorruptStore = errors.New("corrupt node store")
)
