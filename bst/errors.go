package bst

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidIterator is returned when an end iterator is dereferenced.
	ErrInvalidIterator = errors.New("bst: dereferencing end iterator")

	// ErrKeyNotFound is returned by Map.At when the key is absent.
	ErrKeyNotFound = errors.New("bst: key not found")
)
