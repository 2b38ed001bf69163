// Copyright (C) 2024 Creditor Corp. Group.
// See LICENSE for copying information.

package sequencereader

import (
	"errors"
)

// ErrEnded defines that there are no more elements to read.
var ErrEnded = errors.New("the sequence is ended")

// SequenceReader defines the simplest reader for sequences.
type SequenceReader[T comparable] struct {
	s    []T
	idx  int
	size int
}

// New is a constructor for SequenceReader.
func New[T comparable](seq []T) *SequenceReader[T] {
	return &SequenceReader[T]{
		s:    seq,
		idx:  0,
		size: len(seq),
	}
}

// HasNext returns true is sequence is not ended.
func (sr *SequenceReader[T]) HasNext() bool {
	return sr.idx < sr.size
}

// Next returns next element of the sequence.
func (sr *SequenceReader[T]) Next() (T, error) {
	if !sr.HasNext() {
		return *new(T), ErrEnded
	}

	pIdx := sr.idx
	sr.idx++

	return sr.s[pIdx], nil
}

// NextN returns next n elements of the sequence.
// Nothing is consumed if less than n elements are left.
func (sr *SequenceReader[T]) NextN(n int) ([]T, error) {
	if n < 0 || sr.Len() < n {
		return nil, ErrEnded
	}

	start := sr.idx
	sr.idx += n

	return sr.s[start:sr.idx], nil
}

// NextUntil returns elements up to the first occurrence of sep and consumes sep itself.
// Returns false if sep was not found, in that case the rest of the sequence is returned.
func (sr *SequenceReader[T]) NextUntil(sep T) ([]T, bool) {
	start := sr.idx
	for ; sr.idx < sr.size; sr.idx++ {
		if sr.s[sr.idx] == sep {
			part := sr.s[start:sr.idx]
			sr.idx++

			return part, true
		}
	}

	return sr.s[start:], false
}

// Rest returns all elements which are left and ends the sequence.
func (sr *SequenceReader[T]) Rest() []T {
	rest := sr.s[sr.idx:]
	sr.idx = sr.size

	return rest
}

// Len returns how many items are left.
func (sr *SequenceReader[T]) Len() int {
	return sr.size - sr.idx
}
