package stack

import "errors"

// Sentinel errors for Unique stack operations.
var (
	// ErrDuplicateElement indicates a push of an element already on the
	// stack, or a bulk construction from a non-unique input sequence.
	ErrDuplicateElement = errors.New("stack: duplicate element")

	// ErrEmptyStack indicates a pop or peek on an empty stack.
	ErrEmptyStack = errors.New("stack: empty stack")
)

// Unique is an ordered stack of unique elements: a sequence mutated only
// at the tail plus a mirror set for O(1) containment checks.
//
// Invariant: the membership set and the set of elements in the sequence
// are always identical. The zero value is not usable — construct with
// NewUnique or NewUniqueFrom.
type Unique[T comparable] struct {
	seq    []T            // tail-only ordered sequence
	member map[T]struct{} // mirror of seq for O(1) membership
}

// NewUnique creates an empty Unique stack.
// Complexity: O(1).
func NewUnique[T comparable]() *Unique[T] {
	return &Unique[T]{member: make(map[T]struct{})}
}

// NewUniqueFrom creates a Unique stack holding items in order, with the
// first element at the bottom. Returns ErrDuplicateElement if items
// contains repeats.
// Complexity: O(len(items)).
func NewUniqueFrom[T comparable](items []T) (*Unique[T], error) {
	s := &Unique[T]{
		seq:    make([]T, 0, len(items)),
		member: make(map[T]struct{}, len(items)),
	}
	for _, x := range items {
		if err := s.Push(x); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Push appends x at the tail and records its membership.
// Returns ErrDuplicateElement if x is already present; the stack is left
// unchanged on failure.
// Complexity: O(1).
func (s *Unique[T]) Push(x T) error {
	if _, ok := s.member[x]; ok {
		return ErrDuplicateElement
	}
	s.seq = append(s.seq, x)
	s.member[x] = struct{}{}

	return nil
}

// Pop removes and returns the tail element, clearing its membership.
// Returns ErrEmptyStack if the stack is empty.
// Complexity: O(1).
func (s *Unique[T]) Pop() (T, error) {
	if len(s.seq) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	x := s.seq[len(s.seq)-1]
	s.seq = s.seq[:len(s.seq)-1]
	delete(s.member, x)

	return x, nil
}

// Peek returns the tail element without removing it.
// Returns ErrEmptyStack if the stack is empty.
// Complexity: O(1).
func (s *Unique[T]) Peek() (T, error) {
	if len(s.seq) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}

	return s.seq[len(s.seq)-1], nil
}

// Contains reports whether x is currently on the stack.
// Complexity: O(1).
func (s *Unique[T]) Contains(x T) bool {
	_, ok := s.member[x]

	return ok
}

// Len returns the number of elements on the stack.
// Complexity: O(1).
func (s *Unique[T]) Len() int {
	return len(s.seq)
}
