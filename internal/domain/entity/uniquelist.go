// Package entity defines the aggregates of the club book and the club book itself.
package entity

import "errors"

var (
	// ErrDuplicateElement indicates an identity collision inside a unique list.
	ErrDuplicateElement = errors.New("duplicate element in unique list")
	// ErrElementNotFound indicates the targeted element is not in the list.
	ErrElementNotFound = errors.New("element not found in unique list")
)

// Element is implemented by aggregates held in a UniqueList. SameAs is the
// identity predicate deciding duplicates; Equal is full structural equality.
type Element[T any] interface {
	SameAs(T) bool
	Equal(T) bool
}

// UniqueList holds elements with pairwise distinct identities, in insertion
// order. The order is observable and survives persistence round trips.
type UniqueList[T Element[T]] struct {
	items []T
}

func NewUniqueList[T Element[T]]() *UniqueList[T] {
	return &UniqueList[T]{}
}

// Add appends item unless its identity collides with a contained element.
func (l *UniqueList[T]) Add(item T) error {
	if l.Contains(item) {
		return ErrDuplicateElement
	}
	l.items = append(l.items, item)
	return nil
}

// Remove deletes the element sharing item's identity.
func (l *UniqueList[T]) Remove(item T) error {
	i := l.IndexOf(item)
	if i < 0 {
		return ErrElementNotFound
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Set replaces target with edited in place. It fails if target is absent or
// edited collides with any element other than target.
func (l *UniqueList[T]) Set(target, edited T) error {
	i := l.IndexOf(target)
	if i < 0 {
		return ErrElementNotFound
	}
	for j, item := range l.items {
		if j != i && item.SameAs(edited) {
			return ErrDuplicateElement
		}
	}
	l.items[i] = edited
	return nil
}

// Contains reports whether an element shares item's identity.
func (l *UniqueList[T]) Contains(item T) bool {
	return l.IndexOf(item) >= 0
}

// IndexOf returns the position of the element sharing item's identity, or -1.
func (l *UniqueList[T]) IndexOf(item T) int {
	for i, existing := range l.items {
		if existing.SameAs(item) {
			return i
		}
	}
	return -1
}

// Find returns the first element satisfying pred.
func (l *UniqueList[T]) Find(pred func(T) bool) (T, bool) {
	for _, item := range l.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Slice returns a copy of the elements in insertion order.
func (l *UniqueList[T]) Slice() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *UniqueList[T]) Len() int { return len(l.items) }

// Equal reports element-wise structural equality, order included.
func (l *UniqueList[T]) Equal(other *UniqueList[T]) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !l.items[i].Equal(other.items[i]) {
			return false
		}
	}
	return true
}
