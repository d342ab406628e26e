package sequence

import (
	"fmt"
	"iter"
)

// Iterator walks a sequence from head to tail.
//
// An iterator is a plain traversal handle. Removing the element it currently
// points to, or clearing the sequence, leaves the iterator in an undefined
// state.
type Iterator[T any] struct {
	current *node[T]
}

// Begin returns an iterator positioned at the first element of seq.
// For an empty sequence, Begin equals End.
func (seq *Sequence[T]) Begin() Iterator[T] {
	if seq == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{current: seq.head}
}

// End returns the sentinel position past the tail of seq.
func (seq *Sequence[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// AtEnd reports whether it has moved past the last element.
func (it *Iterator[T]) AtEnd() bool {
	return it.current == nil
}

// Value returns the element at the iterator position.
// It panics if the iterator is at end.
func (it *Iterator[T]) Value() T {
	assert(it.current != nil, "Value called on iterator at end")
	return it.current.value
}

// Ref returns a pointer to the element at the iterator position.
// It panics if the iterator is at end.
func (it *Iterator[T]) Ref() *T {
	assert(it.current != nil, "Ref called on iterator at end")
	return &it.current.value
}

// Next advances the iterator by one element. Advancing an iterator which is
// already at end fails with ErrIndexOutOfBounds.
func (it *Iterator[T]) Next() error {
	if it.current == nil {
		return fmt.Errorf("%w: iterator advanced past end", ErrIndexOutOfBounds)
	}
	it.current = it.current.next
	return nil
}

// Equal reports whether it and other point to the same position.
func (it *Iterator[T]) Equal(other Iterator[T]) bool {
	return it.current == other.current
}

// ReverseIterator walks a sequence from tail to head.
// The same caveats as for Iterator apply.
type ReverseIterator[T any] struct {
	current *node[T]
}

// RBegin returns a reverse iterator positioned at the last element of seq.
func (seq *Sequence[T]) RBegin() ReverseIterator[T] {
	if seq == nil {
		return ReverseIterator[T]{}
	}
	return ReverseIterator[T]{current: seq.tail}
}

// REnd returns the sentinel position before the head of seq.
func (seq *Sequence[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{}
}

// AtEnd reports whether it has moved past the first element.
func (it *ReverseIterator[T]) AtEnd() bool {
	return it.current == nil
}

// Value returns the element at the iterator position.
// It panics if the iterator is at end.
func (it *ReverseIterator[T]) Value() T {
	assert(it.current != nil, "Value called on reverse iterator at end")
	return it.current.value
}

// Ref returns a pointer to the element at the iterator position.
func (it *ReverseIterator[T]) Ref() *T {
	assert(it.current != nil, "Ref called on reverse iterator at end")
	return &it.current.value
}

// Next moves the iterator one element towards the head.
func (it *ReverseIterator[T]) Next() error {
	if it.current == nil {
		return fmt.Errorf("%w: reverse iterator advanced past end", ErrIndexOutOfBounds)
	}
	it.current = it.current.prev
	return nil
}

// Equal reports whether it and other point to the same position.
func (it *ReverseIterator[T]) Equal(other ReverseIterator[T]) bool {
	return it.current == other.current
}

// --- Range functions -------------------------------------------------------

// All returns an iterator over positions and elements in forward order.
func (seq *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if seq == nil {
			return
		}
		i := 0
		for n := seq.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the elements in forward order.
func (seq *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range seq.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over positions and elements from tail to head.
func (seq *Sequence[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if seq == nil {
			return
		}
		i := seq.size - 1
		for n := seq.tail; n != nil; n = n.prev {
			if !yield(i, n.value) {
				return
			}
			i--
		}
	}
}

// ForEach visits all elements in forward order.
//
// Iteration stops early if callback returns false.
func (seq *Sequence[T]) ForEach(fn func(index int, v T) bool) {
	if fn == nil {
		return
	}
	for i, v := range seq.All() {
		if !fn(i, v) {
			return
		}
	}
}
