package sequence

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
)

// node holds one element of a sequence. The chain is owned head to tail via
// next; prev is a back-reference for stepping backwards and unlinking.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// Sequence is a doubly-linked chain of elements of type T.
//
// The zero value is an empty sequence ready to use.
type Sequence[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates an empty sequence.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

// FromSlice creates a sequence holding the values of s in slice order.
func FromSlice[T any](s []T) *Sequence[T] {
	seq := New[T]()
	for _, v := range s {
		seq.PushBack(v)
	}
	return seq
}

// Len returns the number of elements in seq.
func (seq *Sequence[T]) Len() int {
	if seq == nil {
		return 0
	}
	return seq.size
}

// IsEmpty reports whether seq holds no elements.
func (seq *Sequence[T]) IsEmpty() bool {
	return seq.Len() == 0
}

// Clear releases every node of seq and resets it to the empty state.
// Clearing an empty sequence is a no-op.
func (seq *Sequence[T]) Clear() {
	if seq == nil || seq.head == nil {
		return
	}
	tracer().Debugf("sequence: clearing %d elements", seq.size)
	for n := seq.head; n != nil; {
		next := n.next
		release(n)
		n = next
	}
	seq.head, seq.tail = nil, nil
	seq.size = 0
}

// PushBack appends v at the tail of seq.
func (seq *Sequence[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: seq.tail}
	if seq.tail == nil {
		seq.head = n
	} else {
		seq.tail.next = n
	}
	seq.tail = n
	seq.size++
}

// PushFront prepends v at the head of seq.
func (seq *Sequence[T]) PushFront(v T) {
	n := &node[T]{value: v, next: seq.head}
	if seq.head == nil {
		seq.tail = n
	} else {
		seq.head.prev = n
	}
	seq.head = n
	seq.size++
}

// Insert places v at position index, shifting the element currently at index
// (and all following ones) one position back. index may be in [0, Len()];
// inserting at Len() appends.
//
// If index is out of range, ErrIndexOutOfBounds is returned and seq is left
// untouched.
func (seq *Sequence[T]) Insert(v T, index int) error {
	if index < 0 || index > seq.Len() {
		return fmt.Errorf("%w: cannot insert at %d, length is %d", ErrIndexOutOfBounds, index, seq.Len())
	}
	switch index {
	case 0:
		seq.PushFront(v)
	case seq.size:
		seq.PushBack(v)
	default:
		// TODO walk from the tail for indices in the back half
		seq.linkBefore(v, seq.nodeAt(index))
	}
	return nil
}

// Remove deletes the element at position index.
//
// If index is not in [0, Len()), ErrIndexOutOfBounds is returned and seq is
// left untouched.
func (seq *Sequence[T]) Remove(index int) error {
	_, err := seq.RemoveAt(index)
	return err
}

// RemoveAt deletes the element at position index and returns it.
func (seq *Sequence[T]) RemoveAt(index int) (T, error) {
	var zero T
	if err := seq.checkIndex(index); err != nil {
		return zero, err
	}
	n := seq.nodeAt(index)
	seq.unlink(n)
	v := n.value
	release(n)
	return v, nil
}

// At returns the element at position index.
func (seq *Sequence[T]) At(index int) (T, error) {
	var zero T
	if err := seq.checkIndex(index); err != nil {
		return zero, err
	}
	return seq.nodeAt(index).value, nil
}

// Ref returns a pointer to the element at position index. The pointer stays
// valid until the element is removed from seq.
func (seq *Sequence[T]) Ref(index int) (*T, error) {
	if err := seq.checkIndex(index); err != nil {
		return nil, err
	}
	return &seq.nodeAt(index).value, nil
}

// Set replaces the element at position index with v.
func (seq *Sequence[T]) Set(index int, v T) error {
	ref, err := seq.Ref(index)
	if err != nil {
		return err
	}
	*ref = v
	return nil
}

// Front returns the first element of seq. If seq is empty, ok is false.
func (seq *Sequence[T]) Front() (v T, ok bool) {
	if seq == nil || seq.head == nil {
		return v, false
	}
	return seq.head.value, true
}

// Back returns the last element of seq. If seq is empty, ok is false.
func (seq *Sequence[T]) Back() (v T, ok bool) {
	if seq == nil || seq.tail == nil {
		return v, false
	}
	return seq.tail.value, true
}

// IndexFunc returns the position of the first element satisfying match,
// or -1 if there is none.
func (seq *Sequence[T]) IndexFunc(match func(T) bool) int {
	if seq == nil || match == nil {
		return -1
	}
	i := 0
	for n := seq.head; n != nil; n = n.next {
		if match(n.value) {
			return i
		}
		i++
	}
	return -1
}

// Clone returns a sequence holding shallow copies of the elements of seq.
// The clone shares no nodes with seq.
func (seq *Sequence[T]) Clone() *Sequence[T] {
	c := New[T]()
	if seq == nil {
		return c
	}
	for n := seq.head; n != nil; n = n.next {
		c.PushBack(n.value)
	}
	return c
}

// Slice copies the elements of seq into a new slice, in forward order.
func (seq *Sequence[T]) Slice() []T {
	s := make([]T, 0, seq.Len())
	if seq == nil {
		return s
	}
	for n := seq.head; n != nil; n = n.next {
		s = append(s, n.value)
	}
	return s
}

// String returns a debug representation of seq, e.g. "[1 2 3]".
func (seq *Sequence[T]) String() string {
	var bf strings.Builder
	bf.WriteByte('[')
	if seq != nil {
		for n := seq.head; n != nil; n = n.next {
			if n != seq.head {
				bf.WriteByte(' ')
			}
			fmt.Fprintf(&bf, "%v", n.value)
		}
	}
	bf.WriteByte(']')
	return bf.String()
}

// --- Internal helpers ------------------------------------------------------

func (seq *Sequence[T]) checkIndex(index int) error {
	if index < 0 || index >= seq.Len() {
		return fmt.Errorf("%w: index %d, length is %d", ErrIndexOutOfBounds, index, seq.Len())
	}
	return nil
}

// nodeAt walks index steps from the head. index must be valid.
func (seq *Sequence[T]) nodeAt(index int) *node[T] {
	assert(index >= 0 && index < seq.size, "nodeAt called with invalid index")
	n := seq.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// linkBefore splices a new node holding v immediately before at.
func (seq *Sequence[T]) linkBefore(v T, at *node[T]) {
	assert(at != nil, "linkBefore called with nil node")
	n := &node[T]{value: v, next: at, prev: at.prev}
	if at.prev == nil {
		seq.head = n
	} else {
		at.prev.next = n
	}
	at.prev = n
	seq.size++
}

// unlink bypasses n, fixing head and tail if n sits at either end.
func (seq *Sequence[T]) unlink(n *node[T]) {
	if n.prev == nil {
		seq.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		seq.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	seq.size--
}

// release drops a node's links and value, so a stale reference to it does not
// keep the rest of the chain reachable.
func release[T any](n *node[T]) {
	var zero T
	n.value = zero
	n.next, n.prev = nil, nil
}
