package sequence

// InsertIf inserts v immediately before the first element e for which
// less(v, e) holds, and returns the position v has been placed at. If there
// is no such element, v is appended.
//
// If seq is ordered consistently with less, seq stays ordered, and v is
// placed behind all elements which compare equal to it. seq is not required
// to be ordered; InsertIf always uses the first fitting position.
func (seq *Sequence[T]) InsertIf(v T, less func(a, b T) bool) int {
	assert(less != nil, "InsertIf requires an ordering predicate")
	index := 0
	for n := seq.head; n != nil; n = n.next {
		if less(v, n.value) {
			seq.linkBefore(v, n)
			return index
		}
		index++
	}
	seq.PushBack(v)
	return seq.size - 1
}

// MergeSort sorts seq in place with respect to less. The sort is stable:
// elements which compare equal keep their relative order.
//
// Sorting relinks the existing nodes; no node is allocated or released.
func (seq *Sequence[T]) MergeSort(less func(a, b T) bool) {
	assert(less != nil, "MergeSort requires an ordering predicate")
	if seq == nil || seq.size < 2 {
		return
	}
	seq.head = mergeSort(seq.head, less)
	// merging does not keep track of the tail
	seq.tail = seq.head
	for seq.tail.next != nil {
		seq.tail = seq.tail.next
	}
	tracer().Debugf("sequence: sorted %d elements", seq.size)
}

// mergeSort sorts the chain starting at head and returns its new head.
// Recursion depth is logarithmic in the length of the chain.
func mergeSort[T any](head *node[T], less func(a, b T) bool) *node[T] {
	if head == nil || head.next == nil {
		return head
	}
	middle := middleOf(head)
	half := middle.next
	middle.next = nil
	return merge(mergeSort(head, less), mergeSort(half, less), less)
}

// middleOf returns the last node of the first half of a chain. For chains of
// odd length the first half gets the extra node.
func middleOf[T any](head *node[T]) *node[T] {
	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

// merge joins two sorted chains. On ties the node from left is taken first.
// Backward links are re-established for every node taken; the head of the
// result has no backward link.
func merge[T any](left, right *node[T], less func(a, b T) bool) *node[T] {
	var head, last *node[T]
	for left != nil && right != nil {
		var n *node[T]
		if less(right.value, left.value) {
			n, right = right, right.next
		} else {
			n, left = left, left.next
		}
		n.prev = last
		if last == nil {
			head = n
		} else {
			last.next = n
		}
		last = n
	}
	rest := left
	if rest == nil {
		rest = right
	}
	if rest == nil {
		return head
	}
	rest.prev = last
	if last == nil {
		return rest
	}
	last.next = rest
	return head
}
