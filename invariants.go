package sequence

import "fmt"

// Check validates the structural invariants of seq:
//
//   - head and tail are both nil iff seq is empty,
//   - the head has no backward link, the tail no forward link,
//   - for every node n with a successor, n.next.prev == n,
//   - the length equals the number of nodes reachable from the head.
//
// Check is meant for tests and debugging.
func (seq *Sequence[T]) Check() error {
	if seq == nil {
		return fmt.Errorf("%w: nil sequence", ErrIllegalArguments)
	}
	if seq.head == nil || seq.tail == nil {
		if seq.head != seq.tail {
			return fmt.Errorf("%w: only one of head and tail is set", ErrCorrupted)
		}
		if seq.size != 0 {
			return fmt.Errorf("%w: empty chain with length %d", ErrCorrupted, seq.size)
		}
		return nil
	}
	if seq.head.prev != nil {
		return fmt.Errorf("%w: head has a backward link", ErrCorrupted)
	}
	var prev *node[T]
	count := 0
	for n := seq.head; n != nil; n = n.next {
		if n.prev != prev {
			return fmt.Errorf("%w: backward link mismatch at position %d", ErrCorrupted, count)
		}
		prev = n
		count++
		if count > seq.size {
			return fmt.Errorf("%w: chain exceeds length %d", ErrCorrupted, seq.size)
		}
	}
	if prev != seq.tail {
		return fmt.Errorf("%w: tail is not the last node of the chain", ErrCorrupted)
	}
	if count != seq.size {
		return fmt.Errorf("%w: length is %d, chain has %d nodes", ErrCorrupted, seq.size, count)
	}
	return nil
}
