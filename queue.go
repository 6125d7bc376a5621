package linkedqueue

import "errors"

var (
	// ErrNilQueue is returned when an operation is called on a nil
	// *Queue.
	ErrNilQueue = errors.New("linkedqueue: nil queue")

	// ErrEmpty is returned when an operation needs a front element
	// and the queue has none.
	ErrEmpty = errors.New("linkedqueue: queue is empty")

	// ErrFreed is returned by every operation other than Init once
	// the queue has been freed.
	ErrFreed = errors.New("linkedqueue: use of freed queue")

	// ErrAllocFailed is returned when a new node could not be
	// allocated. The queue is left unchanged.
	ErrAllocFailed = errors.New("linkedqueue: node allocation failed")
)

type node[T any] struct {
	val  T
	next *node[T]
}

// A Queue is an unbounded FIFO queue of values of type T. The zero
// value of a Queue is an empty queue ready to use.
//
// The Queue owns its entire node chain through a head pointer and
// keeps a tail pointer and element count alongside it, so Append,
// Prepend, Pop, and Advance all run in constant time without walking
// the chain.
//
// A Queue must not be copied after first use: a copy would share the
// node chain with the original while tracking its own tail and
// length, and the two would silently diverge. It is also not safe for
// concurrent use; callers that share a Queue across goroutines must
// provide their own synchronization, typically a single mutex
// guarding the whole handle.
type Queue[T any] struct {
	noCopy noCopy

	head   *node[T]
	tail   *node[T]
	length int
	freed  bool

	// alloc, when non-nil, replaces plain node allocation. It exists
	// so tests can make allocation fail and assert that mutating
	// operations leave the queue untouched on failure.
	alloc func(v T) (*node[T], error)
}

func (q *Queue[T]) newNode(v T) (*node[T], error) {
	if q.alloc != nil {
		return q.alloc(v)
	}
	return &node[T]{val: v}, nil
}

// guard is the common precondition of every mutating or reading
// operation: a non-nil handle that has not been freed.
func (q *Queue[T]) guard() error {
	if q == nil {
		return ErrNilQueue
	}
	if q.freed {
		return ErrFreed
	}
	return nil
}

// release severs the chain link by link so that no node keeps a
// payload reachable once the walk is done.
func (q *Queue[T]) release() {
	for n := q.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	q.head = nil
	q.tail = nil
	q.length = 0
}

// Init resets the queue to an initialized, empty state, releasing any
// nodes it currently holds. It may be called on a zero queue, a queue
// in use, or a freed queue; it is the only operation that brings a
// freed queue back into service. Init on a nil *Queue is a no-op.
func (q *Queue[T]) Init() {
	if q == nil {
		return
	}
	q.release()
	q.freed = false
}

// Len returns the number of elements in the queue. A nil or freed
// queue has length zero.
func (q *Queue[T]) Len() int {
	if q == nil || q.freed {
		return 0
	}
	return q.length
}

// Append enqueues v at the tail of the queue in constant time.
//
// If the queue is nil, freed, or a node cannot be allocated, Append
// returns ErrNilQueue, ErrFreed, or ErrAllocFailed respectively and
// the queue is left exactly as it was.
func (q *Queue[T]) Append(v T) error {
	if err := q.guard(); err != nil {
		return err
	}

	n, err := q.newNode(v)
	if err != nil {
		return ErrAllocFailed
	}

	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.length++
	return nil
}

// Prepend inserts v in front of the current head, making it the new
// front of the queue. It has the same constant-time bound and the
// same failure contract as Append.
func (q *Queue[T]) Prepend(v T) error {
	if err := q.guard(); err != nil {
		return err
	}

	n, err := q.newNode(v)
	if err != nil {
		return ErrAllocFailed
	}

	n.next = q.head
	q.head = n
	if q.tail == nil {
		q.tail = n
	}
	q.length++
	return nil
}

// Peek returns the front element without removing it. It returns
// ErrEmpty if the queue has no elements.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if err := q.guard(); err != nil {
		return zero, err
	}
	if q.head == nil {
		return zero, ErrEmpty
	}
	return q.head.val, nil
}

// Pop removes the front element and returns it. It returns ErrEmpty
// if the queue has no elements; reaching the end of the queue is a
// reported condition, never a silent no-op.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	if err := q.guard(); err != nil {
		return zero, err
	}
	if q.head == nil {
		return zero, ErrEmpty
	}

	n := q.head
	q.head = n.next
	n.next = nil
	if q.head == nil {
		q.tail = nil
	}
	q.length--
	return n.val, nil
}

// Advance removes the front element and discards its value. Callers
// that want the displaced value should use Pop instead. The failure
// contract is the same as Pop's.
func (q *Queue[T]) Advance() error {
	_, err := q.Pop()
	return err
}

// Free releases every node in the queue and marks the queue freed.
// After Free, every operation other than Init returns ErrFreed. Free
// is safe on an empty queue, idempotent on a freed one, and a no-op
// on a nil *Queue.
//
// Free releases only the nodes. Payloads are not touched beyond
// becoming unreachable; a payload that owns external resources must
// be drained and released by the caller first.
func (q *Queue[T]) Free() {
	if q == nil {
		return
	}
	q.release()
	q.freed = true
}
