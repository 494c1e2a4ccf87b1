package rcdevice

// MaxPendingRequests is the capacity of a Device's pending-request
// queue. Sends beyond this depth are rejected until earlier requests
// resolve.
const MaxPendingRequests = 5

// requestQueue is a fixed-capacity circular FIFO of in-flight requests.
// Only the head entry ever accumulates reply bytes or expires; later
// entries wait their turn in strict send order.
type requestQueue struct {
	slots [MaxPendingRequests]pendingRequest
	head  int
	tail  int
	count int
}

// push appends an entry at the tail. Returns false when the queue is
// full, in which case the entry is dropped and the queue is unchanged.
func (q *requestQueue) push(r pendingRequest) bool {
	if q.count == MaxPendingRequests {
		return false
	}

	q.slots[q.tail] = r
	q.tail++
	if q.tail == MaxPendingRequests {
		q.tail = 0
	}
	q.count++
	return true
}

// peekFront returns the oldest entry without removing it, or nil when
// the queue is empty. The pointer is valid until the next push or
// popFront; the engine mutates the entry through it.
func (q *requestQueue) peekFront() *pendingRequest {
	if q.count == 0 {
		return nil
	}
	return &q.slots[q.head]
}

// popFront removes the oldest entry. The vacated slot is cleared so it
// stops holding slice and callback references.
func (q *requestQueue) popFront() (pendingRequest, bool) {
	if q.count == 0 {
		return pendingRequest{}, false
	}

	r := q.slots[q.head]
	q.slots[q.head] = pendingRequest{}
	q.head++
	if q.head == MaxPendingRequests {
		q.head = 0
	}
	q.count--
	return r, true
}

// len returns the number of queued entries.
func (q *requestQueue) len() int {
	return q.count
}
