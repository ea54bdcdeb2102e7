package event

import (
	"sync/atomic"

	"github.com/lixenwraith/driftfield/parameter"
)

// Queue is a lock-free MPSC ring buffer of host signals
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Drain: Single consumer (frame callback)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest signals overwritten when full; later resize/pointer signals supersede them
type Queue struct {
	events    [parameter.EventQueueSize]Event
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds a signal using lock-free CAS with published flags pattern
func (q *Queue) Push(ev Event) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread signals
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Drain appends all pending signals to dst in FIFO order and advances head
// Reusing dst across frames keeps the frame path allocation-free
func (q *Queue) Drain(dst []Event) []Event {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return dst
		}

		available := currentTail - currentHead
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		base := len(dst)
		for i := uint64(0); i < available; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			dst = append(dst, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(dst)-base)
		if q.head.CompareAndSwap(currentHead, newHead) {
			return dst
		}
		dst = dst[:base]
	}
}

// Len returns approximate pending signal count
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}
