// Package ring
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity FIFO ring buffer over preallocated storage.
//
// One slot is always kept free as a sentinel: head == tail means empty,
// advance(head) == tail means full, so a buffer of capacity C stores at
// most C-1 items without a separate counter. Power-of-two capacities wrap
// with a bitmask, all others with modulo; both give identical results.
//
// Two behaviours are fixed at construction:
//
//   - WithThreadSafe: head and tail are published through sync/atomic, which
//     makes the buffer safe for exactly one producer goroutine (Push) and one
//     consumer goroutine (Pop, Peek, Iterator). It is not a lock; two
//     producers or two consumers race.
//   - WithOverwrite: Push on a full buffer discards the oldest item instead
//     of returning api.ErrBufferFull. Overwriting moves the consumer's index
//     from the producer side, so it cannot be combined with WithThreadSafe.
package ring
