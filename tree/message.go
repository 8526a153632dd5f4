package tree

import (
	"time"

	"github.com/ShayCichocki/prodash/progress"
)

// Message is one entry in the shared ring buffer, carrying the origin
// task's name at the time it was sent.
type Message struct {
	Time    time.Time
	Level   progress.MessageLevel
	Origin  string
	Content string
	Seq     uint64
}

// ring is a bounded circular buffer with push-overwrite-oldest semantics:
// once full, the next push replaces the oldest entry in place rather than
// growing, so a producer pushing messages never blocks and never causes
// unbounded memory growth.
type ring struct {
	buf    []Message
	cursor int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]Message, 0, capacity)}
}

func (r *ring) hasCapacity() bool {
	return len(r.buf) < cap(r.buf)
}

func (r *ring) push(msg Message) {
	if r.hasCapacity() {
		r.buf = append(r.buf, msg)
		return
	}
	r.buf[r.cursor] = msg
	r.cursor = (r.cursor + 1) % len(r.buf)
}

// copyAll appends every retained message, oldest first, to out and returns
// the extended slice.
func (r *ring) copyAll(out []Message) []Message {
	if r.hasCapacity() {
		return append(out, r.buf...)
	}
	out = append(out, r.buf[r.cursor:]...)
	if r.cursor != 0 {
		out = append(out, r.buf[:r.cursor]...)
	}
	return out
}

// copyNewerThan appends every retained message with Seq > prevSeq, oldest
// first, and returns the extended slice along with the highest Seq seen
// (or prevSeq unchanged if nothing qualified).
func (r *ring) copyNewerThan(out []Message, prevSeq uint64) ([]Message, uint64) {
	lastSeq := prevSeq
	all := r.copyAll(nil)
	for _, m := range all {
		if m.Seq > prevSeq {
			out = append(out, m)
			if m.Seq > lastSeq {
				lastSeq = m.Seq
			}
		}
	}
	return out, lastSeq
}

func (r *ring) usage() (used, capacity int) {
	return len(r.buf), cap(r.buf)
}
