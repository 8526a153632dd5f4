// Package tree implements the shared, concurrent progress tree: many
// producer goroutines each hold an Item handle identifying their slot,
// mutate it independently, and push messages into a bounded ring; a single
// renderer goroutine periodically takes a sorted snapshot to draw from.
package tree

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ShayCichocki/prodash/internal/shardmap"
	"github.com/ShayCichocki/prodash/key"
	"github.com/ShayCichocki/prodash/progress"
)

// record is the storage representation of a task: its display value plus
// the bookkeeping needed for child-id allocation and done-retention.
type record struct {
	value          progress.Value
	highestChildID atomic.Uint32
}

// Root is the top of a progress tree. It is safe for concurrent use by any
// number of producer goroutines and any number of renderer readers.
type Root struct {
	opts Options

	tree *shardmap.Map[*record]

	highestChildID atomic.Uint32

	messagesMu sync.Mutex
	messages   *ring
	seq        atomic.Uint64
}

// Entry is one row of a sorted snapshot: a task's Key paired with its
// current Value.
type Entry struct {
	Key   key.Key
	Value progress.Value
}

// SortKey satisfies key.Sortable so a snapshot can be passed directly to
// key.ComputeAdjacency.
func (e Entry) SortKey() key.Key { return e.Key }

// NewRoot builds a new, empty tree. NewRoot cannot fail: there is no
// fallible mutation on the producer side.
func NewRoot(opts Options) *Root {
	return &Root{
		opts:     opts,
		tree:     shardmap.New[*record](),
		messages: newRing(opts.messageCapacity()),
	}
}

// AddChild creates a new top-level task named name and returns a handle to
// it. The root's own child-id counter increments on every call regardless
// of later removal.
func (r *Root) AddChild(name string) *Item {
	childID := key.ID(r.highestChildID.Add(1) - 1)
	k := key.New(childID)
	r.tree.Store(k, &record{value: progress.Value{Name: name, State: progress.Running{}}})
	return &Item{key: k, root: r}
}

// SortedSnapshot copies every live task into out, sorted ascending by Key,
// reusing the caller-supplied backing array so steady-state rendering
// allocates nothing beyond what growing the slice once requires.
func (r *Root) SortedSnapshot(out []Entry) []Entry {
	out = out[:0]
	r.tree.Range(func(k key.Key, rec *record) {
		out = append(out, Entry{Key: k, Value: rec.value})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })
	return out
}

// CopyMessages copies every retained message, oldest first, into out.
func (r *Root) CopyMessages(out []Message) []Message {
	r.messagesMu.Lock()
	defer r.messagesMu.Unlock()
	return r.messages.copyAll(out[:0])
}

// CopyNewMessages copies every message with Seq > prevSeq, oldest first,
// into out, and returns the extended slice along with the highest Seq
// observed so the caller can pass it back as prevSeq next time.
func (r *Root) CopyNewMessages(out []Message, prevSeq uint64) (result []Message, lastSeq uint64) {
	r.messagesMu.Lock()
	defer r.messagesMu.Unlock()
	return r.messages.copyNewerThan(out[:0], prevSeq)
}

// MessageBufferUsage reports how many messages are currently retained and
// the ring's total capacity.
func (r *Root) MessageBufferUsage() (used, capacity int) {
	r.messagesMu.Lock()
	defer r.messagesMu.Unlock()
	return r.messages.usage()
}

// NumTasks returns the current number of live task records. Like the
// teacher's sharded structures, this is at best a guess under concurrent
// mutation.
func (r *Root) NumTasks() int {
	return r.tree.Len()
}

func (r *Root) pushMessage(level progress.MessageLevel, origin, content string) {
	r.messagesMu.Lock()
	r.messages.push(Message{
		Time:    time.Now(),
		Level:   level,
		Origin:  origin,
		Content: content,
		Seq:     r.seq.Add(1),
	})
	r.messagesMu.Unlock()
	r.opts.debugLog("[%s] %s: %s", messageLevelName(level), origin, content)
}

func messageLevelName(l progress.MessageLevel) string {
	switch l {
	case progress.Success:
		return "success"
	case progress.Failure:
		return "failure"
	default:
		return "info"
	}
}
