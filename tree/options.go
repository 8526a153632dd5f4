package tree

import "time"

// defaultMessageCapacity mirrors the original's ring buffer sizing: enough
// to show a handful of recent lines without unbounded growth.
const defaultMessageCapacity = 200

// defaultRetainDoneFor is how long a completed task's record survives
// after Done/Fail before SortedSnapshot/NumTasks stop reporting it,
// giving the TUI renderer time to fade the row out.
const defaultRetainDoneFor = time.Second

// Options configures a Root at construction time.
type Options struct {
	// MessageBufferCapacity bounds the message ring; 0 uses the default.
	MessageBufferCapacity int

	// RetainDoneFor controls how long a Done/Fail'd task's record is kept
	// around before it is eligible for removal; 0 uses the default of 1s.
	RetainDoneFor time.Duration

	// RemoveChildrenOnClose, when true, makes Item.Close recursively
	// remove every descendant record along with the closed item's own.
	RemoveChildrenOnClose bool

	// DebugLog, if set, mirrors every Item.Message call to it, folding
	// severity into the format string. Left nil by default, matching the
	// original's opt-in logging.
	DebugLog func(format string, args ...interface{})
}

func (o Options) messageCapacity() int {
	if o.MessageBufferCapacity > 0 {
		return o.MessageBufferCapacity
	}
	return defaultMessageCapacity
}

func (o Options) retainDoneFor() time.Duration {
	if o.RetainDoneFor > 0 {
		return o.RetainDoneFor
	}
	return defaultRetainDoneFor
}

func (o Options) debugLog(format string, args ...interface{}) {
	if o.DebugLog != nil {
		o.DebugLog(format, args...)
	}
}
