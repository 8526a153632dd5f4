package progress

import (
	"time"

	"github.com/ShayCichocki/prodash/unit"
)

// MessageLevel classifies a message pushed through Item.Message.
type MessageLevel int

const (
	// Info is a neutral, informational message.
	Info MessageLevel = iota
	// Success marks a message describing a successful outcome.
	Success
	// Failure marks a message describing a failure.
	Failure
)

// Progress is the façade both the concrete tree.Item and the no-op
// Discard implementation satisfy, letting library code accept progress
// reporting without depending on the tree package directly.
type Progress interface {
	// AddChild creates a new child task under this one and returns a
	// handle to it.
	AddChild(name string) Progress

	// Init sets the unit and, if not nil, the upper bound, resetting Step
	// to 0.
	Init(max *uint64, u unit.Unit)

	// SetStep sets the current progress value directly.
	SetStep(step uint64)
	// Inc increments the current progress value by one.
	Inc()
	// IncBy increments the current progress value by n.
	IncBy(n uint64)

	// SetName changes the task's display label.
	SetName(s string)
	// Name returns the task's current display label.
	Name() string

	// Message appends a message to the shared ring buffer.
	Message(level MessageLevel, content string)

	// Blocked marks the task as blocked, unable to progress without
	// intervention.
	Blocked(reason string, eta *time.Time)
	// Halted marks the task as halted but interruptible.
	Halted(reason string, eta *time.Time)

	// Done marks the task complete with a final message.
	Done(msg string)
	// Fail marks the task failed with a final message.
	Fail(msg string)
}
