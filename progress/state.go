package progress

import "time"

// State indicates whether a task can currently make progress.
type State interface {
	isState()
}

// Running is the default state: the task is actively making progress.
type Running struct{}

func (Running) isState() {}

// Blocked indicates a task cannot currently make progress and cannot easily
// be interrupted, optionally until ETA.
type Blocked struct {
	Reason string
	ETA    *time.Time
}

func (Blocked) isState() {}

// Halted indicates a task cannot currently make progress but can be
// interrupted, optionally until ETA.
type Halted struct {
	Reason string
	ETA    *time.Time
}

func (Halted) isState() {}
