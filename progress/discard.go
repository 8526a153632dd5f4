package progress

import (
	"time"

	"github.com/ShayCichocki/prodash/unit"
)

// Discard is a zero-size Progress that drops every call. AddChild returns
// itself, so a whole subtree rooted at Discard costs nothing.
type Discard struct{}

func (Discard) AddChild(name string) Progress                  { return Discard{} }
func (Discard) Init(max *uint64, u unit.Unit)                   {}
func (Discard) SetStep(step uint64)                             {}
func (Discard) Inc()                                            {}
func (Discard) IncBy(n uint64)                                  {}
func (Discard) SetName(s string)                                {}
func (Discard) Name() string                                    { return "" }
func (Discard) Message(level MessageLevel, content string)      {}
func (Discard) Blocked(reason string, eta *time.Time)           {}
func (Discard) Halted(reason string, eta *time.Time)            {}
func (Discard) Done(msg string)                                 {}
func (Discard) Fail(msg string)                                 {}

var _ Progress = Discard{}

// DoOrDiscard wraps an optional delegate: when Inner is nil, every call is
// a no-op exactly like Discard; when set, every call is forwarded.
type DoOrDiscard struct {
	Inner Progress
}

// WrapOption builds a DoOrDiscard from a possibly-nil Progress, matching
// the spec's DoOrDiscard(Option<P>) constructor.
func WrapOption(p Progress) DoOrDiscard {
	return DoOrDiscard{Inner: p}
}

func (d DoOrDiscard) AddChild(name string) Progress {
	if d.Inner == nil {
		return Discard{}
	}
	return d.Inner.AddChild(name)
}

func (d DoOrDiscard) Init(max *uint64, u unit.Unit) {
	if d.Inner != nil {
		d.Inner.Init(max, u)
	}
}

func (d DoOrDiscard) SetStep(step uint64) {
	if d.Inner != nil {
		d.Inner.SetStep(step)
	}
}

func (d DoOrDiscard) Inc() {
	if d.Inner != nil {
		d.Inner.Inc()
	}
}

func (d DoOrDiscard) IncBy(n uint64) {
	if d.Inner != nil {
		d.Inner.IncBy(n)
	}
}

func (d DoOrDiscard) SetName(s string) {
	if d.Inner != nil {
		d.Inner.SetName(s)
	}
}

func (d DoOrDiscard) Name() string {
	if d.Inner == nil {
		return ""
	}
	return d.Inner.Name()
}

func (d DoOrDiscard) Message(level MessageLevel, content string) {
	if d.Inner != nil {
		d.Inner.Message(level, content)
	}
}

func (d DoOrDiscard) Blocked(reason string, eta *time.Time) {
	if d.Inner != nil {
		d.Inner.Blocked(reason, eta)
	}
}

func (d DoOrDiscard) Halted(reason string, eta *time.Time) {
	if d.Inner != nil {
		d.Inner.Halted(reason, eta)
	}
}

func (d DoOrDiscard) Done(msg string) {
	if d.Inner != nil {
		d.Inner.Done(msg)
	}
}

func (d DoOrDiscard) Fail(msg string) {
	if d.Inner != nil {
		d.Inner.Fail(msg)
	}
}

var _ Progress = DoOrDiscard{}
