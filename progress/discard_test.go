package progress

import (
	"time"

	"github.com/ShayCichocki/prodash/unit"
)

// recordingProgress is a minimal Progress test double used to verify that
// DoOrDiscard forwards every call to its inner delegate.
type recordingProgress struct {
	name     string
	incCalls int
}

func (r *recordingProgress) AddChild(name string) Progress             { return &recordingProgress{} }
func (r *recordingProgress) Init(max *uint64, u unit.Unit)             {}
func (r *recordingProgress) SetStep(step uint64)                       {}
func (r *recordingProgress) Inc()                                      { r.incCalls++ }
func (r *recordingProgress) IncBy(n uint64)                            {}
func (r *recordingProgress) SetName(s string)                          { r.name = s }
func (r *recordingProgress) Name() string                              { return r.name }
func (r *recordingProgress) Message(level MessageLevel, content string) {}
func (r *recordingProgress) Blocked(reason string, eta *time.Time)     {}
func (r *recordingProgress) Halted(reason string, eta *time.Time)      {}
func (r *recordingProgress) Done(msg string)                           {}
func (r *recordingProgress) Fail(msg string)                           {}

var _ Progress = &recordingProgress{}
