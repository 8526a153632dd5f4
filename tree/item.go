package tree

import (
	"time"

	"github.com/ShayCichocki/prodash/key"
	"github.com/ShayCichocki/prodash/progress"
	"github.com/ShayCichocki/prodash/unit"
)

// Item is a handle to one task's slot in the tree. It is not safe for
// concurrent use by multiple goroutines: a task is owned by exactly one
// producer, which is free to mutate it without further synchronization on
// its own side (the tree itself still guards the underlying storage).
type Item struct {
	key  key.Key
	root *Root
}

// Key returns the Item's identifying Key.
func (i *Item) Key() key.Key { return i.key }

func (i *Item) mutate(f func(v *progress.Value)) {
	i.root.tree.Mutate(i.key, func(rec *record) *record {
		f(&rec.value)
		return rec
	})
}

// Init sets the unit and upper bound (nil for unbounded), resetting Step
// to 0. Calling Init again changes the bounded-ness and unit at will.
func (i *Item) Init(max *uint64, u unit.Unit) {
	i.mutate(func(v *progress.Value) {
		v.Step = 0
		v.Max = max
		v.Unit = u
		v.State = progress.Running{}
	})
}

// SetStep sets the current progress value directly and clears any
// Blocked/Halted state, matching the original's "set resumes running".
func (i *Item) SetStep(step uint64) {
	i.mutate(func(v *progress.Value) {
		v.Step = step
		v.State = progress.Running{}
	})
}

// Inc increments Step by one.
func (i *Item) Inc() { i.IncBy(1) }

// IncBy increments Step by n.
func (i *Item) IncBy(n uint64) {
	i.mutate(func(v *progress.Value) {
		v.Step += n
		v.State = progress.Running{}
	})
}

// SetName changes the task's display label.
func (i *Item) SetName(s string) {
	i.mutate(func(v *progress.Value) { v.Name = s })
}

// Name returns the task's current display label, or "" if the record is
// gone.
func (i *Item) Name() string {
	rec, ok := i.root.tree.Load(i.key)
	if !ok {
		return ""
	}
	return rec.value.Name
}

// Message appends a message to the shared ring buffer, tagged with this
// task's current name.
func (i *Item) Message(level progress.MessageLevel, content string) {
	i.root.pushMessage(level, i.Name(), content)
}

// Info appends an Info-level message.
func (i *Item) Info(content string) { i.Message(progress.Info, content) }

// Blocked marks the task blocked, unable to progress without intervention,
// until the next SetStep/Inc/IncBy call.
func (i *Item) Blocked(reason string, eta *time.Time) {
	i.mutate(func(v *progress.Value) { v.State = progress.Blocked{Reason: reason, ETA: eta} })
}

// Halted marks the task halted but interruptible, until the next
// SetStep/Inc/IncBy call.
func (i *Item) Halted(reason string, eta *time.Time) {
	i.mutate(func(v *progress.Value) { v.State = progress.Halted{Reason: reason, ETA: eta} })
}

// Done marks the task complete, pushes a Success message, and schedules
// the record for removal after Options.RetainDoneFor so a TUI renderer has
// a chance to fade the row out.
func (i *Item) Done(msg string) {
	now := time.Now()
	i.mutate(func(v *progress.Value) { v.DoneAt = &now })
	i.Message(progress.Success, msg)
	i.scheduleReap()
}

// Fail marks the task failed, pushes a Failure message, and schedules the
// record for removal after Options.RetainDoneFor.
func (i *Item) Fail(msg string) {
	now := time.Now()
	i.mutate(func(v *progress.Value) { v.DoneAt = &now })
	i.Message(progress.Failure, msg)
	i.scheduleReap()
}

func (i *Item) scheduleReap() {
	time.AfterFunc(i.root.opts.retainDoneFor(), func() {
		i.root.tree.Delete(i.key)
	})
}

// AddChild creates a new child task under this one and returns a handle to
// it. The depth of the hierarchy is limited to key.MaxDepth: exceeding it
// places the new child at this item's own level instead, per Key.AddChild.
func (i *Item) AddChild(name string) *Item {
	rec, ok := i.root.tree.Load(i.key)
	childID := key.ID(0)
	if ok {
		childID = key.ID(rec.highestChildID.Add(1) - 1)
	}
	childKey := i.key.AddChild(childID)
	i.root.tree.Store(childKey, &record{value: progress.Value{Name: name, State: progress.Running{}}})
	return &Item{key: childKey, root: i.root}
}

// Close removes this item's record, mirroring the original's Drop
// implementation. If Options.RemoveChildrenOnClose is set, every
// descendant record is removed too.
func (i *Item) Close() {
	i.root.tree.Delete(i.key)
	if i.root.opts.RemoveChildrenOnClose {
		i.root.tree.DeleteMatching(func(k key.Key, _ *record) bool {
			return k.SharesParentWith(i.key, i.key.Depth()) && k.Depth() > i.key.Depth()
		})
	}
}

var _ progress.Progress = (*itemFacade)(nil)

// itemFacade adapts *Item to progress.Progress: AddChild must return a
// progress.Progress, not a *Item, so the concrete method and the
// interface method can't share one signature directly.
type itemFacade struct{ *Item }

func (f itemFacade) AddChild(name string) progress.Progress {
	return itemFacade{f.Item.AddChild(name)}
}

// AsProgress wraps i so it satisfies progress.Progress.
func (i *Item) AsProgress() progress.Progress { return itemFacade{i} }
