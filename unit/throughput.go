package unit

import (
	"time"

	"github.com/ShayCichocki/prodash/key"
)

const onceASecond = time.Second

// sample is one observed (elapsed, delta) pair contributing to a key's
// rolling one-second window.
type sample struct {
	elapsed time.Duration
	delta   uint64
}

type throughputState struct {
	lastValue uint64
	samples   []sample
	rate      float64
	hasRate   bool
}

func newThroughputState(value uint64, elapsed time.Duration) *throughputState {
	return &throughputState{
		lastValue: value,
		samples:   []sample{{elapsed, value}},
	}
}

// recompute sums elapsed/delta over the window, dropping samples from the
// front once the summed elapsed time exceeds one second, then sets rate to
// the per-second extrapolation of what remains.
func (s *throughputState) recompute() {
	var observed time.Duration
	for _, sm := range s.samples {
		observed += sm.elapsed
	}
	for len(s.samples) > 0 && observed > onceASecond {
		candidate := s.samples[0].elapsed
		if observed-candidate <= onceASecond {
			break
		}
		observed -= candidate
		s.samples = s.samples[1:]
	}
	var delta uint64
	for _, sm := range s.samples {
		delta += sm.delta
	}
	if observed <= 0 {
		return
	}
	s.rate = float64(delta) / observed.Seconds() * onceASecond.Seconds()
	s.hasRate = true
}

func (s *throughputState) update(value uint64, elapsed time.Duration) {
	delta := uint64(0)
	if value > s.lastValue {
		delta = value - s.lastValue
	}
	s.lastValue = value
	s.samples = append(s.samples, sample{elapsed, delta})
	s.recompute()
}

// Throughput tracks, per key.Key, a rolling one-second window of step
// deltas and reports the extrapolated per-second rate. Samples are fed by
// a renderer's tick loop via Update, never by producers directly.
type Throughput struct {
	byKey map[key.Key]*throughputState
}

// NewThroughput returns an empty tracker.
func NewThroughput() *Throughput {
	return &Throughput{byKey: make(map[key.Key]*throughputState)}
}

// Update records a new step observation for k, elapsed time.Duration after
// the previous tick, and returns the current rate and whether one has been
// computed yet (a key needs at least one prior sample).
func (t *Throughput) Update(k key.Key, step uint64, elapsed time.Duration) (rate float64, ok bool) {
	st, exists := t.byKey[k]
	if !exists {
		t.byKey[k] = newThroughputState(step, elapsed)
		return 0, false
	}
	st.update(step, elapsed)
	return st.rate, st.hasRate
}

// Reconcile drops tracked keys that no longer appear in sorted, mirroring
// the original's GC step run once per tick after a snapshot is taken.
func (t *Throughput) Reconcile(sorted []key.Key) {
	present := make(map[key.Key]struct{}, len(sorted))
	for _, k := range sorted {
		present[k] = struct{}{}
	}
	for k := range t.byKey {
		if _, ok := present[k]; !ok {
			delete(t.byKey, k)
		}
	}
}
