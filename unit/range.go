package unit

import "fmt"

// Range formats step/max as a 1-based "N of M <name>" display, matching
// the original's Range unit.
type Range struct {
	Name string
	throughputMode
}

// NewRange builds a Range unit. Pass WithThroughput to opt into rate display.
func NewRange(name string, opts ...Option) Range {
	r := Range{Name: name}
	for _, o := range opts {
		o(&r.throughputMode)
	}
	return r
}

func (r Range) Display(step uint64, max *uint64) string {
	if max == nil {
		return fmt.Sprintf("%d %s", step+1, r.Name)
	}
	return fmt.Sprintf("%d of %d %s", step+1, *max, r.Name)
}

func (r Range) DisplayPercentage(step, max uint64) string {
	return formatPercentage(step, max)
}

func (r Range) DisplayThroughput(rate float64) string {
	return r.displayThroughput(func(rt float64) string {
		return fmt.Sprintf("%.0f %s/s", rt, r.Name)
	}, rate)
}

func (r Range) DisplayUnitOnly() string {
	return r.Name
}

var _ Unit = Range{}
