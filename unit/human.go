package unit

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Human formats step/max as comma-grouped counts, e.g. "1,234 files".
type Human struct {
	Name string
	throughputMode
}

// NewHuman builds a Human unit. Pass WithThroughput to opt into rate display.
func NewHuman(name string, opts ...Option) Human {
	h := Human{Name: name}
	for _, o := range opts {
		o(&h.throughputMode)
	}
	return h
}

func (h Human) Display(step uint64, max *uint64) string {
	if max == nil {
		return fmt.Sprintf("%s %s", humanize.Comma(int64(step)), h.Name)
	}
	return fmt.Sprintf("%s/%s %s", humanize.Comma(int64(step)), humanize.Comma(int64(*max)), h.Name)
}

func (h Human) DisplayPercentage(step, max uint64) string {
	return formatPercentage(step, max)
}

func (h Human) DisplayThroughput(rate float64) string {
	return h.displayThroughput(func(r float64) string {
		return fmt.Sprintf("%s %s/s", humanize.Comma(int64(r)), h.Name)
	}, rate)
}

func (h Human) DisplayUnitOnly() string {
	return h.Name
}

var _ Unit = Human{}
