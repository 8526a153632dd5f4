package unit

import (
	"fmt"
	"time"
)

// Duration formats step/max as a time.Duration (counted in seconds),
// using Go's own (time.Duration).String() rendering.
type Duration struct {
	throughputMode
}

// NewDuration builds a Duration unit. Pass WithThroughput to opt into rate
// display.
func NewDuration(opts ...Option) Duration {
	d := Duration{}
	for _, o := range opts {
		o(&d.throughputMode)
	}
	return d
}

func (d Duration) asDuration(step uint64) time.Duration {
	return (time.Duration(step) * time.Second).Round(time.Second)
}

func (d Duration) Display(step uint64, max *uint64) string {
	if max == nil {
		return d.asDuration(step).String()
	}
	return fmt.Sprintf("%s/%s", d.asDuration(step), d.asDuration(*max))
}

func (d Duration) DisplayPercentage(step, max uint64) string {
	return formatPercentage(step, max)
}

func (d Duration) DisplayThroughput(rate float64) string {
	return d.displayThroughput(func(r float64) string {
		return fmt.Sprintf("%s/s", (time.Duration(r) * time.Second).Round(time.Second))
	}, rate)
}

func (d Duration) DisplayUnitOnly() string {
	return "s"
}

var _ Unit = Duration{}
