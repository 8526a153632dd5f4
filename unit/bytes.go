package unit

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Bytes formats step/max as IEC byte sizes via go-humanize, e.g. "1.0 MiB".
type Bytes struct {
	throughputMode
}

// NewBytes builds a Bytes unit. Pass WithThroughput to opt into rate display.
func NewBytes(opts ...Option) Bytes {
	b := Bytes{}
	for _, o := range opts {
		o(&b.throughputMode)
	}
	return b
}

func (b Bytes) Display(step uint64, max *uint64) string {
	if max == nil {
		return humanize.IBytes(step)
	}
	return fmt.Sprintf("%s/%s", humanize.IBytes(step), humanize.IBytes(*max))
}

func (b Bytes) DisplayPercentage(step, max uint64) string {
	return formatPercentage(step, max)
}

func (b Bytes) DisplayThroughput(rate float64) string {
	return b.displayThroughput(func(r float64) string {
		return fmt.Sprintf("%s/s", humanize.IBytes(uint64(r)))
	}, rate)
}

func (b Bytes) DisplayUnitOnly() string {
	return "B"
}

var _ Unit = Bytes{}
