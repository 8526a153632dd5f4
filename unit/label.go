package unit

import "fmt"

// Label is a static text unit with no formatting logic beyond the raw
// step/max numbers, mirroring the original's &'static str DisplayValue.
type Label struct {
	Name string
	throughputMode
}

// NewLabel builds a Label unit. Pass WithThroughput to opt into rate display.
func NewLabel(name string, opts ...Option) Label {
	l := Label{Name: name}
	for _, o := range opts {
		o(&l.throughputMode)
	}
	return l
}

func (l Label) Display(step uint64, max *uint64) string {
	if max == nil {
		return fmt.Sprintf("%d %s", step, l.Name)
	}
	return fmt.Sprintf("%d/%d %s", step, *max, l.Name)
}

func (l Label) DisplayPercentage(step, max uint64) string {
	return formatPercentage(step, max)
}

func (l Label) DisplayThroughput(rate float64) string {
	return l.displayThroughput(func(r float64) string {
		return fmt.Sprintf("%.0f %s/s", r, l.Name)
	}, rate)
}

func (l Label) DisplayUnitOnly() string {
	return l.Name
}

var _ Unit = Label{}
