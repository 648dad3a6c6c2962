package status

import (
	"github.com/lixenwraith/rgbconv/rgb"
)

// Outcome keys recorded by Registry.Record
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid" // failure that is not an rgb.ConversionError
)

// Registry is the conversion metrics facade
type Registry struct {
	Outcomes *Tally
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Outcomes: NewTally(),
	}
}

// Record tallies one conversion result by its error kind
func (r *Registry) Record(err error) {
	r.Outcomes.Inc(OutcomeKey(err))
}

// OutcomeKey names the tally bucket for a conversion result
func OutcomeKey(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if kind, ok := rgb.KindOf(err); ok {
		return kind.String()
	}
	return OutcomeInvalid
}

// Failures returns the number of recorded non-ok outcomes
func (r *Registry) Failures() int64 {
	var n int64
	for _, e := range r.Outcomes.Snapshot() {
		if e.Key != OutcomeOK {
			n += e.Value
		}
	}
	return n
}
