// Package obslog provides an injectable structured-event observer in
// place of a global logger: selectors emit structured events (iteration,
// k, delta, accept/reject) through an Observer rather than logging
// directly.
package obslog

// Event is one structured observation emitted during selection.
type Event struct {
	Stage    string // e.g. "iterative", "sa"
	Iter     int
	K        int
	DeltaObj float64
	Accepted bool
	Message  string
}

// Observer receives Events. Implementations must not panic and must not
// block selection for long; a slow sink should buffer or drop internally.
type Observer interface {
	Observe(e Event)
}

// Noop is the default Observer: it discards every event. Selectors default
// to Noop so callers who don't care about observability pay nothing.
type Noop struct{}

func (Noop) Observe(Event) {}

// Recorder is a test-friendly Observer that appends every Event it
// receives, used by selector tests to assert on emitted iteration/accept
// sequences without depending on a real logging backend.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Observe(e Event) {
	r.Events = append(r.Events, e)
}
