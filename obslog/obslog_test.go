package obslog

import "testing"

func TestNoopDiscards(t *testing.T) {
	var o Observer = Noop{}
	o.Observe(Event{Stage: "sa", Iter: 1})
	// Noop carries no state to assert on; this exercises the call path
	// without panicking.
}

func TestRecorderAppends(t *testing.T) {
	r := &Recorder{}
	r.Observe(Event{Stage: "iterative", K: 5})
	r.Observe(Event{Stage: "iterative", K: 10})

	if len(r.Events) != 2 {
		t.Fatalf("Recorder.Events has %d entries, want 2", len(r.Events))
	}
	if r.Events[0].K != 5 || r.Events[1].K != 10 {
		t.Fatalf("Recorder.Events = %v, want K=5 then K=10", r.Events)
	}
}
