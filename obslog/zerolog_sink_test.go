package obslog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologSinkEmitsStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	sink := NewZerologSink(logger)
	sink.Observe(Event{Stage: "sa", Iter: 3, K: 5, DeltaObj: 0.25, Accepted: true, Message: "accepted"})

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v, log: %s", err, buf.String())
	}
	if got["stage"] != "sa" || got["message"] != "accepted" {
		t.Fatalf("logged fields = %v, want stage=sa message=accepted", got)
	}
	if got["k"].(float64) != 5 {
		t.Fatalf("logged k = %v, want 5", got["k"])
	}
}
