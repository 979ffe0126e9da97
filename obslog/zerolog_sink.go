package obslog

import "github.com/rs/zerolog"

// ZerologSink adapts an Observer onto a zerolog.Logger: structured
// key-value fields, no format-string logging, one log call per event.
type ZerologSink struct {
	Logger zerolog.Logger
}

// NewZerologSink builds an Observer backed by logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{Logger: logger}
}

func (z *ZerologSink) Observe(e Event) {
	z.Logger.Debug().
		Str("stage", e.Stage).
		Int("iter", e.Iter).
		Int("k", e.K).
		Float64("delta_obj", e.DeltaObj).
		Bool("accepted", e.Accepted).
		Msg(e.Message)
}
