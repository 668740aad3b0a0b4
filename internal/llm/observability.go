package llm

import (
	"io"

	"github.com/charmbracelet/log"
)

// LLMCallEvent records metadata about a single generation call.
type LLMCallEvent struct {
	Task      TaskType
	Model     string
	Attempts  int
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives an event after every generation call.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes call events as structured log lines.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "llm",
	})}
}

// NewLoggerObserver logs events through an existing logger.
func NewLoggerObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger.WithPrefix("llm")}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	kv := []any{
		"task", event.Task,
		"model", event.Model,
		"attempts", event.Attempts,
		"latency_ms", event.LatencyMs,
	}
	if event.Success {
		o.logger.Info("llm_call", kv...)
		return
	}
	o.logger.Warn("llm_call", append(kv, "error", event.ErrorCode)...)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
