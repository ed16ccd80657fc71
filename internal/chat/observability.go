package chat

import (
	"log/slog"
)

// CallEvent records metadata about a single webhook call.
type CallEvent struct {
	Topic     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about webhook calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a slog.Logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"topic", event.Topic,
		"latency_ms", event.LatencyMs,
		"success", event.Success,
	}
	if !event.Success {
		o.logger.Warn("chat_call", append(attrs, "error_code", event.ErrorCode)...)
		return
	}
	o.logger.Info("chat_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
