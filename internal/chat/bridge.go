// Package chat forwards learner questions to an external webhook and turns
// every failure into a fixed fallback reply.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTopic is sent when the caller has no topic selected.
	DefaultTopic = "Tailwind CSS"

	// FallbackReply is returned in place of any failed call.
	FallbackReply = "Sorry, I encountered an error. Please try again later."

	maxReplyBytes = 1 << 20
)

// Asker is the chat capability consumed by the CLI and HTTP surfaces.
type Asker interface {
	Ask(ctx context.Context, message, topic string) string
}

// Bridge posts {message, topic} to the webhook and returns the reply text.
type Bridge struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// askRequest is the JSON body sent to the webhook.
type askRequest struct {
	Message string `json:"message"`
	Topic   string `json:"topic"`
}

// NewBridge creates a Bridge. observer may be nil.
func NewBridge(cfg Config, observer Observer) *Bridge {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Bridge{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// Ask sends message about topic and returns the reply. It never fails:
// transport errors, timeouts and non-2xx statuses yield FallbackReply.
// An empty message returns "" without a call.
func (b *Bridge) Ask(ctx context.Context, message, topic string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return ""
	}
	if strings.TrimSpace(topic) == "" {
		topic = DefaultTopic
	}

	start := time.Now()
	reply, err := b.post(ctx, askRequest{Message: message, Topic: topic})
	event := CallEvent{Topic: topic, LatencyMs: time.Since(start).Milliseconds(), Success: err == nil}
	if err != nil {
		event.ErrorCode = errorCode(err)
		b.observer.OnCallComplete(event)
		return FallbackReply
	}
	b.observer.OnCallComplete(event)

	if !b.cfg.Raw {
		reply = Sanitize(reply)
	}
	return strings.TrimSpace(reply)
}

func (b *Bridge) post(ctx context.Context, body askRequest) (string, error) {
	if b.cfg.Endpoint == "" {
		return "", ErrNoEndpoint
	}
	if b.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(b.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	data, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.http.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}
	return string(respBody), nil
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoEndpoint):
		return "NO_ENDPOINT"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	default:
		return "UNKNOWN"
	}
}
