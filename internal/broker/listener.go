package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/embergrid/internal/ctxlog"
)

// StatusEvent is one job status notification from the broker.
type StatusEvent struct {
	Job    string `json:"job"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

// Job statuses the broker publishes. Complete, failed, and error are
// terminal; the rest mark progress.
const (
	StatusSubmitted = "submitted"
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusComplete  = "complete"
	StatusFailed    = "failed"
	StatusError     = "error"
)

// Terminal reports whether a status ends the follow.
func Terminal(status string) bool {
	switch status {
	case StatusComplete, StatusFailed, StatusError:
		return true
	}
	return false
}

// Listener follows jobs on one broker endpoint.
type Listener struct {
	url       string
	namespace string
}

// NewListener builds a listener for the given socket.io endpoint and
// namespace.
func NewListener(url, namespace string) *Listener {
	return &Listener{url: url, namespace: namespace}
}

// Follow subscribes to the status feed for jobID and blocks until a
// terminal status arrives. It returns nil when the job completes and an
// error when it fails or errors. The timeout bounds the wait between
// consecutive events, not the whole follow. Every event for the job is
// handed to onEvent, including the terminal one.
func (l *Listener) Follow(ctx context.Context, jobID string, timeout time.Duration, onEvent func(StatusEvent)) error {
	logger := ctxlog.FromContext(ctx).With("job", jobID, "url", l.url)

	parsedURL, err := url.Parse(l.url)
	if err != nil {
		return fmt.Errorf("failed to parse broker URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(l.namespace, opts)
	defer func() {
		logger.Debug("Disconnecting from broker.")
		io.Disconnect()
	}()

	events := make(chan StatusEvent, 16)
	connErr := make(chan error, 1)

	io.On(types.EventName("connect"), func(...any) {
		logger.Info("📡 Connected to status broker.", "namespace", l.namespace, "sid", io.Id())
		io.Emit("job:follow", map[string]any{"job": jobID})
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		err, ok := errs[0].(error)
		if !ok {
			err = fmt.Errorf("connect_error: %v", errs[0])
		}
		select {
		case connErr <- err:
		default:
		}
	})

	io.On(types.EventName("job:status"), func(data ...any) {
		if len(data) == 0 {
			return
		}
		ev, err := decodeStatus(data[0])
		if err != nil {
			logger.Warn("Dropping malformed status event.", "error", err)
			return
		}
		if ev.Job != jobID {
			return
		}
		select {
		case events <- ev:
		default:
			logger.Warn("Status channel full, dropping event.", "status", ev.Status)
		}
	})

	io.Connect()

	return followEvents(ctx, jobID, timeout, events, connErr, onEvent, logger)
}

// followEvents consumes status events for one job until a terminal status,
// a connection error, cancellation, or an idle timeout ends the follow. The
// idle timer restarts on every event, so the timeout bounds the gap between
// consecutive events rather than the whole follow.
func followEvents(ctx context.Context, jobID string, timeout time.Duration, events <-chan StatusEvent, connErr <-chan error, onEvent func(StatusEvent), logger *slog.Logger) error {
	idle := time.NewTimer(timeout)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("cancelled while following job %s: %w", jobID, ctx.Err())
		case err := <-connErr:
			return fmt.Errorf("broker connection failed: %w", err)
		case <-idle.C:
			return fmt.Errorf("no status event for job %s within %s", jobID, timeout)
		case ev := <-events:
			idle.Reset(timeout)
			if onEvent != nil {
				onEvent(ev)
			}
			if !Terminal(ev.Status) {
				continue
			}
			if ev.Status == StatusComplete {
				logger.Info("🏁 Job complete.")
				return nil
			}
			return fmt.Errorf("job %s ended with status %s: %s", jobID, ev.Status, ev.Detail)
		}
	}
}

// decodeStatus converts a raw socket.io payload into a StatusEvent. The
// library delivers JSON objects as generic maps, so the payload takes a
// round trip through encoding/json.
func decodeStatus(raw any) (StatusEvent, error) {
	buf, err := json.Marshal(raw)
	if err != nil {
		return StatusEvent{}, fmt.Errorf("failed to encode status payload: %w", err)
	}
	var ev StatusEvent
	if err := json.Unmarshal(buf, &ev); err != nil {
		return StatusEvent{}, fmt.Errorf("failed to decode status payload: %w", err)
	}
	if ev.Job == "" || ev.Status == "" {
		return StatusEvent{}, fmt.Errorf("status payload missing job or status")
	}
	return ev, nil
}
