package alert

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Alerter raises a user-facing message. It never fails.
type Alerter interface {
	Alert(ctx context.Context, message string)
}

type Alert struct {
	Message   string    `json:"message"`
	RaisedAt  time.Time `json:"raised_at"`
	RequestID string    `json:"request_id,omitempty"`
}

type requestIDKey struct{}

// WithRequestID attaches the request id so alerts can be matched to the call
// that raised them.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Center logs every alert and keeps the most recent ones for display.
type Center struct {
	mu     sync.Mutex
	logger *zap.Logger
	recent []Alert
	limit  int
	now    func() time.Time
}

func NewCenter(logger *zap.Logger, limit int) *Center {
	if limit <= 0 {
		limit = 50
	}
	return &Center{logger: logger, limit: limit, now: time.Now}
}

func (c *Center) Alert(ctx context.Context, message string) {
	a := Alert{Message: message, RaisedAt: c.now(), RequestID: requestID(ctx)}

	c.logger.Warn("user alert", zap.String("message", message), zap.String("request_id", a.RequestID))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recent = append(c.recent, a)
	if len(c.recent) > c.limit {
		c.recent = c.recent[len(c.recent)-c.limit:]
	}
}

// Recent returns the retained alerts, newest first.
func (c *Center) Recent() []Alert {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Alert, len(c.recent))
	for i, a := range c.recent {
		out[len(c.recent)-1-i] = a
	}
	return out
}

// ForRequest returns the retained alerts raised under the given request id.
func (c *Center) ForRequest(id string) []Alert {
	if id == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Alert
	for _, a := range c.recent {
		if a.RequestID == id {
			out = append(out, a)
		}
	}
	return out
}

var _ Alerter = (*Center)(nil)
