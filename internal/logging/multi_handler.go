package logging

import (
	"context"
	"log/slog"
)

// MultiHandler delivers each record to every leg that wants it. Enabled is
// the union of the legs, so a record is built whenever any leg would accept
// it.
type MultiHandler struct {
	legs []slog.Handler
}

func NewMultiHandler(legs ...slog.Handler) *MultiHandler {
	return &MultiHandler{legs: legs}
}

func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, leg := range m.legs {
		if leg.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle keeps delivering after a leg fails; the first error is reported
// once the rest have seen the record.
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, leg := range m.legs {
		if !leg.Enabled(ctx, record.Level) {
			continue
		}
		if err := leg.Handle(ctx, record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.clone(func(leg slog.Handler) slog.Handler { return leg.WithAttrs(attrs) })
}

func (m *MultiHandler) WithGroup(name string) slog.Handler {
	return m.clone(func(leg slog.Handler) slog.Handler { return leg.WithGroup(name) })
}

func (m *MultiHandler) clone(wrap func(slog.Handler) slog.Handler) slog.Handler {
	legs := make([]slog.Handler, len(m.legs))
	for i, leg := range m.legs {
		legs[i] = wrap(leg)
	}
	return &MultiHandler{legs: legs}
}
