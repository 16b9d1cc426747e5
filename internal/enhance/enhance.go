// Package enhance rewrites a builder bio draft with a language model.
package enhance

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrNoKey is returned when no API key is configured.
var ErrNoKey = errors.New("gemini api key not configured")

// Request is the draft handed to an Enhancer.
type Request struct {
	Bio    string
	Role   string
	Skills []string
}

// Enhancer turns a draft bio into a polished one.
type Enhancer interface {
	Enhance(ctx context.Context, req Request) (string, error)
}

// Noop returns the draft unchanged.
type Noop struct{}

func (Noop) Enhance(_ context.Context, req Request) (string, error) {
	return req.Bio, nil
}

// Fallback never fails: when the wrapped enhancer errors or returns nothing,
// the original draft comes back and the failure is logged.
type Fallback struct {
	Next   Enhancer
	Logger *zap.Logger
}

// NewFallback wraps next. A nil logger discards output.
func NewFallback(next Enhancer, logger *zap.Logger) *Fallback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fallback{Next: next, Logger: logger}
}

func (f *Fallback) Enhance(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Bio) == "" && strings.TrimSpace(req.Role) == "" {
		return req.Bio, nil
	}
	if f.Next == nil {
		return req.Bio, nil
	}
	out, err := f.Next.Enhance(ctx, req)
	if err != nil {
		f.Logger.Warn("bio enhancement failed, keeping draft", zap.Error(err))
		return req.Bio, nil
	}
	out = strings.TrimSpace(out)
	if out == "" {
		f.Logger.Warn("bio enhancement returned empty text, keeping draft")
		return req.Bio, nil
	}
	f.Logger.Debug("bio enhanced", zap.Int("before", len(req.Bio)), zap.Int("after", len(out)))
	return out, nil
}
