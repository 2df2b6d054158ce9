package generation

import (
	"context"
	"errors"

	"github.com/jonathan/veteran-resume-builder/internal/types"
)

// Fallback wraps a primary backend and recovers from *UnavailableError by
// delegating to a secondary backend. Any other error propagates unchanged.
type Fallback struct {
	primary   Generator
	secondary Generator
	// OnFallback, when set, is notified each time the primary backend is
	// bypassed. Used by the pipeline to report the degradation.
	OnFallback func(operation string, err error)
}

// WithFallback wraps primary so that unavailability falls through to secondary.
func WithFallback(primary, secondary Generator) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

// GenerateSummary tries the primary backend, falling back on unavailability.
func (f *Fallback) GenerateSummary(ctx context.Context, profile *types.ResumeProfile) (string, error) {
	summary, err := f.primary.GenerateSummary(ctx, profile)
	if err == nil {
		return summary, nil
	}

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		return "", err
	}
	f.notify("summary", err)
	return f.secondary.GenerateSummary(ctx, profile)
}

// GenerateBullets tries the primary backend, falling back on unavailability.
func (f *Fallback) GenerateBullets(ctx context.Context, experience *types.WorkHistory, profile *types.ResumeProfile) ([]string, error) {
	bullets, err := f.primary.GenerateBullets(ctx, experience, profile)
	if err == nil {
		return bullets, nil
	}

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		return nil, err
	}
	f.notify("bullets", err)
	return f.secondary.GenerateBullets(ctx, experience, profile)
}

func (f *Fallback) notify(operation string, err error) {
	if f.OnFallback != nil {
		f.OnFallback(operation, err)
	}
}
