package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/veteran-resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGenerator returns canned results or a fixed error.
type stubGenerator struct {
	summary string
	bullets []string
	err     error
}

func (s *stubGenerator) GenerateSummary(_ context.Context, _ *types.ResumeProfile) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.summary, nil
}

func (s *stubGenerator) GenerateBullets(_ context.Context, _ *types.WorkHistory, _ *types.ResumeProfile) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bullets, nil
}

func TestFallback_UsesPrimaryWhenHealthy(t *testing.T) {
	primary := &stubGenerator{summary: "primary summary", bullets: []string{"primary bullet"}}
	secondary := &stubGenerator{summary: "fallback summary"}
	gen := WithFallback(primary, secondary)

	summary, err := gen.GenerateSummary(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.Equal(t, "primary summary", summary)
}

func TestFallback_RecoversFromUnavailable(t *testing.T) {
	primary := &stubGenerator{err: &UnavailableError{Message: "quota exceeded"}}
	secondary := &stubGenerator{summary: "fallback summary", bullets: []string{"fallback bullet"}}
	gen := WithFallback(primary, secondary)

	var notified []string
	gen.OnFallback = func(operation string, err error) {
		notified = append(notified, operation)
		assert.Contains(t, err.Error(), "quota exceeded")
	}

	profile := sampleProfile()
	summary, err := gen.GenerateSummary(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, "fallback summary", summary)

	bullets, err := gen.GenerateBullets(context.Background(), &profile.Experience[0], profile)
	require.NoError(t, err)
	assert.Equal(t, []string{"fallback bullet"}, bullets)

	assert.Equal(t, []string{"summary", "bullets"}, notified)
}

func TestFallback_PropagatesOtherErrors(t *testing.T) {
	boom := errors.New("context canceled by caller")
	primary := &stubGenerator{err: boom}
	secondary := &stubGenerator{summary: "should not be used"}
	gen := WithFallback(primary, secondary)

	_, err := gen.GenerateSummary(context.Background(), sampleProfile())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestFallback_CompletesWithDeterministicBackend(t *testing.T) {
	// The production wiring: remote primary down, deterministic secondary.
	primary := &stubGenerator{err: &UnavailableError{Message: "timeout"}}
	gen := WithFallback(primary, NewDeterministic())

	profile := sampleProfile()
	summary, err := gen.GenerateSummary(context.Background(), profile)
	require.NoError(t, err)
	assert.Contains(t, summary, profile.TargetRole)

	bullets, err := gen.GenerateBullets(context.Background(), &profile.Experience[0], profile)
	require.NoError(t, err)
	assert.Len(t, bullets, DefaultBulletCount)
}
