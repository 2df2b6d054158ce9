package generation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/veteran-resume-builder/internal/llm"
	"github.com/jonathan/veteran-resume-builder/internal/prompts"
	"github.com/jonathan/veteran-resume-builder/internal/types"
)

// DefaultTimeout bounds a single remote generation call. A call that runs
// past it is reported as unavailable rather than blocking the render.
const DefaultTimeout = 30 * time.Second

// Remote is the Gemini-backed generation backend. All failures, including
// timeouts, surface as *UnavailableError so the pipeline can fall back.
type Remote struct {
	client  llm.Client
	timeout time.Duration
}

// NewRemote creates the remote backend. An empty model uses the default.
// A missing API key is a configuration error, not an unavailability: the
// caller must fail fast rather than fall back.
func NewRemote(ctx context.Context, apiKey, model string, timeout time.Duration) (*Remote, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("remote backend requires an API key")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client, err := llm.NewClient(ctx, llm.DefaultConfig().WithModel(model), apiKey)
	if err != nil {
		return nil, &UnavailableError{Message: "failed to create LLM client", Cause: err}
	}

	return &Remote{client: client, timeout: timeout}, nil
}

// NewRemoteWithClient creates a remote backend around an existing client.
// Used by tests to substitute a stub client.
func NewRemoteWithClient(client llm.Client, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Remote{client: client, timeout: timeout}
}

// Close releases the underlying client.
func (r *Remote) Close() error {
	return r.client.Close()
}

// GenerateSummary produces a professional summary via the remote model.
func (r *Remote) GenerateSummary(ctx context.Context, profile *types.ResumeProfile) (string, error) {
	prompt := buildSummaryPrompt(profile)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	response, err := r.client.GenerateContent(ctx, prompt)
	if err != nil {
		return "", &UnavailableError{Message: "summary generation failed", Cause: err}
	}

	summary := strings.TrimSpace(llm.CleanCodeBlock(response))
	if summary == "" {
		return "", &UnavailableError{Message: "summary generation returned empty response"}
	}
	return summary, nil
}

// GenerateBullets produces STAR-style bullets via the remote model.
func (r *Remote) GenerateBullets(ctx context.Context, experience *types.WorkHistory, profile *types.ResumeProfile) ([]string, error) {
	prompt := buildBulletsPrompt(experience, profile)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	response, err := r.client.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, &UnavailableError{Message: "bullet generation failed", Cause: err}
	}

	bullets := parseBulletLines(llm.CleanCodeBlock(response))
	if len(bullets) == 0 {
		return nil, &UnavailableError{Message: "bullet generation returned no usable lines"}
	}
	if len(bullets) > DefaultBulletCount {
		bullets = bullets[:DefaultBulletCount]
	}
	return bullets, nil
}

func buildSummaryPrompt(profile *types.ResumeProfile) string {
	background := "Military service professional"
	if len(profile.MOSEntries) > 0 {
		var parts []string
		for _, mos := range profile.MOSEntries {
			part := mos.Code
			if mos.Title != "" {
				part = fmt.Sprintf("%s (%s)", mos.Code, mos.Title)
			}
			if mos.Branch != "" {
				part += ", " + mos.Branch
			}
			parts = append(parts, part)
		}
		background = strings.Join(parts, "; ")
	}

	clearance := profile.Contact.SecurityClearance
	if clearance == "" {
		clearance = "None"
	}

	template := prompts.MustGet("generation.json", "summary")
	return prompts.Format(template, map[string]string{
		"TargetRole":         profile.TargetRole,
		"MilitaryBackground": background,
		"Years":              strconv.Itoa(yearsOfService(profile)),
		"Skills":             strings.Join(topSkills(profile, 5), ", "),
		"Clearance":          clearance,
	})
}

func buildBulletsPrompt(experience *types.WorkHistory, profile *types.ResumeProfile) string {
	context := experience.ScopeMetrics
	if len(experience.Bullets) > 0 {
		existing := "Existing achievements: " + strings.Join(experience.Bullets, "; ")
		if context != "" {
			context += "\n" + existing
		} else {
			context = existing
		}
	}
	if context == "" {
		context = "No additional context provided"
	}

	template := prompts.MustGet("generation.json", "bullets")
	return prompts.Format(template, map[string]string{
		"Count":        strconv.Itoa(DefaultBulletCount),
		"Role":         experience.Role,
		"Organization": experience.Organization,
		"DateRange":    experience.DateRange(),
		"TargetRole":   profile.TargetRole,
		"Skills":       strings.Join(topSkills(profile, 5), ", "),
		"Context":      context,
	})
}

// parseBulletLines extracts bullet text from a line-per-bullet response,
// stripping list markers the model may add despite instructions.
func parseBulletLines(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-•* \t")
		// Strip leading "1." / "1)" numbering.
		if idx := strings.IndexAny(line, ".)"); idx > 0 && idx <= 2 {
			if _, err := strconv.Atoi(line[:idx]); err == nil {
				line = strings.TrimSpace(line[idx+1:])
			}
		}
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}
