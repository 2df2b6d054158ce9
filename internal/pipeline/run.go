// Package pipeline provides the high-level orchestration for the resume build process.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/veteran-resume-builder/internal/generation"
	"github.com/jonathan/veteran-resume-builder/internal/mos"
	"github.com/jonathan/veteran-resume-builder/internal/observability"
	"github.com/jonathan/veteran-resume-builder/internal/rendering"
	"github.com/jonathan/veteran-resume-builder/internal/schemas"
	"github.com/jonathan/veteran-resume-builder/internal/types"
)

// Pipeline step identifiers reported through progress events.
const (
	StepProfileLoaded = "profile_loaded"
	StepCodesEnriched = "codes_enriched"
	StepContentReady  = "content_generated"
	StepDocumentReady = "document_rendered"
	StepOutputWritten = "output_written"
	totalSteps        = 5
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ProfilePath string
	OutDir      string
	Output      string
	Template    string
	TemplateDir string
	Export      bool
	Verbose     bool

	// Table resolves occupational codes; Generator produces summary and
	// bullet content. Both are required.
	Table     *mos.Table
	Generator generation.Generator

	OnProgress ProgressCallback
}

// RunResult reports where the pipeline left its outputs.
type RunResult struct {
	RunID      uuid.UUID
	OutputPath string
	ExportPath string
	Profile    *types.ResumeProfile
	Generated  *types.GeneratedContent
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// RunPipeline orchestrates the full resume build: load, enrich, generate,
// render, write.
func RunPipeline(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if opts.Table == nil {
		return nil, fmt.Errorf("pipeline requires an occupational code table")
	}
	if opts.Generator == nil {
		return nil, fmt.Errorf("pipeline requires a content generator")
	}

	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New()

	fmt.Printf("Step 1/%d: Loading profile from %s...\n", totalSteps, opts.ProfilePath)
	profile, err := LoadProfile(opts.ProfilePath)
	if err != nil {
		return nil, fmt.Errorf("loading profile failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintProfileSummary(profile)
	}
	emitProgress(&opts, StepProfileLoaded,
		fmt.Sprintf("Loaded profile targeting %s", profile.TargetRole), nil)

	fmt.Printf("Step 2/%d: Translating occupational codes...\n", totalSteps)
	matches := EnrichProfile(profile, opts.Table)
	if opts.Verbose {
		printer.PrintMOSMatches(matches)
	}
	emitProgress(&opts, StepCodesEnriched,
		fmt.Sprintf("Matched %d of %d occupational codes", len(matches), len(profile.MOSEntries)), matches)

	fmt.Printf("Step 3/%d: Generating resume content...\n", totalSteps)
	generated, err := generateContent(ctx, opts.Generator, profile)
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}
	if opts.Verbose {
		printer.PrintGeneratedContent(generated)
	}
	emitProgress(&opts, StepContentReady, "Generated summary and experience bullets", generated)

	outputPath := resolveOutputPath(&opts, profile)

	fmt.Printf("Step 4/%d: Rendering document with template %q...\n", totalSteps, templateName(&opts))
	renderer := rendering.NewRenderer(opts.TemplateDir)

	fmt.Printf("Step 5/%d: Writing output to %s...\n", totalSteps, outputPath)
	if err := renderer.RenderToFile(profile, generated, templateName(&opts), outputPath); err != nil {
		return nil, fmt.Errorf("rendering document failed: %w", err)
	}
	emitProgress(&opts, StepDocumentReady, "Rendered resume document", nil)

	result := &RunResult{
		RunID:      runID,
		OutputPath: outputPath,
		Profile:    profile,
		Generated:  generated,
	}

	if opts.Export {
		exportPath, err := writeExport(result, templateName(&opts))
		if err != nil {
			return nil, fmt.Errorf("writing export failed: %w", err)
		}
		result.ExportPath = exportPath
	}
	emitProgress(&opts, StepOutputWritten, fmt.Sprintf("Wrote %s", outputPath), nil)

	if opts.Verbose {
		printer.PrintDocumentWritten(outputPath)
	}

	return result, nil
}

// LoadProfile reads, schema-checks, decodes and validates a profile file.
func LoadProfile(path string) (*types.ResumeProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if err := schemas.ValidateProfileBytes(data); err != nil {
		return nil, err
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

// EnrichProfile fills in missing civilian titles and skills on the profile's
// occupational code entries from the reference table. Unknown codes are left
// untouched. The operation is idempotent: running it twice adds nothing new.
func EnrichProfile(profile *types.ResumeProfile, table *mos.Table) []mos.Record {
	var matches []mos.Record

	for i := range profile.MOSEntries {
		entry := &profile.MOSEntries[i]

		record, err := table.Lookup(entry.Code, entry.Branch)
		if err != nil {
			var notFound *mos.NotFoundError
			if errors.As(err, &notFound) {
				fmt.Printf("Warning: no translation found for code %s, keeping entry as-is\n", entry.Code)
				continue
			}
			continue
		}
		matches = append(matches, *record)

		if entry.Title == "" {
			entry.Title = record.Title
		}
		if entry.Branch == "" {
			entry.Branch = record.Branch
		}
		entry.CivilianSkills = unionSkills(entry.CivilianSkills, record.Skills)
	}

	return matches
}

// generateContent produces the summary and per-experience bullets.
func generateContent(ctx context.Context, gen generation.Generator, profile *types.ResumeProfile) (*types.GeneratedContent, error) {
	summary, err := gen.GenerateSummary(ctx, profile)
	if err != nil {
		return nil, err
	}

	content := &types.GeneratedContent{
		Summary:             summary,
		BulletsByExperience: make(map[int][]string, len(profile.Experience)),
	}

	for i := range profile.Experience {
		bullets, err := gen.GenerateBullets(ctx, &profile.Experience[i], profile)
		if err != nil {
			return nil, err
		}
		content.BulletsByExperience[i] = bullets
	}

	return content, nil
}

// unionSkills appends the new skills that are not already present,
// comparing case-insensitively and preserving order.
func unionSkills(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[strings.ToLower(strings.TrimSpace(s))] = true
	}

	result := existing
	for _, s := range extra {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, s)
	}
	return result
}

// templateName returns the requested template, defaulting like the renderer.
func templateName(opts *RunOptions) string {
	if opts.Template == "" {
		return rendering.DefaultTemplate
	}
	return opts.Template
}

// resolveOutputPath picks the output file location. An explicit Output wins;
// otherwise the file name derives from the candidate name and the template
// kind, placed under OutDir.
func resolveOutputPath(opts *RunOptions, profile *types.ResumeProfile) string {
	if opts.Output != "" {
		if filepath.IsAbs(opts.Output) || opts.OutDir == "" {
			return opts.Output
		}
		return filepath.Join(opts.OutDir, opts.Output)
	}

	ext := ".txt"
	if strings.HasSuffix(templateName(opts), ".docx") {
		ext = ".docx"
	}

	name := strings.ReplaceAll(strings.TrimSpace(profile.Contact.FullName), " ", "_")
	if name == "" {
		name = "resume"
	}

	return filepath.Join(opts.OutDir, name+"_Resume"+ext)
}

// ExportRecord is the JSON artifact written alongside the document when
// export is enabled.
type ExportRecord struct {
	RunID     uuid.UUID               `json:"run_id"`
	Template  string                  `json:"template"`
	Output    string                  `json:"output"`
	Profile   *types.ResumeProfile    `json:"profile"`
	Generated *types.GeneratedContent `json:"generated"`
}

// writeExport writes the run's structured export next to the document.
func writeExport(result *RunResult, template string) (string, error) {
	record := ExportRecord{
		RunID:     result.RunID,
		Template:  template,
		Output:    result.OutputPath,
		Profile:   result.Profile,
		Generated: result.Generated,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(result.OutputPath, filepath.Ext(result.OutputPath))
	exportPath := base + ".export.json"
	if err := os.WriteFile(exportPath, data, 0o644); err != nil {
		return "", err
	}

	return exportPath, nil
}
