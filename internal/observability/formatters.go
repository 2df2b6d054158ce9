// Package observability provides formatted output utilities for verbose CLI
// mode, plus PII redaction for anything that ends up in logs.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/veteran-resume-builder/internal/mos"
	"github.com/jonathan/veteran-resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content. Content is
// redacted before it reaches the sink so PII never lands in captured logs.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(Redact(content), "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileSummary outputs a human-readable summary of the loaded
// profile. The candidate name is replaced with the fixed redaction marker.
func (p *Printer) PrintProfileSummary(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Candidate:   %s\n", NameRedacted))
	sb.WriteString(fmt.Sprintf("Target role: %s\n", profile.TargetRole))
	if profile.Contact.Branch != "" {
		sb.WriteString(fmt.Sprintf("Branch:      %s\n", profile.Contact.Branch))
	}
	sb.WriteString("\n")

	if len(profile.MOSEntries) > 0 {
		codes := make([]string, 0, len(profile.MOSEntries))
		for _, entry := range profile.MOSEntries {
			codes = append(codes, entry.Code)
		}
		sb.WriteString(fmt.Sprintf("MOS codes:      %s\n", strings.Join(codes, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Experience:     %d entries\n", len(profile.Experience)))
	sb.WriteString(fmt.Sprintf("Education:      %d entries\n", len(profile.Education)))
	sb.WriteString(fmt.Sprintf("Certifications: %d entries", len(profile.Certifications)))

	p.printBox("LOADED PROFILE", sb.String())
}

// PrintMOSMatches outputs the lookup or search results for an occupational
// code query.
func (p *Printer) PrintMOSMatches(records []mos.Record) {
	if len(records) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d records:\n\n", len(records)))

	count := min(len(records), maxItemsToShow)
	for i := 0; i < count; i++ {
		record := records[i]
		sb.WriteString(fmt.Sprintf("%s (%s)  %s\n", record.Code, record.Branch, record.Title))
		if len(record.CivilianTitles) > 0 {
			titles := strings.Join(record.CivilianTitles, ", ")
			if len(titles) > 45 {
				titles = titles[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  → %s\n", titles))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more records", len(records)-maxItemsToShow))
	}

	p.printBox("OCCUPATIONAL CODE MATCHES", sb.String())
}

// PrintGeneratedContent outputs the generated summary and bullet counts.
func (p *Printer) PrintGeneratedContent(content *types.GeneratedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder

	if content.Summary != "" {
		summary := content.Summary
		if len(summary) > 150 {
			summary = summary[:147] + "..."
		}
		sb.WriteString("Summary:\n")
		for _, line := range wrapText(summary, boxWidth-6) {
			sb.WriteString(fmt.Sprintf("  %s\n", line))
		}
		sb.WriteString("\n")
	}

	total := 0
	for _, bullets := range content.BulletsByExperience {
		total += len(bullets)
	}
	sb.WriteString(fmt.Sprintf("Bullets: %d across %d experience entries", total, len(content.BulletsByExperience)))

	p.printBox("GENERATED CONTENT", sb.String())
}

// PrintDocumentWritten outputs where the rendered document landed.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDocumentWritten(path string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ DOCUMENT WRITTEN")
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(path, boxWidth-4))
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// wrapText splits text into lines no longer than width, breaking on spaces.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	var current string

	for _, word := range words {
		if current == "" {
			current = word
			continue
		}
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
