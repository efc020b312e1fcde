// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-console/internal/submission"
	"github.com/jonathan/talent-console/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the console.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResource outputs a human-readable summary of a single resource.
func (p *Printer) PrintResource(res *types.Resource) {
	if res == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:      %s\n", res.Name))
	sb.WriteString(fmt.Sprintf("Category:  %s\n", res.Category))
	sb.WriteString(fmt.Sprintf("Level:     %s (%d yrs)\n", res.Experience.Level, res.Experience.Years))
	sb.WriteString(fmt.Sprintf("Status:    %s\n", res.Availability.Status))
	sb.WriteString(fmt.Sprintf("Rate:      %.0f %s/hr\n", res.Rate.Hourly, res.Rate.Currency))

	if len(res.Skills) > 0 {
		skills := strings.Join(res.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:    %s\n", skills))
	}

	if res.Attachment != nil {
		sb.WriteString(fmt.Sprintf("File:      %s (%d bytes)\n", res.Attachment.OriginalName, res.Attachment.Size))
	} else {
		sb.WriteString("File:      none\n")
	}

	p.printBox(fmt.Sprintf("RESOURCE %s", res.ID), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResourceList outputs one cached page of resources with its
// pagination footer.
func (p *Printer) PrintResourceList(items []types.Resource, page types.Pagination) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d resources\n\n", len(items), page.Total))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		res := items[i]
		name := res.Name
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %-28s %s\n", name, res.Availability.Status))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(items)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nPage %d/%d", page.Page, page.TotalPages))
	if page.HasNextPage() {
		sb.WriteString("  →")
	}

	p.printBox("RESOURCES", sb.String())
}

// PrintOutcome outputs the result of a submission, including how far the
// write got when it failed and what the operator should do next.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintOutcome(outcome submission.Outcome) {
	if outcome.Succeeded() {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%s succeeded\n", modeLabel(outcome.Mode)))
		sb.WriteString(fmt.Sprintf("Resource:  %s", outcome.ResourceID))
		if outcome.Resource != nil && outcome.Resource.Attachment != nil {
			sb.WriteString(fmt.Sprintf("\nFile:      %s", outcome.Resource.Attachment.OriginalName))
		}
		p.printBox("✅ SUBMISSION COMPLETE", sb.String())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s failed during %s\n\n", modeLabel(outcome.Mode), outcome.Stage))
	if outcome.Err != nil {
		msg := outcome.Err.Error()
		if len(msg) > 50 {
			msg = msg[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("Error: %s\n\n", msg))
	}
	sb.WriteString(outcome.Stage.Guidance())

	p.printBox("⚠ SUBMISSION FAILED", sb.String())
}

// PrintVendorSkills outputs vendor skill submissions with their
// moderation status.
func (p *Printer) PrintVendorSkills(items []types.VendorSkill, page types.Pagination) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d submissions\n\n", len(items), page.Total))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		vs := items[i]
		name := vs.SkillName
		if len(name) > 24 {
			name = name[:21] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %-24s %-10s %s\n", name, vs.Status, vs.VendorName))
		if vs.Reason != "" {
			reason := vs.Reason
			if len(reason) > 45 {
				reason = reason[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  reason: %s\n", reason))
		}
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(items)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nPage %d/%d", page.Page, page.TotalPages))

	p.printBox("VENDOR SKILL SUBMISSIONS", sb.String())
}

// PrintSkills outputs the skill reference list.
func (p *Printer) PrintSkills(items []types.Skill, page types.Pagination) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d skills\n\n", len(items), page.Total))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := items[i]
		sb.WriteString(fmt.Sprintf("• %s", s.Name))
		if s.Category != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", s.Category))
		}
		sb.WriteString("\n")
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(items)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nPage %d/%d", page.Page, page.TotalPages))

	p.printBox("SKILLS", sb.String())
}

// PrintCategories outputs the category reference list.
func (p *Printer) PrintCategories(items []types.Category, page types.Pagination) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d of %d categories\n\n", len(items), page.Total))

	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s\n", items[i].Name))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(items)-maxItemsToShow))
	}

	sb.WriteString(fmt.Sprintf("\nPage %d/%d", page.Page, page.TotalPages))

	p.printBox("CATEGORIES", sb.String())
}

func modeLabel(mode submission.Mode) string {
	if mode == submission.ModeUpdate {
		return "Update"
	}
	return "Create"
}
