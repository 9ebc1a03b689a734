// Package observability provides formatted terminal output for the report command.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/yeonwoo/jobscout/internal/db"
	"github.com/yeonwoo/jobscout/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the report command
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStatistics outputs a human-readable aggregate summary.
func (p *Printer) PrintStatistics(stats types.Statistics) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Companies:        %d\n", len(stats.CompanyCounts)))
	sb.WriteString(fmt.Sprintf("Experience bands: %d\n", len(stats.JobTypeCounts)))
	sb.WriteString(fmt.Sprintf("Employment types: %d\n", len(stats.EmploymentTypeCounts)))

	if len(stats.TopCompanies) > 0 {
		sb.WriteString("\nTop companies:\n")
		for i, cc := range stats.TopCompanies {
			sb.WriteString(fmt.Sprintf("  %d. %s (%d)\n", i+1, cc.Company, cc.Count))
		}
	}

	p.printBox("POSTING STATISTICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecentPostings outputs the latest scraped postings.
func (p *Printer) PrintRecentPostings(postings []types.Posting) {
	if len(postings) == 0 {
		p.printBox("RECENT POSTINGS", "no postings stored")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Showing %d postings:\n\n", len(postings)))

	count := min(len(postings), maxItemsToShow)
	for i := 0; i < count; i++ {
		posting := postings[i]
		title := posting.JobTitle
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
		sb.WriteString(fmt.Sprintf("  %s", posting.CompanyName))
		if posting.JobLocation != "" {
			sb.WriteString(" - " + posting.JobLocation)
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(postings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more postings", len(postings)-maxItemsToShow))
	}

	p.printBox("RECENT POSTINGS", sb.String())
}

// PrintRecommendations outputs the top recommended postings with scores.
func (p *Printer) PrintRecommendations(recs []db.RecommendedPosting) {
	if len(recs) == 0 {
		p.printBox("RECOMMENDED POSTINGS", "no recommendations yet - run `jobscout score`")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recommended: %d\n\n", len(recs)))

	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s - %s\n", i+1, rec.CompanyName, rec.JobTitle))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", rec.Score, types.TierFor(rec.Score)))
		if rec.Reason != "" {
			reason := rec.Reason
			if len(reason) > 48 {
				reason = reason[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", reason))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED POSTINGS", sb.String())
}
