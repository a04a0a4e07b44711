// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/skillgap-analyzer/internal/types"
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

// PrintStats outputs the headline dashboard counters.
func (p *Printer) PrintStats(stats types.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Students analyzed:  %d\n", stats.TotalStudents))
	sb.WriteString(fmt.Sprintf("Unique skills:      %d\n", stats.UniqueSkills))
	sb.WriteString(fmt.Sprintf("Average match:      %d%%\n", stats.AverageMatch))
	sb.WriteString(fmt.Sprintf("Departments:        %d", stats.TotalDepartments))

	p.printBox("OVERVIEW", sb.String())
}

// PrintTopMissingSkills outputs the most frequently missing skills.
func (p *Printer) PrintTopMissingSkills(skills []types.SkillCount) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("#%d  %s (%d students)\n", i+1, skills[i].Skill, skills[i].Count))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(skills)-maxItemsToShow))
	}

	p.printBox("TOP MISSING SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTrendingSkills outputs skills gaining traction in the recent window.
func (p *Printer) PrintTrendingSkills(skills []types.TrendingSkill) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("• %s  %s (%d mentions)\n", skills[i].Skill, skills[i].Trend, skills[i].Total))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(skills)-maxItemsToShow))
	}

	p.printBox("TRENDING SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDistribution outputs the match score band counts.
func (p *Printer) PrintDistribution(d types.MatchDistribution) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("High (80-100):    %d\n", d.High))
	sb.WriteString(fmt.Sprintf("Medium (60-79):   %d\n", d.Medium))
	sb.WriteString(fmt.Sprintf("Low (40-59):      %d\n", d.Low))
	sb.WriteString(fmt.Sprintf("Very low (0-39):  %d", d.VeryLow))

	p.printBox("MATCH DISTRIBUTION", sb.String())
}

// PrintAlerts outputs generated alerts with their severity.
func (p *Printer) PrintAlerts(alerts []types.Alert) {
	if len(alerts) == 0 {
		return
	}

	var sb strings.Builder
	for i, a := range alerts {
		marker := "!"
		if a.Severity == types.SeverityCritical {
			marker = "!!"
		}
		sb.WriteString(fmt.Sprintf("%-2s %s\n", marker, a.Title))
		sb.WriteString(fmt.Sprintf("   %s\n", a.Description))
		if a.Action != "" {
			sb.WriteString(fmt.Sprintf("   -> %s\n", a.Action))
		}
		if i < len(alerts)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ALERTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSnapshot outputs the full dashboard snapshot in verbose CLI form.
func (p *Printer) PrintSnapshot(s *types.Snapshot) {
	if s == nil {
		return
	}
	p.PrintStats(s.Stats)
	p.PrintTopMissingSkills(s.TopMissingSkills)
	p.PrintTrendingSkills(s.TrendingSkills)
	p.PrintDistribution(s.MatchDistribution)
	p.PrintAlerts(s.Alerts)
}
