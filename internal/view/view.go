// Package view renders the assessment and its recommendations for the terminal.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dr-Dre420/unlostai/internal/advisor"
	"github.com/Dr-Dre420/unlostai/internal/assessment"
	"github.com/Dr-Dre420/unlostai/internal/catalog"
	"github.com/Dr-Dre420/unlostai/internal/ranking"
)

const (
	cardWidth   = 64
	progressLen = 24
)

var (
	primary = lipgloss.Color("#6D28D9")
	success = lipgloss.Color("#059669")
	warning = lipgloss.Color("#D97706")
	danger  = lipgloss.Color("#DC2626")
	muted   = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary)
	mutedStyle  = lipgloss.NewStyle().Foreground(muted)
	successText = lipgloss.NewStyle().Foreground(success).Bold(true)
	starStyle   = lipgloss.NewStyle().Foreground(warning)
	badgeStyle  = lipgloss.NewStyle().Foreground(success).Bold(true)
	cardStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1).
			Width(cardWidth)
)

// Hero renders the landing banner.
func Hero() string {
	title := titleStyle.Render("Your AI Career Compass")
	tagline := "Navigate India's evolving job market with personalized guidance.\n" +
		"Map your skills, discover career paths, and prepare for tomorrow's opportunities."

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("50K+", "Students Guided"),
		stat("200+", "Career Paths"),
		stat("95%", "Success Rate"),
	)

	hint := mutedStyle.Render("Run `unlostai assess` to start your assessment or `unlostai catalog` to explore careers.")

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", tagline, "", stats, "", hint))
}

func stat(value, label string) string {
	return lipgloss.NewStyle().PaddingRight(4).Render(
		lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(value), mutedStyle.Render(label)),
	)
}

// Progress renders "Progress [####----] n/total skills".
func Progress(selected, total, percent int) string {
	filled := percent * progressLen / 100
	if filled > progressLen {
		filled = progressLen
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressLen-filled)
	return fmt.Sprintf("Progress %s %d/%d skills", bar, selected, total)
}

// Checklist renders the skills of the current wizard step with their selection marks.
func Checklist(w *assessment.Wizard) string {
	store := w.Store()
	category := w.CurrentCategory()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (step %d of %d)", category.Name, store.CurrentStep()+1, w.StepCount())))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Select the skills you have experience with or are interested in learning"))
	b.WriteString("\n\n")

	for _, skill := range category.Skills {
		b.WriteString(SkillLine(skill, store.IsSelected(skill.ID)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Progress(store.SelectedCount(), store.Catalog().TotalSkills(), store.Progress()))

	if selected := store.Selected(); len(selected) > 0 {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Selected Skills (%d): %s", len(selected), strings.Join(store.Catalog().SkillNames(selected), ", ")))
	}

	return b.String()
}

// SkillLine renders one checklist entry.
func SkillLine(skill catalog.Skill, selected bool) string {
	mark := mutedStyle.Render("○")
	if selected {
		mark = successText.Render("●")
	}
	return fmt.Sprintf("%s %s  %s", mark, skill.Name, mutedStyle.Render(skill.Description))
}

// Notice renders a wizard notice, or nothing for an empty one.
func Notice(n assessment.Notice) string {
	if n.IsZero() {
		return ""
	}
	style := lipgloss.NewStyle().Bold(true).Foreground(success)
	if n.Variant == assessment.VariantDestructive {
		style = style.Foreground(danger)
	}
	return style.Render(n.Title) + " " + n.Description
}

// Card renders a single recommendation.
func Card(rec *ranking.Recommendation) string {
	header := titleStyle.Render(rec.Title)
	if rec.Metadata.Trending {
		header += " " + badgeStyle.Render("↗ Trending")
	}

	stars := starStyle.Render(strings.Repeat("★", rec.Stars())) + mutedStyle.Render(strings.Repeat("☆", 5-rec.Stars()))
	match := fmt.Sprintf("%s %s", stars, successText.Render(fmt.Sprintf("%d%% match", rec.MatchScore)))

	lines := []string{
		header,
		match,
		"",
		rec.Description,
		"",
		fmt.Sprintf("Salary Range: %s   Growth Rate: %s", rec.Metadata.SalaryRange, rec.Metadata.GrowthRate),
		fmt.Sprintf("Entry Time:   %s   Top Locations: %s", rec.Metadata.TimeToEntry, strings.Join(rec.Metadata.Locations, ", ")),
		"",
		"Key Skills Required: " + requiredSkills(rec),
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

func requiredSkills(rec *ranking.Recommendation) string {
	matched := make(map[string]struct{}, len(rec.Matched))
	for _, m := range rec.Matched {
		matched[m] = struct{}{}
	}

	parts := make([]string, 0, len(rec.RequiredSkills))
	for _, skill := range rec.RequiredSkills {
		if _, ok := matched[skill]; ok {
			parts = append(parts, successText.Render("✓ "+skill))
			continue
		}
		parts = append(parts, skill)
	}
	return strings.Join(parts, ", ")
}

// Recommendations renders every card under a heading.
func Recommendations(recs *ranking.Recommendations) string {
	heading := titleStyle.Render("Your Career Recommendations") + "\n" +
		mutedStyle.Render("Personalized career paths based on your skills and interests")

	if recs.Len() == 0 {
		return heading + "\n\n" + mutedStyle.Render("No careers left after filtering.")
	}

	cards := make([]string, 0, recs.Len())
	for i := range recs.Items {
		cards = append(cards, Card(&recs.Items[i]))
	}
	return heading + "\n\n" + lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// LearningPlan renders a drafted plan.
func LearningPlan(title string, plan *advisor.LearningPlan) string {
	lines := []string{titleStyle.Render("Learning Path: " + title)}
	if plan.Summary != "" {
		lines = append(lines, "", plan.Summary)
	}
	if len(plan.Steps) > 0 {
		lines = append(lines, "")
		for i, step := range plan.Steps {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
		}
	}
	if plan.Duration != "" {
		lines = append(lines, "", mutedStyle.Render("Estimated time: "+plan.Duration))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

// Catalog lists the skill categories and careers.
func Catalog(c *catalog.Catalog) string {
	var b strings.Builder
	for _, category := range c.Categories {
		b.WriteString(titleStyle.Render(category.Name))
		b.WriteString("\n")
		for _, skill := range category.Skills {
			b.WriteString(fmt.Sprintf("  %-14s %s  %s\n", skill.ID, skill.Name, mutedStyle.Render(skill.Description)))
		}
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render("Careers"))
	b.WriteString("\n")
	for _, career := range c.Careers {
		b.WriteString(fmt.Sprintf("  %-20s %s  %s\n", career.ID, career.Title, mutedStyle.Render(strings.Join(career.RequiredSkills, ", "))))
	}
	return strings.TrimRight(b.String(), "\n")
}
