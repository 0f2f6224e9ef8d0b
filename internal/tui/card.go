package tui

import (
	"fmt"
	"strings"

	"github.com/questlabs/questlog/internal/domain"
	"github.com/questlabs/questlog/internal/progress"
	"github.com/questlabs/questlog/internal/stats"
)

// defaultBarWidth is the progress bar width inside a quest card.
const defaultBarWidth = 30

// RenderQuestCard renders one quest's progress result as a multi-line card.
// Degraded results render the error string instead of a bar, so every
// result stays renderable.
func RenderQuestCard(q *domain.Quest, res *domain.ProgressResult) string {
	var b strings.Builder

	title := q.Title
	if title == "" {
		title = q.ID
	}
	icon := ProgressStatusStyle(res.Status).Render(ProgressStatusIcon(res.Status))
	b.WriteString(fmt.Sprintf("%s %s %s\n", icon, TitleStyle.Render(title), MutedStyle.Render("("+string(res.Kind)+")")))

	if res.Error != "" {
		b.WriteString("  " + ErrorStyle.Render(res.Error) + "\n")
		return b.String()
	}

	bar := NewProgressBar(defaultBarWidth)
	pct := progress.FormatPercent(res.Percentage)
	if res.Estimated {
		pct = WarnStyle.Render(pct + " (estimated)")
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", bar.Render(res.Percentage), pct))

	detail := fmt.Sprintf("%s · %s", progress.FormatStatus(res.Status), progress.FormatCount(res.Completed, res.Total))
	if res.EstimatedCompletion != nil {
		detail += " · done " + progress.FormatETA(*res.EstimatedCompletion, res.LastUpdated)
	}
	b.WriteString("  " + MutedStyle.Render(detail) + "\n")

	if res.Linked != nil {
		b.WriteString("  " + MutedStyle.Render(fmt.Sprintf(
			"goals %s · tasks %s",
			progress.FormatCount(res.Linked.Goals.Completed, res.Linked.Goals.Total),
			progress.FormatCount(res.Linked.Tasks.Completed, res.Linked.Tasks.Total),
		)) + "\n")
	}
	if res.Quantitative != nil {
		b.WriteString("  " + MutedStyle.Render(fmt.Sprintf(
			"%d of %d %s over %d days · %.1f/day",
			res.Quantitative.Current,
			res.Quantitative.Target,
			scopeNoun(res.Quantitative),
			res.Quantitative.PeriodDays,
			res.Quantitative.RatePerDay,
		)) + "\n")
	}
	return b.String()
}

// scopeNoun phrases a count scope for display.
func scopeNoun(qb *domain.QuantitativeBreakdown) string {
	if qb.Scope == domain.CountScopeGoals {
		return "goals"
	}
	return "tasks"
}

// RenderSummary renders the statistics rollup as an aligned block.
func RenderSummary(s stats.Summary) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Last %d days", s.WindowDays)) + "\n")

	rows := []struct {
		label string
		value string
	}{
		{"Quests", fmt.Sprintf("%d", s.Total)},
		{"Completed", fmt.Sprintf("%d", s.Completed)},
		{"Failed", fmt.Sprintf("%d", s.Failed)},
		{"Cancelled", fmt.Sprintf("%d", s.Cancelled)},
		{"Active", fmt.Sprintf("%d", s.Active)},
		{"Success rate", progress.FormatPercent(s.SuccessRate)},
		{"Total XP", fmt.Sprintf("%d", s.TotalXP)},
		{"Avg completion", fmt.Sprintf("%.1f days", s.AvgCompletionDays)},
		{"Top category", s.MostProductiveCategory},
		{"Recent activity", fmt.Sprintf("%d in %d days", s.RecentActivity, s.RecentWindowDays)},
		{"Streak", fmt.Sprintf("%d (longest %d)", s.CurrentStreak, s.LongestStreak)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %-16s %s\n", row.label, row.value))
	}
	return b.String()
}

// RenderGoalCard renders one goal's deadline window as a multi-line card.
func RenderGoalCard(g *domain.Goal, tw progress.TimeWindowResult) string {
	var b strings.Builder

	title := g.Title
	if title == "" {
		title = g.ID
	}
	b.WriteString(TitleStyle.Render(title) + " " + MutedStyle.Render("("+string(g.Status)+")") + "\n")

	bar := NewProgressBar(defaultBarWidth)
	b.WriteString(fmt.Sprintf("  %s %s\n", bar.Render(tw.Percentage), progress.FormatPercent(tw.Percentage)))

	deadline := "no deadline"
	if g.Deadline != nil {
		deadline = progress.FormatDaysLeft(tw.DaysRemaining)
	}
	style := MutedStyle
	switch {
	case tw.IsOverdue:
		style = ErrorStyle
	case tw.IsUrgent:
		style = WarnStyle
	}
	b.WriteString("  " + style.Render(deadline) + "\n")

	if g.Deadline != nil {
		b.WriteString("  " + MutedStyle.Render(fmt.Sprintf("day %d of %d", tw.DaysElapsed, tw.TotalDays)) + "\n")
	}
	return b.String()
}

// RenderGoalOverview renders the overdue/urgent/on-track buckets.
func RenderGoalOverview(ov progress.GoalOverview) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Goals") + "\n")
	b.WriteString("  " + ErrorStyle.Render(fmt.Sprintf("%-10s %d", "overdue", len(ov.Overdue))) + "\n")
	b.WriteString("  " + WarnStyle.Render(fmt.Sprintf("%-10s %d", "urgent", len(ov.Urgent))) + "\n")
	b.WriteString("  " + MutedStyle.Render(fmt.Sprintf("%-10s %d", "on track", len(ov.OnTrack))) + "\n")
	return b.String()
}
