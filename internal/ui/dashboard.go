package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/leoking9009/notion-working/internal/filter"
)

const topListSize = 5

// dashboardView renders the stat cards, the recently updated and
// urgent task lists, and the per-assignee open counts.
func (a App) dashboardView() string {
	today := filter.CivilToday()
	stats := filter.ComputeStats(a.tasks, today)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("전체", stats.Total),
		statCard("진행중", stats.InProgress),
		statCard("오늘 마감", stats.Today),
		statCard("7일 내", stats.Within7Days),
		statCard("지연", stats.Overdue),
		statCard("긴급", stats.Urgent),
		statCard("완료", stats.Completed),
	)

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(selectedStyle.Render("최근 업데이트"))
	b.WriteString("\n")
	recent := filter.Recent(a.tasks, topListSize)
	if len(recent) == 0 {
		b.WriteString(dimStyle.Render("  진행중 과제가 없습니다"))
		b.WriteString("\n")
	}
	for _, t := range recent {
		line := fmt.Sprintf("  %s — %s", t.Title, t.Assignee)
		if t.Urgent {
			line += " " + urgentStyle.Render("[긴급]")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(selectedStyle.Render("긴급 과제"))
	b.WriteString("\n")
	urgent := filter.UrgentTop(a.tasks, topListSize)
	if len(urgent) == 0 {
		b.WriteString(dimStyle.Render("  긴급 과제가 없습니다"))
		b.WriteString("\n")
	}
	for _, t := range urgent {
		b.WriteString(fmt.Sprintf("  %s — %s", t.Title, t.Assignee))
		if t.DueDate != "" {
			b.WriteString(dimStyle.Render(" (" + t.DueDate + ")"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(selectedStyle.Render("담당자별 진행중"))
	b.WriteString("\n")
	for _, name := range sortedAssignees(stats.ByAssignee) {
		b.WriteString(fmt.Sprintf("  %s: %d\n", name, stats.ByAssignee[name]))
	}

	return b.String()
}

func statCard(label string, n int) string {
	return statCardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Center, label, statNumberStyle.Render(fmt.Sprintf("%d", n))))
}

func sortedAssignees(byAssignee map[string]int) []string {
	names := make([]string, 0, len(byAssignee))
	for name := range byAssignee {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
