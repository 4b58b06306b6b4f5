// Package filter computes filtered task subsets and dashboard
// statistics from the flat task collection.
//
// Dates are civil ISO YYYY-MM-DD strings compared lexicographically,
// which is correct within a single fixed calendar and timezone. The
// "today" reference is midnight local time at evaluation.
package filter

import (
	"sort"
	"time"

	"github.com/leoking9009/notion-working/internal/model"
)

// UnassignedLabel buckets tasks without an assignee.
const UnassignedLabel = "미배정"

const dateLayout = "2006-01-02"

// CivilToday returns today's date at midnight local time.
func CivilToday() string {
	return time.Now().Format(dateLayout)
}

// AddDays shifts an ISO date by n calendar days. A malformed date
// comes back unchanged.
func AddDays(date string, n int) string {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(dateLayout)
}

// Matches reports whether a task satisfies a view's predicate. Screen
// views (dashboard, notices, admin) and the full list match every
// task.
func Matches(t model.Task, v View, today string) bool {
	switch v.Kind {
	case ViewProgress:
		return !t.Completed
	case ViewToday:
		return t.DueDate == today && !t.Completed
	case ViewOverdue:
		return t.DueDate != "" && t.DueDate < today && !t.Completed
	case ViewWithin7Days:
		return t.DueDate != "" && !t.Completed &&
			t.DueDate >= today && t.DueDate <= AddDays(today, 7)
	case ViewUrgent:
		return t.Urgent && !t.Completed
	case ViewCompleted:
		return t.Completed
	case ViewAssignee:
		return assigneeLabel(t) == v.Assignee && !t.Completed
	default:
		return true
	}
}

// Apply returns the subset of tasks satisfying the view, preserving
// collection order.
func Apply(tasks []model.Task, v View, today string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if Matches(t, v, today) {
			out = append(out, t)
		}
	}
	return out
}

// Stats are the dashboard aggregates over the full task collection.
type Stats struct {
	Total       int
	Completed   int
	InProgress  int
	Urgent      int
	Today       int
	Overdue     int
	Within7Days int
	ByAssignee  map[string]int
}

// ComputeStats derives the dashboard aggregates. Completed tasks are
// excluded from the per-assignee tally.
func ComputeStats(tasks []model.Task, today string) Stats {
	stats := Stats{
		Total:      len(tasks),
		ByAssignee: make(map[string]int),
	}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		if t.Urgent {
			stats.Urgent++
		}
		if t.DueDate != "" {
			if t.DueDate == today {
				stats.Today++
			}
			if t.DueDate < today {
				stats.Overdue++
			}
			if t.DueDate >= today && t.DueDate <= AddDays(today, 7) {
				stats.Within7Days++
			}
		}
		stats.ByAssignee[assigneeLabel(t)]++
	}
	stats.InProgress = stats.Total - stats.Completed
	return stats
}

// Recent returns the n most recently modified incomplete tasks,
// newest first.
func Recent(tasks []model.Task, n int) []model.Task {
	open := Apply(tasks, View{Kind: ViewProgress}, "")
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].UpdatedAt.After(open[j].UpdatedAt)
	})
	if len(open) > n {
		open = open[:n]
	}
	return open
}

// UrgentTop returns up to n incomplete urgent tasks in collection
// order.
func UrgentTop(tasks []model.Task, n int) []model.Task {
	urgent := Apply(tasks, View{Kind: ViewUrgent}, "")
	if len(urgent) > n {
		urgent = urgent[:n]
	}
	return urgent
}

func assigneeLabel(t model.Task) string {
	if t.Assignee == "" {
		return UnassignedLabel
	}
	return t.Assignee
}
