package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoking9009/notion-working/internal/model"
)

const today = "2024-06-10"

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "done", Assignee: "Alice", Completed: true, DueDate: "2024-06-01"},
		{ID: "overdue", Assignee: "Alice", DueDate: "2024-06-09"},
		{ID: "today", Assignee: "Bob", DueDate: "2024-06-10"},
		{ID: "week", Assignee: "Bob", DueDate: "2024-06-17"},
		{ID: "later", Assignee: "Bob", DueDate: "2024-06-18"},
		{ID: "urgent", Urgent: true},
		{ID: "plain"},
	}
}

func ids(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestApply(t *testing.T) {
	tasks := sampleTasks()

	t.Run("progress excludes completed", func(t *testing.T) {
		got := Apply(tasks, View{Kind: ViewProgress}, today)
		assert.Equal(t, []string{"overdue", "today", "week", "later", "urgent", "plain"}, ids(got))
	})

	t.Run("completed is the complement", func(t *testing.T) {
		got := Apply(tasks, View{Kind: ViewCompleted}, today)
		assert.Equal(t, []string{"done"}, ids(got))
	})

	t.Run("today", func(t *testing.T) {
		got := Apply(tasks, View{Kind: ViewToday}, today)
		assert.Equal(t, []string{"today"}, ids(got))
	})

	t.Run("overdue excludes today and completed", func(t *testing.T) {
		got := Apply(tasks, View{Kind: ViewOverdue}, today)
		assert.Equal(t, []string{"overdue"}, ids(got))
	})

	t.Run("within7days includes both ends", func(t *testing.T) {
		got := Apply(tasks, View{Kind: ViewWithin7Days}, today)
		assert.Equal(t, []string{"today", "week"}, ids(got))
	})

	t.Run("urgent", func(t *testing.T) {
		got := Apply(tasks, View{Kind: ViewUrgent}, today)
		assert.Equal(t, []string{"urgent"}, ids(got))
	})

	t.Run("assignee", func(t *testing.T) {
		got := Apply(tasks, ByAssignee("Bob"), today)
		assert.Equal(t, []string{"today", "week", "later"}, ids(got))
	})

	t.Run("unassigned bucket", func(t *testing.T) {
		got := Apply(tasks, ByAssignee(UnassignedLabel), today)
		assert.Equal(t, []string{"urgent", "plain"}, ids(got))
	})

	t.Run("screen views match everything", func(t *testing.T) {
		for _, v := range []View{{Kind: ViewDashboard}, {Kind: ViewAll}, {Kind: ViewNotices}, {Kind: ViewAdmin}} {
			assert.Len(t, Apply(tasks, v, today), len(tasks))
		}
	})

	t.Run("overdue and today are disjoint", func(t *testing.T) {
		overdue := Apply(tasks, View{Kind: ViewOverdue}, today)
		dueToday := Apply(tasks, View{Kind: ViewToday}, today)
		for _, o := range overdue {
			assert.NotContains(t, ids(dueToday), o.ID)
		}
	})
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(sampleTasks(), today)

	assert.Equal(t, 7, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 6, stats.InProgress)
	assert.Equal(t, 1, stats.Urgent)
	assert.Equal(t, 1, stats.Today)
	assert.Equal(t, 1, stats.Overdue)
	assert.Equal(t, 2, stats.Within7Days)

	// Completed tasks never reach the per-assignee tally.
	assert.Equal(t, map[string]int{
		"Alice":         1,
		"Bob":           3,
		UnassignedLabel: 2,
	}, stats.ByAssignee)
}

func TestRecent(t *testing.T) {
	at := func(day int) time.Time {
		return time.Date(2024, 6, day, 12, 0, 0, 0, time.UTC)
	}
	tasks := []model.Task{
		{ID: "a", UpdatedAt: at(1)},
		{ID: "b", UpdatedAt: at(9), Completed: true},
		{ID: "c", UpdatedAt: at(5)},
		{ID: "d", UpdatedAt: at(7)},
	}

	got := Recent(tasks, 2)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"d", "c"}, ids(got))
}

func TestUrgentTop(t *testing.T) {
	tasks := []model.Task{
		{ID: "a", Urgent: true},
		{ID: "b", Urgent: true, Completed: true},
		{ID: "c"},
		{ID: "d", Urgent: true},
		{ID: "e", Urgent: true},
	}

	// Collection order, completed excluded, capped at n.
	assert.Equal(t, []string{"a", "d"}, ids(UrgentTop(tasks, 2)))
	assert.Equal(t, []string{"a", "d", "e"}, ids(UrgentTop(tasks, 5)))
}

func TestAddDays(t *testing.T) {
	assert.Equal(t, "2024-06-17", AddDays("2024-06-10", 7))
	assert.Equal(t, "2024-07-01", AddDays("2024-06-24", 7))
	assert.Equal(t, "garbage", AddDays("garbage", 7))
}
