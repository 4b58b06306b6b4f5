package filter

import "strings"

// ViewKind enumerates the navigable views.
type ViewKind int

const (
	ViewDashboard ViewKind = iota
	ViewAll
	ViewNotices
	ViewAdmin
	ViewProgress
	ViewToday
	ViewOverdue
	ViewWithin7Days
	ViewUrgent
	ViewCompleted
	ViewAssignee
)

// View selects a screen or a filtered task subset. The assignee name
// is only meaningful for ViewAssignee.
type View struct {
	Kind     ViewKind
	Assignee string
}

// ByAssignee builds the per-assignee view.
func ByAssignee(name string) View {
	return View{Kind: ViewAssignee, Assignee: name}
}

var viewNames = map[ViewKind]string{
	ViewDashboard:   "dashboard",
	ViewAll:         "all",
	ViewNotices:     "notices",
	ViewAdmin:       "admin",
	ViewProgress:    "progress",
	ViewToday:       "today",
	ViewOverdue:     "overdue",
	ViewWithin7Days: "within7days",
	ViewUrgent:      "urgent",
	ViewCompleted:   "completed",
}

const assigneePrefix = "assignee:"

// ParseView decodes a view selector string. Unrecognized selectors
// fall back to the dashboard.
func ParseView(s string) View {
	if name, ok := strings.CutPrefix(s, assigneePrefix); ok {
		return ByAssignee(name)
	}
	for kind, name := range viewNames {
		if s == name {
			return View{Kind: kind}
		}
	}
	return View{Kind: ViewDashboard}
}

// String encodes the view back into its selector form.
func (v View) String() string {
	if v.Kind == ViewAssignee {
		return assigneePrefix + v.Assignee
	}
	if name, ok := viewNames[v.Kind]; ok {
		return name
	}
	return "dashboard"
}

// IsTaskFilter reports whether the view narrows the task collection
// (as opposed to selecting a whole screen).
func (v View) IsTaskFilter() bool {
	switch v.Kind {
	case ViewProgress, ViewToday, ViewOverdue, ViewWithin7Days, ViewUrgent, ViewCompleted, ViewAssignee:
		return true
	}
	return false
}
