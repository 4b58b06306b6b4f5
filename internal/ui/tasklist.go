package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leoking9009/notion-working/internal/filter"
	"github.com/leoking9009/notion-working/internal/model"
)

// tasklistModel is the cursor state over whichever filtered subset is
// on screen. The tasks themselves live on the root model.
type tasklistModel struct {
	cursor int
}

func newTasklistModel() tasklistModel {
	return tasklistModel{}
}

var viewTitles = map[filter.ViewKind]string{
	filter.ViewAll:         "전체 과제",
	filter.ViewProgress:    "진행중 과제",
	filter.ViewToday:       "오늘 마감 과제",
	filter.ViewOverdue:     "지연 과제",
	filter.ViewWithin7Days: "7일 내 마감 과제",
	filter.ViewUrgent:      "긴급 과제",
	filter.ViewCompleted:   "완료 과제",
}

// updateTasklist handles keys for the list screens: navigation plus
// the complete/delete/edit/create commands. Every successful command
// re-fetches the collection via mutationDoneMsg.
func (a App) updateTasklist(msg tea.Msg, key tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := a.visibleTasks()

	switch key.String() {
	case "up", "k":
		if a.tasklist.cursor > 0 {
			a.tasklist.cursor--
		}
	case "down", "j":
		if a.tasklist.cursor < len(visible)-1 {
			a.tasklist.cursor++
		}
	case "c":
		if t, ok := selectedTask(visible, a.tasklist.cursor); ok {
			return a, a.completeTask(t.ID)
		}
	case "x":
		if t, ok := selectedTask(visible, a.tasklist.cursor); ok {
			return a, a.deleteTask(t.ID)
		}
	case "e":
		if t, ok := selectedTask(visible, a.tasklist.cursor); ok {
			form := newTaskformModel(&t)
			a.taskform = &form
		}
	case "N":
		form := newTaskformModel(nil)
		a.taskform = &form
	}
	return a, nil
}

func selectedTask(tasks []model.Task, cursor int) (model.Task, bool) {
	if cursor < 0 || cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[cursor], true
}

func (a App) completeTask(id string) tea.Cmd {
	return run(func(ctx context.Context) tea.Msg {
		if _, err := a.client.CompleteTask(ctx, id); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{}
	})
}

func (a App) deleteTask(id string) tea.Cmd {
	return run(func(ctx context.Context) tea.Msg {
		if err := a.client.DeleteTask(ctx, id); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{}
	})
}

// View renders the filtered list with the cursor.
func (m tasklistModel) View(tasks []model.Task, v filter.View) string {
	title := viewTitles[v.Kind]
	if v.Kind == filter.ViewAssignee {
		title = v.Assignee + " 담당 과제"
	}

	var b strings.Builder
	b.WriteString(selectedStyle.Render(title))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  총 %d개", len(tasks))))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(dimStyle.Render("  해당하는 과제가 없습니다"))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		marker := "  "
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
		}
		line := taskLine(t)
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString(helpStyle.Render("c complete · x delete · e edit · N new task · j/k move"))
	return b.String()
}

func taskLine(t model.Task) string {
	title := t.Title
	if title == "" {
		title = dimStyle.Render("(제목 없음)")
	}
	if t.Completed {
		title = doneStyle.Render(title)
	}

	parts := []string{title}
	if t.Assignee != "" {
		parts = append(parts, t.Assignee)
	}
	if t.DueDate != "" {
		parts = append(parts, "~"+t.DueDate)
	}
	line := strings.Join(parts, " · ")
	if t.Urgent && !t.Completed {
		line += " " + urgentStyle.Render("[긴급]")
	}
	return line
}
