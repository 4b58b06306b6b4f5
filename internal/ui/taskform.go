package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leoking9009/notion-working/internal/model"
)

// taskformModel is the modal create/edit form. Editing sends a patch
// with every visible field, so blanking the deadline there really
// clears the stored date.
type taskformModel struct {
	editing *model.Task
	inputs  []textinput.Model
	focus   int
	urgent  bool
}

const (
	fieldTitle = iota
	fieldAssignee
	fieldDeadline
	fieldSubmission
	fieldNotes
	fieldCount
)

func newTaskformModel(editing *model.Task) taskformModel {
	labels := []string{"과제명: ", "담당자: ", "마감일: ", "제출처: ", "비고:   "}
	placeholders := []string{"", "", "YYYY-MM-DD", "", ""}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = labels[i]
		in.Placeholder = placeholders[i]
		inputs[i] = in
	}
	inputs[fieldTitle].Focus()

	m := taskformModel{editing: editing, inputs: inputs}
	if editing != nil {
		m.inputs[fieldTitle].SetValue(editing.Title)
		m.inputs[fieldAssignee].SetValue(editing.Assignee)
		m.inputs[fieldDeadline].SetValue(editing.DueDate)
		m.inputs[fieldSubmission].SetValue(editing.SubmissionTo)
		m.inputs[fieldNotes].SetValue(editing.Notes)
		m.urgent = editing.Urgent
	}
	return m
}

func (a App) updateTaskform(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := a.taskform

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			a.taskform = nil
			return a, nil
		case "tab", "down":
			form.setFocus((form.focus + 1) % fieldCount)
			return a, nil
		case "shift+tab", "up":
			form.setFocus((form.focus + fieldCount - 1) % fieldCount)
			return a, nil
		case "ctrl+u":
			form.urgent = !form.urgent
			return a, nil
		case "enter":
			cmd := a.submitTaskform(*form)
			a.taskform = nil
			return a, cmd
		}
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	return a, cmd
}

func (m *taskformModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (a App) submitTaskform(form taskformModel) tea.Cmd {
	title := strings.TrimSpace(form.inputs[fieldTitle].Value())
	assignee := strings.TrimSpace(form.inputs[fieldAssignee].Value())
	deadline := strings.TrimSpace(form.inputs[fieldDeadline].Value())
	submission := strings.TrimSpace(form.inputs[fieldSubmission].Value())
	notes := strings.TrimSpace(form.inputs[fieldNotes].Value())
	urgent := form.urgent

	if form.editing == nil {
		fields := model.TaskCreate{
			Title:        title,
			Assignee:     assignee,
			DueDate:      deadline,
			Urgent:       urgent,
			SubmissionTo: submission,
			Notes:        notes,
		}
		return run(func(ctx context.Context) tea.Msg {
			if _, err := a.client.CreateTask(ctx, fields); err != nil {
				return errMsg{err}
			}
			return mutationDoneMsg{}
		})
	}

	id := form.editing.ID
	patch := model.TaskPatch{
		Title:        &title,
		Assignee:     &assignee,
		DueDate:      &deadline,
		Urgent:       &urgent,
		SubmissionTo: &submission,
		Notes:        &notes,
	}
	return run(func(ctx context.Context) tea.Msg {
		if _, err := a.client.UpdateTask(ctx, id, patch); err != nil {
			return errMsg{err}
		}
		return mutationDoneMsg{}
	})
}

func (m taskformModel) View() string {
	title := "새 과제"
	if m.editing != nil {
		title = "과제 수정"
	}

	lines := []string{headerStyle.Render(title), ""}
	for _, in := range m.inputs {
		lines = append(lines, in.View())
	}

	urgentLabel := "긴급: 아니오"
	if m.urgent {
		urgentLabel = urgentStyle.Render("긴급: 예")
	}
	lines = append(lines, "", urgentLabel,
		"", dimStyle.Render("enter save · esc cancel · tab next field · ctrl+u toggle urgent"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
