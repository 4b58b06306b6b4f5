package notion

import (
	"github.com/leoking9009/notion-working/internal/model"
)

// Task collection property names, as they exist in the live database.
const (
	PropAssignee     = "담당자"
	PropTaskName     = "과제명"
	PropDeadline     = "마감일"
	PropCompleted    = "완료"
	PropUrgent       = "긴급"
	PropSubmissionTo = "제출처"
	PropNotes        = "비고"
)

// TaskFromPage converts a raw page into a task record. Absent or
// malformed properties degrade to zero values.
func TaskFromPage(p Page) model.Task {
	return model.Task{
		ID:           p.ID,
		Assignee:     p.Properties.TitleText(PropAssignee),
		Title:        p.Properties.RichTextContent(PropTaskName),
		DueDate:      p.Properties.DateStart(PropDeadline),
		Completed:    p.Properties.CheckboxValue(PropCompleted),
		Urgent:       p.Properties.CheckboxValue(PropUrgent),
		SubmissionTo: p.Properties.RichTextContent(PropSubmissionTo),
		Notes:        p.Properties.RichTextContent(PropNotes),
		CreatedAt:    p.CreatedTime,
		UpdatedAt:    p.LastEditedTime,
	}
}

// TaskProperties converts a task record into its full property bag.
// The due date property is only present when the task has one.
func TaskProperties(t model.Task) Properties {
	props := Properties{
		PropAssignee:     NewTitle(t.Assignee),
		PropTaskName:     NewRichText(t.Title),
		PropCompleted:    NewCheckbox(t.Completed),
		PropUrgent:       NewCheckbox(t.Urgent),
		PropSubmissionTo: NewRichText(t.SubmissionTo),
		PropNotes:        NewRichText(t.Notes),
	}
	if t.DueDate != "" {
		props[PropDeadline] = NewDate(t.DueDate)
	}
	return props
}

// TaskCreateProperties builds the property bag for a new task,
// substituting defaults for missing optional fields.
func TaskCreateProperties(c model.TaskCreate) Properties {
	return TaskProperties(model.Task{
		Assignee:     c.Assignee,
		Title:        c.Title,
		DueDate:      c.DueDate,
		Completed:    c.Completed,
		Urgent:       c.Urgent,
		SubmissionTo: c.SubmissionTo,
		Notes:        c.Notes,
	})
}

// TaskPatchProperties builds a property bag carrying only the fields
// present in the patch. An explicit empty due date clears the stored
// date; an absent one leaves it untouched.
func TaskPatchProperties(patch model.TaskPatch) Properties {
	props := Properties{}
	if patch.Assignee != nil {
		props[PropAssignee] = NewTitle(*patch.Assignee)
	}
	if patch.Title != nil {
		props[PropTaskName] = NewRichText(*patch.Title)
	}
	if patch.Completed != nil {
		props[PropCompleted] = NewCheckbox(*patch.Completed)
	}
	if patch.Urgent != nil {
		props[PropUrgent] = NewCheckbox(*patch.Urgent)
	}
	if patch.SubmissionTo != nil {
		props[PropSubmissionTo] = NewRichText(*patch.SubmissionTo)
	}
	if patch.Notes != nil {
		props[PropNotes] = NewRichText(*patch.Notes)
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			props[PropDeadline] = NullDate()
		} else {
			props[PropDeadline] = NewDate(*patch.DueDate)
		}
	}
	return props
}
