package model

import "time"

// Task is the canonical task record. Due dates are civil dates carried
// as ISO YYYY-MM-DD strings; an empty string means no due date.
type Task struct {
	ID           string    `json:"id"`
	Assignee     string    `json:"assignee"`
	Title        string    `json:"taskName"`
	DueDate      string    `json:"deadline,omitempty"`
	Completed    bool      `json:"completed"`
	Urgent       bool      `json:"urgent"`
	SubmissionTo string    `json:"submissionTo"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TaskCreate carries the fields accepted when creating a task. Missing
// optional fields default to their zero values.
type TaskCreate struct {
	Assignee     string `json:"assignee"`
	Title        string `json:"taskName"`
	DueDate      string `json:"deadline"`
	Completed    bool   `json:"completed"`
	Urgent       bool   `json:"urgent"`
	SubmissionTo string `json:"submissionTo"`
	Notes        string `json:"notes"`
}

// TaskPatch is a partial task update. A nil field means "leave as is";
// a non-nil pointer to a zero value is an explicit clear. Clearing the
// due date (pointer to "") removes the date from the record.
type TaskPatch struct {
	Assignee     *string `json:"assignee"`
	Title        *string `json:"taskName"`
	DueDate      *string `json:"deadline"`
	Completed    *bool   `json:"completed"`
	Urgent       *bool   `json:"urgent"`
	SubmissionTo *string `json:"submissionTo"`
	Notes        *string `json:"notes"`
}

// Empty reports whether the patch carries no fields at all.
func (p TaskPatch) Empty() bool {
	return p.Assignee == nil && p.Title == nil && p.DueDate == nil &&
		p.Completed == nil && p.Urgent == nil && p.SubmissionTo == nil && p.Notes == nil
}
