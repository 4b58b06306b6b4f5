package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leoking9009/notion-working/internal/model"
)

// tasksLoadedMsg is sent when the task collection has been fetched.
type tasksLoadedMsg struct {
	tasks []model.Task
}

// noticesLoadedMsg is sent when the notice board has been fetched.
type noticesLoadedMsg struct {
	notices []model.Notice
}

// commentsLoadedMsg is sent when a notice's comments have been
// fetched.
type commentsLoadedMsg struct {
	noticeID string
	comments []model.Comment
}

// usersLoadedMsg is sent when the user list has been fetched.
type usersLoadedMsg struct {
	users []model.User
}

// signedInMsg is sent after a successful registration round trip.
type signedInMsg struct {
	user model.User
}

// mutationDoneMsg is sent after any successful write. The application
// re-fetches rather than patching local state, so stale data can show
// briefly when two commands overlap; the next refresh settles it.
type mutationDoneMsg struct{}

// errMsg carries a failed operation's error to the active view.
type errMsg struct {
	err error
}

const requestTimeout = 30 * time.Second

// run wraps a client call into a command with a bounded context.
func run(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return fn(ctx)
	}
}
