// Package ui is the terminal dashboard: sign-in, the admission status
// screen, and the navigable task/notice/admin views.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leoking9009/notion-working/internal/apiclient"
	"github.com/leoking9009/notion-working/internal/filter"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/session"
)

// screen is the coarse application state.
type screen int

const (
	screenSignIn screen = iota
	screenBlocked
	screenMain
)

// App is the root model.
type App struct {
	client *apiclient.Client
	store  session.Store

	screen screen
	sess   *session.Session
	view   filter.View
	tasks  []model.Task
	err    string

	signin   signinModel
	tasklist tasklistModel
	taskform *taskformModel
	notices  noticesModel
	admin    adminModel

	width  int
	height int
}

// New creates the root model on the given starting view. A stored
// session skips the sign-in screen; its admission status is re-checked
// against the server on startup.
func New(client *apiclient.Client, store session.Store, startView filter.View) App {
	app := App{
		client:   client,
		store:    store,
		screen:   screenSignIn,
		view:     startView,
		signin:   newSigninModel(),
		tasklist: newTasklistModel(),
		notices:  newNoticesModel(client),
		admin:    newAdminModel(client),
	}
	if sess, err := store.Load(); err == nil && sess != nil {
		app.sess = sess
		app.applyAdmission(sess.User)
	}
	return app
}

// Init re-registers a stored identity (adopting any status change an
// admin made meanwhile) and loads tasks when already admitted.
func (a App) Init() tea.Cmd {
	if a.sess == nil {
		return nil
	}
	cmds := []tea.Cmd{a.refreshStatus()}
	if a.screen == screenMain {
		cmds = append(cmds, a.loadTasks())
		switch a.view.Kind {
		case filter.ViewNotices:
			cmds = append(cmds, a.notices.load())
		case filter.ViewAdmin:
			cmds = append(cmds, a.admin.load())
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) applyAdmission(user model.User) {
	if session.Admit(user.Status).Blocked() {
		a.screen = screenBlocked
	} else {
		a.screen = screenMain
	}
}

func (a App) refreshStatus() tea.Cmd {
	req := model.RegisterRequest{
		ExternalID: a.sess.User.ExternalID,
		Name:       a.sess.User.Name,
		Email:      a.sess.User.Email,
		PictureURL: a.sess.User.PictureURL,
	}
	return run(func(ctx context.Context) tea.Msg {
		user, err := a.client.Register(ctx, req)
		if err != nil {
			return errMsg{err}
		}
		return signedInMsg{user}
	})
}

func (a App) loadTasks() tea.Cmd {
	return run(func(ctx context.Context) tea.Msg {
		tasks, err := a.client.Tasks(ctx)
		if err != nil {
			return errMsg{err}
		}
		return tasksLoadedMsg{tasks}
	})
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case errMsg:
		a.err = msg.err.Error()
		return a, nil

	case signedInMsg:
		a.err = ""
		a.sess = &session.Session{User: msg.user, SignedInAt: time.Now()}
		if err := a.store.Save(a.sess); err != nil {
			a.err = err.Error()
		}
		a.applyAdmission(msg.user)
		if a.screen == screenMain {
			return a, a.loadTasks()
		}
		return a, nil

	case tasksLoadedMsg:
		a.err = ""
		a.tasks = msg.tasks
		return a, nil

	case mutationDoneMsg:
		// No optimistic patching: every successful command re-fetches
		// the whole collection.
		return a, a.loadTasks()
	}

	switch a.screen {
	case screenSignIn:
		return a.updateSignIn(msg)
	case screenBlocked:
		return a.updateBlocked(msg)
	default:
		return a.updateMain(msg)
	}
}

func (a App) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return a, tea.Quit
	}
	var cmd tea.Cmd
	var submitted *model.RegisterRequest
	a.signin, submitted, cmd = a.signin.Update(msg)
	if submitted != nil {
		req := *submitted
		return a, run(func(ctx context.Context) tea.Msg {
			user, err := a.client.Register(ctx, req)
			if err != nil {
				return errMsg{err}
			}
			return signedInMsg{user}
		})
	}
	return a, cmd
}

func (a App) updateBlocked(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	switch key.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "s":
		return a.signOut()
	case "r":
		return a, a.refreshStatus()
	}
	return a, nil
}

func (a App) signOut() (tea.Model, tea.Cmd) {
	if err := a.store.Clear(); err != nil {
		a.err = err.Error()
		return a, nil
	}
	a.sess = nil
	a.screen = screenSignIn
	a.signin = newSigninModel()
	return a, nil
}

func (a App) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	// A modal task form captures all input while open.
	if a.taskform != nil {
		return a.updateTaskform(msg)
	}

	switch a.view.Kind {
	case filter.ViewNotices:
		return a.updateNotices(msg)
	case filter.ViewAdmin:
		return a.updateAdmin(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "S":
		return a.signOut()
	case "R":
		return a, a.loadTasks()
	case "d":
		a.setView(filter.View{Kind: filter.ViewDashboard})
		return a, nil
	case "a":
		a.setView(filter.View{Kind: filter.ViewAll})
		return a, nil
	case "n":
		a.setView(filter.View{Kind: filter.ViewNotices})
		return a, a.notices.load()
	case "m":
		a.setView(filter.View{Kind: filter.ViewAdmin})
		return a, a.admin.load()
	case "1":
		a.setView(filter.View{Kind: filter.ViewProgress})
		return a, nil
	case "2":
		a.setView(filter.View{Kind: filter.ViewToday})
		return a, nil
	case "3":
		a.setView(filter.View{Kind: filter.ViewOverdue})
		return a, nil
	case "4":
		a.setView(filter.View{Kind: filter.ViewWithin7Days})
		return a, nil
	case "5":
		a.setView(filter.View{Kind: filter.ViewUrgent})
		return a, nil
	case "6":
		a.setView(filter.View{Kind: filter.ViewCompleted})
		return a, nil
	case "A":
		if a.sess != nil {
			a.setView(filter.ByAssignee(a.sess.User.Name))
		}
		return a, nil
	}

	if a.view.Kind == filter.ViewAll || a.view.IsTaskFilter() {
		return a.updateTasklist(msg, key)
	}
	return a, nil
}

func dashboardViewValue() filter.View {
	return filter.View{Kind: filter.ViewDashboard}
}

// setView switches screens without touching the already-fetched task
// collection.
func (a *App) setView(v filter.View) {
	a.err = ""
	a.view = v
	a.tasklist.cursor = 0
}

// visibleTasks applies the current view to the cached collection.
func (a App) visibleTasks() []model.Task {
	return filter.Apply(a.tasks, a.view, filter.CivilToday())
}

// View renders the active screen.
func (a App) View() string {
	var body string
	switch a.screen {
	case screenSignIn:
		body = a.signin.View()
	case screenBlocked:
		body = a.blockedView()
	default:
		body = a.mainView()
	}
	if a.err != "" {
		body += "\n" + errorStyle.Render("error: "+a.err)
	}
	return body
}

func (a App) mainView() string {
	if a.taskform != nil {
		return a.taskform.View()
	}

	title := headerStyle.Render("팀 과제 대시보드") + dimStyle.Render("  "+a.view.String())
	var content string
	switch a.view.Kind {
	case filter.ViewDashboard:
		content = a.dashboardView()
	case filter.ViewNotices:
		content = a.notices.View()
	case filter.ViewAdmin:
		content = a.admin.View()
	default:
		content = a.tasklist.View(a.visibleTasks(), a.view)
	}

	help := helpStyle.Render(
		"d dashboard · a all · 1-6 filters · A mine · n notices · m admin · R refresh · S sign out · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}
