package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/leoking9009/notion-working/internal/apiclient"
	"github.com/leoking9009/notion-working/internal/model"
)

// adminModel is the user administration panel. The server does not
// check the caller's role; keeping non-admins out of this screen is a
// UI convention, same as the original.
type adminModel struct {
	client *apiclient.Client
	users  []model.User
	cursor int
}

func newAdminModel(client *apiclient.Client) adminModel {
	return adminModel{client: client}
}

func (m adminModel) load() tea.Cmd {
	client := m.client
	return run(func(ctx context.Context) tea.Msg {
		users, err := client.Users(ctx)
		if err != nil {
			return errMsg{err}
		}
		return usersLoadedMsg{users}
	})
}

func (a App) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	m := &a.admin

	if msg, ok := msg.(usersLoadedMsg); ok {
		m.users = msg.users
		if m.cursor >= len(m.users) {
			m.cursor = 0
		}
		return a, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "d", "esc":
		a.setView(dashboardViewValue())
		return a, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.users)-1 {
			m.cursor++
		}
	case "y":
		return a.patchUser(model.StatusApproved, nil)
	case "x":
		return a.patchUser(model.StatusRejected, nil)
	case "r":
		if m.cursor < len(m.users) {
			next := nextRole(m.users[m.cursor].Role)
			return a.patchUserRole(next)
		}
	case "R":
		return a, m.load()
	}
	return a, nil
}

func (a App) patchUser(status model.Status, role *model.Role) (tea.Model, tea.Cmd) {
	m := a.admin
	if m.cursor >= len(m.users) {
		return a, nil
	}
	id := m.users[m.cursor].ID
	patch := model.UserStatusPatch{Status: &status, Role: role}
	client := m.client
	reload := m.load()
	return a, run(func(ctx context.Context) tea.Msg {
		if err := client.UpdateUserStatus(ctx, id, patch); err != nil {
			return errMsg{err}
		}
		return reload()
	})
}

func (a App) patchUserRole(role model.Role) (tea.Model, tea.Cmd) {
	m := a.admin
	if m.cursor >= len(m.users) {
		return a, nil
	}
	id := m.users[m.cursor].ID
	patch := model.UserStatusPatch{Role: &role}
	client := m.client
	reload := m.load()
	return a, run(func(ctx context.Context) tea.Msg {
		if err := client.UpdateUserStatus(ctx, id, patch); err != nil {
			return errMsg{err}
		}
		return reload()
	})
}

func nextRole(r model.Role) model.Role {
	switch r {
	case model.RoleUser:
		return model.RoleLead
	case model.RoleLead:
		return model.RoleAdmin
	default:
		return model.RoleUser
	}
}

func (m adminModel) View() string {
	var b strings.Builder
	b.WriteString(selectedStyle.Render("사용자 관리"))
	b.WriteString("\n\n")

	if len(m.users) == 0 {
		b.WriteString(dimStyle.Render("  등록된 사용자가 없습니다"))
		b.WriteString("\n")
	}
	for i, u := range m.users {
		marker := "  "
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
		}
		status := string(u.Status)
		switch u.Status {
		case model.StatusApproved:
			status = selectedStyle.Render(status)
		case model.StatusRejected:
			status = errorStyle.Render(status)
		}
		line := fmt.Sprintf("%s <%s> · %s · %s", u.Name, u.Email, u.Role, status)
		b.WriteString(marker + line + "\n")
	}

	b.WriteString(helpStyle.Render("y approve · x reject · r cycle role · R refresh · esc back"))
	return b.String()
}
