package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leoking9009/notion-working/internal/model"
)

// signinModel collects the identity used to register. There is no
// password: the admission decision lives server-side with the admins.
type signinModel struct {
	email textinput.Model
	name  textinput.Model
	focus int
}

func newSigninModel() signinModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "email: "
	email.Focus()

	name := textinput.New()
	name.Placeholder = "display name (optional)"
	name.Prompt = "name:  "

	return signinModel{email: email, name: name}
}

func (m signinModel) Update(msg tea.Msg) (signinModel, *model.RegisterRequest, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.email.Focus()
				m.name.Blur()
			} else {
				m.name.Focus()
				m.email.Blur()
			}
			return m, nil, nil
		case "enter":
			email := strings.TrimSpace(m.email.Value())
			if email == "" {
				return m, nil, nil
			}
			return m, &model.RegisterRequest{
				Email: email,
				Name:  strings.TrimSpace(m.name.Value()),
			}, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.name, cmd = m.name.Update(msg)
	}
	return m, nil, cmd
}

func (m signinModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render("로그인"),
		"",
		m.email.View(),
		m.name.View(),
		"",
		dimStyle.Render("enter to sign in · tab to switch field · ctrl+c to quit"),
	)
}
