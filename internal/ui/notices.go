package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leoking9009/notion-working/internal/apiclient"
	"github.com/leoking9009/notion-working/internal/model"
)

// noticesModel is the notice board: the list, an opened notice with
// its comments, and a comment input.
type noticesModel struct {
	client   *apiclient.Client
	notices  []model.Notice
	comments []model.Comment
	cursor   int
	opened   *model.Notice
	input    textinput.Model
	typing   bool
}

func newNoticesModel(client *apiclient.Client) noticesModel {
	input := textinput.New()
	input.Prompt = "댓글: "
	return noticesModel{client: client, input: input}
}

func (m noticesModel) load() tea.Cmd {
	client := m.client
	return run(func(ctx context.Context) tea.Msg {
		notices, err := client.Notices(ctx)
		if err != nil {
			return errMsg{err}
		}
		return noticesLoadedMsg{notices}
	})
}

func (m noticesModel) loadComments(noticeID string) tea.Cmd {
	client := m.client
	return run(func(ctx context.Context) tea.Msg {
		comments, err := client.Comments(ctx, noticeID)
		if err != nil {
			return errMsg{err}
		}
		return commentsLoadedMsg{noticeID: noticeID, comments: comments}
	})
}

func (a App) updateNotices(msg tea.Msg) (tea.Model, tea.Cmd) {
	m := &a.notices

	switch msg := msg.(type) {
	case noticesLoadedMsg:
		m.notices = msg.notices
		if m.cursor >= len(m.notices) {
			m.cursor = 0
		}
		return a, nil
	case commentsLoadedMsg:
		if m.opened != nil && m.opened.ID == msg.noticeID {
			m.comments = msg.comments
		}
		return a, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	if m.typing {
		switch key.String() {
		case "esc":
			m.typing = false
			m.input.Blur()
			return a, nil
		case "enter":
			content := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			m.typing = false
			m.input.Blur()
			if content == "" || m.opened == nil {
				return a, nil
			}
			return a, a.postComment(m.opened.ID, content)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return a, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "d":
		m.opened = nil
		a.setView(dashboardViewValue())
		return a, nil
	case "esc":
		if m.opened != nil {
			m.opened = nil
			m.comments = nil
			return a, nil
		}
		a.setView(dashboardViewValue())
		return a, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.notices)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(m.notices) {
			opened := m.notices[m.cursor]
			m.opened = &opened
			m.comments = nil
			return a, m.loadComments(opened.ID)
		}
	case "x":
		if m.opened != nil {
			return a, a.deleteNotice(m.opened.ID)
		}
		if m.cursor < len(m.notices) {
			return a, a.deleteNotice(m.notices[m.cursor].ID)
		}
	case "w":
		if m.opened != nil {
			m.typing = true
			m.input.Focus()
			return a, textinput.Blink
		}
	case "R":
		return a, m.load()
	}
	return a, nil
}

func (a App) postComment(noticeID, content string) tea.Cmd {
	author := a.sess.User.Name
	client := a.notices.client
	reload := a.notices.loadComments(noticeID)
	return run(func(ctx context.Context) tea.Msg {
		err := client.CreateComment(ctx, model.CommentCreate{
			Content:  content,
			Author:   author,
			NoticeID: noticeID,
		})
		if err != nil {
			return errMsg{err}
		}
		return reload()
	})
}

func (a App) deleteNotice(id string) tea.Cmd {
	client := a.notices.client
	reload := a.notices.load()
	return run(func(ctx context.Context) tea.Msg {
		if err := client.DeleteNotice(ctx, id); err != nil {
			return errMsg{err}
		}
		return reload()
	})
}

func (m noticesModel) View() string {
	if m.opened != nil {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(selectedStyle.Render("공지사항"))
	b.WriteString("\n\n")

	if len(m.notices) == 0 {
		b.WriteString(dimStyle.Render("  공지사항이 없습니다"))
		b.WriteString("\n")
	}
	for i, n := range m.notices {
		marker := "  "
		if i == m.cursor {
			marker = selectedStyle.Render("> ")
		}
		line := n.Title
		if n.IsImportant {
			line = importantStyle.Render("[중요] ") + line
		}
		line += dimStyle.Render(fmt.Sprintf("  %s · %s", n.Author, n.CreatedAt))
		b.WriteString(marker + line + "\n")
	}

	b.WriteString(helpStyle.Render("enter open · x delete · R refresh · esc back"))
	return b.String()
}

func (m noticesModel) detailView() string {
	n := m.opened

	var b strings.Builder
	title := n.Title
	if n.IsImportant {
		title = importantStyle.Render("[중요] ") + title
	}
	b.WriteString(selectedStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(n.Author + " · " + n.CreatedAt))
	b.WriteString("\n\n")
	b.WriteString(n.Content)
	b.WriteString("\n\n")

	b.WriteString(selectedStyle.Render(fmt.Sprintf("댓글 (%d)", len(m.comments))))
	b.WriteString("\n")
	for _, comment := range m.comments {
		b.WriteString(fmt.Sprintf("  %s: %s\n", comment.Author, comment.Content))
	}

	if m.typing {
		b.WriteString("\n" + m.input.View())
	}
	b.WriteString(helpStyle.Render("w write comment · x delete notice · esc back"))
	return b.String()
}
