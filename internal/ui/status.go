package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leoking9009/notion-working/internal/session"
)

// blockedView is the status screen shown to everyone who is not
// approved. It offers nothing but a refresh and a way out.
func (a App) blockedView() string {
	var headline, detail string
	switch session.Admit(a.sess.User.Status) {
	case session.BlockedRejected:
		headline = "가입이 거절되었습니다"
		detail = "관리자에게 문의해 주세요."
	default:
		headline = "승인 대기 중입니다"
		detail = "관리자가 가입을 승인하면 대시보드를 사용할 수 있습니다."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		headerStyle.Render(headline),
		"",
		a.sess.User.Name+" <"+a.sess.User.Email+">",
		dimStyle.Render(detail),
		"",
		helpStyle.Render("r refresh status · s sign out · q quit"),
	)
}
