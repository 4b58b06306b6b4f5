package notion

import (
	"regexp"
	"strings"
	"time"

	"github.com/leoking9009/notion-working/internal/model"
)

// Notice collection property names.
const (
	PropNoticeTitle   = "제목"
	PropNoticeContent = "내용"
	PropNoticeKind    = "선택"
	PropNoticeDate    = "작성일"
)

// Select option names for the notice kind.
const (
	kindImportant = "중요"
	kindGeneral   = "일반"
)

// noticeTitlePattern matches the "[author] title" encoding. Authors or
// titles that themselves contain brackets break the split; that is a
// known limitation of the stored format.
var noticeTitlePattern = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*)`)

// ParseNoticeTitle splits a stored title into author and display
// title. Titles without the bracket prefix belong to the anonymous
// author and keep the full string as title.
func ParseNoticeTitle(full string) (author, title string) {
	if m := noticeTitlePattern.FindStringSubmatch(full); m != nil {
		return m[1], m[2]
	}
	return model.AnonymousAuthor, full
}

// ComposeNoticeTitle re-encodes author and title for storage. An empty
// author is stored under the anonymous sentinel.
func ComposeNoticeTitle(author, title string) string {
	if author == "" {
		author = model.AnonymousAuthor
	}
	return "[" + author + "] " + title
}

// NoticeFromPage converts a raw page into a notice record. The posting
// date falls back to the page creation time when the date property is
// missing.
func NoticeFromPage(p Page) model.Notice {
	author, title := ParseNoticeTitle(p.Properties.TitleText(PropNoticeTitle))

	createdAt := p.Properties.DateStart(PropNoticeDate)
	if createdAt == "" && !p.CreatedTime.IsZero() {
		createdAt = p.CreatedTime.Format("2006-01-02")
	}

	important := p.Properties.SelectName(PropNoticeKind) == kindImportant
	kind := model.ImportanceGeneral
	if important {
		kind = model.ImportanceImportant
	}

	return model.Notice{
		ID:          p.ID,
		Title:       title,
		Content:     p.Properties.RichTextContent(PropNoticeContent),
		Author:      author,
		Type:        kind,
		IsImportant: important,
		CreatedAt:   createdAt,
	}
}

// NoticeProperties builds the full property bag for a notice.
func NoticeProperties(n model.Notice) Properties {
	return Properties{
		PropNoticeTitle:   NewTitle(ComposeNoticeTitle(n.Author, n.Title)),
		PropNoticeContent: NewRichText(n.Content),
		PropNoticeKind:    NewSelect(kindName(n.Type)),
		PropNoticeDate:    NewDate(n.CreatedAt),
	}
}

// NoticeCreateProperties builds the property bag for a new notice,
// stamped with the given posting date.
func NoticeCreateProperties(c model.NoticeCreate, date time.Time) Properties {
	return NoticeProperties(model.Notice{
		Title:     strings.TrimSpace(c.Title),
		Content:   c.Content,
		Author:    strings.TrimSpace(c.Author),
		Type:      c.Type,
		CreatedAt: date.Format("2006-01-02"),
	})
}

// KindSelect builds the select property for a notice importance.
func KindSelect(imp model.Importance) Property {
	return NewSelect(kindName(imp))
}

func kindName(imp model.Importance) string {
	if imp == model.ImportanceImportant {
		return kindImportant
	}
	return kindGeneral
}
