package notion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leoking9009/notion-working/internal/model"
)

func TestParseNoticeTitle(t *testing.T) {
	tests := []struct {
		name       string
		full       string
		wantAuthor string
		wantTitle  string
	}{
		{"bracketed", "[Alice] Weekly Update", "Alice", "Weekly Update"},
		{"korean author", "[김철수] 회의 일정", "김철수", "회의 일정"},
		{"no bracket means anonymous", "Weekly Update", model.AnonymousAuthor, "Weekly Update"},
		{"empty string", "", model.AnonymousAuthor, ""},
		{"bracket only no title", "[Alice] ", "Alice", ""},
		{"no space after bracket", "[Alice]Update", "Alice", "Update"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, title := ParseNoticeTitle(tt.full)
			assert.Equal(t, tt.wantAuthor, author)
			assert.Equal(t, tt.wantTitle, title)
		})
	}
}

func TestComposeNoticeTitle(t *testing.T) {
	assert.Equal(t, "[Alice] Update", ComposeNoticeTitle("Alice", "Update"))
	assert.Equal(t, "[익명] Update", ComposeNoticeTitle("", "Update"))

	// Compose then parse recovers the pair.
	author, title := ParseNoticeTitle(ComposeNoticeTitle("김철수", "회의"))
	assert.Equal(t, "김철수", author)
	assert.Equal(t, "회의", title)
}

func TestNoticeFromPage(t *testing.T) {
	t.Run("full record", func(t *testing.T) {
		page := Page{
			ID: "n-1",
			Properties: Properties{
				PropNoticeTitle:   NewTitle("[Alice] Release"),
				PropNoticeContent: NewRichText("Shipping Friday"),
				PropNoticeKind:    NewSelect("중요"),
				PropNoticeDate:    NewDate("2024-06-01"),
			},
		}
		got := NoticeFromPage(page)
		assert.Equal(t, "n-1", got.ID)
		assert.Equal(t, "Alice", got.Author)
		assert.Equal(t, "Release", got.Title)
		assert.Equal(t, "Shipping Friday", got.Content)
		assert.Equal(t, model.ImportanceImportant, got.Type)
		assert.True(t, got.IsImportant)
		assert.Equal(t, "2024-06-01", got.CreatedAt)
	})

	t.Run("missing date falls back to page creation time", func(t *testing.T) {
		page := Page{
			CreatedTime: time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC),
			Properties: Properties{
				PropNoticeTitle: NewTitle("공지"),
			},
		}
		got := NoticeFromPage(page)
		assert.Equal(t, "2024-05-20", got.CreatedAt)
		assert.Equal(t, model.ImportanceGeneral, got.Type)
		assert.False(t, got.IsImportant)
	})

	t.Run("unknown kind reads as general", func(t *testing.T) {
		page := Page{
			Properties: Properties{
				PropNoticeKind: NewSelect("뭔가"),
			},
		}
		got := NoticeFromPage(page)
		assert.Equal(t, model.ImportanceGeneral, got.Type)
	})
}

func TestNoticeCreateProperties(t *testing.T) {
	date := time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC)
	props := NoticeCreateProperties(model.NoticeCreate{
		Title:  "  Release  ",
		Author: " Alice ",
		Type:   model.ImportanceImportant,
	}, date)

	assert.Equal(t, "[Alice] Release", props.TitleText(PropNoticeTitle))
	assert.Equal(t, "중요", props.SelectName(PropNoticeKind))
	assert.Equal(t, "2024-06-15", props.DateStart(PropNoticeDate))
}
