package notion

import (
	"github.com/leoking9009/notion-working/internal/model"
)

// Comment collection property names.
const (
	PropCommentContent = "내용"
	PropCommentAuthor  = "작성자"
	PropCommentNotice  = "공지사항 ID"
)

// CommentFromPage converts a raw page into a comment record.
func CommentFromPage(p Page) model.Comment {
	return model.Comment{
		ID:        p.ID,
		NoticeID:  p.Properties.RichTextContent(PropCommentNotice),
		Author:    p.Properties.RichTextContent(PropCommentAuthor),
		Content:   p.Properties.RichTextContent(PropCommentContent),
		CreatedAt: p.CreatedTime,
	}
}

// CommentProperties builds the property bag for a comment.
func CommentProperties(c model.CommentCreate) Properties {
	return Properties{
		PropCommentContent: NewRichText(c.Content),
		PropCommentAuthor:  NewRichText(c.Author),
		PropCommentNotice:  NewRichText(c.NoticeID),
	}
}
