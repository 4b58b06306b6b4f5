package model

// Importance classifies a notice.
type Importance string

const (
	ImportanceGeneral   Importance = "general"
	ImportanceImportant Importance = "important"
)

// AnonymousAuthor is the sentinel used when a notice title carries no
// author prefix. Kept in the original language for wire compatibility.
const AnonymousAuthor = "익명"

// Notice is a board posting. On the wire the author is folded into the
// stored title as "[author] title"; the adapter splits it back apart.
type Notice struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	Type        Importance `json:"type"`
	IsImportant bool       `json:"isImportant"`
	CreatedAt   string     `json:"createdAt"`
}

// NoticeCreate carries the fields accepted when posting a notice.
type NoticeCreate struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	Author  string     `json:"author"`
	Type    Importance `json:"type"`
}

// NoticePatch is a partial notice update; nil means leave as is.
type NoticePatch struct {
	Title   *string     `json:"title"`
	Content *string     `json:"content"`
	Author  *string     `json:"author"`
	Type    *Importance `json:"type"`
}
