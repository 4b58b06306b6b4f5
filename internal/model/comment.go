package model

import "time"

// Comment belongs to a notice by value of NoticeID. The reference is
// not enforced anywhere; deleting a notice leaves its comments behind.
type Comment struct {
	ID        string    `json:"id"`
	NoticeID  string    `json:"noticeId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentCreate carries the fields accepted when posting a comment.
type CommentCreate struct {
	Content  string `json:"content"`
	Author   string `json:"author"`
	NoticeID string `json:"noticeId"`
}
