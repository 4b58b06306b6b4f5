package model

// ErrorResponse is the error envelope every endpoint returns.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates an error envelope.
func NewErrorResponse(message, details string) ErrorResponse {
	return ErrorResponse{Error: message, Details: details}
}

// TaskListResponse is the raw page dump returned by GET /database,
// mirroring the store's own query envelope.
type TaskListResponse struct {
	Results    []TaskPage `json:"results"`
	NextCursor string     `json:"next_cursor,omitempty"`
	HasMore    bool       `json:"has_more"`
}

// TaskPage is one entry of the raw dump: the page metadata plus the
// parsed task record, so clients need no property-bag knowledge.
type TaskPage struct {
	ID             string `json:"id"`
	CreatedTime    string `json:"created_time"`
	LastEditedTime string `json:"last_edited_time"`
	Task           Task   `json:"task"`
}

// MutationResponse is the success envelope for task mutations.
type MutationResponse struct {
	Success bool `json:"success"`
	Page    Task `json:"page"`
}

// NoticeListResponse wraps GET /notices.
type NoticeListResponse struct {
	Notices []Notice `json:"notices"`
}

// CommentListResponse wraps GET /comments/:noticeId.
type CommentListResponse struct {
	Comments []Comment `json:"comments"`
}

// UserListResponse wraps GET /users.
type UserListResponse struct {
	Users []User `json:"users"`
}

// RegisterResponse wraps POST /register and POST /users/register.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}
