package apiclient

import (
	"context"
	"fmt"

	"github.com/leoking9009/notion-working/internal/model"
)

// Tasks fetches the full task collection.
func (c *Client) Tasks(ctx context.Context) ([]model.Task, error) {
	var resp model.TaskListResponse
	if err := c.get(ctx, "/database", &resp); err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0, len(resp.Results))
	for _, page := range resp.Results {
		tasks = append(tasks, page.Task)
	}
	return tasks, nil
}

// CreateTask creates a task.
func (c *Client) CreateTask(ctx context.Context, fields model.TaskCreate) (model.Task, error) {
	var resp model.MutationResponse
	if err := c.post(ctx, "/tasks", fields, &resp); err != nil {
		return model.Task{}, err
	}
	return resp.Page, nil
}

// UpdateTask applies a partial update to a task.
func (c *Client) UpdateTask(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	var resp model.MutationResponse
	if err := c.patch(ctx, "/tasks/"+id, patch, &resp); err != nil {
		return model.Task{}, err
	}
	return resp.Page, nil
}

// CompleteTask marks a task done.
func (c *Client) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	done := true
	return c.UpdateTask(ctx, id, model.TaskPatch{Completed: &done})
}

// DeleteTask soft-archives a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.delete(ctx, "/tasks/"+id, nil)
}

// Notices fetches the notice board, newest first.
func (c *Client) Notices(ctx context.Context) ([]model.Notice, error) {
	var resp model.NoticeListResponse
	if err := c.get(ctx, "/notices", &resp); err != nil {
		return nil, err
	}
	return resp.Notices, nil
}

// CreateNotice posts a notice.
func (c *Client) CreateNotice(ctx context.Context, fields model.NoticeCreate) error {
	return c.post(ctx, "/notices", fields, nil)
}

// DeleteNotice soft-archives a notice.
func (c *Client) DeleteNotice(ctx context.Context, id string) error {
	return c.delete(ctx, "/notices/"+id, nil)
}

// Comments fetches a notice's comments, oldest first.
func (c *Client) Comments(ctx context.Context, noticeID string) ([]model.Comment, error) {
	var resp model.CommentListResponse
	if err := c.get(ctx, "/comments/"+noticeID, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// CreateComment posts a comment under a notice.
func (c *Client) CreateComment(ctx context.Context, fields model.CommentCreate) error {
	return c.post(ctx, "/comments", fields, nil)
}

// DeleteComment soft-archives a comment.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.delete(ctx, "/comments/"+id, nil)
}

// Register signs a user in, creating a pending record on first
// contact and returning the current one afterwards.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	var resp model.RegisterResponse
	if err := c.post(ctx, "/register", req, &resp); err != nil {
		return model.User{}, err
	}
	return resp.User, nil
}

// Users fetches all registered users, newest first.
func (c *Client) Users(ctx context.Context) ([]model.User, error) {
	var resp model.UserListResponse
	if err := c.get(ctx, "/users", &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// UpdateUserStatus patches a user's status and/or role.
func (c *Client) UpdateUserStatus(ctx context.Context, id string, patch model.UserStatusPatch) error {
	return c.patch(ctx, fmt.Sprintf("/users/%s/status", id), patch, nil)
}
