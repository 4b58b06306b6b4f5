package repository

import (
	"context"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
)

// IUserRepository defines user persistence against the store.
type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*notion.Page, error)
	List(ctx context.Context) ([]notion.Page, error)
	Create(ctx context.Context, user model.User) (*notion.Page, error)
	UpdateStatus(ctx context.Context, id string, patch model.UserStatusPatch) (*notion.Page, error)
}

// UserRepository implements user persistence.
type UserRepository struct {
	cfg    *config.Config
	client *notion.Client
}

func NewUserRepository(cfg *config.Config, client *notion.Client) IUserRepository {
	return &UserRepository{cfg: cfg, client: client}
}

// FindByEmail returns the first user page matching the email, or nil
// when none exists. Email is the canonical lookup key; the external
// identity id is stored but never queried.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*notion.Page, error) {
	resp, err := r.client.QueryDatabase(ctx, r.cfg.Notion.UsersDB, &notion.QueryRequest{
		Filter: &notion.Filter{
			Property: notion.PropUserEmail,
			Email:    &notion.TextCondition{Equals: email},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// List returns all user pages newest first.
func (r *UserRepository) List(ctx context.Context) ([]notion.Page, error) {
	resp, err := r.client.QueryDatabase(ctx, r.cfg.Notion.UsersDB, &notion.QueryRequest{
		Sorts: []notion.Sort{{Timestamp: notion.TimestampCreated, Direction: notion.SortDescending}},
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (*notion.Page, error) {
	if r.cfg.Notion.UsersDB == "" {
		return nil, notion.ErrNotConfigured
	}
	return r.client.CreatePage(ctx, &notion.PageCreateRequest{
		Parent:     notion.Parent{DatabaseID: r.cfg.Notion.UsersDB},
		Properties: notion.UserProperties(user),
	})
}

func (r *UserRepository) UpdateStatus(ctx context.Context, id string, patch model.UserStatusPatch) (*notion.Page, error) {
	return r.client.UpdatePage(ctx, id, &notion.PageUpdateRequest{
		Properties: notion.UserStatusProperties(patch),
	})
}
