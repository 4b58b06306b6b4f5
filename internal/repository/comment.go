package repository

import (
	"context"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
)

// ICommentRepository defines comment persistence against the store.
type ICommentRepository interface {
	ListByNotice(ctx context.Context, noticeID string) ([]notion.Page, error)
	Create(ctx context.Context, fields model.CommentCreate) (*notion.Page, error)
	Archive(ctx context.Context, id string) (*notion.Page, error)
}

// CommentRepository implements comment persistence.
type CommentRepository struct {
	cfg    *config.Config
	client *notion.Client
}

func NewCommentRepository(cfg *config.Config, client *notion.Client) ICommentRepository {
	return &CommentRepository{cfg: cfg, client: client}
}

// ListByNotice returns a notice's comments oldest first. The notice id
// match is plain value equality; nothing enforces the reference.
func (r *CommentRepository) ListByNotice(ctx context.Context, noticeID string) ([]notion.Page, error) {
	resp, err := r.client.QueryDatabase(ctx, r.cfg.Notion.CommentsDB, &notion.QueryRequest{
		Filter: &notion.Filter{
			Property: notion.PropCommentNotice,
			RichText: &notion.TextCondition{Equals: noticeID},
		},
		Sorts: []notion.Sort{{Timestamp: notion.TimestampCreated, Direction: notion.SortAscending}},
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (r *CommentRepository) Create(ctx context.Context, fields model.CommentCreate) (*notion.Page, error) {
	if r.cfg.Notion.CommentsDB == "" {
		return nil, notion.ErrNotConfigured
	}
	return r.client.CreatePage(ctx, &notion.PageCreateRequest{
		Parent:     notion.Parent{DatabaseID: r.cfg.Notion.CommentsDB},
		Properties: notion.CommentProperties(fields),
	})
}

func (r *CommentRepository) Archive(ctx context.Context, id string) (*notion.Page, error) {
	archived := true
	return r.client.UpdatePage(ctx, id, &notion.PageUpdateRequest{Archived: &archived})
}
