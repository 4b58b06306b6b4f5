package repository

import (
	"context"
	"time"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
)

// INoticeRepository defines notice persistence against the store.
type INoticeRepository interface {
	List(ctx context.Context) ([]notion.Page, error)
	Get(ctx context.Context, id string) (*notion.Page, error)
	Create(ctx context.Context, fields model.NoticeCreate, date time.Time) (*notion.Page, error)
	Update(ctx context.Context, id string, props notion.Properties) (*notion.Page, error)
	Archive(ctx context.Context, id string) (*notion.Page, error)
}

// NoticeRepository implements notice persistence.
type NoticeRepository struct {
	cfg    *config.Config
	client *notion.Client
}

func NewNoticeRepository(cfg *config.Config, client *notion.Client) INoticeRepository {
	return &NoticeRepository{cfg: cfg, client: client}
}

// List returns notice pages newest first.
func (r *NoticeRepository) List(ctx context.Context) ([]notion.Page, error) {
	resp, err := r.client.QueryDatabase(ctx, r.cfg.Notion.NoticesDB, &notion.QueryRequest{
		Sorts: []notion.Sort{{Property: notion.PropNoticeDate, Direction: notion.SortDescending}},
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

func (r *NoticeRepository) Get(ctx context.Context, id string) (*notion.Page, error) {
	if r.cfg.Notion.NoticesDB == "" {
		return nil, notion.ErrNotConfigured
	}
	return r.client.RetrievePage(ctx, id)
}

func (r *NoticeRepository) Create(ctx context.Context, fields model.NoticeCreate, date time.Time) (*notion.Page, error) {
	if r.cfg.Notion.NoticesDB == "" {
		return nil, notion.ErrNotConfigured
	}
	return r.client.CreatePage(ctx, &notion.PageCreateRequest{
		Parent:     notion.Parent{DatabaseID: r.cfg.Notion.NoticesDB},
		Properties: notion.NoticeCreateProperties(fields, date),
	})
}

func (r *NoticeRepository) Update(ctx context.Context, id string, props notion.Properties) (*notion.Page, error) {
	return r.client.UpdatePage(ctx, id, &notion.PageUpdateRequest{Properties: props})
}

func (r *NoticeRepository) Archive(ctx context.Context, id string) (*notion.Page, error) {
	archived := true
	return r.client.UpdatePage(ctx, id, &notion.PageUpdateRequest{Archived: &archived})
}
