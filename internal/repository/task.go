package repository

import (
	"context"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
)

// ITaskRepository defines task persistence against the store.
type ITaskRepository interface {
	List(ctx context.Context) (*notion.QueryResponse, error)
	Create(ctx context.Context, fields model.TaskCreate) (*notion.Page, error)
	Update(ctx context.Context, id string, patch model.TaskPatch) (*notion.Page, error)
	Archive(ctx context.Context, id string) (*notion.Page, error)
}

// TaskRepository implements task persistence.
type TaskRepository struct {
	cfg    *config.Config
	client *notion.Client
}

func NewTaskRepository(cfg *config.Config, client *notion.Client) ITaskRepository {
	return &TaskRepository{cfg: cfg, client: client}
}

func (r *TaskRepository) List(ctx context.Context) (*notion.QueryResponse, error) {
	return r.client.QueryDatabase(ctx, r.cfg.Notion.TasksDB, nil)
}

func (r *TaskRepository) Create(ctx context.Context, fields model.TaskCreate) (*notion.Page, error) {
	if r.cfg.Notion.TasksDB == "" {
		return nil, notion.ErrNotConfigured
	}
	return r.client.CreatePage(ctx, &notion.PageCreateRequest{
		Parent:     notion.Parent{DatabaseID: r.cfg.Notion.TasksDB},
		Properties: notion.TaskCreateProperties(fields),
	})
}

func (r *TaskRepository) Update(ctx context.Context, id string, patch model.TaskPatch) (*notion.Page, error) {
	return r.client.UpdatePage(ctx, id, &notion.PageUpdateRequest{
		Properties: notion.TaskPatchProperties(patch),
	})
}

// Archive soft-deletes a task. The store accepts archiving an already
// archived page, so the operation is idempotent.
func (r *TaskRepository) Archive(ctx context.Context, id string) (*notion.Page, error) {
	archived := true
	return r.client.UpdatePage(ctx, id, &notion.PageUpdateRequest{Archived: &archived})
}
