package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
	"github.com/leoking9009/notion-working/internal/repository"
)

// TaskService handles task business logic.
type TaskService struct {
	repo repository.ITaskRepository
	cfg  *config.Config
}

// NewTaskService creates a new task service.
func NewTaskService(cfg *config.Config, repo repository.ITaskRepository) *TaskService {
	return &TaskService{repo: repo, cfg: cfg}
}

// List returns the raw task page dump in the store's query envelope.
func (s *TaskService) List(ctx context.Context) (*model.TaskListResponse, error) {
	resp, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]model.TaskPage, 0, len(resp.Results))
	for _, page := range resp.Results {
		results = append(results, model.TaskPage{
			ID:             page.ID,
			CreatedTime:    page.CreatedTime.Format(time.RFC3339),
			LastEditedTime: page.LastEditedTime.Format(time.RFC3339),
			Task:           notion.TaskFromPage(page),
		})
	}
	return &model.TaskListResponse{
		Results:    results,
		NextCursor: resp.NextCursor,
		HasMore:    resp.HasMore,
	}, nil
}

// Create inserts a new task; missing optional fields default to their
// zero values. Nothing enforces uniqueness.
func (s *TaskService) Create(ctx context.Context, fields model.TaskCreate) (model.Task, error) {
	page, err := s.repo.Create(ctx, fields)
	if err != nil {
		return model.Task{}, err
	}
	task := notion.TaskFromPage(*page)
	log.Debug().Str("taskId", task.ID).Str("assignee", task.Assignee).Msg("task created")
	return task, nil
}

// Update applies a partial patch. Fields absent from the patch are
// left untouched; an explicit empty due date clears the stored date.
func (s *TaskService) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	page, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return model.Task{}, err
	}
	return notion.TaskFromPage(*page), nil
}

// Archive soft-deletes a task; archiving twice succeeds and leaves the
// record archived.
func (s *TaskService) Archive(ctx context.Context, id string) (model.Task, error) {
	page, err := s.repo.Archive(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	log.Debug().Str("taskId", id).Msg("task archived")
	return notion.TaskFromPage(*page), nil
}
