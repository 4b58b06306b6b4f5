package server

import (
	"time"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/handler"
	"github.com/leoking9009/notion-working/internal/notion"
	"github.com/leoking9009/notion-working/internal/repository"
	"github.com/leoking9009/notion-working/internal/service"
)

// Repositories bundles the per-kind store repositories.
type Repositories struct {
	Tasks    repository.ITaskRepository
	Notices  repository.INoticeRepository
	Comments repository.ICommentRepository
	Users    repository.IUserRepository
}

// Services bundles the business logic layer.
type Services struct {
	Task    *service.TaskService
	Notice  *service.NoticeService
	Comment *service.CommentService
	User    *service.UserService
}

// Handlers bundles the HTTP layer.
type Handlers struct {
	Task    *handler.TaskHandler
	Notice  *handler.NoticeHandler
	Comment *handler.CommentHandler
	User    *handler.UserHandler
}

// InitRepositories wires the store client into the repositories.
func InitRepositories(cfg *config.Config, client *notion.Client) *Repositories {
	return &Repositories{
		Tasks:    repository.NewTaskRepository(cfg, client),
		Notices:  repository.NewNoticeRepository(cfg, client),
		Comments: repository.NewCommentRepository(cfg, client),
		Users:    repository.NewUserRepository(cfg, client),
	}
}

// InitServices wires repositories into services.
func InitServices(cfg *config.Config, repos *Repositories) *Services {
	return &Services{
		Task:    service.NewTaskService(cfg, repos.Tasks),
		Notice:  service.NewNoticeService(cfg, repos.Notices),
		Comment: service.NewCommentService(cfg, repos.Comments),
		User:    service.NewUserService(cfg, repos.Users),
	}
}

// InitHandlers wires services into handlers.
func InitHandlers(services *Services) *Handlers {
	return &Handlers{
		Task:    handler.NewTaskHandler(services.Task),
		Notice:  handler.NewNoticeHandler(services.Notice),
		Comment: handler.NewCommentHandler(services.Comment),
		User:    handler.NewUserHandler(services.User),
	}
}

// NewStoreClient builds the store client from configuration.
func NewStoreClient(cfg *config.Config) *notion.Client {
	return notion.NewClient(
		cfg.Notion.BaseURL,
		cfg.Notion.Token,
		cfg.Notion.APIVersion,
		time.Duration(cfg.Notion.TimeoutSecs)*time.Second,
	)
}
