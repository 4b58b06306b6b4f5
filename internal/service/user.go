package service

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
	"github.com/leoking9009/notion-working/internal/repository"
)

// UserService handles user registration and administration.
type UserService struct {
	repo repository.IUserRepository
	cfg  *config.Config

	// registerMu serializes check-then-create so two concurrent first
	// sign-ins with the same email produce exactly one record. The
	// store itself offers no uniqueness constraint.
	registerMu sync.Mutex
}

// NewUserService creates a new user service.
func NewUserService(cfg *config.Config, repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo, cfg: cfg}
}

// RegisterResult distinguishes a fresh registration from a repeat
// sign-in of a known user.
type RegisterResult struct {
	User    model.User
	Created bool
}

// Register is idempotent by email: a known email returns the existing
// record with whatever role and status an admin has set; a new email
// creates a pending user.
func (s *UserService) Register(ctx context.Context, req *model.RegisterRequest) (*RegisterResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		user := notion.UserFromPage(*existing)
		if user.ExternalID == "" {
			// Older records predate the external id property.
			user.ExternalID = req.ExternalID
		}
		return &RegisterResult{User: user, Created: false}, nil
	}

	page, err := s.repo.Create(ctx, model.User{
		ExternalID: req.ExternalID,
		Name:       req.Name,
		Email:      email,
		PictureURL: req.PictureURL,
		Role:       model.RoleUser,
		Status:     model.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	user := notion.UserFromPage(*page)
	log.Info().Str("userId", user.ID).Str("email", user.Email).Msg("user registered")
	return &RegisterResult{User: user, Created: true}, nil
}

// List returns all users newest first.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(pages))
	for _, page := range pages {
		users = append(users, notion.UserFromPage(page))
	}
	return users, nil
}

// UpdateStatus patches a user's status and/or role. Admin-only by
// convention; the server does not enforce the caller's role.
func (s *UserService) UpdateStatus(ctx context.Context, id string, patch model.UserStatusPatch) (model.User, error) {
	page, err := s.repo.UpdateStatus(ctx, id, patch)
	if err != nil {
		return model.User{}, err
	}
	user := notion.UserFromPage(*page)
	log.Info().Str("userId", id).Str("status", string(user.Status)).Str("role", string(user.Role)).Msg("user status updated")
	return user, nil
}
