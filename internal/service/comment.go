package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
	"github.com/leoking9009/notion-working/internal/repository"
)

// CommentService handles comment business logic.
type CommentService struct {
	repo repository.ICommentRepository
	cfg  *config.Config
}

// NewCommentService creates a new comment service.
func NewCommentService(cfg *config.Config, repo repository.ICommentRepository) *CommentService {
	return &CommentService{repo: repo, cfg: cfg}
}

// ListByNotice returns a notice's comments oldest first.
func (s *CommentService) ListByNotice(ctx context.Context, noticeID string) ([]model.Comment, error) {
	pages, err := s.repo.ListByNotice(ctx, noticeID)
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0, len(pages))
	for _, page := range pages {
		comments = append(comments, notion.CommentFromPage(page))
	}
	return comments, nil
}

// Create posts a comment under a notice.
func (s *CommentService) Create(ctx context.Context, fields model.CommentCreate) (model.Comment, error) {
	page, err := s.repo.Create(ctx, fields)
	if err != nil {
		return model.Comment{}, err
	}
	comment := notion.CommentFromPage(*page)
	log.Debug().Str("commentId", comment.ID).Str("noticeId", comment.NoticeID).Msg("comment created")
	return comment, nil
}

// Archive soft-deletes a comment; archiving twice succeeds.
func (s *CommentService) Archive(ctx context.Context, id string) (model.Comment, error) {
	page, err := s.repo.Archive(ctx, id)
	if err != nil {
		return model.Comment{}, err
	}
	return notion.CommentFromPage(*page), nil
}
