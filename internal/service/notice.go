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

// NoticeService handles notice business logic.
type NoticeService struct {
	repo repository.INoticeRepository
	cfg  *config.Config
	now  func() time.Time
}

// NewNoticeService creates a new notice service.
func NewNoticeService(cfg *config.Config, repo repository.INoticeRepository) *NoticeService {
	return &NoticeService{repo: repo, cfg: cfg, now: time.Now}
}

// List returns all notices newest first.
func (s *NoticeService) List(ctx context.Context) ([]model.Notice, error) {
	pages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	notices := make([]model.Notice, 0, len(pages))
	for _, page := range pages {
		notices = append(notices, notion.NoticeFromPage(page))
	}
	return notices, nil
}

// Create posts a notice stamped with today's date. The author is
// folded into the stored title.
func (s *NoticeService) Create(ctx context.Context, fields model.NoticeCreate) (model.Notice, error) {
	if fields.Type == "" {
		fields.Type = model.ImportanceGeneral
	}
	page, err := s.repo.Create(ctx, fields, s.now())
	if err != nil {
		return model.Notice{}, err
	}
	notice := notion.NoticeFromPage(*page)
	log.Debug().Str("noticeId", notice.ID).Str("author", notice.Author).Msg("notice created")
	return notice, nil
}

// Update patches the fields present in the patch. Because author and
// title share one stored property, changing either re-reads the
// current record and re-encodes the pair.
func (s *NoticeService) Update(ctx context.Context, id string, patch model.NoticePatch) (model.Notice, error) {
	props := notion.Properties{}

	if patch.Title != nil || patch.Author != nil {
		page, err := s.repo.Get(ctx, id)
		if err != nil {
			return model.Notice{}, err
		}
		current := notion.NoticeFromPage(*page)
		title, author := current.Title, current.Author
		if patch.Title != nil {
			title = *patch.Title
		}
		if patch.Author != nil {
			author = *patch.Author
		}
		props[notion.PropNoticeTitle] = notion.NewTitle(notion.ComposeNoticeTitle(author, title))
	}
	if patch.Content != nil {
		props[notion.PropNoticeContent] = notion.NewRichText(*patch.Content)
	}
	if patch.Type != nil {
		props[notion.PropNoticeKind] = notion.KindSelect(*patch.Type)
	}

	page, err := s.repo.Update(ctx, id, props)
	if err != nil {
		return model.Notice{}, err
	}
	return notion.NoticeFromPage(*page), nil
}

// Archive soft-deletes a notice. Its comments stay behind; the
// reference between them was never enforced.
func (s *NoticeService) Archive(ctx context.Context, id string) (model.Notice, error) {
	page, err := s.repo.Archive(ctx, id)
	if err != nil {
		return model.Notice{}, err
	}
	log.Debug().Str("noticeId", id).Msg("notice archived")
	return notion.NoticeFromPage(*page), nil
}
