package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
)

type fakeNoticeRepo struct {
	pages    map[string]notion.Page
	creates  int
	archived map[string]bool
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{
		pages:    make(map[string]notion.Page),
		archived: make(map[string]bool),
	}
}

func (f *fakeNoticeRepo) List(ctx context.Context) ([]notion.Page, error) {
	out := make([]notion.Page, 0, len(f.pages))
	for _, p := range f.pages {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeNoticeRepo) Get(ctx context.Context, id string) (*notion.Page, error) {
	page, ok := f.pages[id]
	if !ok {
		return nil, fmt.Errorf("page %s not found", id)
	}
	return &page, nil
}

func (f *fakeNoticeRepo) Create(ctx context.Context, fields model.NoticeCreate, date time.Time) (*notion.Page, error) {
	f.creates++
	page := notion.Page{
		ID:          fmt.Sprintf("n-%d", f.creates),
		CreatedTime: date,
		Properties:  notion.NoticeCreateProperties(fields, date),
	}
	f.pages[page.ID] = page
	return &page, nil
}

func (f *fakeNoticeRepo) Update(ctx context.Context, id string, props notion.Properties) (*notion.Page, error) {
	page, ok := f.pages[id]
	if !ok {
		return nil, fmt.Errorf("page %s not found", id)
	}
	for name, prop := range props {
		page.Properties[name] = prop
	}
	f.pages[id] = page
	return &page, nil
}

func (f *fakeNoticeRepo) Archive(ctx context.Context, id string) (*notion.Page, error) {
	page, ok := f.pages[id]
	if !ok {
		return nil, fmt.Errorf("page %s not found", id)
	}
	f.archived[id] = true
	page.Archived = true
	f.pages[id] = page
	return &page, nil
}

func newNoticeService(repo *fakeNoticeRepo, now time.Time) *NoticeService {
	svc := NewNoticeService(&config.Config{}, repo)
	svc.now = func() time.Time { return now }
	return svc
}

func TestNoticeServiceCreate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNoticeRepo()
	svc := newNoticeService(repo, time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))

	t.Run("stamps today and folds the author into the title", func(t *testing.T) {
		notice, err := svc.Create(ctx, model.NoticeCreate{
			Title:   "Release",
			Content: "Friday",
			Author:  "Alice",
			Type:    model.ImportanceImportant,
		})
		require.NoError(t, err)
		assert.Equal(t, "Release", notice.Title)
		assert.Equal(t, "Alice", notice.Author)
		assert.Equal(t, "2024-06-15", notice.CreatedAt)
		assert.True(t, notice.IsImportant)

		stored := repo.pages[notice.ID]
		assert.Equal(t, "[Alice] Release", stored.Properties.TitleText(notion.PropNoticeTitle))
	})

	t.Run("missing kind defaults to general", func(t *testing.T) {
		notice, err := svc.Create(ctx, model.NoticeCreate{Title: "Plain"})
		require.NoError(t, err)
		assert.Equal(t, model.ImportanceGeneral, notice.Type)
		assert.Equal(t, model.AnonymousAuthor, notice.Author)
	})
}

func TestNoticeServiceUpdate(t *testing.T) {
	ctx := context.Background()
	str := func(s string) *string { return &s }

	t.Run("patching the title keeps the stored author", func(t *testing.T) {
		repo := newFakeNoticeRepo()
		svc := newNoticeService(repo, time.Now())
		created, err := svc.Create(ctx, model.NoticeCreate{Title: "Old", Author: "Alice"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, model.NoticePatch{Title: str("New")})
		require.NoError(t, err)
		assert.Equal(t, "New", updated.Title)
		assert.Equal(t, "Alice", updated.Author)

		stored := repo.pages[created.ID]
		assert.Equal(t, "[Alice] New", stored.Properties.TitleText(notion.PropNoticeTitle))
	})

	t.Run("patching content leaves the title alone", func(t *testing.T) {
		repo := newFakeNoticeRepo()
		svc := newNoticeService(repo, time.Now())
		created, err := svc.Create(ctx, model.NoticeCreate{Title: "Keep", Author: "Bob", Content: "old"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, model.NoticePatch{Content: str("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", updated.Content)
		assert.Equal(t, "Keep", updated.Title)
		assert.Equal(t, "Bob", updated.Author)
	})

	t.Run("kind patch flips importance", func(t *testing.T) {
		repo := newFakeNoticeRepo()
		svc := newNoticeService(repo, time.Now())
		created, err := svc.Create(ctx, model.NoticeCreate{Title: "T"})
		require.NoError(t, err)

		important := model.ImportanceImportant
		updated, err := svc.Update(ctx, created.ID, model.NoticePatch{Type: &important})
		require.NoError(t, err)
		assert.True(t, updated.IsImportant)
	})
}

func TestNoticeServiceArchive(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNoticeRepo()
	svc := newNoticeService(repo, time.Now())

	created, err := svc.Create(ctx, model.NoticeCreate{Title: "Bye"})
	require.NoError(t, err)

	_, err = svc.Archive(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, repo.archived[created.ID])

	// Archiving twice stays successful.
	_, err = svc.Archive(ctx, created.ID)
	assert.NoError(t, err)
}
