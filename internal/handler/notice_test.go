package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
	"github.com/leoking9009/notion-working/internal/service"
)

type fakeNoticeRepo struct {
	pages   map[string]notion.Page
	creates int
	err     error
}

func newFakeNoticeRepo() *fakeNoticeRepo {
	return &fakeNoticeRepo{pages: make(map[string]notion.Page)}
}

func (f *fakeNoticeRepo) List(ctx context.Context) ([]notion.Page, error) {
	if f.err != nil {
		return nil, f.err
	}
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
	if f.err != nil {
		return nil, f.err
	}
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
	page.Archived = true
	f.pages[id] = page
	return &page, nil
}

func newNoticeRouter(repo *fakeNoticeRepo) *gin.Engine {
	h := NewNoticeHandler(service.NewNoticeService(&config.Config{}, repo))
	r := gin.New()
	r.GET("/notices", h.List)
	r.POST("/notices", h.Create)
	r.PATCH("/notices/:id", h.Update)
	r.DELETE("/notices/:id", h.Delete)
	return r
}

type noticeEnvelope struct {
	Success bool         `json:"success"`
	Notice  model.Notice `json:"notice"`
}

func TestNoticeHandlerCreate(t *testing.T) {
	t.Run("created notice comes back parsed", func(t *testing.T) {
		r := newNoticeRouter(newFakeNoticeRepo())
		w := doJSON(r, http.MethodPost, "/notices", `{"title":"Release","content":"Friday","author":"Alice","type":"important"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp noticeEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Release", resp.Notice.Title)
		assert.Equal(t, "Alice", resp.Notice.Author)
		assert.True(t, resp.Notice.IsImportant)
		assert.NotEmpty(t, resp.Notice.CreatedAt)
	})

	t.Run("missing author posts anonymously", func(t *testing.T) {
		r := newNoticeRouter(newFakeNoticeRepo())
		w := doJSON(r, http.MethodPost, "/notices", `{"title":"Heads up"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp noticeEnvelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, model.AnonymousAuthor, resp.Notice.Author)
	})

	t.Run("missing database id", func(t *testing.T) {
		r := newNoticeRouter(&fakeNoticeRepo{err: notion.ErrNotConfigured})
		w := doJSON(r, http.MethodPost, "/notices", `{"title":"x"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Notices Database ID not found", resp.Error)
	})
}

func TestNoticeHandlerUpdate(t *testing.T) {
	repo := newFakeNoticeRepo()
	r := newNoticeRouter(repo)

	w := doJSON(r, http.MethodPost, "/notices", `{"title":"Old","author":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created noticeEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodPatch, "/notices/"+created.Notice.ID, `{"title":"New"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp noticeEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "New", resp.Notice.Title)
	assert.Equal(t, "Alice", resp.Notice.Author)
}

func TestNoticeHandlerDelete(t *testing.T) {
	repo := newFakeNoticeRepo()
	r := newNoticeRouter(repo)

	w := doJSON(r, http.MethodPost, "/notices", `{"title":"Bye"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created noticeEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(r, http.MethodDelete, "/notices/"+created.Notice.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.pages[created.Notice.ID].Archived)
}

func TestNoticeHandlerList(t *testing.T) {
	repo := newFakeNoticeRepo()
	r := newNoticeRouter(repo)
	doJSON(r, http.MethodPost, "/notices", `{"title":"One"}`)

	w := doJSON(r, http.MethodGet, "/notices", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.NoticeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Notices, 1)
}
