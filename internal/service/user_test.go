package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoking9009/notion-working/internal/config"
	"github.com/leoking9009/notion-working/internal/model"
	"github.com/leoking9009/notion-working/internal/notion"
)

// fakeUserRepo keeps user pages in memory. It deliberately enforces no
// uniqueness, matching the store's behavior.
type fakeUserRepo struct {
	mu      sync.Mutex
	pages   []notion.Page
	creates int
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*notion.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pages {
		if f.pages[i].Properties.EmailValue(notion.PropUserEmail) == email {
			page := f.pages[i]
			return &page, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]notion.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]notion.Page(nil), f.pages...), nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user model.User) (*notion.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	page := notion.Page{
		ID:          fmt.Sprintf("u-%d", f.creates),
		CreatedTime: time.Now(),
		Properties:  notion.UserProperties(user),
	}
	f.pages = append(f.pages, page)
	return &page, nil
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id string, patch model.UserStatusPatch) (*notion.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pages {
		if f.pages[i].ID != id {
			continue
		}
		for name, prop := range notion.UserStatusProperties(patch) {
			f.pages[i].Properties[name] = prop
		}
		page := f.pages[i]
		return &page, nil
	}
	return nil, fmt.Errorf("page %s not found", id)
}

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("new email creates a pending user", func(t *testing.T) {
		svc := NewUserService(&config.Config{}, &fakeUserRepo{})

		result, err := svc.Register(ctx, &model.RegisterRequest{
			ExternalID: "ext-1",
			Name:       "Alice",
			Email:      "alice@example.com",
		})
		require.NoError(t, err)
		assert.True(t, result.Created)
		assert.Equal(t, model.StatusPending, result.User.Status)
		assert.Equal(t, model.RoleUser, result.User.Role)
		assert.Equal(t, "alice@example.com", result.User.Email)
	})

	t.Run("repeat sign-in returns the existing record", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewUserService(&config.Config{}, repo)

		first, err := svc.Register(ctx, &model.RegisterRequest{Email: "alice@example.com", Name: "Alice"})
		require.NoError(t, err)

		// An admin approved the user in the meantime.
		approved := model.StatusApproved
		_, err = repo.UpdateStatus(ctx, first.User.ID, model.UserStatusPatch{Status: &approved})
		require.NoError(t, err)

		second, err := svc.Register(ctx, &model.RegisterRequest{Email: "  ALICE@example.com ", Name: "Someone Else"})
		require.NoError(t, err)
		assert.False(t, second.Created)
		assert.Equal(t, first.User.ID, second.User.ID)
		assert.Equal(t, model.StatusApproved, second.User.Status)
		assert.Equal(t, 1, repo.creates)
	})

	t.Run("concurrent first sign-ins create one record", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewUserService(&config.Config{}, repo)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Register(ctx, &model.RegisterRequest{Email: "bob@example.com", Name: "Bob"})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, repo.creates)
	})

	t.Run("old record without external id adopts the request's", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewUserService(&config.Config{}, repo)

		_, err := svc.Register(ctx, &model.RegisterRequest{Email: "carol@example.com", Name: "Carol"})
		require.NoError(t, err)

		result, err := svc.Register(ctx, &model.RegisterRequest{Email: "carol@example.com", ExternalID: "ext-9"})
		require.NoError(t, err)
		assert.False(t, result.Created)
		assert.Equal(t, "ext-9", result.User.ExternalID)
	})
}

func TestUserServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := &fakeUserRepo{}
	svc := NewUserService(&config.Config{}, repo)

	created, err := svc.Register(ctx, &model.RegisterRequest{Email: "dave@example.com", Name: "Dave"})
	require.NoError(t, err)

	approved := model.StatusApproved
	lead := model.RoleLead
	user, err := svc.UpdateStatus(ctx, created.User.ID, model.UserStatusPatch{Status: &approved, Role: &lead})
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, user.Status)
	assert.Equal(t, model.RoleLead, user.Role)
}
