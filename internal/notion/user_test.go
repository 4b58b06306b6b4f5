package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leoking9009/notion-working/internal/model"
)

func TestUserFromPage(t *testing.T) {
	t.Run("korean role names", func(t *testing.T) {
		tests := []struct {
			stored string
			want   model.Role
		}{
			{"사용자", model.RoleUser},
			{"관리자", model.RoleAdmin},
			{"팀장", model.RoleLead},
			{"admin", model.RoleAdmin},
			{"lead", model.RoleLead},
			{"", model.RoleUser},
			{"unexpected", model.RoleUser},
		}
		for _, tt := range tests {
			page := Page{Properties: Properties{PropUserRole: NewSelect(tt.stored)}}
			assert.Equal(t, tt.want, UserFromPage(page).Role, "stored role %q", tt.stored)
		}
	})

	t.Run("unknown status reads as pending", func(t *testing.T) {
		page := Page{Properties: Properties{PropUserStatus: NewSelect("weird")}}
		assert.Equal(t, model.StatusPending, UserFromPage(page).Status)
	})

	t.Run("round trip", func(t *testing.T) {
		user := model.User{
			ExternalID: "ext-123",
			Name:       "김철수",
			Email:      "kim@example.com",
			PictureURL: "https://example.com/p.png",
			Role:       model.RoleLead,
			Status:     model.StatusApproved,
		}
		got := UserFromPage(Page{ID: "u-1", Properties: UserProperties(user)})
		assert.Equal(t, "u-1", got.ID)
		assert.Equal(t, user.ExternalID, got.ExternalID)
		assert.Equal(t, user.Name, got.Name)
		assert.Equal(t, user.Email, got.Email)
		assert.Equal(t, user.PictureURL, got.PictureURL)
		assert.Equal(t, user.Role, got.Role)
		assert.Equal(t, user.Status, got.Status)
	})
}

func TestUserProperties(t *testing.T) {
	t.Run("empty picture clears the url", func(t *testing.T) {
		props := UserProperties(model.User{Email: "a@b.com"})
		data, err := json.Marshal(props[PropUserPicture])
		require.NoError(t, err)
		assert.JSONEq(t, `{"url":null}`, string(data))
	})
}

func TestUserStatusProperties(t *testing.T) {
	status := model.StatusApproved
	role := model.RoleAdmin

	t.Run("status only", func(t *testing.T) {
		props := UserStatusProperties(model.UserStatusPatch{Status: &status})
		assert.Len(t, props, 1)
		assert.Equal(t, "approved", props.SelectName(PropUserStatus))
	})

	t.Run("role maps to stored name", func(t *testing.T) {
		props := UserStatusProperties(model.UserStatusPatch{Role: &role})
		assert.Equal(t, "관리자", props.SelectName(PropUserRole))
	})

	t.Run("empty patch", func(t *testing.T) {
		assert.Empty(t, UserStatusProperties(model.UserStatusPatch{}))
	})
}
