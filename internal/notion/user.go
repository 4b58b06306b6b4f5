package notion

import (
	"github.com/leoking9009/notion-working/internal/model"
)

// User collection property names. The external identity id kept its
// historical property name in the live database.
const (
	PropUserName    = "이름"
	PropUserEmail   = "이메일"
	PropUserExtID   = "Google ID"
	PropUserPicture = "프로필 사진"
	PropUserRole    = "역할"
	PropUserStatus  = "상태"
)

// Role select option names as stored.
const (
	roleNameUser  = "사용자"
	roleNameAdmin = "관리자"
	roleNameLead  = "팀장"
)

// UserFromPage converts a raw page into a user record. Unknown role
// values read as user; unknown status values read as pending, which
// keeps an unrecognized record outside the application.
func UserFromPage(p Page) model.User {
	return model.User{
		ID:         p.ID,
		ExternalID: p.Properties.RichTextContent(PropUserExtID),
		Name:       p.Properties.TitleText(PropUserName),
		Email:      p.Properties.EmailValue(PropUserEmail),
		PictureURL: p.Properties.URLValue(PropUserPicture),
		Role:       roleFromName(p.Properties.SelectName(PropUserRole)),
		Status:     statusFromName(p.Properties.SelectName(PropUserStatus)),
		JoinedAt:   p.CreatedTime,
	}
}

// UserProperties builds the property bag for a new user record.
func UserProperties(u model.User) Properties {
	return Properties{
		PropUserName:    NewTitle(u.Name),
		PropUserEmail:   NewEmail(u.Email),
		PropUserExtID:   NewRichText(u.ExternalID),
		PropUserPicture: NewURL(u.PictureURL),
		PropUserRole:    NewSelect(roleName(u.Role)),
		PropUserStatus:  NewSelect(string(u.Status)),
	}
}

// UserStatusProperties builds a property bag carrying only the status
// and/or role fields present in the patch.
func UserStatusProperties(patch model.UserStatusPatch) Properties {
	props := Properties{}
	if patch.Status != nil {
		props[PropUserStatus] = NewSelect(string(*patch.Status))
	}
	if patch.Role != nil {
		props[PropUserRole] = NewSelect(roleName(*patch.Role))
	}
	return props
}

func roleFromName(name string) model.Role {
	switch name {
	case roleNameAdmin, string(model.RoleAdmin):
		return model.RoleAdmin
	case roleNameLead, string(model.RoleLead):
		return model.RoleLead
	default:
		return model.RoleUser
	}
}

func roleName(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return roleNameAdmin
	case model.RoleLead:
		return roleNameLead
	default:
		return roleNameUser
	}
}

func statusFromName(name string) model.Status {
	switch model.Status(name) {
	case model.StatusApproved:
		return model.StatusApproved
	case model.StatusRejected:
		return model.StatusRejected
	default:
		return model.StatusPending
	}
}
