// Package session carries the signed-in identity and decides whether
// it is admitted past the status screen.
package session

import (
	"time"

	"github.com/leoking9009/notion-working/internal/model"
)

// Session is the locally persisted identity. It is an explicit value
// handed to the views that need it; nothing reads it ambiently.
type Session struct {
	User       model.User `json:"user"`
	SignedInAt time.Time  `json:"signedInAt"`
}

// Admission is the gate's verdict on a session.
type Admission int

const (
	// Admitted lets the user into the application proper.
	Admitted Admission = iota
	// BlockedPending shows the waiting-for-approval screen.
	BlockedPending
	// BlockedRejected shows the rejection screen.
	BlockedRejected
	// BlockedUnknown covers unrecognized status values, which are
	// treated exactly like pending: blocked with a sign-out option.
	BlockedUnknown
)

// Admit maps an admission status to a verdict. Only approved admits.
func Admit(status model.Status) Admission {
	switch status {
	case model.StatusApproved:
		return Admitted
	case model.StatusPending:
		return BlockedPending
	case model.StatusRejected:
		return BlockedRejected
	default:
		return BlockedUnknown
	}
}

// Blocked reports whether the verdict keeps the user on the status
// screen.
func (a Admission) Blocked() bool {
	return a != Admitted
}
