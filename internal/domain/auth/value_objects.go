package auth

import (
	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/pkg/errs"
)

var (
	ErrNoActiveIdentity = errs.New("no active wallet identity")
	ErrInvalidRole      = errs.New("role must be teacher or learner")
)

type Role string

const (
	RoleTeacher Role = "teacher"
	RoleLearner Role = "learner"
)

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) IsValid() bool {
	switch r {
	case RoleTeacher, RoleLearner:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// SessionContext is the caller's wallet state, passed explicitly into every
// command instead of living in ambient UI state.
type SessionContext struct {
	Identity identity.Identity
	Role     Role
}

func NewSessionContext(id identity.Identity, role Role) SessionContext {
	return SessionContext{Identity: id, Role: role}
}

// RequireIdentity is the precondition of every paying operation.
func (sc SessionContext) RequireIdentity() (identity.Identity, error) {
	if sc.Identity.IsZero() {
		return identity.Identity{}, ErrNoActiveIdentity
	}
	return sc.Identity, nil
}
