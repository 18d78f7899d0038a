//go:build unit || e2e

package builder

import (
	"time"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/user"
	reqdto "skill-swap-core/internal/handler/dto/request"
)

type UserBuilder struct {
	Identity   string
	Name       string
	Reputation int
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Identity: "TEACHER-1",
		Name:     "Ada Teacher",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain(now time.Time) (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(identity.MustParse(u.Identity), name, u.Reputation, now), nil
}

func (u *UserBuilder) BuildRequestDTO() reqdto.RegisterUserRequest {
	return reqdto.RegisterUserRequest{Name: u.Name}
}
