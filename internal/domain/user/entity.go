package user

import (
	"time"

	"skill-swap-core/internal/domain/identity"
)

// User is a registered marketplace participant. Reputation accumulates
// from the hours of completed sessions they taught.
type User struct {
	identity     identity.Identity
	name         Name
	reputation   int
	registeredAt time.Time
}

func NewUser(id identity.Identity, name Name, now time.Time) *User {
	return &User{
		identity:     id,
		name:         name,
		registeredAt: now,
	}
}

func ReconstructUser(id identity.Identity, name Name, reputation int, registeredAt time.Time) *User {
	return &User{identity: id, name: name, reputation: reputation, registeredAt: registeredAt}
}

// AddReputation ignores non-positive increments.
func (u *User) AddReputation(points int) {
	if points > 0 {
		u.reputation += points
	}
}

func (u *User) Clone() *User {
	c := *u
	return &c
}

func (u *User) Identity() identity.Identity { return u.identity }
func (u *User) Name() Name                  { return u.name }
func (u *User) Reputation() int             { return u.reputation }
func (u *User) RegisteredAt() time.Time     { return u.registeredAt }
