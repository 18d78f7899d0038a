package response

import (
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/usecase/queries"
)

type UserResponse struct {
	Identity     string `json:"identity"`
	Name         string `json:"name"`
	Reputation   int    `json:"reputation"`
	RegisteredAt int64  `json:"registeredAt"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		Identity:     u.Identity().String(),
		Name:         u.Name().Value(),
		Reputation:   u.Reputation(),
		RegisteredAt: u.RegisteredAt().Unix(),
	}
}

type ReputationResponse struct {
	Identity       string `json:"identity"`
	Name           string `json:"name"`
	Reputation     int    `json:"reputation"`
	SkillsListed   int    `json:"skillsListed"`
	SessionsTaught int    `json:"sessionsTaught"`
}

func FromReputationView(v *queries.ReputationView) *ReputationResponse {
	return &ReputationResponse{
		Identity:       v.Identity,
		Name:           v.Name,
		Reputation:     v.Reputation,
		SkillsListed:   v.SkillsListed,
		SessionsTaught: v.SessionsTaught,
	}
}
