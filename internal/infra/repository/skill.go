package repository

import (
	"context"
	"sort"
	"sync"

	"skill-swap-core/internal/domain/skill"
	"skill-swap-core/internal/infra"
	"skill-swap-core/internal/usecase/shared"
)

type SkillRepository struct {
	mu     sync.RWMutex
	skills map[uint64]*skill.Skill
}

func NewSkillRepository() *SkillRepository {
	return &SkillRepository{skills: make(map[uint64]*skill.Skill)}
}

func (r *SkillRepository) Save(_ context.Context, s *skill.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.skills[s.ID()]; exists {
		return infra.WrapRepoErr("skill id already stored", nil, infra.KindDuplicateKey)
	}
	r.skills[s.ID()] = s.Clone()
	return nil
}

func (r *SkillRepository) FindByID(_ context.Context, id uint64) (*skill.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.skills[id]
	if !ok {
		return nil, infra.WrapRepoErr("skill not found", nil, infra.KindNotFound)
	}
	return s.Clone(), nil
}

func (r *SkillRepository) List(_ context.Context, filter shared.SkillFilter) ([]*skill.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*skill.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		if matchesSkill(s, filter) {
			out = append(out, s.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// Update commits fn's changes only when fn succeeds.
func (r *SkillRepository) Update(_ context.Context, id uint64, fn func(s *skill.Skill) error) (*skill.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.skills[id]
	if !ok {
		return nil, infra.WrapRepoErr("skill not found", nil, infra.KindNotFound)
	}
	working := stored.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	r.skills[id] = working
	return working.Clone(), nil
}

func matchesSkill(s *skill.Skill, f shared.SkillFilter) bool {
	if f.Owner != nil && !s.Owner().Equal(*f.Owner) {
		return false
	}
	if f.Category != nil && s.Category() != *f.Category {
		return false
	}
	if f.Level != nil && s.Level() != *f.Level {
		return false
	}
	if f.MinRate != nil && s.Rate().Amount().LessThan(*f.MinRate) {
		return false
	}
	if f.MaxRate != nil && s.Rate().Amount().GreaterThan(*f.MaxRate) {
		return false
	}
	return true
}
