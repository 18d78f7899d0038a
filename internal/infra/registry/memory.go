package registry

import (
	"context"
	"fmt"
	"sync"

	"skill-swap-core/internal/domain/identity"
	"skill-swap-core/internal/domain/user"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/shared"
)

var (
	ErrUnknownSession  = errs.New("registry: unknown session")
	ErrMintUnavailable = errs.New("registry: award minting unavailable")
)

// Memory is a deterministic in-process registry. Skill ids start at 1 and
// asset ids read ASSET-000001, ASSET-000002 and so on.
type Memory struct {
	mu          sync.Mutex
	users       map[string]string
	skills      map[uint64]shared.SkillListing
	sessions    map[uint64]shared.SessionRecord
	completed   map[uint64]bool
	awards      map[uint64]string
	lastSkill   uint64
	lastAsset   int
	mintCalls   int
	failMints   int
	failBooking bool
}

var _ shared.ContractClient = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:     make(map[string]string),
		skills:    make(map[uint64]shared.SkillListing),
		sessions:  make(map[uint64]shared.SessionRecord),
		completed: make(map[uint64]bool),
		awards:    make(map[uint64]string),
	}
}

// FailNextMints makes the next n ClaimAward calls fail.
func (m *Memory) FailNextMints(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failMints = n
}

func (m *Memory) SetBookingFailure(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failBooking = fail
}

func (m *Memory) MintCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mintCalls
}

func (m *Memory) RegisterUser(_ context.Context, id identity.Identity, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id.String()]; ok {
		return user.ErrAlreadyRegistered
	}
	m.users[id.String()] = name
	return nil
}

func (m *Memory) ListSkill(_ context.Context, _ identity.Identity, listing shared.SkillListing) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSkill++
	m.skills[m.lastSkill] = listing
	return m.lastSkill, nil
}

func (m *Memory) BookSession(_ context.Context, rec shared.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failBooking {
		return errs.New("registry: booking rejected")
	}
	m.sessions[rec.SessionID] = rec
	return nil
}

func (m *Memory) CompleteSession(_ context.Context, sessionID uint64, _ identity.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[sessionID]; !ok {
		return ErrUnknownSession
	}
	m.completed[sessionID] = true
	return nil
}

// ClaimAward returns the existing asset when the session was already awarded.
func (m *Memory) ClaimAward(_ context.Context, sessionID uint64, _ identity.Identity) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mintCalls++
	if m.failMints > 0 {
		m.failMints--
		return "", ErrMintUnavailable
	}
	if id, ok := m.awards[sessionID]; ok {
		return id, nil
	}
	m.lastAsset++
	id := fmt.Sprintf("ASSET-%06d", m.lastAsset)
	m.awards[sessionID] = id
	return id, nil
}
