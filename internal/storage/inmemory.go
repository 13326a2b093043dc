// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seniorhub/household-service/internal/types"
)

var _ StorageInterface = (*InMemoryStorage)(nil)

// InMemoryStorage is the development and test backing. A single mutex
// serializes every mutating operation, which gives the same atomic
// create-or-reject and single-writer-wins transition semantics as the
// row-locked Postgres backing.
type InMemoryStorage struct {
	mu sync.Mutex

	households  map[string]*types.Household
	members     map[string]*types.Member
	invitations map[string]*types.Invitation
	auditEvents []*types.AuditEvent
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		households:  make(map[string]*types.Household),
		members:     make(map[string]*types.Member),
		invitations: make(map[string]*types.Invitation),
	}
}

// NewSeededInMemoryStorage returns a store preloaded with the fixture
// household used by development builds.
func NewSeededInMemoryStorage() *InMemoryStorage {
	s := NewInMemoryStorage()
	now := time.Now()

	s.households["household-1"] = &types.Household{
		ID:              "household-1",
		Name:            "Martin Family Home",
		CreatedByUserID: "user-2",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.members["member-1"] = &types.Member{
		ID: "member-1", HouseholdID: "household-1", UserID: "user-1",
		Email: "alice@example.com", FirstName: "Alice", LastName: "Martin",
		Role: types.RoleSenior, Status: types.MemberActive, JoinedAt: now, CreatedAt: now,
	}
	s.members["member-2"] = &types.Member{
		ID: "member-2", HouseholdID: "household-1", UserID: "user-2",
		Email: "ben@example.com", FirstName: "Ben", LastName: "Martin",
		Role: types.RoleCaregiver, Status: types.MemberActive, JoinedAt: now, CreatedAt: now,
	}

	return s
}

func (s *InMemoryStorage) CreateInvitationIfAbsent(_ context.Context, inv *types.Invitation) (CreateOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.invitations {
		if existing.HouseholdID == inv.HouseholdID &&
			existing.InviteeEmail == inv.InviteeEmail &&
			existing.AssignedRole == inv.AssignedRole &&
			existing.Status == types.InvitationPending {
			return OutcomeDuplicate, nil
		}
	}

	for _, m := range s.members {
		if m.HouseholdID == inv.HouseholdID &&
			m.Email == inv.InviteeEmail &&
			m.Status == types.MemberActive {
			return OutcomeMemberConflict, nil
		}
	}

	stored := *inv
	stored.Status = types.InvitationPending
	s.invitations[stored.ID] = &stored

	return OutcomeCreated, nil
}

func (s *InMemoryStorage) GetInvitationByTokenHash(_ context.Context, hash string) (*types.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, inv := range s.invitations {
		if inv.TokenHash == hash {
			return s.withHouseholdName(inv), nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStorage) GetInvitationByID(_ context.Context, id string) (*types.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invitations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s.withHouseholdName(inv), nil
}

func (s *InMemoryStorage) FindLatestPendingByEmail(_ context.Context, email string) (*types.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var latest *types.Invitation
	for _, inv := range s.invitations {
		if inv.InviteeEmail != email || inv.Status != types.InvitationPending {
			continue
		}
		if latest == nil || inv.CreatedAt.After(latest.CreatedAt) {
			latest = inv
		}
	}

	if latest == nil {
		return nil, ErrNotFound
	}
	return s.withHouseholdName(latest), nil
}

func (s *InMemoryStorage) ListPendingInvitationsByEmail(_ context.Context, email string) ([]*types.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLapsedLocked(func(inv *types.Invitation) bool { return inv.InviteeEmail == email })

	var out []*types.Invitation
	for _, inv := range s.invitations {
		if inv.InviteeEmail == email && inv.Status == types.InvitationPending {
			out = append(out, s.withHouseholdName(inv))
		}
	}

	sortByCreatedAtDesc(out)
	return out, nil
}

func (s *InMemoryStorage) ListInvitationsByHousehold(_ context.Context, householdID string) ([]*types.Invitation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expireLapsedLocked(func(inv *types.Invitation) bool { return inv.HouseholdID == householdID })

	var out []*types.Invitation
	for _, inv := range s.invitations {
		if inv.HouseholdID == householdID {
			out = append(out, s.withHouseholdName(inv))
		}
	}

	sortByCreatedAtDesc(out)
	return out, nil
}

// expireLapsedLocked implements read-triggered expiry; the caller holds the mutex.
func (s *InMemoryStorage) expireLapsedLocked(scope func(*types.Invitation) bool) {
	now := time.Now()
	for _, inv := range s.invitations {
		if scope(inv) && inv.Status == types.InvitationPending && !inv.TokenExpiresAt.After(now) {
			inv.Status = types.InvitationExpired
		}
	}
}

func (s *InMemoryStorage) TransitionToAccepted(_ context.Context, id string, acceptedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invitations[id]
	if !ok {
		return ErrNotFound
	}
	if inv.Status != types.InvitationPending {
		return ErrAlreadyTerminal
	}

	inv.Status = types.InvitationAccepted
	at := acceptedAt
	inv.AcceptedAt = &at
	return nil
}

func (s *InMemoryStorage) TransitionToCancelled(_ context.Context, id string) error {
	return s.transitionLocked(id, types.InvitationCancelled)
}

func (s *InMemoryStorage) TransitionToExpired(_ context.Context, id string) error {
	return s.transitionLocked(id, types.InvitationExpired)
}

func (s *InMemoryStorage) transitionLocked(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invitations[id]
	if !ok {
		return ErrNotFound
	}
	if inv.Status != types.InvitationPending {
		return ErrAlreadyTerminal
	}

	inv.Status = status
	return nil
}

func (s *InMemoryStorage) RotateInvitationToken(_ context.Context, id, newHash string, newExpiry time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invitations[id]
	if !ok {
		return ErrNotFound
	}
	if inv.Status != types.InvitationPending {
		return ErrAlreadyTerminal
	}
	if !inv.TokenExpiresAt.After(time.Now()) {
		return ErrTokenExpired
	}

	inv.TokenHash = newHash
	inv.TokenExpiresAt = newExpiry
	return nil
}

func (s *InMemoryStorage) FindActiveMember(_ context.Context, userID, householdID string) (*types.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.members {
		if m.UserID == userID && m.HouseholdID == householdID && m.Status == types.MemberActive {
			copied := *m
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (s *InMemoryStorage) UpsertActiveMember(_ context.Context, householdID string, profile types.Requester, role string, joinedAt time.Time) (*types.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.members {
		if m.HouseholdID == householdID && m.UserID == profile.UserID {
			m.Email = types.NormalizeEmail(profile.Email)
			m.FirstName = types.NormalizeName(profile.FirstName)
			m.LastName = types.NormalizeName(profile.LastName)
			m.Role = role
			m.Status = types.MemberActive
			m.JoinedAt = joinedAt
			copied := *m
			return &copied, nil
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	m := &types.Member{
		ID:          id.String(),
		HouseholdID: householdID,
		UserID:      profile.UserID,
		Email:       types.NormalizeEmail(profile.Email),
		FirstName:   types.NormalizeName(profile.FirstName),
		LastName:    types.NormalizeName(profile.LastName),
		Role:        role,
		Status:      types.MemberActive,
		JoinedAt:    joinedAt,
		CreatedAt:   joinedAt,
	}
	s.members[m.ID] = m

	copied := *m
	return &copied, nil
}

func (s *InMemoryStorage) ListHouseholdMembers(_ context.Context, householdID string) ([]*types.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*types.Member
	for _, m := range s.members {
		if m.HouseholdID == householdID && m.Status == types.MemberActive {
			copied := *m
			out = append(out, &copied)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (s *InMemoryStorage) GetMemberByID(_ context.Context, memberID, householdID string) (*types.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[memberID]
	if !ok || m.HouseholdID != householdID || m.Status != types.MemberActive {
		return nil, ErrNotFound
	}

	copied := *m
	return &copied, nil
}

func (s *InMemoryStorage) UpdateMemberRole(_ context.Context, memberID, newRole string) (*types.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.members[memberID]
	if !ok || m.Status != types.MemberActive {
		return nil, ErrNotFound
	}

	m.Role = newRole
	copied := *m
	return &copied, nil
}

func (s *InMemoryStorage) RemoveMember(_ context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[memberID]; !ok {
		return ErrNotFound
	}

	delete(s.members, memberID)
	return nil
}

func (s *InMemoryStorage) CreateHousehold(_ context.Context, name string, requester types.Requester) (*types.Household, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	householdID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate household ID: %w", err)
	}
	memberID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate member ID: %w", err)
	}

	now := time.Now()
	h := &types.Household{
		ID:              householdID.String(),
		Name:            strings.TrimSpace(name),
		CreatedByUserID: requester.UserID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.households[h.ID] = h

	s.members[memberID.String()] = &types.Member{
		ID:          memberID.String(),
		HouseholdID: h.ID,
		UserID:      requester.UserID,
		Email:       types.NormalizeEmail(requester.Email),
		FirstName:   types.NormalizeName(requester.FirstName),
		LastName:    types.NormalizeName(requester.LastName),
		Role:        types.RoleCaregiver,
		Status:      types.MemberActive,
		JoinedAt:    now,
		CreatedAt:   now,
	}

	copied := *h
	return &copied, nil
}

func (s *InMemoryStorage) GetHouseholdOverview(_ context.Context, householdID string) (*types.HouseholdOverview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.households[householdID]
	if !ok {
		return nil, ErrNotFound
	}

	overview := &types.HouseholdOverview{Household: &types.Household{}}
	*overview.Household = *h

	for _, m := range s.members {
		if m.HouseholdID != householdID || m.Status != types.MemberActive {
			continue
		}
		overview.MembersCount++
		switch m.Role {
		case types.RoleSenior:
			overview.SeniorsCount++
		case types.RoleCaregiver:
			overview.CaregiversCount++
		}
	}

	return overview, nil
}

func (s *InMemoryStorage) ListUserHouseholds(_ context.Context, userID string) ([]*types.UserHousehold, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[string]int)
	for _, m := range s.members {
		if m.Status == types.MemberActive {
			counts[m.HouseholdID]++
		}
	}

	var out []*types.UserHousehold
	for _, m := range s.members {
		if m.UserID != userID || m.Status != types.MemberActive {
			continue
		}
		h, ok := s.households[m.HouseholdID]
		if !ok {
			continue
		}
		out = append(out, &types.UserHousehold{
			HouseholdID:   m.HouseholdID,
			HouseholdName: h.Name,
			MyRole:        m.Role,
			JoinedAt:      m.JoinedAt,
			MemberCount:   counts[m.HouseholdID],
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.After(out[j].JoinedAt) })
	return out, nil
}

func (s *InMemoryStorage) RecordAuditEvent(_ context.Context, event *types.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *event
	s.auditEvents = append(s.auditEvents, &copied)
	return nil
}

func (s *InMemoryStorage) withHouseholdName(inv *types.Invitation) *types.Invitation {
	copied := *inv
	if h, ok := s.households[inv.HouseholdID]; ok {
		copied.HouseholdName = h.Name
	}
	return &copied
}

func sortByCreatedAtDesc(invitations []*types.Invitation) {
	sort.Slice(invitations, func(i, j int) bool {
		return invitations[i].CreatedAt.After(invitations[j].CreatedAt)
	})
}
