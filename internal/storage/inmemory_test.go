// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/seniorhub/household-service/internal/storage"
	"github.com/seniorhub/household-service/internal/types"
)

func newInvitation(t *testing.T, householdID, email, role string, expiresAt time.Time) *types.Invitation {
	t.Helper()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("failed to generate invitation ID: %v", err)
	}
	hash, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("failed to generate token hash: %v", err)
	}

	return &types.Invitation{
		ID:             id.String(),
		HouseholdID:    householdID,
		InviterUserID:  "user-2",
		InviteeEmail:   email,
		AssignedRole:   role,
		TokenHash:      hash.String(),
		TokenExpiresAt: expiresAt,
		Status:         types.InvitationPending,
		CreatedAt:      time.Now(),
	}
}

func TestCreateInvitationIfAbsent(t *testing.T) {
	ctx := context.Background()
	future := time.Now().Add(72 * time.Hour)

	testCases := []struct {
		name     string
		email    string
		role     string
		expected storage.CreateOutcome
	}{
		{
			name:     "new recipient is created",
			email:    "carol@example.com",
			role:     types.RoleCaregiver,
			expected: storage.OutcomeCreated,
		},
		{
			name:     "same recipient and role is suppressed",
			email:    "carol@example.com",
			role:     types.RoleCaregiver,
			expected: storage.OutcomeDuplicate,
		},
		{
			name:     "same recipient with different role is created",
			email:    "carol@example.com",
			role:     types.RoleSenior,
			expected: storage.OutcomeCreated,
		},
		{
			name:     "active member is rejected",
			email:    "alice@example.com",
			role:     types.RoleCaregiver,
			expected: storage.OutcomeMemberConflict,
		},
	}

	store := storage.NewSeededInMemoryStorage()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := store.CreateInvitationIfAbsent(ctx, newInvitation(t, "household-1", tc.email, tc.role, future))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome != tc.expected {
				t.Errorf("expected outcome %v, got %v", tc.expected, outcome)
			}
		})
	}
}

func TestDuplicateSuppressionLiftsAfterTerminalState(t *testing.T) {
	ctx := context.Background()
	store := storage.NewSeededInMemoryStorage()
	future := time.Now().Add(72 * time.Hour)

	first := newInvitation(t, "household-1", "carol@example.com", types.RoleCaregiver, future)
	if outcome, _ := store.CreateInvitationIfAbsent(ctx, first); outcome != storage.OutcomeCreated {
		t.Fatalf("expected created, got %v", outcome)
	}

	if err := store.TransitionToCancelled(ctx, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := newInvitation(t, "household-1", "carol@example.com", types.RoleCaregiver, future)
	outcome, err := store.CreateInvitationIfAbsent(ctx, second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome != storage.OutcomeCreated {
		t.Errorf("expected created after cancellation, got %v", outcome)
	}
}

func TestTransitionToAcceptedSingleWinner(t *testing.T) {
	ctx := context.Background()
	store := storage.NewSeededInMemoryStorage()

	inv := newInvitation(t, "household-1", "carol@example.com", types.RoleCaregiver, time.Now().Add(time.Hour))
	if outcome, _ := store.CreateInvitationIfAbsent(ctx, inv); outcome != storage.OutcomeCreated {
		t.Fatalf("expected created, got %v", outcome)
	}

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.TransitionToAccepted(ctx, inv.ID, time.Now())
		}()
	}
	wg.Wait()
	close(results)

	var wins, terminal int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, storage.ErrAlreadyTerminal):
			terminal++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if wins != 1 {
		t.Errorf("expected exactly one winner, got %d", wins)
	}
	if terminal != attempts-1 {
		t.Errorf("expected %d terminal rejections, got %d", attempts-1, terminal)
	}

	stored, err := store.GetInvitationByID(ctx, inv.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != types.InvitationAccepted {
		t.Errorf("expected accepted status, got %s", stored.Status)
	}
	if stored.AcceptedAt == nil {
		t.Error("expected accepted timestamp to be set")
	}
}

func TestTransitionsOnTerminalInvitation(t *testing.T) {
	ctx := context.Background()
	store := storage.NewSeededInMemoryStorage()

	inv := newInvitation(t, "household-1", "carol@example.com", types.RoleCaregiver, time.Now().Add(time.Hour))
	if _, err := store.CreateInvitationIfAbsent(ctx, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.TransitionToAccepted(ctx, inv.ID, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.TransitionToCancelled(ctx, inv.ID); !errors.Is(err, storage.ErrAlreadyTerminal) {
		t.Errorf("expected ErrAlreadyTerminal, got %v", err)
	}
	if err := store.TransitionToExpired(ctx, inv.ID); !errors.Is(err, storage.ErrAlreadyTerminal) {
		t.Errorf("expected ErrAlreadyTerminal, got %v", err)
	}
	if err := store.TransitionToCancelled(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListPendingExpiresLapsedInvitations(t *testing.T) {
	ctx := context.Background()
	store := storage.NewSeededInMemoryStorage()

	lapsed := newInvitation(t, "household-1", "carol@example.com", types.RoleCaregiver, time.Now().Add(-time.Minute))
	live := newInvitation(t, "household-1", "carol@example.com", types.RoleSenior, time.Now().Add(time.Hour))
	for _, inv := range []*types.Invitation{lapsed, live} {
		if outcome, _ := store.CreateInvitationIfAbsent(ctx, inv); outcome != storage.OutcomeCreated {
			t.Fatalf("expected created, got %v", outcome)
		}
	}

	pending, err := store.ListPendingInvitationsByEmail(ctx, "carol@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != live.ID {
		t.Fatalf("expected only the live invitation, got %d entries", len(pending))
	}

	stored, err := store.GetInvitationByID(ctx, lapsed.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.Status != types.InvitationExpired {
		t.Errorf("expected lapsed invitation to be marked expired, got %s", stored.Status)
	}
}

func TestRotateInvitationToken(t *testing.T) {
	ctx := context.Background()
	store := storage.NewSeededInMemoryStorage()

	inv := newInvitation(t, "household-1", "carol@example.com", types.RoleCaregiver, time.Now().Add(time.Hour))
	if _, err := store.CreateInvitationIfAbsent(ctx, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newExpiry := time.Now().Add(72 * time.Hour)
	if err := store.RotateInvitationToken(ctx, inv.ID, "rotated-hash", newExpiry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := store.GetInvitationByTokenHash(ctx, "rotated-hash")
	if err != nil {
		t.Fatalf("expected lookup by rotated hash to succeed, got %v", err)
	}
	if stored.Status != types.InvitationPending {
		t.Errorf("rotation must not change status, got %s", stored.Status)
	}
	if !stored.TokenExpiresAt.Equal(newExpiry) {
		t.Errorf("expected rotated expiry %v, got %v", newExpiry, stored.TokenExpiresAt)
	}

	if _, err := store.GetInvitationByTokenHash(ctx, inv.TokenHash); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected old hash lookup to fail, got %v", err)
	}
}

func TestRotateInvitationTokenRejectsLapsed(t *testing.T) {
	ctx := context.Background()
	store := storage.NewSeededInMemoryStorage()

	inv := newInvitation(t, "household-1", "carol@example.com", types.RoleCaregiver, time.Now().Add(-time.Minute))
	if _, err := store.CreateInvitationIfAbsent(ctx, inv); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := store.RotateInvitationToken(ctx, inv.ID, "rotated-hash", time.Now().Add(72*time.Hour))
	if !errors.Is(err, storage.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestUpsertActiveMemberIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := storage.NewSeededInMemoryStorage()

	profile := types.Requester{UserID: "user-3", Email: "Carol@Example.com", FirstName: " Carol ", LastName: "Jones"}
	first, err := store.UpsertActiveMember(ctx, "household-1", profile, types.RoleSenior, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Email != "carol@example.com" {
		t.Errorf("expected normalized email, got %s", first.Email)
	}
	if first.FirstName != "Carol" {
		t.Errorf("expected trimmed first name, got %q", first.FirstName)
	}

	second, err := store.UpsertActiveMember(ctx, "household-1", profile, types.RoleCaregiver, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected upsert to reuse member %s, got %s", first.ID, second.ID)
	}
	if second.Role != types.RoleCaregiver {
		t.Errorf("expected updated role, got %s", second.Role)
	}

	members, err := store.ListHouseholdMembers(ctx, "household-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(members) != 3 {
		t.Errorf("expected 3 members, got %d", len(members))
	}
}

func TestCreateHouseholdAddsCreatorAsCaregiver(t *testing.T) {
	ctx := context.Background()
	store := storage.NewInMemoryStorage()

	requester := types.Requester{UserID: "user-9", Email: "dana@example.com", FirstName: "Dana", LastName: "Reed"}
	h, err := store.CreateHousehold(ctx, "  Reed Home  ", requester)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name != "Reed Home" {
		t.Errorf("expected trimmed name, got %q", h.Name)
	}

	member, err := store.FindActiveMember(ctx, "user-9", h.ID)
	if err != nil {
		t.Fatalf("expected creator membership, got %v", err)
	}
	if member.Role != types.RoleCaregiver {
		t.Errorf("expected caregiver role, got %s", member.Role)
	}

	overview, err := store.GetHouseholdOverview(ctx, h.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.MembersCount != 1 || overview.CaregiversCount != 1 || overview.SeniorsCount != 0 {
		t.Errorf("unexpected counts: %+v", overview)
	}
}

func TestListUserHouseholds(t *testing.T) {
	ctx := context.Background()
	store := storage.NewSeededInMemoryStorage()

	households, err := store.ListUserHouseholds(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(households) != 1 {
		t.Fatalf("expected 1 household, got %d", len(households))
	}
	if households[0].HouseholdName != "Martin Family Home" {
		t.Errorf("unexpected household name %q", households[0].HouseholdName)
	}
	if households[0].MyRole != types.RoleSenior {
		t.Errorf("expected senior role, got %s", households[0].MyRole)
	}
	if households[0].MemberCount != 2 {
		t.Errorf("expected 2 members, got %d", households[0].MemberCount)
	}
}
