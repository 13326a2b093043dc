// Copyright 2026 Senior Hub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/seniorhub/household-service/internal/types"
)

func (s *Storage) RecordAuditEvent(ctx context.Context, event *types.AuditEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordAuditEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate audit event ID: %w", err)
	}

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal audit metadata: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("audit_events").
		Columns("id", "household_id", "actor_user_id", "action", "target_id", "metadata", "created_at").
		Values(id.String(), event.HouseholdID, event.ActorUserID, event.Action, event.TargetID, metadata, time.Now()).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}

	return nil
}
