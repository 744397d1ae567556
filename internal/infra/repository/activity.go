package repository

import (
	"context"

	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"

	"github.com/google/uuid"
)

type ActivityLogRepository struct {
	db db.DBTX
}

func NewActivityLogRepository(dbtx db.DBTX) *ActivityLogRepository {
	return &ActivityLogRepository{db: dbtx}
}

func (r *ActivityLogRepository) Append(ctx context.Context, userID *uuid.UUID, message string) error {
	const query = `
		INSERT INTO activity_logs (id, user_id, message)
		VALUES (gen_random_uuid(), $1, $2)`

	if _, err := r.db.Exec(ctx, query, pgconv.UUIDPtrToPgtype(userID), message); err != nil {
		return infra.WrapRepoErr("failed to append activity log", err)
	}

	return nil
}
