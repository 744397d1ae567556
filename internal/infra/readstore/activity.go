package readstore

import (
	"context"

	"dealvista/internal/infra"
	"dealvista/internal/infra/db"
	"dealvista/internal/infra/pgconv"
	"dealvista/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ActivityReadStore struct {
	db db.DBTX
}

func NewActivityReadStore(dbtx db.DBTX) *ActivityReadStore {
	return &ActivityReadStore{db: dbtx}
}

func (s *ActivityReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]queries.ActivityLogView, error) {
	const query = `
		SELECT id, user_id, message, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.Query(ctx, query, pgconv.UUIDToPgtype(userID), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activity logs", err)
	}
	defer rows.Close()

	return scanActivityRows(rows)
}

func (s *ActivityReadStore) ListAll(ctx context.Context, limit, offset int) ([]queries.ActivityLogView, error) {
	const query = `
		SELECT id, user_id, message, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list activity logs", err)
	}
	defer rows.Close()

	return scanActivityRows(rows)
}

func scanActivityRows(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]queries.ActivityLogView, error) {
	items := []queries.ActivityLogView{}
	for rows.Next() {
		var (
			v      queries.ActivityLogView
			userID pgtype.UUID
		)
		if err := rows.Scan(&v.ID, &userID, &v.Message, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan activity log row", err)
		}
		v.UserID = pgconv.UUIDPtrFromPgtype(userID)
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate activity log rows", err)
	}

	return items, nil
}
