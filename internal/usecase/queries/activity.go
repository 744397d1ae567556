package queries

import (
	"context"

	"dealvista/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type ActivityQueryService struct {
	logs ActivityReadStore
}

func NewActivityQueryService(logs ActivityReadStore) *ActivityQueryService {
	return &ActivityQueryService{logs: logs}
}

func (s *ActivityQueryService) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]ActivityLogView, error) {
	limit = clampActivityLimit(limit)

	items, err := s.logs.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (s *ActivityQueryService) ListAll(ctx context.Context, limit, offset int) ([]ActivityLogView, error) {
	limit = clampActivityLimit(limit)
	if offset < 0 {
		offset = 0
	}

	items, err := s.logs.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func clampActivityLimit(limit int) int {
	if limit < 1 {
		return defaultActivityLimit
	}
	if limit > maxActivityLimit {
		return maxActivityLimit
	}
	return limit
}
