package response

import (
	"time"

	"dealvista/internal/usecase/queries"

	"github.com/google/uuid"
)

type ActivityLogResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

func FromActivityLogViews(views []queries.ActivityLogView) []ActivityLogResponse {
	items := make([]ActivityLogResponse, 0, len(views))
	for _, v := range views {
		items = append(items, ActivityLogResponse{
			ID:        v.ID,
			UserID:    v.UserID,
			Message:   v.Message,
			CreatedAt: v.CreatedAt,
		})
	}
	return items
}
