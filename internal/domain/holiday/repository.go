package holiday

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, h *Holiday) error
	GetByID(ctx context.Context, id string) (*Holiday, error)
	List(ctx context.Context) ([]Holiday, error)

	// ListInRange returns holidays relevant to [from, to], including
	// recurring holidays regardless of their stored year.
	ListInRange(ctx context.Context, from, to time.Time) ([]Holiday, error)

	Delete(ctx context.Context, id string) error
}
