package repositories

import (
	"context"
	"sync"

	"baladi/internal/models/db_models"
)

type ActivityRepository interface {
	// GetAll returns the log newest-first.
	GetAll(ctx context.Context) ([]db_models.ActivityItem, error)
	Append(ctx context.Context, item db_models.ActivityItem) error
}

// activityRepository is append-only; entries are never mutated or
// removed.
type activityRepository struct {
	mu    sync.RWMutex
	items []db_models.ActivityItem
}

func NewActivityRepository(seed []db_models.ActivityItem) ActivityRepository {
	items := make([]db_models.ActivityItem, len(seed))
	copy(items, seed)
	return &activityRepository{items: items}
}

func (r *activityRepository) GetAll(ctx context.Context) ([]db_models.ActivityItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]db_models.ActivityItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *activityRepository) Append(ctx context.Context, item db_models.ActivityItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]db_models.ActivityItem{item}, r.items...)
	return nil
}
