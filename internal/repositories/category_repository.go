package repositories

import (
	"context"
	"sync"

	"baladi/internal/models/db_models"
)

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]db_models.Category, error)
	GetByID(ctx context.Context, id string) (db_models.Category, bool, error)
	Insert(ctx context.Context, c db_models.Category) error
	Update(ctx context.Context, c db_models.Category) (bool, error)
	Delete(ctx context.Context, ids ...string) (int, error)
}

// categoryRepository is an in-memory ordered store. New records are
// prepended, updates keep position, deletes remove without reordering.
type categoryRepository struct {
	mu    sync.RWMutex
	items []db_models.Category
}

func NewCategoryRepository(seed []db_models.Category) CategoryRepository {
	items := make([]db_models.Category, len(seed))
	copy(items, seed)
	return &categoryRepository{items: items}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]db_models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]db_models.Category, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (db_models.Category, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, true, nil
		}
	}
	return db_models.Category{}, false, nil
}

func (r *categoryRepository) Insert(ctx context.Context, c db_models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]db_models.Category{c}, r.items...)
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c db_models.Category) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == c.ID {
			r.items[i] = c
			return true, nil
		}
	}
	return false, nil
}

func (r *categoryRepository) Delete(ctx context.Context, ids ...string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := r.items[:0]
	removed := 0
	for _, c := range r.items {
		if _, ok := drop[c.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.items = kept
	return removed, nil
}
