package repositories

import (
	"context"
	"sync"

	"baladi/internal/models/db_models"
)

type InterestRepository interface {
	GetAll(ctx context.Context) ([]db_models.Interest, error)
	GetByID(ctx context.Context, id string) (db_models.Interest, bool, error)
	Insert(ctx context.Context, i db_models.Interest) error
	Update(ctx context.Context, i db_models.Interest) (bool, error)
	Delete(ctx context.Context, ids ...string) (int, error)
}

type interestRepository struct {
	mu    sync.RWMutex
	items []db_models.Interest
}

func NewInterestRepository(seed []db_models.Interest) InterestRepository {
	items := make([]db_models.Interest, len(seed))
	copy(items, seed)
	return &interestRepository{items: items}
}

func (r *interestRepository) GetAll(ctx context.Context) ([]db_models.Interest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]db_models.Interest, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *interestRepository) GetByID(ctx context.Context, id string) (db_models.Interest, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.items {
		if i.ID == id {
			return i, true, nil
		}
	}
	return db_models.Interest{}, false, nil
}

func (r *interestRepository) Insert(ctx context.Context, i db_models.Interest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]db_models.Interest{i}, r.items...)
	return nil
}

func (r *interestRepository) Update(ctx context.Context, in db_models.Interest) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == in.ID {
			r.items[i] = in
			return true, nil
		}
	}
	return false, nil
}

func (r *interestRepository) Delete(ctx context.Context, ids ...string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := r.items[:0]
	removed := 0
	for _, it := range r.items {
		if _, ok := drop[it.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	r.items = kept
	return removed, nil
}
