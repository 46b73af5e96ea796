package repositories

import (
	"context"
	"sync"

	"baladi/internal/models/db_models"
)

type MunicipalityRepository interface {
	GetAll(ctx context.Context) ([]db_models.Municipality, error)
	GetByID(ctx context.Context, id string) (db_models.Municipality, bool, error)
	Insert(ctx context.Context, m db_models.Municipality) error
	Update(ctx context.Context, m db_models.Municipality) (bool, error)
	Delete(ctx context.Context, ids ...string) (int, error)
}

type municipalityRepository struct {
	mu    sync.RWMutex
	items []db_models.Municipality
}

func NewMunicipalityRepository(seed []db_models.Municipality) MunicipalityRepository {
	items := make([]db_models.Municipality, len(seed))
	copy(items, seed)
	return &municipalityRepository{items: items}
}

func (r *municipalityRepository) GetAll(ctx context.Context) ([]db_models.Municipality, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]db_models.Municipality, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *municipalityRepository) GetByID(ctx context.Context, id string) (db_models.Municipality, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if m.ID == id {
			return m, true, nil
		}
	}
	return db_models.Municipality{}, false, nil
}

func (r *municipalityRepository) Insert(ctx context.Context, m db_models.Municipality) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append([]db_models.Municipality{m}, r.items...)
	return nil
}

func (r *municipalityRepository) Update(ctx context.Context, m db_models.Municipality) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == m.ID {
			r.items[i] = m
			return true, nil
		}
	}
	return false, nil
}

func (r *municipalityRepository) Delete(ctx context.Context, ids ...string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := r.items[:0]
	removed := 0
	for _, m := range r.items {
		if _, ok := drop[m.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, m)
	}
	r.items = kept
	return removed, nil
}
