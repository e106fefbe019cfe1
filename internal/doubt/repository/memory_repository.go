package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LaryssaGabi/RotinaOdonto/internal/doubt/domain"
)

// MemoryDoubtRepository is an in-memory DoubtRepository for tests.
type MemoryDoubtRepository struct {
	mu     sync.Mutex
	doubts map[string]*domain.Doubt
}

func NewMemoryDoubtRepository() *MemoryDoubtRepository {
	return &MemoryDoubtRepository{doubts: make(map[string]*domain.Doubt)}
}

func cloneDoubt(d *domain.Doubt) *domain.Doubt {
	c := *d
	c.Images = append([]string(nil), d.Images...)
	return &c
}

func (r *MemoryDoubtRepository) ListAll(_ context.Context) ([]*domain.Doubt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Doubt
	for _, d := range r.doubts {
		out = append(out, cloneDoubt(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryDoubtRepository) FindByID(_ context.Context, id string) (*domain.Doubt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.doubts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDoubt(d), nil
}

func (r *MemoryDoubtRepository) Create(_ context.Context, doubt *domain.Doubt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if doubt.ID == "" {
		doubt.ID = uuid.New().String()
	}
	if doubt.Images == nil {
		doubt.Images = []string{}
	}
	now := time.Now()
	doubt.CreatedAt = now
	doubt.UpdatedAt = now
	r.doubts[doubt.ID] = cloneDoubt(doubt)
	return nil
}

func (r *MemoryDoubtRepository) Update(_ context.Context, doubt *domain.Doubt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.doubts[doubt.ID]; !ok {
		return ErrNotFound
	}
	doubt.UpdatedAt = time.Now()
	r.doubts[doubt.ID] = cloneDoubt(doubt)
	return nil
}

func (r *MemoryDoubtRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.doubts, id)
	return nil
}
