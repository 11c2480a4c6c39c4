package memory

import (
	"context"
	"time"

	"github.com/vfg2006/cafe-report-api/internal/domain"
)

type cafeRepository struct {
	t *table[domain.Cafe]
}

func (r *cafeRepository) Select(ctx context.Context, order domain.SortOrder) ([]*domain.Cafe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.t.list(func(domain.Cafe) bool { return true }, order)
}

func (r *cafeRepository) Insert(ctx context.Context, input *domain.CafeInput) (*domain.Cafe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cafe, err := r.t.insert(func(id string, now time.Time) domain.Cafe {
		return *input.Materialize(id, now)
	})
	if err != nil {
		return nil, err
	}

	return &cafe, nil
}

func (r *cafeRepository) Update(ctx context.Context, id string, patch *domain.CafePatch) (*domain.Cafe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cafe, err := r.t.update(id, func(c *domain.Cafe, now time.Time) {
		patch.Apply(c)
		c.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}

	return &cafe, nil
}

func (r *cafeRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.t.delete(id)
}

func cafeSortKey(c domain.Cafe, column string) (time.Time, bool) {
	switch column {
	case "created_at":
		return c.CreatedAt, true
	case "updated_at":
		return c.UpdatedAt, true
	}
	return time.Time{}, false
}
