package memory

import (
	"context"
	"time"

	"github.com/vfg2006/cafe-report-api/internal/domain"
)

type adsReportRepository struct {
	t *table[domain.AdsReport]
}

func (r *adsReportRepository) Select(ctx context.Context, filter domain.ReportFilter, order domain.SortOrder) ([]*domain.AdsReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.t.list(func(report domain.AdsReport) bool {
		return matchFilter(filter, report.CafeID, report.Month, report.Year)
	}, order)
}

func (r *adsReportRepository) Insert(ctx context.Context, input *domain.AdsReportInput) (*domain.AdsReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := r.t.insert(func(id string, now time.Time) domain.AdsReport {
		return *input.Materialize(id, now)
	})
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *adsReportRepository) Update(ctx context.Context, id string, patch *domain.AdsReportPatch) (*domain.AdsReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := r.t.update(id, func(a *domain.AdsReport, now time.Time) {
		patch.Apply(a)
		a.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *adsReportRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.t.delete(id)
}

func adsReportSortKey(a domain.AdsReport, column string) (time.Time, bool) {
	switch column {
	case "created_at":
		return a.CreatedAt, true
	case "updated_at":
		return a.UpdatedAt, true
	}
	return time.Time{}, false
}
