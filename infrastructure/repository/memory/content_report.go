package memory

import (
	"context"
	"time"

	"github.com/vfg2006/cafe-report-api/internal/domain"
)

type contentReportRepository struct {
	t *table[domain.ContentReport]
}

func (r *contentReportRepository) Select(ctx context.Context, filter domain.ReportFilter, order domain.SortOrder) ([]*domain.ContentReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.t.list(func(report domain.ContentReport) bool {
		return matchFilter(filter, report.CafeID, report.Month, report.Year)
	}, order)
}

func (r *contentReportRepository) Insert(ctx context.Context, input *domain.ContentReportInput) (*domain.ContentReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := r.t.insert(func(id string, now time.Time) domain.ContentReport {
		return cloneContentReport(*input.Materialize(id, now))
	})
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *contentReportRepository) Update(ctx context.Context, id string, patch *domain.ContentReportPatch) (*domain.ContentReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report, err := r.t.update(id, func(c *domain.ContentReport, now time.Time) {
		patch.Apply(c)
		c.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}

	return &report, nil
}

func (r *contentReportRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.t.delete(id)
}

func contentReportSortKey(c domain.ContentReport, column string) (time.Time, bool) {
	switch column {
	case "post_date":
		return c.PostDate.Time, true
	case "created_at":
		return c.CreatedAt, true
	case "updated_at":
		return c.UpdatedAt, true
	}
	return time.Time{}, false
}

func cloneContentReport(c domain.ContentReport) domain.ContentReport {
	if c.MediaURL != nil {
		url := *c.MediaURL
		c.MediaURL = &url
	}
	return c
}
