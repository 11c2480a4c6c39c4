package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cafe-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/pkg/utils"
)

const adsReportsTable = "ads_reports"

var adsReportColumns = []string{
	"id",
	"cafe_id",
	"month",
	"year",
	"platform",
	"impressions",
	"clicks",
	"ctr",
	"cpc",
	"conversions",
	"roas",
	"budget",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=ads_report.go -destination=mocks/ads_report.go -package=mocks
type AdsReportRepository interface {
	Select(ctx context.Context, filter domain.ReportFilter, order domain.SortOrder) ([]*domain.AdsReport, error)
	Insert(ctx context.Context, input *domain.AdsReportInput) (*domain.AdsReport, error)
	Update(ctx context.Context, id string, patch *domain.AdsReportPatch) (*domain.AdsReport, error)
	Delete(ctx context.Context, id string) error
}

type adsReportRepository struct {
	conn postgres.Queryer
}

func NewAdsReportRepository(conn postgres.Queryer) AdsReportRepository {
	return &adsReportRepository{
		conn: conn,
	}
}

func (r *adsReportRepository) Select(ctx context.Context, filter domain.ReportFilter, order domain.SortOrder) ([]*domain.AdsReport, error) {
	orderBy, err := orderClause(order)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(adsReportColumns...).
		From(adsReportsTable).
		Where(squirrel.Eq(filter.Predicates())).
		OrderBy(orderBy, "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapQueryError(err)
	}
	defer rows.Close()

	reports := make([]*domain.AdsReport, 0)
	for rows.Next() {
		report, err := scanAdsReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório de anúncios: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *adsReportRepository) Insert(ctx context.Context, input *domain.AdsReportInput) (*domain.AdsReport, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	query, args, err := squirrel.
		Insert(adsReportsTable).
		Columns(
			"id",
			"cafe_id",
			"month",
			"year",
			"platform",
			"impressions",
			"clicks",
			"ctr",
			"cpc",
			"conversions",
			"roas",
			"budget",
		).
		Values(
			id,
			input.CafeID,
			input.Month,
			input.Year,
			input.Platform,
			input.Impressions,
			input.Clicks,
			input.CTR,
			input.CPC,
			input.Conversions,
			input.ROAS,
			input.Budget,
		).
		Suffix(returning(adsReportColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	report, err := scanAdsReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapQueryError(err)
	}

	return report, nil
}

func (r *adsReportRepository) Update(ctx context.Context, id string, patch *domain.AdsReportPatch) (*domain.AdsReport, error) {
	queryBuilder := squirrel.
		Update(adsReportsTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if patch.CafeID != nil {
		queryBuilder = queryBuilder.Set("cafe_id", *patch.CafeID)
	}
	if patch.Month != nil {
		queryBuilder = queryBuilder.Set("month", *patch.Month)
	}
	if patch.Year != nil {
		queryBuilder = queryBuilder.Set("year", *patch.Year)
	}
	if patch.Platform != nil {
		queryBuilder = queryBuilder.Set("platform", *patch.Platform)
	}
	if patch.Impressions != nil {
		queryBuilder = queryBuilder.Set("impressions", *patch.Impressions)
	}
	if patch.Clicks != nil {
		queryBuilder = queryBuilder.Set("clicks", *patch.Clicks)
	}
	if patch.CTR != nil {
		queryBuilder = queryBuilder.Set("ctr", *patch.CTR)
	}
	if patch.CPC != nil {
		queryBuilder = queryBuilder.Set("cpc", *patch.CPC)
	}
	if patch.Conversions != nil {
		queryBuilder = queryBuilder.Set("conversions", *patch.Conversions)
	}
	if patch.ROAS != nil {
		queryBuilder = queryBuilder.Set("roas", *patch.ROAS)
	}
	if patch.Budget != nil {
		queryBuilder = queryBuilder.Set("budget", *patch.Budget)
	}

	query, args, err := queryBuilder.Suffix(returning(adsReportColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	report, err := scanAdsReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(adsReportsTable, id)
		}
		return nil, wrapQueryError(err)
	}

	return report, nil
}

func (r *adsReportRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, adsReportsTable, id)
}

func scanAdsReport(row rowScanner) (*domain.AdsReport, error) {
	report := domain.AdsReport{}

	if err := row.Scan(
		&report.ID,
		&report.CafeID,
		&report.Month,
		&report.Year,
		&report.Platform,
		&report.Impressions,
		&report.Clicks,
		&report.CTR,
		&report.CPC,
		&report.Conversions,
		&report.ROAS,
		&report.Budget,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &report, nil
}
