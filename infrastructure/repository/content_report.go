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

const contentReportsTable = "content_reports"

var contentReportColumns = []string{
	"id",
	"cafe_id",
	"month",
	"year",
	"post_date",
	"caption",
	"platform",
	"status",
	"media_type",
	"media_url",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=content_report.go -destination=mocks/content_report.go -package=mocks
type ContentReportRepository interface {
	Select(ctx context.Context, filter domain.ReportFilter, order domain.SortOrder) ([]*domain.ContentReport, error)
	Insert(ctx context.Context, input *domain.ContentReportInput) (*domain.ContentReport, error)
	Update(ctx context.Context, id string, patch *domain.ContentReportPatch) (*domain.ContentReport, error)
	Delete(ctx context.Context, id string) error
}

type contentReportRepository struct {
	conn postgres.Queryer
}

func NewContentReportRepository(conn postgres.Queryer) ContentReportRepository {
	return &contentReportRepository{
		conn: conn,
	}
}

func (r *contentReportRepository) Select(ctx context.Context, filter domain.ReportFilter, order domain.SortOrder) ([]*domain.ContentReport, error) {
	orderBy, err := orderClause(order)
	if err != nil {
		return nil, err
	}

	// post_date empata com frequência; created_at desempata do mais novo para o mais antigo
	query, args, err := squirrel.
		Select(contentReportColumns...).
		From(contentReportsTable).
		Where(squirrel.Eq(filter.Predicates())).
		OrderBy(orderBy, "created_at DESC", "id ASC").
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

	reports := make([]*domain.ContentReport, 0)
	for rows.Next() {
		report, err := scanContentReport(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear relatório de conteúdo: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return reports, nil
}

func (r *contentReportRepository) Insert(ctx context.Context, input *domain.ContentReportInput) (*domain.ContentReport, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	query, args, err := squirrel.
		Insert(contentReportsTable).
		Columns(
			"id",
			"cafe_id",
			"month",
			"year",
			"post_date",
			"caption",
			"platform",
			"status",
			"media_type",
			"media_url",
		).
		Values(
			id,
			input.CafeID,
			input.Month,
			input.Year,
			input.PostDate,
			input.Caption,
			input.Platform,
			input.Status,
			input.MediaType,
			input.MediaURL,
		).
		Suffix(returning(contentReportColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	report, err := scanContentReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapQueryError(err)
	}

	return report, nil
}

func (r *contentReportRepository) Update(ctx context.Context, id string, patch *domain.ContentReportPatch) (*domain.ContentReport, error) {
	queryBuilder := squirrel.
		Update(contentReportsTable).
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
	if patch.PostDate != nil {
		queryBuilder = queryBuilder.Set("post_date", *patch.PostDate)
	}
	if patch.Caption != nil {
		queryBuilder = queryBuilder.Set("caption", *patch.Caption)
	}
	if patch.Platform != nil {
		queryBuilder = queryBuilder.Set("platform", *patch.Platform)
	}
	if patch.Status != nil {
		queryBuilder = queryBuilder.Set("status", *patch.Status)
	}
	if patch.MediaType != nil {
		queryBuilder = queryBuilder.Set("media_type", *patch.MediaType)
	}
	if patch.MediaURL != nil {
		queryBuilder = queryBuilder.Set("media_url", *patch.MediaURL)
	}
	if patch.ClearMediaURL {
		queryBuilder = queryBuilder.Set("media_url", nil)
	}

	query, args, err := queryBuilder.Suffix(returning(contentReportColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	report, err := scanContentReport(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(contentReportsTable, id)
		}
		return nil, wrapQueryError(err)
	}

	return report, nil
}

func (r *contentReportRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, contentReportsTable, id)
}

func scanContentReport(row rowScanner) (*domain.ContentReport, error) {
	report := domain.ContentReport{}

	if err := row.Scan(
		&report.ID,
		&report.CafeID,
		&report.Month,
		&report.Year,
		&report.PostDate,
		&report.Caption,
		&report.Platform,
		&report.Status,
		&report.MediaType,
		&report.MediaURL,
		&report.CreatedAt,
		&report.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &report, nil
}
