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

const cafesTable = "cafes"

var cafeColumns = []string{
	"id",
	"name",
	"address",
	"phone",
	"email",
	"description",
	"status",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=cafe.go -destination=mocks/cafe.go -package=mocks
type CafeRepository interface {
	Select(ctx context.Context, order domain.SortOrder) ([]*domain.Cafe, error)
	Insert(ctx context.Context, input *domain.CafeInput) (*domain.Cafe, error)
	Update(ctx context.Context, id string, patch *domain.CafePatch) (*domain.Cafe, error)
	Delete(ctx context.Context, id string) error
}

type cafeRepository struct {
	conn postgres.Queryer
}

func NewCafeRepository(conn postgres.Queryer) CafeRepository {
	return &cafeRepository{
		conn: conn,
	}
}

func (r *cafeRepository) Select(ctx context.Context, order domain.SortOrder) ([]*domain.Cafe, error) {
	orderBy, err := orderClause(order)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(cafeColumns...).
		From(cafesTable).
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

	cafes := make([]*domain.Cafe, 0)
	for rows.Next() {
		cafe, err := scanCafe(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear café: %w", err)
		}
		cafes = append(cafes, cafe)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return cafes, nil
}

func (r *cafeRepository) Insert(ctx context.Context, input *domain.CafeInput) (*domain.Cafe, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate id: %w", err)
	}

	query, args, err := squirrel.
		Insert(cafesTable).
		Columns("id", "name", "address", "phone", "email", "description", "status").
		Values(id, input.Name, input.Address, input.Phone, input.Email, input.Description, input.Status).
		Suffix(returning(cafeColumns)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	cafe, err := scanCafe(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, wrapQueryError(err)
	}

	return cafe, nil
}

func (r *cafeRepository) Update(ctx context.Context, id string, patch *domain.CafePatch) (*domain.Cafe, error) {
	queryBuilder := squirrel.
		Update(cafesTable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if patch.Name != nil {
		queryBuilder = queryBuilder.Set("name", *patch.Name)
	}

	if patch.Address != nil {
		queryBuilder = queryBuilder.Set("address", *patch.Address)
	}

	if patch.Phone != nil {
		queryBuilder = queryBuilder.Set("phone", *patch.Phone)
	}

	if patch.Email != nil {
		queryBuilder = queryBuilder.Set("email", *patch.Email)
	}

	if patch.Description != nil {
		queryBuilder = queryBuilder.Set("description", *patch.Description)
	}

	if patch.Status != nil {
		queryBuilder = queryBuilder.Set("status", *patch.Status)
	}

	query, args, err := queryBuilder.Suffix(returning(cafeColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	cafe, err := scanCafe(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(cafesTable, id)
		}
		return nil, wrapQueryError(err)
	}

	return cafe, nil
}

func (r *cafeRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.conn, cafesTable, id)
}

func scanCafe(row rowScanner) (*domain.Cafe, error) {
	cafe := domain.Cafe{}

	if err := row.Scan(
		&cafe.ID,
		&cafe.Name,
		&cafe.Address,
		&cafe.Phone,
		&cafe.Email,
		&cafe.Description,
		&cafe.Status,
		&cafe.CreatedAt,
		&cafe.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &cafe, nil
}
