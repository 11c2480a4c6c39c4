package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cafe-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/cafe-report-api/internal/domain"
)

// colunas aceitas em ORDER BY
var sortableColumns = map[string]struct{}{
	"created_at": {},
	"updated_at": {},
	"post_date":  {},
}

type rowScanner interface {
	Scan(dest ...any) error
}

func orderClause(order domain.SortOrder) (string, error) {
	if _, ok := sortableColumns[order.Column]; !ok {
		return "", fmt.Errorf("unsupported sort column %q", order.Column)
	}
	return order.Column + " " + order.Direction(), nil
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func deleteByID(ctx context.Context, conn postgres.Queryer, table, id string) error {
	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapQueryError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound(table, id)
	}

	return nil
}
