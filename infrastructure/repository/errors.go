// Package repository contém os gateways de persistência dos cafés e relatórios
package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrNotFound indica que nenhum registro com o id informado existe
var ErrNotFound = errors.New("record not found")

// wrapQueryError mantém o *pq.Error acessível via errors.As
func wrapQueryError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("failed to execute query: %w", err)
}

func notFound(table, id string) error {
	return fmt.Errorf("%s %q: %w", table, id, ErrNotFound)
}
