package syncing

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vfg2006/cafe-report-api/infrastructure/repository"
)

type Operation string

const (
	OpFetch  Operation = "fetch"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

var verbs = map[Operation]string{
	OpFetch:  "fetching",
	OpCreate: "creating",
	OpUpdate: "updating",
	OpDelete: "deleting",
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = repository.ErrNotFound
)

// OperationError é o único tipo de falha devolvido pelos hooks. Message é o texto
// exibido ao usuário; Err preserva a causa para errors.Is/errors.As.
type OperationError struct {
	Entity  string
	Op      Operation
	Message string
	Err     error
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func newOperationError(names entityNames, op Operation, err error) *OperationError {
	return &OperationError{
		Entity:  names.collection,
		Op:      op,
		Message: messageFor(err, fallbackMessage(names, op)),
		Err:     err,
	}
}

// messageFor prefere a mensagem do PostgreSQL, depois o texto do erro e por fim o fallback
func messageFor(err error, fallback string) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Message != "" {
		return pqErr.Message
	}

	if err != nil && err.Error() != "" {
		return err.Error()
	}

	return fallback
}

func fallbackMessage(names entityNames, op Operation) string {
	if op == OpFetch {
		return fmt.Sprintf("Error %s %s", verbs[op], names.plural)
	}
	return fmt.Sprintf("Error %s %s", verbs[op], names.singular)
}
