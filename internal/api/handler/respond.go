package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/cafe-report-api/internal/usecases/syncing"
	"github.com/vfg2006/cafe-report-api/pkg/apiErrors"
	"github.com/vfg2006/cafe-report-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

var errMalformedBody = errors.New("malformed request body")

// decodeBody lê o corpo JSON recusando campos desconhecidos
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return pkgerrors.Wrap(errors.Join(errMalformedBody, err), "decode body")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("handler: erro ao codificar resposta")
	}
}

// writeError traduz os erros dos hooks para o corpo padronizado
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	message := err.Error()
	var opErr *syncing.OperationError
	if errors.As(err, &opErr) {
		message = opErr.Message
	}

	switch {
	case errors.Is(err, errMalformedBody):
		logger.Warn("handler: corpo inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
	case errors.Is(err, syncing.ErrInvalidInput):
		logger.Warn("handler: dados inválidos")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, message, nil)
	case errors.Is(err, syncing.ErrNotFound):
		logger.Warn("handler: registro não encontrado")
		apiErrors.WriteError(w, apiErrors.ErrSyncNotFound, message, nil)
	default:
		logger.Error("handler: operação falhou")
		apiErrors.WriteError(w, apiErrors.ErrSyncOperation, message, nil)
	}
}

func snapshotHandler[T any](snapshot func() syncing.Snapshot[T]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, snapshot())
	})
}

func createHandler[In, T any](create func(context.Context, *In) (*T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		input := new(In)
		if err := decodeBody(w, r, input); err != nil {
			writeError(w, r, err)
			return
		}

		created, err := create(r.Context(), input)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func updateHandler[P, T any](update func(context.Context, string, *P) (*T, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		patch := new(P)
		if err := decodeBody(w, r, patch); err != nil {
			writeError(w, r, err)
			return
		}

		updated, err := update(r.Context(), id, patch)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	})
}

func deleteHandler(remove func(context.Context, string) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := remove(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func refetchHandler[T any](refetch func(context.Context) error, snapshot func() syncing.Snapshot[T]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := refetch(r.Context()); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, snapshot())
	})
}
