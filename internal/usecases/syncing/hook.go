// Package syncing mantém, para cada entidade, um cache sincronizado com o
// gateway de persistência sob o filtro selecionado no painel.
package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/pkg/log"
	"github.com/vfg2006/cafe-report-api/pkg/metrics"
)

type entityNames struct {
	collection string
	plural     string
	singular   string
}

type Option func(*options)

type options struct {
	timeout time.Duration
}

// WithTimeout limita a duração de cada chamada ao gateway; zero desativa o limite
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// mutator é o lado de escrita do gateway de uma entidade
type mutator[T, In, P any] interface {
	Insert(ctx context.Context, input *In) (*T, error)
	Update(ctx context.Context, id string, patch *P) (*T, error)
	Delete(ctx context.Context, id string) error
}

type selector[T any] func(ctx context.Context, filter domain.ReportFilter) ([]*T, error)

// hook reúne as operações comuns aos três hooks
type hook[T, In, P any] struct {
	names    entityNames
	timeout  time.Duration
	state    *collection[T]
	selectFn selector[T]
	gateway  mutator[T, In, P]
}

func (h *hook[T, In, P]) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return context.WithCancel(ctx)
}

func (h *hook[T, In, P]) run(ctx context.Context, generation uint64, filter domain.ReportFilter) error {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"entity":     h.names.collection,
		"generation": generation,
		"filter":     filter.String(),
	})

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	rows, err := h.selectFn(ctx, filter)
	if err != nil {
		opErr := newOperationError(h.names, OpFetch, err)
		if !h.state.fail(generation, opErr.Message) {
			metrics.ObserveGatewayOperation(h.names.collection, string(OpFetch), metrics.OutcomeStale, started)
			logger.WithError(err).Debug("syncing: falha de busca antiga descartada")
			return opErr
		}

		metrics.ObserveGatewayOperation(h.names.collection, string(OpFetch), metrics.OutcomeError, started)
		logger.WithError(err).Warn("syncing: erro ao buscar registros")
		return opErr
	}

	items := make([]T, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			items = append(items, *row)
		}
	}

	if !h.state.apply(generation, items) {
		metrics.ObserveGatewayOperation(h.names.collection, string(OpFetch), metrics.OutcomeStale, started)
		logger.Debug("syncing: resposta antiga descartada")
		return nil
	}

	metrics.ObserveGatewayOperation(h.names.collection, string(OpFetch), metrics.OutcomeSuccess, started)
	logger.WithField("count", len(items)).Debug("syncing: cache atualizado")

	return nil
}

func (h *hook[T, In, P]) fetch(ctx context.Context, filter domain.ReportFilter) error {
	return h.run(ctx, h.state.begin(filter), filter)
}

func (h *hook[T, In, P]) refetch(ctx context.Context) error {
	generation, filter := h.state.beginCurrent()
	return h.run(ctx, generation, filter)
}

// beginBind reserva a geração da busca do filtro sem executá-la. Enquanto fetch
// não roda, o hook fica em loading.
func (h *hook[T, In, P]) beginBind(filter domain.ReportFilter) (func(context.Context) error, bool) {
	generation, changed := h.state.beginIfChanged(filter)
	if !changed {
		return nil, false
	}
	return func(ctx context.Context) error {
		return h.run(ctx, generation, filter)
	}, true
}

func (h *hook[T, In, P]) bind(ctx context.Context, filter domain.ReportFilter) (bool, error) {
	fetch, changed := h.beginBind(filter)
	if !changed {
		return false, nil
	}
	return true, fetch(ctx)
}

func (h *hook[T, In, P]) create(ctx context.Context, input *In) (*T, error) {
	if err := validateStruct(input); err != nil {
		return nil, newOperationError(h.names, OpCreate, err)
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	created, err := h.gateway.Insert(ctx, input)
	if err != nil {
		return nil, h.mutationFailed(ctx, OpCreate, started, err)
	}

	h.state.insert(*created)
	metrics.ObserveGatewayOperation(h.names.collection, string(OpCreate), metrics.OutcomeSuccess, started)

	return created, nil
}

func (h *hook[T, In, P]) update(ctx context.Context, id string, patch *P) (*T, error) {
	if err := requireID(id); err != nil {
		return nil, newOperationError(h.names, OpUpdate, err)
	}
	if err := validateStruct(patch); err != nil {
		return nil, newOperationError(h.names, OpUpdate, err)
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	updated, err := h.gateway.Update(ctx, id, patch)
	if err != nil {
		return nil, h.mutationFailed(ctx, OpUpdate, started, err)
	}

	if !h.state.replace(*updated) {
		log.ForContext(ctx).WithField("id", id).Debug("syncing: registro atualizado fora do cache")
	}
	metrics.ObserveGatewayOperation(h.names.collection, string(OpUpdate), metrics.OutcomeSuccess, started)

	return updated, nil
}

func (h *hook[T, In, P]) delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return newOperationError(h.names, OpDelete, err)
	}

	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	started := time.Now()
	if err := h.gateway.Delete(ctx, id); err != nil {
		return h.mutationFailed(ctx, OpDelete, started, err)
	}

	h.state.remove(id)
	metrics.ObserveGatewayOperation(h.names.collection, string(OpDelete), metrics.OutcomeSuccess, started)

	return nil
}

func (h *hook[T, In, P]) mutationFailed(ctx context.Context, op Operation, started time.Time, err error) *OperationError {
	metrics.ObserveGatewayOperation(h.names.collection, string(op), metrics.OutcomeError, started)
	log.ForContext(ctx).
		WithField("entity", h.names.collection).
		WithField("operation", string(op)).
		WithError(err).
		Warn("syncing: erro no gateway")

	return newOperationError(h.names, op, err)
}
