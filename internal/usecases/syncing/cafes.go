package syncing

import (
	"context"

	"github.com/vfg2006/cafe-report-api/infrastructure/repository"
	"github.com/vfg2006/cafe-report-api/internal/domain"
)

// CafeHook mantém a lista de cafés, ordenada por created_at crescente.
// Não tem filtro: busca ao iniciar o painel e em Refetch.
type CafeHook struct {
	hook *hook[domain.Cafe, domain.CafeInput, domain.CafePatch]
}

func NewCafeHook(repo repository.CafeRepository, opts ...Option) *CafeHook {
	o := buildOptions(opts)

	return &CafeHook{
		hook: &hook[domain.Cafe, domain.CafeInput, domain.CafePatch]{
			names: entityNames{
				collection: "cafes",
				plural:     "cafes",
				singular:   "cafe",
			},
			timeout: o.timeout,
			state:   newCollection("cafes", cafeID, compareCafes, cloneCafe).insertTiesLast(),
			selectFn: func(ctx context.Context, _ domain.ReportFilter) ([]*domain.Cafe, error) {
				return repo.Select(ctx, domain.CafeOrder)
			},
			gateway: repo,
		},
	}
}

func (h *CafeHook) FetchAll(ctx context.Context) error {
	return h.hook.fetch(ctx, domain.ReportFilter{})
}

func (h *CafeHook) Refetch(ctx context.Context) error {
	return h.hook.refetch(ctx)
}

func (h *CafeHook) Create(ctx context.Context, input *domain.CafeInput) (*domain.Cafe, error) {
	return h.hook.create(ctx, input)
}

func (h *CafeHook) Update(ctx context.Context, id string, patch *domain.CafePatch) (*domain.Cafe, error) {
	return h.hook.update(ctx, id, patch)
}

func (h *CafeHook) Delete(ctx context.Context, id string) error {
	return h.hook.delete(ctx, id)
}

func (h *CafeHook) Snapshot() Snapshot[domain.Cafe] {
	return h.hook.state.snapshot(false)
}

// Find procura o café no cache, sem consultar o gateway
func (h *CafeHook) Find(id string) (domain.Cafe, bool) {
	return h.hook.state.find(id)
}

func cafeID(c domain.Cafe) string {
	return c.ID
}

func compareCafes(a, b domain.Cafe) int {
	return a.CreatedAt.Compare(b.CreatedAt)
}

func cloneCafe(c domain.Cafe) domain.Cafe {
	return c
}
