package syncing

import (
	"context"

	"github.com/vfg2006/cafe-report-api/infrastructure/repository"
	"github.com/vfg2006/cafe-report-api/internal/domain"
)

// AdsReportHook mantém os relatórios de anúncios do filtro atual, do mais novo para o mais antigo
type AdsReportHook struct {
	hook *hook[domain.AdsReport, domain.AdsReportInput, domain.AdsReportPatch]
}

func NewAdsReportHook(repo repository.AdsReportRepository, opts ...Option) *AdsReportHook {
	o := buildOptions(opts)

	return &AdsReportHook{
		hook: &hook[domain.AdsReport, domain.AdsReportInput, domain.AdsReportPatch]{
			names: entityNames{
				collection: "ads_reports",
				plural:     "ads reports",
				singular:   "ads report",
			},
			timeout: o.timeout,
			state:   newCollection("ads_reports", adsReportID, compareAdsReports, cloneAdsReport),
			selectFn: func(ctx context.Context, filter domain.ReportFilter) ([]*domain.AdsReport, error) {
				return repo.Select(ctx, filter, domain.AdsReportOrder)
			},
			gateway: repo,
		},
	}
}

// Bind associa o filtro ao hook. A busca só acontece no primeiro bind ou quando
// o filtro difere do atual; o retorno indica se houve busca.
func (h *AdsReportHook) Bind(ctx context.Context, filter domain.ReportFilter) (bool, error) {
	return h.hook.bind(ctx, filter)
}

// BeginBind faz a parte síncrona de Bind: decide se o filtro muda e reserva a
// geração da busca. A busca só acontece quando fetch é chamado.
func (h *AdsReportHook) BeginBind(filter domain.ReportFilter) (fetch func(context.Context) error, changed bool) {
	return h.hook.beginBind(filter)
}

func (h *AdsReportHook) FetchAll(ctx context.Context, filter domain.ReportFilter) error {
	return h.hook.fetch(ctx, filter)
}

func (h *AdsReportHook) Refetch(ctx context.Context) error {
	return h.hook.refetch(ctx)
}

func (h *AdsReportHook) Create(ctx context.Context, input *domain.AdsReportInput) (*domain.AdsReport, error) {
	return h.hook.create(ctx, input)
}

func (h *AdsReportHook) Update(ctx context.Context, id string, patch *domain.AdsReportPatch) (*domain.AdsReport, error) {
	return h.hook.update(ctx, id, patch)
}

func (h *AdsReportHook) Delete(ctx context.Context, id string) error {
	return h.hook.delete(ctx, id)
}

func (h *AdsReportHook) Filter() (domain.ReportFilter, bool) {
	return h.hook.state.currentFilter()
}

func (h *AdsReportHook) Snapshot() Snapshot[domain.AdsReport] {
	return h.hook.state.snapshot(true)
}

func adsReportID(r domain.AdsReport) string {
	return r.ID
}

func compareAdsReports(a, b domain.AdsReport) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}

func cloneAdsReport(r domain.AdsReport) domain.AdsReport {
	return r
}
