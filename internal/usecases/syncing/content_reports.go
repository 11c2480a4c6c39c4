package syncing

import (
	"context"

	"github.com/vfg2006/cafe-report-api/infrastructure/repository"
	"github.com/vfg2006/cafe-report-api/internal/domain"
)

// ContentReportHook mantém as publicações do filtro atual por post_date decrescente
type ContentReportHook struct {
	hook *hook[domain.ContentReport, domain.ContentReportInput, domain.ContentReportPatch]
}

func NewContentReportHook(repo repository.ContentReportRepository, opts ...Option) *ContentReportHook {
	o := buildOptions(opts)

	return &ContentReportHook{
		hook: &hook[domain.ContentReport, domain.ContentReportInput, domain.ContentReportPatch]{
			names: entityNames{
				collection: "content_reports",
				plural:     "content reports",
				singular:   "content report",
			},
			timeout: o.timeout,
			state:   newCollection("content_reports", contentReportID, compareContentReports, cloneContentReport),
			selectFn: func(ctx context.Context, filter domain.ReportFilter) ([]*domain.ContentReport, error) {
				return repo.Select(ctx, filter, domain.ContentReportOrder)
			},
			gateway: repo,
		},
	}
}

func (h *ContentReportHook) Bind(ctx context.Context, filter domain.ReportFilter) (bool, error) {
	return h.hook.bind(ctx, filter)
}

// BeginBind faz a parte síncrona de Bind: decide se o filtro muda e reserva a
// geração da busca. A busca só acontece quando fetch é chamado.
func (h *ContentReportHook) BeginBind(filter domain.ReportFilter) (fetch func(context.Context) error, changed bool) {
	return h.hook.beginBind(filter)
}

func (h *ContentReportHook) FetchAll(ctx context.Context, filter domain.ReportFilter) error {
	return h.hook.fetch(ctx, filter)
}

func (h *ContentReportHook) Refetch(ctx context.Context) error {
	return h.hook.refetch(ctx)
}

func (h *ContentReportHook) Create(ctx context.Context, input *domain.ContentReportInput) (*domain.ContentReport, error) {
	return h.hook.create(ctx, input)
}

func (h *ContentReportHook) Update(ctx context.Context, id string, patch *domain.ContentReportPatch) (*domain.ContentReport, error) {
	return h.hook.update(ctx, id, patch)
}

func (h *ContentReportHook) Delete(ctx context.Context, id string) error {
	return h.hook.delete(ctx, id)
}

func (h *ContentReportHook) Filter() (domain.ReportFilter, bool) {
	return h.hook.state.currentFilter()
}

func (h *ContentReportHook) Snapshot() Snapshot[domain.ContentReport] {
	return h.hook.state.snapshot(true)
}

func contentReportID(r domain.ContentReport) string {
	return r.ID
}

// post_date decrescente; empates pelo created_at mais recente
func compareContentReports(a, b domain.ContentReport) int {
	if c := b.PostDate.Compare(a.PostDate.Time); c != 0 {
		return c
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

func cloneContentReport(r domain.ContentReport) domain.ContentReport {
	if r.MediaURL != nil {
		url := *r.MediaURL
		r.MediaURL = &url
	}
	return r
}
