// Package dashboard guarda a seleção atual do painel (café, mês, ano) e a
// repassa aos hooks de relatório.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/internal/usecases/reporting"
	"github.com/vfg2006/cafe-report-api/internal/usecases/syncing"
	"github.com/vfg2006/cafe-report-api/pkg/log"
)

type Shell struct {
	cafes   *syncing.CafeHook
	ads     *syncing.AdsReportHook
	content *syncing.ContentReportHook

	mu     sync.RWMutex
	filter domain.ReportFilter
}

func NewShell(
	cafes *syncing.CafeHook,
	ads *syncing.AdsReportHook,
	content *syncing.ContentReportHook,
	initial domain.ReportFilter,
) *Shell {
	return &Shell{
		cafes:   cafes,
		ads:     ads,
		content: content,
		filter:  initial,
	}
}

// Start carrega os cafés e vincula o filtro inicial aos relatórios. Sem café
// configurado, o primeiro café da lista é selecionado. Falhas de busca ficam
// registradas nos hooks e também são devolvidas.
func (s *Shell) Start(ctx context.Context) error {
	logger := log.ForContext(ctx)

	cafesErr := s.cafes.FetchAll(ctx)
	if cafesErr != nil {
		logger.WithError(cafesErr).Warn("dashboard: erro ao carregar cafés")
	}

	s.mu.Lock()
	if s.filter.CafeID == "" {
		if cafes := s.cafes.Snapshot().Items; len(cafes) > 0 {
			s.filter = s.filter.WithCafe(cafes[0].ID)
		}
	}
	filter := s.filter
	fetches := s.beginBindLocked(filter)
	s.mu.Unlock()

	logger.WithField("filter", filter.String()).Info("dashboard: painel iniciado")

	return errors.Join(cafesErr, runFetches(ctx, fetches))
}

func (s *Shell) Filter() domain.ReportFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filter
}

// SetFilter troca a seleção. Os hooks só buscam de novo quando o filtro muda.
func (s *Shell) SetFilter(ctx context.Context, filter domain.ReportFilter) error {
	if err := filter.Validate(); err != nil {
		return fmt.Errorf("%w: %v", syncing.ErrInvalidInput, err)
	}

	s.mu.Lock()
	s.filter = filter
	fetches := s.beginBindLocked(filter)
	s.mu.Unlock()

	return runFetches(ctx, fetches)
}

// beginBindLocked reserva as buscas dos relatórios para o filtro. Precisa de s.mu:
// assim a geração mais nova de cada hook é sempre a do último filtro gravado.
func (s *Shell) beginBindLocked(filter domain.ReportFilter) []func(context.Context) error {
	var fetches []func(context.Context) error

	if fetch, changed := s.ads.BeginBind(filter); changed {
		fetches = append(fetches, fetch)
	}
	if fetch, changed := s.content.BeginBind(filter); changed {
		fetches = append(fetches, fetch)
	}

	return fetches
}

// runFetches executa as buscas em paralelo e junta os erros na ordem recebida
func runFetches(ctx context.Context, fetches []func(context.Context) error) error {
	errs := make([]error, len(fetches))

	var wg sync.WaitGroup
	for i, fetch := range fetches {
		i, fetch := i, fetch
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fetch(ctx)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (s *Shell) Overview() domain.DashboardOverview {
	return reporting.Overview(
		s.Filter(),
		s.cafes.Snapshot().Items,
		s.ads.Snapshot().Items,
		s.content.Snapshot().Items,
	)
}

func (s *Shell) Cafes() *syncing.CafeHook {
	return s.cafes
}

func (s *Shell) AdsReports() *syncing.AdsReportHook {
	return s.ads
}

func (s *Shell) ContentReports() *syncing.ContentReportHook {
	return s.content
}
