// Package memory implementa os gateways de persistência em memória, usados em
// execuções locais (STORE_DRIVER=memory) e nos testes.
package memory

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vfg2006/cafe-report-api/infrastructure/repository"
	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/pkg/utils"
)

type Option func(*Store)

// WithClock troca o relógio usado para created_at/updated_at
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Store agrupa as três coleções em memória
type Store struct {
	now func() time.Time

	cafes          *table[domain.Cafe]
	adsReports     *table[domain.AdsReport]
	contentReports *table[domain.ContentReport]
}

func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	s.cafes = newTable("cafes", s.clock, cafeSortKey, identity[domain.Cafe])
	s.adsReports = newTable("ads_reports", s.clock, adsReportSortKey, identity[domain.AdsReport])
	s.contentReports = newTable("content_reports", s.clock, contentReportSortKey, cloneContentReport)

	return s
}

func (s *Store) clock() time.Time {
	return s.now().UTC()
}

func (s *Store) Cafes() repository.CafeRepository {
	return &cafeRepository{t: s.cafes}
}

func (s *Store) AdsReports() repository.AdsReportRepository {
	return &adsReportRepository{t: s.adsReports}
}

func (s *Store) ContentReports() repository.ContentReportRepository {
	return &contentReportRepository{t: s.contentReports}
}

type row[T any] struct {
	seq  uint64
	item T
}

// table guarda os registros de uma coleção. seq registra a ordem de inserção e
// desempata registros com a mesma chave de ordenação.
type table[T any] struct {
	mu      sync.RWMutex
	name    string
	now     func() time.Time
	sortKey func(T, string) (time.Time, bool)
	clone   func(T) T
	seq     uint64
	rows    map[string]*row[T]
}

func newTable[T any](
	name string,
	now func() time.Time,
	sortKey func(T, string) (time.Time, bool),
	clone func(T) T,
) *table[T] {
	return &table[T]{
		name:    name,
		now:     now,
		sortKey: sortKey,
		clone:   clone,
		rows:    make(map[string]*row[T]),
	}
}

func (t *table[T]) insert(build func(id string, now time.Time) T) (T, error) {
	var zero T

	id, err := utils.GenerateID()
	if err != nil {
		return zero, fmt.Errorf("failed to generate id: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		return zero, fmt.Errorf("%s: duplicate id %q", t.name, id)
	}

	t.seq++
	item := build(id, t.now())
	t.rows[id] = &row[T]{seq: t.seq, item: item}

	return t.clone(item), nil
}

func (t *table[T]) list(match func(T) bool, order domain.SortOrder) ([]*T, error) {
	var zero T
	if _, ok := t.sortKey(zero, order.Column); !ok {
		return nil, fmt.Errorf("unsupported sort column %q", order.Column)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]*row[T], 0, len(t.rows))
	for _, r := range t.rows {
		if match(r.item) {
			rows = append(rows, r)
		}
	}

	slices.SortFunc(rows, func(a, b *row[T]) int {
		ka, _ := t.sortKey(a.item, order.Column)
		kb, _ := t.sortKey(b.item, order.Column)

		c := ka.Compare(kb)
		if c == 0 {
			c = cmp.Compare(a.seq, b.seq)
		}
		if !order.Ascending {
			c = -c
		}
		return c
	})

	items := make([]*T, 0, len(rows))
	for _, r := range rows {
		item := t.clone(r.item)
		items = append(items, &item)
	}

	return items, nil
}

func (t *table[T]) update(id string, mutate func(item *T, now time.Time)) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s %q: %w", t.name, id, repository.ErrNotFound)
	}

	mutate(&r.item, t.now())

	return t.clone(r.item), nil
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return fmt.Errorf("%s %q: %w", t.name, id, repository.ErrNotFound)
	}

	delete(t.rows, id)
	return nil
}

func identity[T any](item T) T {
	return item
}

func matchFilter(filter domain.ReportFilter, cafeID string, month, year int) bool {
	if filter.CafeID != "" && filter.CafeID != cafeID {
		return false
	}
	if filter.Month != 0 && filter.Month != month {
		return false
	}
	if filter.Year != 0 && filter.Year != year {
		return false
	}
	return true
}
