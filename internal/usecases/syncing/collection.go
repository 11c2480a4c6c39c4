package syncing

import (
	"slices"
	"sync"

	"github.com/vfg2006/cafe-report-api/internal/domain"
	"github.com/vfg2006/cafe-report-api/pkg/metrics"
)

// Snapshot é uma cópia do estado de um hook em um instante
type Snapshot[T any] struct {
	Items   []T                  `json:"items"`
	Loading bool                 `json:"loading"`
	Error   *string              `json:"error"`
	Filter  *domain.ReportFilter `json:"filter,omitempty"`
}

// collection guarda o cache de uma entidade. Cada busca recebe uma geração e só
// a resposta da geração mais recente é aplicada.
type collection[T any] struct {
	entity  string
	id      func(T) string
	compare func(a, b T) int
	clone   func(T) T

	// tiesLast coloca um registro novo depois dos que têm a mesma chave
	tiesLast bool

	mu         sync.RWMutex
	items      []T
	loading    bool
	lastError  string
	filter     domain.ReportFilter
	bound      bool
	generation uint64
}

func newCollection[T any](entity string, id func(T) string, compare func(a, b T) int, clone func(T) T) *collection[T] {
	return &collection[T]{
		entity:  entity,
		id:      id,
		compare: compare,
		clone:   clone,
		items:   make([]T, 0),
		loading: true,
	}
}

// insertTiesLast é usado em coleções ascendentes. Os gateways desempatam pela
// ordem de inserção, então o registro recém-criado vem depois dos empates; nas
// descendentes ele vem antes.
func (c *collection[T]) insertTiesLast() *collection[T] {
	c.tiesLast = true
	return c
}

func (c *collection[T]) begin(filter domain.ReportFilter) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.beginLocked(filter)
}

// beginIfChanged só inicia uma busca no primeiro bind ou quando o filtro muda
func (c *collection[T]) beginIfChanged(filter domain.ReportFilter) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bound && c.filter == filter {
		return 0, false
	}

	return c.beginLocked(filter), true
}

// beginCurrent inicia uma busca com o filtro atual
func (c *collection[T]) beginCurrent() (uint64, domain.ReportFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filter := c.filter
	return c.beginLocked(filter), filter
}

func (c *collection[T]) beginLocked(filter domain.ReportFilter) uint64 {
	c.generation++
	c.filter = filter
	c.bound = true
	c.loading = true
	return c.generation
}

// apply substitui o cache inteiro. Retorna false quando a geração já é antiga.
func (c *collection[T]) apply(generation uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return false
	}

	c.items = items
	c.lastError = ""
	c.loading = false
	metrics.SetCollectionSize(c.entity, len(c.items))

	return true
}

// fail registra a falha sem tocar no cache. Retorna false quando a geração já é antiga.
func (c *collection[T]) fail(generation uint64, message string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return false
	}

	c.lastError = message
	c.loading = false

	return true
}

// insert coloca o registro na posição dada pela ordenação da coleção. Um id já
// presente é substituído, para que o registro apareça uma única vez.
func (c *collection[T]) insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(c.id(item)); i >= 0 {
		c.items[i] = c.clone(item)
		return
	}

	i, _ := slices.BinarySearchFunc(c.items, item, c.compare)
	if c.tiesLast {
		for i < len(c.items) && c.compare(c.items[i], item) == 0 {
			i++
		}
	}
	c.items = slices.Insert(c.items, i, c.clone(item))
	metrics.SetCollectionSize(c.entity, len(c.items))
}

// replace troca o registro de mesmo id mantendo sua posição
func (c *collection[T]) replace(item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(c.id(item))
	if i < 0 {
		return false
	}

	c.items[i] = c.clone(item)
	return true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return false
	}

	c.items = slices.Delete(c.items, i, i+1)
	metrics.SetCollectionSize(c.entity, len(c.items))
	return true
}

func (c *collection[T]) find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexLocked(id); i >= 0 {
		return c.clone(c.items[i]), true
	}

	var zero T
	return zero, false
}

func (c *collection[T]) currentFilter() (domain.ReportFilter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.filter, c.bound
}

func (c *collection[T]) snapshot(withFilter bool) Snapshot[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]T, len(c.items))
	for i, item := range c.items {
		items[i] = c.clone(item)
	}

	s := Snapshot[T]{
		Items:   items,
		Loading: c.loading,
	}

	if c.lastError != "" {
		message := c.lastError
		s.Error = &message
	}

	if withFilter {
		filter := c.filter
		s.Filter = &filter
	}

	return s
}

func (c *collection[T]) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return c.id(item) == id
	})
}
