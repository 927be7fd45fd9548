package service

import (
	"context"
	"sync"
	"time"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/pospoint/terminal-api/internal/domain/repository"
	"go.uber.org/zap"
)

// DefaultSearchDebounce is how long the selector waits after the last
// keystroke before hitting the backend.
const DefaultSearchDebounce = 300 * time.Millisecond

// CustomerSearchAPI is the slice of the backend the selector needs.
type CustomerSearchAPI interface {
	SearchCustomers(ctx context.Context, term string) ([]entity.Customer, error)
}

// CustomerSearcher is the debounced search-and-select flow shared by every
// POS variant. Keystrokes arrive via Input; each one cancels the pending
// timer and any in-flight search, so only the newest term's results are ever
// applied (last keystroke wins). Search failures degrade to an empty result
// set — they are logged, never surfaced to the operator.
type CustomerSearcher struct {
	api      CustomerSearchAPI
	cache    repository.CustomerCacheRepository
	logger   *zap.Logger
	debounce time.Duration

	mu         sync.Mutex
	timer      *time.Timer
	cancel     context.CancelFunc
	generation uint64
	term       string
	results    []entity.Customer
	selected   *entity.Customer
}

// NewCustomerSearcher creates a new customer searcher
func NewCustomerSearcher(api CustomerSearchAPI, cache repository.CustomerCacheRepository, logger *zap.Logger, debounce time.Duration) *CustomerSearcher {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	return &CustomerSearcher{
		api:      api,
		cache:    cache,
		logger:   logger,
		debounce: debounce,
		results:  []entity.Customer{},
	}
}

// Input records a keystroke. The actual search fires after the debounce
// window; a newer keystroke before then invalidates this one entirely.
func (s *CustomerSearcher) Input(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	gen := s.generation
	s.term = term
	s.invalidateLocked()

	if term == "" {
		s.results = []entity.Customer{}
		return
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.run(gen, term)
	})
}

// SearchNow performs an immediate search for term, bypassing the debounce
// but keeping the staleness discipline: it supersedes any pending or
// in-flight search, and its own results are dropped if something newer
// starts before it returns. Errors degrade to an empty slice.
func (s *CustomerSearcher) SearchNow(ctx context.Context, term string) []entity.Customer {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.term = term
	s.invalidateLocked()
	s.mu.Unlock()

	return s.fetch(ctx, gen, term)
}

// Results returns the term the current results belong to and the results
// themselves.
func (s *CustomerSearcher) Results() (string, []entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term, s.results
}

// Select records the chosen customer.
func (s *CustomerSearcher) Select(customer entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &customer
}

// Selected returns the chosen customer, if any.
func (s *CustomerSearcher) Selected() *entity.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Clear resets term, results and selection.
func (s *CustomerSearcher) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.invalidateLocked()
	s.term = ""
	s.results = []entity.Customer{}
	s.selected = nil
}

// SearchOffline serves recent matches from the local cache. Used when the
// operator explicitly works offline; the normal path always asks the backend.
func (s *CustomerSearcher) SearchOffline(ctx context.Context, term string, limit int) []entity.Customer {
	cached, err := s.cache.Search(ctx, term, limit)
	if err != nil {
		s.logger.Warn("offline customer lookup failed", zap.Error(err))
		return []entity.Customer{}
	}
	results := make([]entity.Customer, 0, len(cached))
	for i := range cached {
		results = append(results, cached[i].Customer())
	}
	return results
}

// invalidateLocked cancels the pending timer and the in-flight search.
// Callers must hold s.mu.
func (s *CustomerSearcher) invalidateLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// run executes the debounced search for the generation it was scheduled
// under. If a newer keystroke arrived while the timer was pending, the
// search is abandoned before it starts.
func (s *CustomerSearcher) run(gen uint64, term string) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.fetch(context.Background(), gen, term)
}

// fetch calls the backend and applies the results only if gen is still the
// newest search when the response arrives.
func (s *CustomerSearcher) fetch(ctx context.Context, gen uint64, term string) []entity.Customer {
	ctx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		cancel()
		return []entity.Customer{}
	}
	s.cancel = cancel
	s.mu.Unlock()

	found, err := s.api.SearchCustomers(ctx, term)
	if err != nil {
		s.logger.Warn("customer search failed",
			zap.String("term", term), zap.Error(err))
		found = []entity.Customer{}
	}
	if found == nil {
		found = []entity.Customer{}
	}

	s.mu.Lock()
	stale := gen != s.generation
	if !stale {
		s.results = found
	}
	s.mu.Unlock()

	if !stale && err == nil && len(found) > 0 {
		if cacheErr := s.cache.Upsert(ctx, found); cacheErr != nil {
			s.logger.Warn("customer cache update failed", zap.Error(cacheErr))
		}
	}
	return found
}
