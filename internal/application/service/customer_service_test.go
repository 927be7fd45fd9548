package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pospoint/terminal-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeCustomerAPI records search terms and serves canned results.
type fakeCustomerAPI struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]entity.Customer
	err     error
	delay   time.Duration
}

func newFakeCustomerAPI() *fakeCustomerAPI {
	return &fakeCustomerAPI{results: map[string][]entity.Customer{}}
}

func (f *fakeCustomerAPI) SearchCustomers(ctx context.Context, term string) ([]entity.Customer, error) {
	f.mu.Lock()
	f.calls = append(f.calls, term)
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.results[term], nil
}

func (f *fakeCustomerAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeCustomerCache is an in-memory CustomerCacheRepository.
type fakeCustomerCache struct {
	mu      sync.Mutex
	entries map[string]entity.CachedCustomer
}

func newFakeCustomerCache() *fakeCustomerCache {
	return &fakeCustomerCache{entries: map[string]entity.CachedCustomer{}}
}

func (f *fakeCustomerCache) Upsert(ctx context.Context, customers []entity.Customer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range customers {
		f.entries[c.ID.String()] = entity.CachedCustomer{
			CustomerID: c.ID.String(),
			Name:       c.Name,
			Phone:      c.Phone,
			Email:      c.Email,
		}
	}
	return nil
}

func (f *fakeCustomerCache) Search(ctx context.Context, term string, limit int) ([]entity.CachedCustomer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.CachedCustomer
	for _, c := range f.entries {
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}

func TestInput_DebouncesKeystrokes(t *testing.T) {
	api := newFakeCustomerAPI()
	api.results["ada"] = []entity.Customer{{ID: "c-1", Name: "Ada"}}
	s := NewCustomerSearcher(api, newFakeCustomerCache(), zap.NewNop(), 20*time.Millisecond)

	// Three rapid keystrokes: only the final term may reach the backend.
	s.Input("a")
	s.Input("ad")
	s.Input("ada")

	waitFor(t, time.Second, func() bool {
		_, results := s.Results()
		return len(results) == 1
	})

	assert.Equal(t, 1, api.callCount())
	term, results := s.Results()
	assert.Equal(t, "ada", term)
	assert.Equal(t, "Ada", results[0].Name)
}

func TestInput_EmptyTermClearsWithoutSearching(t *testing.T) {
	api := newFakeCustomerAPI()
	s := NewCustomerSearcher(api, newFakeCustomerCache(), zap.NewNop(), 10*time.Millisecond)

	s.Input("a")
	s.Input("")

	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 0, api.callCount())
	term, results := s.Results()
	assert.Equal(t, "", term)
	assert.Empty(t, results)
}

func TestSearchNow_StaleResultsDropped(t *testing.T) {
	api := newFakeCustomerAPI()
	api.delay = 30 * time.Millisecond
	api.results["old"] = []entity.Customer{{ID: "c-old", Name: "Old"}}
	api.results["new"] = []entity.Customer{{ID: "c-new", Name: "New"}}
	s := NewCustomerSearcher(api, newFakeCustomerCache(), zap.NewNop(), time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.SearchNow(context.Background(), "old")
	}()

	// Let the slow search start, then supersede it.
	time.Sleep(10 * time.Millisecond)
	results := s.SearchNow(context.Background(), "new")
	wg.Wait()

	assert.Equal(t, "New", results[0].Name)
	term, current := s.Results()
	assert.Equal(t, "new", term)
	require.Len(t, current, 1)
	assert.Equal(t, "New", current[0].Name)
}

func TestSearchNow_FailureDegradesToEmpty(t *testing.T) {
	api := newFakeCustomerAPI()
	api.err = errors.New("backend down")
	s := NewCustomerSearcher(api, newFakeCustomerCache(), zap.NewNop(), time.Millisecond)

	results := s.SearchNow(context.Background(), "ada")

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchNow_PopulatesOfflineCache(t *testing.T) {
	api := newFakeCustomerAPI()
	api.results["ada"] = []entity.Customer{{ID: "c-1", Name: "Ada", Phone: "0711"}}
	cache := newFakeCustomerCache()
	s := NewCustomerSearcher(api, cache, zap.NewNop(), time.Millisecond)

	s.SearchNow(context.Background(), "ada")

	offline := s.SearchOffline(context.Background(), "ada", 10)
	require.Len(t, offline, 1)
	assert.Equal(t, "Ada", offline[0].Name)
	assert.Equal(t, entity.FlexString("c-1"), offline[0].ID)
}

func TestSelectAndClear(t *testing.T) {
	s := NewCustomerSearcher(newFakeCustomerAPI(), newFakeCustomerCache(), zap.NewNop(), time.Millisecond)

	s.Select(entity.Customer{ID: "c-1", Name: "Ada"})
	require.NotNil(t, s.Selected())
	assert.Equal(t, "Ada", s.Selected().Name)

	s.Clear()
	assert.Nil(t, s.Selected())
	term, results := s.Results()
	assert.Equal(t, "", term)
	assert.Empty(t, results)
}
