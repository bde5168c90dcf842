package service

import (
	"context"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/lunchmates/restaurant-picker/internal/entity"
	"github.com/lunchmates/restaurant-picker/internal/filter"
	"github.com/lunchmates/restaurant-picker/internal/takeaway"
)

const (
	defaultTimezone          = "Europe/Berlin"
	defaultDetailTimeout     = 15 * time.Second
	defaultDetailConcurrency = 8
)

// RestaurantsService fetches, filters and samples restaurants for one
// command invocation. Each invocation works on freshly fetched immutable
// data; the service itself holds no per-request state.
type RestaurantsService struct {
	client        takeaway.Lister
	location      *time.Location
	detailTimeout time.Duration
	concurrency   int
	now           func() time.Time
	rng           *rand.Rand
}

// Option configures optional service dependencies.
type Option func(*RestaurantsService)

// WithDetailTimeout bounds each per-candidate detail fetch.
func WithDetailTimeout(timeout time.Duration) Option {
	return func(s *RestaurantsService) {
		if timeout > 0 {
			s.detailTimeout = timeout
		}
	}
}

// WithDetailConcurrency caps the detail fetch fan-out.
func WithDetailConcurrency(n int) Option {
	return func(s *RestaurantsService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithClock overrides the wall clock, useful for tests.
func WithClock(now func() time.Time) Option {
	return func(s *RestaurantsService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithRand overrides the sampling source, useful for tests.
func WithRand(rng *rand.Rand) Option {
	return func(s *RestaurantsService) {
		s.rng = rng
	}
}

// WithTimezone sets the reference timezone for open-now evaluation.
func WithTimezone(loc *time.Location) Option {
	return func(s *RestaurantsService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// NewRestaurantsService builds a service with sensible defaults.
func NewRestaurantsService(client takeaway.Lister, opts ...Option) *RestaurantsService {
	loc, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	s := &RestaurantsService{
		client:        client,
		location:      loc,
		detailTimeout: defaultDetailTimeout,
		concurrency:   defaultDetailConcurrency,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick fetches the listings for the configured postal code, expands each
// candidate with its detail record, filters and randomly samples the result.
// A listing fetch failure is fatal; a failed detail fetch only drops that
// candidate. An empty result is a valid outcome, not an error.
func (s *RestaurantsService) Pick(ctx context.Context, cfg filter.Config) ([]entity.Restaurant, error) {
	listings, err := s.client.ListRestaurants(ctx, cfg.PostalCode, 0, true, false)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.location)

	var (
		mu      sync.Mutex
		matched []entity.Restaurant
		wg      sync.WaitGroup
	)
	sem := make(chan struct{}, s.concurrency)

	for _, listing := range listings {
		wg.Add(1)
		sem <- struct{}{}

		go func(listing entity.Restaurant) {
			defer wg.Done()
			defer func() { <-sem }()

			fetchCtx, cancel := context.WithTimeout(ctx, s.detailTimeout)
			defer cancel()

			detail, err := s.client.FetchRestaurant(fetchCtx, listing.PrimarySlug)
			if err != nil {
				log.Printf("service: slug=%s dropping candidate: %v", listing.PrimarySlug, err)
				return
			}

			restaurant := detail.MergeInto(listing)
			if !filter.Matches(&restaurant, cfg, now) {
				return
			}

			mu.Lock()
			matched = append(matched, restaurant)
			mu.Unlock()
		}(listing)
	}
	wg.Wait()

	return filter.Sample(matched, cfg.Count, s.rng), nil
}

// Cuisines returns the distinct display names of all cuisines served in the
// given postal code, sorted alphabetically. Nameless numeric cuisine ids are
// skipped.
func (s *RestaurantsService) Cuisines(ctx context.Context, postalCode int) ([]string, error) {
	listings, err := s.client.ListRestaurants(ctx, postalCode, 0, true, false)
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	for _, listing := range listings {
		for _, cuisine := range listing.CuisineTypes {
			if name := cuisine.Name(); name != "" {
				seen[name] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
