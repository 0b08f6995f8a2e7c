package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Priya8975/travel-agency/internal/domain"
	"github.com/Priya8975/travel-agency/internal/metrics"
	"github.com/Priya8975/travel-agency/internal/render"
	"github.com/Priya8975/travel-agency/internal/store"
	"github.com/stretchr/testify/require"
)

// fakeStore mirrors the seeded catalog in memory and enforces email
// uniqueness the way the subscribers table does.
type fakeStore struct {
	mu           sync.Mutex
	continents   []domain.Continent
	destinations []domain.Destination
	subscribers  map[string]domain.Subscriber

	failInsert error
	failReads  error
	failPing   error
}

func newFakeStore(t *testing.T) *fakeStore {
	t.Helper()
	data, err := store.LoadSeedData()
	require.NoError(t, err)

	fs := &fakeStore{subscribers: map[string]domain.Subscriber{}}
	for i, c := range data.Continents {
		c.ID = i + 1
		fs.continents = append(fs.continents, c)
	}
	for i, d := range data.Destinations {
		fs.destinations = append(fs.destinations, domain.Destination{
			ID:          i + 1,
			Name:        d.Name,
			Description: d.Description,
			Image:       d.Image,
			Price:       d.Price,
			Highlights:  d.Highlights,
			ContinentID: d.Continent,
			Featured:    d.Featured,
		})
	}
	return fs
}

func (f *fakeStore) ListContinents(ctx context.Context) ([]domain.Continent, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	return append([]domain.Continent{}, f.continents...), nil
}

func (f *fakeStore) GetContinent(ctx context.Context, id int) (*domain.Continent, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	for _, c := range f.continents {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, fmt.Errorf("continent %d: %w", id, domain.ErrNotFound)
}

func (f *fakeStore) GetDestination(ctx context.Context, id int) (*domain.Destination, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	for _, d := range f.destinations {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, fmt.Errorf("destination %d: %w", id, domain.ErrNotFound)
}

func (f *fakeStore) ListFeaturedDestinations(ctx context.Context) ([]domain.Destination, error) {
	return f.filter(func(d domain.Destination) bool { return d.Featured })
}

func (f *fakeStore) ListDestinationsByContinent(ctx context.Context, continentID int) ([]domain.Destination, error) {
	return f.filter(func(d domain.Destination) bool { return d.ContinentID == continentID })
}

func (f *fakeStore) filter(keep func(domain.Destination) bool) ([]domain.Destination, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	out := []domain.Destination{}
	for _, d := range f.destinations {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateSubscriber(ctx context.Context, email string) (*domain.Subscriber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failInsert != nil {
		return nil, fmt.Errorf("inserting subscriber: %w: %w", domain.ErrSubscribeFailed, f.failInsert)
	}
	if _, ok := f.subscribers[email]; ok {
		return nil, fmt.Errorf("inserting subscriber: %w", domain.ErrAlreadySubscribed)
	}
	sub := domain.Subscriber{ID: len(f.subscribers) + 1, Email: email, DateSubscribed: time.Now().UTC()}
	f.subscribers[email] = sub
	return &sub, nil
}

func (f *fakeStore) GetSiteStats(ctx context.Context) (*store.SiteStats, error) {
	if f.failReads != nil {
		return nil, f.failReads
	}
	featured, _ := f.ListFeaturedDestinations(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	return &store.SiteStats{
		Continents:           len(f.continents),
		Destinations:         len(f.destinations),
		FeaturedDestinations: len(featured),
		Subscribers:          len(f.subscribers),
	}, nil
}

func (f *fakeStore) Ping(ctx context.Context) error {
	return f.failPing
}

func (f *fakeStore) subscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subscribers)
}

var errBoom = errors.New("boom")

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestRouter(t *testing.T, fs *fakeStore) http.Handler {
	t.Helper()
	renderer, err := render.New()
	require.NoError(t, err)
	return NewRouter(fs, renderer, nil, metrics.New(), testLogger())
}
