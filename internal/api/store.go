package api

import (
	"context"

	"github.com/Priya8975/travel-agency/internal/domain"
	"github.com/Priya8975/travel-agency/internal/store"
)

// CatalogStore is the read side used by the page handlers.
type CatalogStore interface {
	ListContinents(ctx context.Context) ([]domain.Continent, error)
	GetContinent(ctx context.Context, id int) (*domain.Continent, error)
	GetDestination(ctx context.Context, id int) (*domain.Destination, error)
	ListFeaturedDestinations(ctx context.Context) ([]domain.Destination, error)
	ListDestinationsByContinent(ctx context.Context, continentID int) ([]domain.Destination, error)
}

// SubscriberStore is the single write path.
type SubscriberStore interface {
	CreateSubscriber(ctx context.Context, email string) (*domain.Subscriber, error)
}

type StatsStore interface {
	GetSiteStats(ctx context.Context) (*store.SiteStats, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is everything the router needs from persistence.
type Store interface {
	CatalogStore
	SubscriberStore
	StatsStore
	Pinger
}

var _ Store = (*store.PostgresStore)(nil)
