package store

import (
	"context"
	"fmt"
)

// SiteStats holds row counts for the catalog and the newsletter list.
type SiteStats struct {
	Continents           int `json:"continents"`
	Destinations         int `json:"destinations"`
	FeaturedDestinations int `json:"featured_destinations"`
	Subscribers          int `json:"subscribers"`
}

// GetSiteStats returns aggregated counts from the database.
func (s *PostgresStore) GetSiteStats(ctx context.Context) (*SiteStats, error) {
	var st SiteStats

	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM continents),
			(SELECT COUNT(*) FROM destinations),
			(SELECT COUNT(*) FROM destinations WHERE featured),
			(SELECT COUNT(*) FROM subscribers)
	`).Scan(&st.Continents, &st.Destinations, &st.FeaturedDestinations, &st.Subscribers)
	if err != nil {
		return nil, fmt.Errorf("querying site stats: %w", err)
	}

	return &st, nil
}
