package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Priya8975/travel-agency/internal/domain"
	"github.com/jackc/pgx/v5"
)

const destinationColumns = `id, name, description, image, price, highlights, continent_id, featured`

func (s *PostgresStore) ListContinents(ctx context.Context) ([]domain.Continent, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, image
		FROM continents
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying continents: %w", err)
	}
	defer rows.Close()

	continents := []domain.Continent{}
	for rows.Next() {
		var c domain.Continent
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Image); err != nil {
			return nil, fmt.Errorf("scanning continent: %w", err)
		}
		continents = append(continents, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating continents: %w", err)
	}

	return continents, nil
}

func (s *PostgresStore) GetContinent(ctx context.Context, id int) (*domain.Continent, error) {
	if !validID(id) {
		return nil, fmt.Errorf("continent %d: %w", id, domain.ErrNotFound)
	}

	var c domain.Continent
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, description, image
		FROM continents WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description, &c.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("continent %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("querying continent: %w", err)
	}
	return &c, nil
}

func (s *PostgresStore) GetDestination(ctx context.Context, id int) (*domain.Destination, error) {
	if !validID(id) {
		return nil, fmt.Errorf("destination %d: %w", id, domain.ErrNotFound)
	}

	row := s.pool.QueryRow(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id = $1`, id)

	d, err := scanDestination(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("destination %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("querying destination: %w", err)
	}
	return d, nil
}

func (s *PostgresStore) ListFeaturedDestinations(ctx context.Context) ([]domain.Destination, error) {
	return s.listDestinations(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE featured ORDER BY id`)
}

// ListDestinationsByContinent returns the destinations whose continent_id is
// continentID. An unknown continent yields an empty slice.
func (s *PostgresStore) ListDestinationsByContinent(ctx context.Context, continentID int) ([]domain.Destination, error) {
	return s.listDestinations(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE continent_id = $1 ORDER BY id`, continentID)
}

func (s *PostgresStore) listDestinations(ctx context.Context, query string, args ...any) ([]domain.Destination, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying destinations: %w", err)
	}
	defer rows.Close()

	destinations := []domain.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning destination: %w", err)
		}
		destinations = append(destinations, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating destinations: %w", err)
	}

	return destinations, nil
}

// validID reports whether id fits the SERIAL (int4) key columns. pgx refuses
// to encode larger values, which would otherwise surface as a query error.
func validID(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

func scanDestination(row pgx.Row) (*domain.Destination, error) {
	var d domain.Destination
	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &d.Image,
		&d.Price, &d.Highlights, &d.ContinentID, &d.Featured,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
