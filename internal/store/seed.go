package store

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/Priya8975/travel-agency/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// SeedData is the fixed reference catalog.
type SeedData struct {
	Continents   []domain.Continent `yaml:"continents"`
	Destinations []SeedDestination  `yaml:"destinations"`
}

// SeedDestination references its continent by 1-based position in
// SeedData.Continents rather than by database id.
type SeedDestination struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Image       string  `yaml:"image"`
	Price       float64 `yaml:"price"`
	Highlights  string  `yaml:"highlights"`
	Continent   int     `yaml:"continent"`
	Featured    bool    `yaml:"featured"`
}

// LoadSeedData decodes the embedded catalog and checks its references.
func LoadSeedData() (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}

	for _, d := range data.Destinations {
		if d.Continent < 1 || d.Continent > len(data.Continents) {
			return nil, fmt.Errorf("seed destination %q references continent %d of %d", d.Name, d.Continent, len(data.Continents))
		}
		if d.Price < 0 {
			return nil, fmt.Errorf("seed destination %q has negative price", d.Name)
		}
	}

	return &data, nil
}

// Seed inserts the reference catalog in a single transaction. It expects an
// empty schema; call Reset first.
func (s *PostgresStore) Seed(ctx context.Context) error {
	data, err := LoadSeedData()
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	continentIDs := make([]int, len(data.Continents))
	for i, c := range data.Continents {
		err := tx.QueryRow(ctx, `
			INSERT INTO continents (name, description, image)
			VALUES ($1, $2, $3)
			RETURNING id
		`, c.Name, c.Description, c.Image).Scan(&continentIDs[i])
		if err != nil {
			return fmt.Errorf("inserting continent %s: %w", c.Name, err)
		}
	}

	for _, d := range data.Destinations {
		_, err := tx.Exec(ctx, `
			INSERT INTO destinations (name, description, image, price, highlights, continent_id, featured)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, d.Name, d.Description, d.Image, d.Price, d.Highlights, continentIDs[d.Continent-1], d.Featured)
		if err != nil {
			return fmt.Errorf("inserting destination %s: %w", d.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
