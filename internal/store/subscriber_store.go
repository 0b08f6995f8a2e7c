package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Priya8975/travel-agency/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// CreateSubscriber records email with the current UTC time. The insert runs in
// its own transaction; on any failure it is rolled back and the returned error
// wraps domain.ErrAlreadySubscribed (unique violation) or
// domain.ErrSubscribeFailed (anything else).
func (s *PostgresStore) CreateSubscriber(ctx context.Context, email string) (*domain.Subscriber, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w: %w", domain.ErrSubscribeFailed, err)
	}
	defer tx.Rollback(ctx)

	sub := domain.Subscriber{
		Email:          email,
		DateSubscribed: time.Now().UTC(),
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO subscribers (email, date_subscribed)
		VALUES ($1, $2)
		RETURNING id
	`, sub.Email, sub.DateSubscribed).Scan(&sub.ID)
	if err != nil {
		return nil, fmt.Errorf("inserting subscriber: %w", classifyInsertError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", classifyInsertError(err))
	}

	return &sub, nil
}

// GetSubscriberByEmail looks up an exact email match.
func (s *PostgresStore) GetSubscriberByEmail(ctx context.Context, email string) (*domain.Subscriber, error) {
	var sub domain.Subscriber
	err := s.pool.QueryRow(ctx, `
		SELECT id, email, date_subscribed
		FROM subscribers WHERE email = $1
	`, email).Scan(&sub.ID, &sub.Email, &sub.DateSubscribed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subscriber %s: %w", email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("querying subscriber: %w", err)
	}
	sub.DateSubscribed = sub.DateSubscribed.UTC()
	return &sub, nil
}

func classifyInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %w", domain.ErrAlreadySubscribed, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrSubscribeFailed, err)
}
