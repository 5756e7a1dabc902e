package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// Subscription frequencies.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

var (
	// ErrDuplicatePhone is returned when the phone number is already
	// registered.
	ErrDuplicatePhone = errors.New("phone already registered")
	// ErrNotFound is returned when no subscriber matches.
	ErrNotFound = errors.New("subscriber not found")
)

// Subscriber is a registered alert recipient. Region is free text matched
// loosely against dataset keys; State is reserved for future conversational
// use.
type Subscriber struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Region    string
	Frequency string
	State     string
	CreatedAt time.Time
}

// Stats aggregates subscriber counts by frequency.
type Stats struct {
	Total  int64
	Daily  int64
	Weekly int64
}

// CreateSubscriber persists a new subscriber. The ID is assigned here when
// unset.
func (db *DB) CreateSubscriber(ctx context.Context, sub *Subscriber) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}

	if sub.Frequency == "" {
		sub.Frequency = FrequencyDaily
	}

	_, err := db.Pool.Exec(ctx, `
		INSERT INTO subscribers (id, name, phone, region, frequency, state)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		sub.ID, sub.Name, sub.Phone, strings.TrimSpace(sub.Region), sub.Frequency, sub.State)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicatePhone
		}

		return fmt.Errorf("create subscriber: %w", err)
	}

	return nil
}

// FindSubscriberByPhone returns the subscriber registered with the phone
// number, or ErrNotFound.
func (db *DB) FindSubscriberByPhone(ctx context.Context, phone string) (*Subscriber, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT id, name, phone, region, frequency, state, created_at
		FROM subscribers WHERE phone = $1`, phone)

	var sub Subscriber

	err := row.Scan(&sub.ID, &sub.Name, &sub.Phone, &sub.Region, &sub.Frequency, &sub.State, &sub.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("find subscriber by phone: %w", err)
	}

	return &sub, nil
}

// ListSubscribersByFrequency returns all subscribers with the given
// subscription frequency, oldest first.
func (db *DB) ListSubscribersByFrequency(ctx context.Context, frequency string) ([]Subscriber, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, phone, region, frequency, state, created_at
		FROM subscribers WHERE frequency = $1 ORDER BY created_at`, frequency)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	var subs []Subscriber

	for rows.Next() {
		var sub Subscriber
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Phone, &sub.Region, &sub.Frequency, &sub.State, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}

		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscribers: %w", err)
	}

	return subs, nil
}

// CountSubscribers returns aggregate counts over the subscriber store.
func (db *DB) CountSubscribers(ctx context.Context) (Stats, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE frequency = $1),
		       count(*) FILTER (WHERE frequency = $2)
		FROM subscribers`, FrequencyDaily, FrequencyWeekly)

	var stats Stats
	if err := row.Scan(&stats.Total, &stats.Daily, &stats.Weekly); err != nil {
		return Stats{}, fmt.Errorf("count subscribers: %w", err)
	}

	return stats, nil
}
