package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlenaMolokova/cardauth/internal/card"
	"github.com/AlenaMolokova/cardauth/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordCheckQuery = `
INSERT INTO issuer_checks (issuer, total, valid, length_valid, luhn_valid, last_checked_at)
VALUES ($1, 1, $2, $3, $4, $5)
ON CONFLICT (issuer) DO UPDATE SET
	total = issuer_checks.total + 1,
	valid = issuer_checks.valid + EXCLUDED.valid,
	length_valid = issuer_checks.length_valid + EXCLUDED.length_valid,
	luhn_valid = issuer_checks.luhn_valid + EXCLUDED.luhn_valid,
	last_checked_at = GREATEST(issuer_checks.last_checked_at, EXCLUDED.last_checked_at)`

const issuerStatsQuery = `
SELECT issuer, total, valid, length_valid, luhn_valid, last_checked_at
FROM issuer_checks
ORDER BY issuer`

// Storage keeps per-issuer check counters in Postgres.
type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) (*Storage, error) {
	if db == nil {
		return nil, errors.New("database pool is nil")
	}
	return &Storage{db: db}, nil
}

func (s *Storage) RecordCheck(ctx context.Context, check models.CheckResult) error {
	_, err := s.db.Exec(ctx, recordCheckQuery,
		check.Issuer.Name(),
		boolToInt(check.Valid),
		boolToInt(check.LengthValid),
		boolToInt(check.LuhnValid),
		check.CheckedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record check for issuer %s: %w", check.Issuer, err)
	}
	return nil
}

func (s *Storage) GetIssuerStats(ctx context.Context) ([]models.IssuerStats, error) {
	rows, err := s.db.Query(ctx, issuerStatsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query issuer stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.IssuerStats, 0)
	for rows.Next() {
		var (
			name          string
			stat          models.IssuerStats
			lastCheckedAt time.Time
		)
		if err := rows.Scan(&name, &stat.Total, &stat.Valid, &stat.LengthValid, &stat.LuhnValid, &lastCheckedAt); err != nil {
			return nil, fmt.Errorf("failed to scan issuer stats: %w", err)
		}
		issuer, err := card.ParseIssuer(name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse issuer stats: %w", err)
		}
		stat.Issuer = issuer
		stat.LastCheckedAt = lastCheckedAt
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read issuer stats: %w", err)
	}

	return stats, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
