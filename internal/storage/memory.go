package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/AlenaMolokova/cardauth/internal/card"
	"github.com/AlenaMolokova/cardauth/internal/models"
)

// MemoryStorage is the StatsStorage used when no database is configured.
// Counters are lost on restart.
type MemoryStorage struct {
	mu    sync.RWMutex
	stats map[card.Issuer]*models.IssuerStats
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{stats: make(map[card.Issuer]*models.IssuerStats)}
}

func (m *MemoryStorage) RecordCheck(ctx context.Context, check models.CheckResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stat, ok := m.stats[check.Issuer]
	if !ok {
		stat = &models.IssuerStats{Issuer: check.Issuer}
		m.stats[check.Issuer] = stat
	}

	stat.Total++
	stat.Valid += boolToInt(check.Valid)
	stat.LengthValid += boolToInt(check.LengthValid)
	stat.LuhnValid += boolToInt(check.LuhnValid)
	if check.CheckedAt.After(stat.LastCheckedAt) {
		stat.LastCheckedAt = check.CheckedAt
	}
	return nil
}

// GetIssuerStats returns copies ordered by issuer name, matching the
// Postgres implementation.
func (m *MemoryStorage) GetIssuerStats(ctx context.Context) ([]models.IssuerStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make([]models.IssuerStats, 0, len(m.stats))
	for _, stat := range m.stats {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Issuer.Name() < stats[j].Issuer.Name()
	})
	return stats, nil
}
