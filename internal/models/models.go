package models

import (
	"time"

	"github.com/AlenaMolokova/cardauth/internal/card"
	"github.com/google/uuid"
)

// CheckResult is the wire form of a single card check. It never carries
// the card number.
type CheckResult struct {
	ID          uuid.UUID   `json:"id" yaml:"id"`
	Issuer      card.Issuer `json:"issuer" yaml:"issuer"`
	Valid       bool        `json:"valid" yaml:"valid"`
	LengthValid bool        `json:"length_valid" yaml:"length_valid"`
	LuhnValid   bool        `json:"luhn_valid" yaml:"luhn_valid"`
	CheckedAt   time.Time   `json:"checked_at" yaml:"checked_at"`
}

func NewCheckResult(result card.Result, checkedAt time.Time) CheckResult {
	return CheckResult{
		ID:          uuid.New(),
		Issuer:      result.Issuer,
		Valid:       result.Valid,
		LengthValid: result.LengthValid,
		LuhnValid:   result.LuhnValid,
		CheckedAt:   checkedAt,
	}
}

// IssuerStats aggregates check outcomes for one issuer.
type IssuerStats struct {
	Issuer        card.Issuer `json:"issuer"`
	Total         int64       `json:"total"`
	Valid         int64       `json:"valid"`
	LengthValid   int64       `json:"length_valid"`
	LuhnValid     int64       `json:"luhn_valid"`
	LastCheckedAt time.Time   `json:"last_checked_at"`
}

type IssuerInfo struct {
	Name       string `json:"name"`
	Recognized bool   `json:"recognized"`
	Lengths    []int  `json:"lengths"`
}
