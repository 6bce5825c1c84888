package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlenaMolokova/cardauth/internal/card"
	"github.com/AlenaMolokova/cardauth/internal/models"
	"github.com/AlenaMolokova/cardauth/internal/validation"
	log "github.com/sirupsen/logrus"
)

type StatsStorage interface {
	RecordCheck(ctx context.Context, check models.CheckResult) error
	GetIssuerStats(ctx context.Context) ([]models.IssuerStats, error)
}

type AuthenticationUseCase interface {
	Authenticate(ctx context.Context, number string) (models.CheckResult, error)
	AuthenticateBatch(ctx context.Context, numbers []string) []models.CheckResult
	GetIssuerStats(ctx context.Context) ([]models.IssuerStats, error)
}

type authenticationUseCase struct {
	storage   StatsStorage
	validator validation.NumberValidator
	now       func() time.Time
}

func NewAuthenticationUseCase(storage StatsStorage, validator validation.NumberValidator) AuthenticationUseCase {
	return &authenticationUseCase{
		storage:   storage,
		validator: validator,
		now:       time.Now,
	}
}

// Authenticate rejects malformed input with a validation error; any
// well-formed digit string produces a result, valid or not.
func (u *authenticationUseCase) Authenticate(ctx context.Context, number string) (models.CheckResult, error) {
	number, err := u.validator.ValidateNumber(number)
	if err != nil {
		return models.CheckResult{}, err
	}

	check := models.NewCheckResult(card.Authenticate(number), u.now().UTC())
	u.record(ctx, check)
	return check, nil
}

// AuthenticateBatch keeps the input order. Malformed entries get an
// all-false result for the unknown issuer and are not recorded.
func (u *authenticationUseCase) AuthenticateBatch(ctx context.Context, numbers []string) []models.CheckResult {
	checks := make([]models.CheckResult, 0, len(numbers))
	for _, number := range numbers {
		check, err := u.Authenticate(ctx, number)
		if err != nil {
			log.WithError(err).Debug("Skipping malformed card number in batch")
			check = models.NewCheckResult(card.Result{Issuer: card.Unknown}, u.now().UTC())
		}
		checks = append(checks, check)
	}
	return checks
}

func (u *authenticationUseCase) GetIssuerStats(ctx context.Context) ([]models.IssuerStats, error) {
	stats, err := u.storage.GetIssuerStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get issuer stats: %w", err)
	}
	return stats, nil
}

func (u *authenticationUseCase) record(ctx context.Context, check models.CheckResult) {
	if err := u.storage.RecordCheck(ctx, check); err != nil {
		log.WithFields(log.Fields{
			"check_id": check.ID,
			"issuer":   check.Issuer.Name(),
		}).WithError(err).Error("Failed to record check")
	}
}
