package testutils

import (
	"context"

	"github.com/AlenaMolokova/cardauth/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockStatsStorage struct {
	mock.Mock
}

func (m *MockStatsStorage) RecordCheck(ctx context.Context, check models.CheckResult) error {
	args := m.Called(ctx, check)
	return args.Error(0)
}

func (m *MockStatsStorage) GetIssuerStats(ctx context.Context) ([]models.IssuerStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.IssuerStats), args.Error(1)
}

type MockAuthenticationUseCase struct {
	mock.Mock
}

func (m *MockAuthenticationUseCase) Authenticate(ctx context.Context, number string) (models.CheckResult, error) {
	args := m.Called(ctx, number)
	return args.Get(0).(models.CheckResult), args.Error(1)
}

func (m *MockAuthenticationUseCase) AuthenticateBatch(ctx context.Context, numbers []string) []models.CheckResult {
	args := m.Called(ctx, numbers)
	return args.Get(0).([]models.CheckResult)
}

func (m *MockAuthenticationUseCase) GetIssuerStats(ctx context.Context) ([]models.IssuerStats, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.IssuerStats), args.Error(1)
}
