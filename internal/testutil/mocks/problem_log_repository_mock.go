package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/srep/internal/models"
)

// MockProblemLogRepository is a mock implementation of repository.ProblemLogRepository
type MockProblemLogRepository struct {
	mock.Mock
}

func (m *MockProblemLogRepository) Insert(ctx context.Context, log models.ProblemLog) (int64, error) {
	args := m.Called(ctx, log)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProblemLogRepository) List(ctx context.Context, filter models.ProblemLogFilter) ([]models.ProblemLog, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProblemLog), args.Error(1)
}
