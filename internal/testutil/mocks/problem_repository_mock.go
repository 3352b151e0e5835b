package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/srep/internal/models"
)

// MockProblemRepository is a mock implementation of repository.ProblemRepository
type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) Insert(ctx context.Context, problem models.Problem) (int64, error) {
	args := m.Called(ctx, problem)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProblemRepository) Get(ctx context.Context, id int64) (*models.Problem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Problem), args.Error(1)
}

func (m *MockProblemRepository) GetByName(ctx context.Context, name string) (*models.Problem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Problem), args.Error(1)
}

func (m *MockProblemRepository) List(ctx context.Context, filter models.ProblemFilter) ([]models.Problem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Problem), args.Error(1)
}
