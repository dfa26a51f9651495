package testutil

import (
	"askpass/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockConfigRepository provides a testify mock for core.ConfigRepository
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) Load() (*domain.Config, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Config), args.Error(1)
}
