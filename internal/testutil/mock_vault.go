package testutil

import (
	"askpass/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockVault provides a testify mock for core.Vault
type MockVault struct {
	mock.Mock
}

func (m *MockVault) Load() ([]*domain.Secret, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Secret), args.Error(1)
}

func (m *MockVault) Save(secrets []*domain.Secret) error {
	args := m.Called(secrets)
	return args.Error(0)
}
