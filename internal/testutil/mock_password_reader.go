package testutil

import (
	"askpass/internal/ports"

	"github.com/stretchr/testify/mock"
)

// Compile-time interface compliance checks
var (
	_ ports.PasswordReader = (*MockPasswordReader)(nil)
	_ ports.Interactivity  = (*MockPasswordReader)(nil)
)

// MockPasswordReader provides a testify mock for ports.PasswordReader and
// ports.Interactivity.
type MockPasswordReader struct {
	mock.Mock
}

func (m *MockPasswordReader) ReadPassword() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockPasswordReader) ReadPasswordWithPrompt(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordReader) ReadPasswordMasked() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockPasswordReader) ReadPasswordMaskedWithPrompt(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordReader) IsInteractive() bool {
	args := m.Called()
	return args.Bool(0)
}
