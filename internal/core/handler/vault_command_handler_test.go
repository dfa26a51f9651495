package handler

import (
	"errors"
	"testing"

	"askpass/internal/core/domain"
	"askpass/internal/ports"
	"askpass/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVaultHandleSet_AddsNewSecret(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{}, nil)
	vault.On("Save", mock.MatchedBy(func(secrets []*domain.Secret) bool {
		return len(secrets) == 1 && secrets[0].Key == "DB_PASSWORD" && secrets[0].Value == "secret123"
	})).Return(nil)
	passwordReader := new(testutil.MockPasswordReader)
	passwordReader.On("IsInteractive").Return(true)
	passwordReader.On("ReadPasswordMaskedWithPrompt", mock.Anything).Return("secret123", nil)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleSet("DB_PASSWORD")

	assert.NoError(t, err)
	vault.AssertExpectations(t)
}

func TestVaultHandleSet_ReplacesExistingSecret(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{{Key: "DB_PASSWORD", Value: "old"}}, nil)
	vault.On("Save", mock.MatchedBy(func(secrets []*domain.Secret) bool {
		return len(secrets) == 1 && secrets[0].Value == "new"
	})).Return(nil)
	passwordReader := new(testutil.MockPasswordReader)
	passwordReader.On("IsInteractive").Return(true)
	passwordReader.On("ReadPasswordMaskedWithPrompt", mock.Anything).Return("new", nil)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleSet("DB_PASSWORD")

	assert.NoError(t, err)
	vault.AssertExpectations(t)
}

func TestVaultHandleSet_EmptyValueIsRejected(t *testing.T) {
	vault := new(testutil.MockVault)
	passwordReader := new(testutil.MockPasswordReader)
	passwordReader.On("IsInteractive").Return(true)
	passwordReader.On("ReadPasswordMaskedWithPrompt", mock.Anything).Return("", nil)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleSet("DB_PASSWORD")

	assert.ErrorContains(t, err, "cannot be empty")
	vault.AssertNotCalled(t, "Save", mock.Anything)
}

func TestVaultHandleSet_PipedInputSkipsPrompt(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{}, nil)
	vault.On("Save", mock.Anything).Return(nil)
	passwordReader := new(testutil.MockPasswordReader)
	passwordReader.On("IsInteractive").Return(false)
	passwordReader.On("ReadPasswordMaskedWithPrompt", "").Return("piped-value", nil)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleSet("DB_PASSWORD")

	assert.NoError(t, err)
	passwordReader.AssertExpectations(t)
}

func TestVaultHandleSet_InterruptIsSurfaced(t *testing.T) {
	vault := new(testutil.MockVault)
	passwordReader := new(testutil.MockPasswordReader)
	passwordReader.On("IsInteractive").Return(true)
	passwordReader.On("ReadPasswordMaskedWithPrompt", mock.Anything).Return("", ports.ErrInterrupted)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleSet("DB_PASSWORD")

	assert.ErrorIs(t, err, ports.ErrInterrupted)
	vault.AssertNotCalled(t, "Save", mock.Anything)
}

func TestVaultHandleGet_ReturnsNotFoundForUnknownKey(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{{Key: "other", Value: "v"}}, nil)
	passwordReader := new(testutil.MockPasswordReader)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleGet("DB_PASSWORD")

	assert.ErrorContains(t, err, "not found")
}

func TestVaultHandleGet_FindsStoredSecret(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{{Key: "DB_PASSWORD", Value: "secret123"}}, nil)
	passwordReader := new(testutil.MockPasswordReader)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleGet("DB_PASSWORD")

	assert.NoError(t, err)
}

func TestVaultHandleList_EmptyVault(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{}, nil)
	passwordReader := new(testutil.MockPasswordReader)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleList()

	assert.NoError(t, err)
}

func TestVaultHandleDelete_RemovesSecret(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{
		{Key: "DB_PASSWORD", Value: "v1"},
		{Key: "API_KEY", Value: "v2"},
	}, nil)
	vault.On("Save", mock.MatchedBy(func(secrets []*domain.Secret) bool {
		return len(secrets) == 1 && secrets[0].Key == "API_KEY"
	})).Return(nil)
	passwordReader := new(testutil.MockPasswordReader)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleDelete("DB_PASSWORD")

	assert.NoError(t, err)
	vault.AssertExpectations(t)
}

func TestVaultHandleDelete_UnknownKeyIsAnError(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{{Key: "other", Value: "v"}}, nil)
	passwordReader := new(testutil.MockPasswordReader)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleDelete("DB_PASSWORD")

	assert.ErrorContains(t, err, "not found")
	vault.AssertNotCalled(t, "Save", mock.Anything)
}

func TestVaultHandleSet_SaveErrorIsSurfaced(t *testing.T) {
	vault := new(testutil.MockVault)
	vault.On("Load").Return([]*domain.Secret{}, nil)
	vault.On("Save", mock.Anything).Return(errors.New("disk full"))
	passwordReader := new(testutil.MockPasswordReader)
	passwordReader.On("IsInteractive").Return(true)
	passwordReader.On("ReadPasswordMaskedWithPrompt", mock.Anything).Return("value", nil)
	sut := ProvideVaultCommandHandler(vault, passwordReader, passwordReader)

	err := sut.HandleSet("DB_PASSWORD")

	assert.Error(t, err)
}
