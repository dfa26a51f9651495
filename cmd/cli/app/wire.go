//go:build wireinject
// +build wireinject

package app

import (
	"askpass/internal/adapters/filesystem"
	"askpass/internal/adapters/keyring"
	"askpass/internal/adapters/symmetric_encryptor"
	"askpass/internal/adapters/terminal"
	"askpass/internal/core"
	"askpass/internal/core/handler"
	"askpass/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideZalandoKeyring,
	symmetric_encryptor.ProvideAesGcmEncryptor,
	wire.Bind(new(ports.SymmetricEncryptor), new(*symmetric_encryptor.AesGcmEncryptor)),
	ProvidePasswordReader,
	wire.Bind(new(ports.PasswordReader), new(*terminal.PasswordReader)),
	wire.Bind(new(ports.Interactivity), new(*terminal.PasswordReader)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideEncryptedFileVault,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectVault() (core.Vault, error) {
	wire.Build(
		Adapter,
		CoreSet,
	)
	return nil, nil
}

func InjectPromptCommandHandler() (handler.PromptCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePromptCommandHandler,
	)
	return handler.PromptCommandHandler{}, nil
}

func InjectVaultCommandHandler() (handler.VaultCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideVaultCommandHandler,
	)
	return handler.VaultCommandHandler{}, nil
}
