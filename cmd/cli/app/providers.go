package app

import (
	"askpass/internal/adapters/terminal"
	"askpass/internal/core"
)

// ProvidePasswordReader builds the terminal reader with the echo symbol
// from the user's config file applied.
func ProvidePasswordReader(configRepository core.ConfigRepository) (*terminal.PasswordReader, error) {
	config, err := configRepository.Load()
	if err != nil {
		return nil, err
	}
	reader := terminal.ProvidePasswordReader()
	if symbol, ok := config.EchoRune(); ok {
		reader = reader.WithEchoSymbol(symbol)
	} else {
		reader = reader.WithoutEchoSymbol()
	}
	return reader, nil
}
