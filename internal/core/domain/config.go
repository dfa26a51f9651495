package domain

import (
	"fmt"
	"unicode/utf8"
)

// Defaults applied when ~/.askpass.yaml is absent or leaves fields unset.
const (
	DefaultPrompt     = "Password: "
	DefaultEchoSymbol = "*"
)

// Config holds the user's prompting preferences.
type Config struct {
	// Prompt is the text written before reading a password.
	Prompt string `yaml:"prompt"`
	// EchoSymbol is the replacement character echoed per typed character
	// during masked entry. Unset selects the default symbol; an explicit
	// empty string hides input entirely. The two states are distinct.
	EchoSymbol *string `yaml:"echoSymbol"`
}

// EchoRune resolves the configured echo symbol. ok is false when input
// should be fully hidden.
func (c *Config) EchoRune() (symbol rune, ok bool) {
	s := DefaultEchoSymbol
	if c.EchoSymbol != nil {
		s = *c.EchoSymbol
	}
	if s == "" {
		return 0, false
	}
	symbol, _ = utf8.DecodeRuneInString(s)
	return symbol, true
}

func (c *Config) Validate() error {
	if c.EchoSymbol != nil && utf8.RuneCountInString(*c.EchoSymbol) > 1 {
		return fmt.Errorf("echoSymbol must be a single character, got %q", *c.EchoSymbol)
	}
	return nil
}
