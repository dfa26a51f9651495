package handler

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"askpass/internal/core"
	"askpass/internal/ports"
)

// PromptOptions carries the flags of the prompt command. Zero values fall
// back to the user's config file defaults.
type PromptOptions struct {
	Prompt    string
	Hidden    bool
	Confirm   bool
	MinLength int
}

type PromptCommandHandler struct {
	configRepository core.ConfigRepository
	passwordReader   ports.PasswordReader
	interactivity    ports.Interactivity
}

func ProvidePromptCommandHandler(
	configRepository core.ConfigRepository,
	passwordReader ports.PasswordReader,
	interactivity ports.Interactivity,
) PromptCommandHandler {
	return PromptCommandHandler{
		configRepository: configRepository,
		passwordReader:   passwordReader,
		interactivity:    interactivity,
	}
}

// Handle reads one password and writes it to stdout, so the command can be
// used in shell substitution. Prompts and echo go to stderr.
func (h *PromptCommandHandler) Handle(opts PromptOptions) error {
	config, err := h.configRepository.Load()
	if err != nil {
		return err
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = config.Prompt
	}
	if !h.interactivity.IsInteractive() {
		// prompt text is noise when input comes from a pipe
		prompt = ""
	}

	password, err := h.read(prompt, opts.Hidden)
	if err != nil {
		return readError(err)
	}

	if opts.MinLength > 0 && utf8.RuneCountInString(password) < opts.MinLength {
		return fmt.Errorf("password must be at least %d characters", opts.MinLength)
	}

	if opts.Confirm && h.interactivity.IsInteractive() {
		repeated, err := h.read("Repeat to confirm: ", opts.Hidden)
		if err != nil {
			return readError(err)
		}
		if repeated != password {
			return fmt.Errorf("passwords do not match")
		}
	}

	fmt.Println(password)
	return nil
}

func (h *PromptCommandHandler) read(prompt string, hidden bool) (string, error) {
	switch {
	case hidden && prompt == "":
		return h.passwordReader.ReadPassword()
	case hidden:
		return h.passwordReader.ReadPasswordWithPrompt(prompt)
	case prompt == "":
		return h.passwordReader.ReadPasswordMasked()
	default:
		return h.passwordReader.ReadPasswordMaskedWithPrompt(prompt)
	}
}

func readError(err error) error {
	if errors.Is(err, ports.ErrInterrupted) {
		return fmt.Errorf("password entry cancelled")
	}
	return fmt.Errorf("failed to read password: %w", err)
}
