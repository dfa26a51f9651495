package ports

import "errors"

// ErrInterrupted is returned when the user aborts password entry with the
// terminal interrupt key before completing the line.
var ErrInterrupted = errors.New("password entry interrupted")

// PasswordReader provides methods for reading a password from the user.
type PasswordReader interface {
	// ReadPassword reads one line of input without a prompt and without
	// echoing to the terminal.
	ReadPassword() (string, error)
	// ReadPasswordWithPrompt writes prompt before reading hidden input.
	ReadPasswordWithPrompt(prompt string) (string, error)
	// ReadPasswordMasked reads one line of input, echoing the configured
	// replacement symbol (if any) for each typed character.
	ReadPasswordMasked() (string, error)
	// ReadPasswordMaskedWithPrompt writes prompt before a masked read.
	ReadPasswordMaskedWithPrompt(prompt string) (string, error)
}

// Interactivity reports whether input is attended by a user at a terminal,
// as opposed to redirected from a file or pipe. It is a separate interface
// so that PasswordReader stand-ins are not forced to implement terminal
// detection.
type Interactivity interface {
	// IsInteractive returns true if stdin is connected to a terminal.
	IsInteractive() bool
}
