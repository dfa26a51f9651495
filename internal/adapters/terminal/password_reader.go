package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"

	"askpass/internal/ports"

	"golang.org/x/term"
)

// Compile-time interface compliance checks
var (
	_ ports.PasswordReader = (*PasswordReader)(nil)
	_ ports.Interactivity  = (*PasswordReader)(nil)
)

// Control keys recognized by the masked read loop. Anything else below
// 0x20 is ignored.
const (
	keyInterrupt  = 0x03 // Ctrl+C
	keyEndOfInput = 0x04 // Ctrl+D
	keyBackspace  = 0x08
	keyEscape     = 0x1b
	keyDelete     = 0x7f
)

var errMalformedInput = errors.New("malformed input: invalid UTF-8 sequence")

// termControl abstracts the golang.org/x/term calls so the masked read loop
// can be exercised in tests without a real tty.
type termControl interface {
	IsTerminal(fd int) bool
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
	ReadPassword(fd int) ([]byte, error)
}

type xTermControl struct{}

func (xTermControl) IsTerminal(fd int) bool                  { return term.IsTerminal(fd) }
func (xTermControl) MakeRaw(fd int) (*term.State, error)     { return term.MakeRaw(fd) }
func (xTermControl) Restore(fd int, state *term.State) error { return term.Restore(fd, state) }
func (xTermControl) ReadPassword(fd int) ([]byte, error)     { return term.ReadPassword(fd) }

// PasswordReader reads passwords from the process terminal using
// golang.org/x/term. Prompts and echoed symbols are written to stderr so
// stdout stays clean for command substitution.
//
// A reader must not be used from multiple goroutines at once: each read
// toggles shared terminal mode for its duration.
type PasswordReader struct {
	input       io.Reader
	inputFd     int // fd for terminal mode toggling; -1 when input is not process stdin
	output      io.Writer
	control     termControl
	echoSymbol  rune
	echoEnabled bool
}

// ProvidePasswordReader creates a terminal-backed reader on process stdin
// with fully hidden input (no echo symbol).
func ProvidePasswordReader() *PasswordReader {
	return &PasswordReader{
		input:   os.Stdin,
		inputFd: int(os.Stdin.Fd()),
		output:  os.Stderr,
		control: xTermControl{},
	}
}

// WithEchoSymbol sets the replacement symbol echoed for each typed character
// during masked reads and returns the reader for chaining.
func (r *PasswordReader) WithEchoSymbol(symbol rune) *PasswordReader {
	r.echoSymbol = symbol
	r.echoEnabled = true
	return r
}

// WithoutEchoSymbol reverts the reader to fully hidden input.
func (r *PasswordReader) WithoutEchoSymbol() *PasswordReader {
	r.echoSymbol = 0
	r.echoEnabled = false
	return r
}

// IsInteractive returns true if the reader's input is process stdin and it
// is connected to a terminal rather than a redirected file or pipe.
func (r *PasswordReader) IsInteractive() bool {
	return r.inputFd >= 0 && r.control.IsTerminal(r.inputFd)
}

// ReadPassword reads one line of hidden input. On a terminal it delegates to
// the platform no-echo read; with redirected input it reads up to the next
// line terminator.
func (r *PasswordReader) ReadPassword() (string, error) {
	if !r.IsInteractive() {
		return r.readLine()
	}
	password, err := r.control.ReadPassword(r.inputFd)
	fmt.Fprintln(r.output)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// ReadPasswordWithPrompt writes prompt (no trailing newline) and reads one
// line of hidden input.
func (r *PasswordReader) ReadPasswordWithPrompt(prompt string) (string, error) {
	if _, err := fmt.Fprint(r.output, prompt); err != nil {
		return "", err
	}
	return r.ReadPassword()
}

// ReadPasswordMasked reads one line of input key by key, echoing the
// configured symbol per accepted character. Without a terminal it behaves
// like ReadPassword on redirected input.
func (r *PasswordReader) ReadPasswordMasked() (string, error) {
	if !r.IsInteractive() {
		return r.readLine()
	}
	return r.readMasked()
}

// ReadPasswordMaskedWithPrompt writes prompt before a masked read.
func (r *PasswordReader) ReadPasswordMaskedWithPrompt(prompt string) (string, error) {
	if _, err := fmt.Fprint(r.output, prompt); err != nil {
		return "", err
	}
	return r.ReadPasswordMasked()
}

// readMasked switches the terminal to raw mode and accepts input one key at
// a time until enter. The previous terminal mode is restored on every exit
// path, including interrupt.
func (r *PasswordReader) readMasked() (string, error) {
	state, err := r.control.MakeRaw(r.inputFd)
	if err != nil {
		return "", fmt.Errorf("failed to switch terminal to raw mode: %w", err)
	}
	defer r.control.Restore(r.inputFd, state) //nolint:errcheck

	var password []rune
	for {
		key, err := r.readKey()
		if err == io.EOF {
			return string(password), nil
		}
		if err != nil {
			return "", err
		}
		switch {
		case key == '\r' || key == '\n':
			if _, err := fmt.Fprint(r.output, "\r\n"); err != nil {
				return "", err
			}
			return string(password), nil
		case key == keyBackspace || key == keyDelete:
			if len(password) == 0 {
				continue
			}
			password = password[:len(password)-1]
			if r.echoEnabled {
				if _, err := fmt.Fprint(r.output, "\b \b"); err != nil {
					return "", err
				}
			}
		case key == keyInterrupt:
			return "", ports.ErrInterrupted
		case key == keyEndOfInput:
			return string(password), nil
		case key == keyEscape:
			if err := r.discardEscapeSequence(); err != nil && err != io.EOF {
				return "", err
			}
		case unicode.IsControl(key):
			// no editing semantics; ignored
		default:
			password = append(password, key)
			if r.echoEnabled {
				if _, err := fmt.Fprintf(r.output, "%c", r.echoSymbol); err != nil {
					return "", err
				}
			}
		}
	}
}

// readKey decodes a single UTF-8 rune from the input, reading one byte at a
// time so that nothing beyond the current key is consumed.
func (r *PasswordReader) readKey() (rune, error) {
	var buf [utf8.UTFMax]byte
	n := 0
	for {
		if _, err := io.ReadFull(r.input, buf[n:n+1]); err != nil {
			if n > 0 && err == io.EOF {
				// stream ended in the middle of a multi-byte character
				return 0, errMalformedInput
			}
			return 0, err
		}
		n++
		if n == 1 && buf[0] < utf8.RuneSelf {
			return rune(buf[0]), nil
		}
		if utf8.FullRune(buf[:n]) {
			key, size := utf8.DecodeRune(buf[:n])
			if key == utf8.RuneError && size <= 1 {
				return 0, errMalformedInput
			}
			return key, nil
		}
		if n == utf8.UTFMax {
			return 0, errMalformedInput
		}
	}
}

// discardEscapeSequence consumes the remainder of an ANSI escape sequence so
// keys like arrows do not leak printable bytes into the password buffer.
func (r *PasswordReader) discardEscapeSequence() error {
	key, err := r.readKey()
	if err != nil {
		return err
	}
	if key != '[' && key != 'O' {
		return nil
	}
	for {
		key, err = r.readKey()
		if err != nil {
			return err
		}
		// '@' through '~' terminates a CSI sequence
		if key >= '@' && key <= '~' {
			return nil
		}
	}
}

// readLine reads redirected input up to the next line terminator. The
// terminator is excluded; end of input before any byte yields an empty
// result rather than an error.
func (r *PasswordReader) readLine() (string, error) {
	var line []rune
	for {
		key, err := r.readKey()
		if err == io.EOF {
			return string(line), nil
		}
		if err != nil {
			return "", err
		}
		if key == '\n' {
			break
		}
		line = append(line, key)
	}
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return string(line), nil
}
