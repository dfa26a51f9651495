package cmd

import (
	"os"

	"askpass/internal/cli/output"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "askpass",
	Short: "Read passwords from the terminal with masked input",
	Long: `Askpass reads a password (or any sensitive line of input) from the
terminal, optionally echoing a replacement symbol per keystroke, and keeps
an encrypted local vault of named secrets.

When stdin is redirected from a file or pipe, askpass reads one line and
skips all terminal interaction, so it works the same in scripts and CI.

Defaults for the prompt text and echo symbol are read from ~/.askpass.yaml.

Common usage:
  askpass prompt                  Ask for a password, print it to stdout
  export PW=$(askpass prompt)     Capture a password in a shell variable
  askpass vault set DB_PASSWORD   Store a secret in the encrypted vault
  askpass vault get DB_PASSWORD   Print a stored secret`,
}

func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
