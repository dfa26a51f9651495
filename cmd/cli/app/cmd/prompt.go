package cmd

import (
	"askpass/cmd/cli/app"
	"askpass/internal/core/handler"

	"github.com/spf13/cobra"
)

var (
	promptText      string
	promptHidden    bool
	promptConfirm   bool
	promptMinLength int
)

func init() {
	promptCmd.Flags().StringVar(&promptText, "prompt", "", "prompt text (default from ~/.askpass.yaml)")
	promptCmd.Flags().BoolVar(&promptHidden, "hidden", false, "suppress the echo symbol entirely")
	promptCmd.Flags().BoolVar(&promptConfirm, "confirm", false, "ask twice and require both entries to match")
	promptCmd.Flags().IntVar(&promptMinLength, "min-length", 0, "reject passwords shorter than this many characters")
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Read a password and print it to stdout",
	Long: `Read one password from the terminal and print it to stdout. The prompt
and any echoed symbols go to stderr, so the output can be captured safely.

With stdin redirected from a file or pipe, one line is read without any
terminal interaction.`,
	Example: `  # Ask for a password with the configured prompt and echo symbol
  askpass prompt

  # Capture a password in a script
  DB_PASSWORD=$(askpass prompt --prompt "Database password: ")

  # Require confirmation and a minimum length for a new passphrase
  askpass prompt --confirm --min-length 12

  # Fully hidden input (no echo symbols at all)
  askpass prompt --hidden`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectPromptCommandHandler()
		if err != nil {
			return err
		}

		return h.Handle(handler.PromptOptions{
			Prompt:    promptText,
			Hidden:    promptHidden,
			Confirm:   promptConfirm,
			MinLength: promptMinLength,
		})
	},
}
