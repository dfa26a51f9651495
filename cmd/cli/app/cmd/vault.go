package cmd

import (
	"askpass/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	vaultCmd.AddCommand(vaultSetCmd)
	vaultCmd.AddCommand(vaultGetCmd)
	vaultCmd.AddCommand(vaultDeleteCmd)
	vaultCmd.AddCommand(vaultListCmd)
	rootCmd.AddCommand(vaultCmd)
}

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Manage the encrypted secret vault",
	Long: `Manage secrets stored in ~/.askpass/secrets. The file is encrypted with
AES-256-GCM; the encryption key lives in the operating system keyring.`,
}

var vaultSetCmd = &cobra.Command{
	Use:   "set <key>",
	Short: "Set a secret",
	Long:  `Set a secret in the vault. The value is prompted securely and never shown.`,
	Example: `  # Set a new secret (value is prompted securely)
  askpass vault set DB_PASSWORD

  # Set a secret from a pipe
  echo "s3cret" | askpass vault set DB_PASSWORD`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectVaultCommandHandler()
		if err != nil {
			return err
		}

		return h.HandleSet(args[0])
	},
}

var vaultGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get the value of a secret",
	Long:  `Retrieve and print a secret value from the vault.`,
	Example: `  # Get the value of a secret
  askpass vault get DB_PASSWORD

  # Use in a shell script
  export DB_PASSWORD=$(askpass vault get DB_PASSWORD)`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: VaultKeysCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectVaultCommandHandler()
		if err != nil {
			return err
		}

		return h.HandleGet(args[0])
	},
}

var vaultDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a secret",
	Long:  `Remove a secret from the vault.`,
	Example: `  # Delete a secret
  askpass vault delete DB_PASSWORD`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: VaultKeysCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectVaultCommandHandler()
		if err != nil {
			return err
		}

		return h.HandleDelete(args[0])
	},
}

var vaultListCmd = &cobra.Command{
	Use:   "list",
	Short: "List secret keys",
	Long:  `List all secret keys in the vault (values are not shown).`,
	Example: `  # List all stored secrets
  askpass vault list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectVaultCommandHandler()
		if err != nil {
			return err
		}

		return h.HandleList()
	},
}
