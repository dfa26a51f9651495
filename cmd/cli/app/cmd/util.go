package cmd

import (
	"askpass/cmd/cli/app"

	"github.com/spf13/cobra"
)

func VaultKeysCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	vault, err := app.InjectVault()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	secrets, err := vault.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var keys []string
	for _, secret := range secrets {
		keys = append(keys, secret.Key)
	}

	return keys, cobra.ShellCompDirectiveNoFileComp
}
