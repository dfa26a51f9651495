package handler

import (
	"fmt"
	"sort"

	"askpass/internal/cli/output"
	"askpass/internal/core"
	"askpass/internal/core/domain"
	"askpass/internal/ports"
)

type VaultCommandHandler struct {
	vault          core.Vault
	passwordReader ports.PasswordReader
	interactivity  ports.Interactivity
}

func ProvideVaultCommandHandler(
	vault core.Vault,
	passwordReader ports.PasswordReader,
	interactivity ports.Interactivity,
) VaultCommandHandler {
	return VaultCommandHandler{
		vault:          vault,
		passwordReader: passwordReader,
		interactivity:  interactivity,
	}
}

func (h *VaultCommandHandler) HandleSet(key string) error {
	prompt := fmt.Sprintf("Enter value for %s: ", output.Bold(key))
	if !h.interactivity.IsInteractive() {
		prompt = ""
	}
	value, err := h.passwordReader.ReadPasswordMaskedWithPrompt(prompt)
	if err != nil {
		return fmt.Errorf("failed to read secret value: %w", err)
	}
	if value == "" {
		return fmt.Errorf("secret value cannot be empty")
	}

	secrets, err := h.vault.Load()
	if err != nil {
		return err
	}

	var secretExists bool
	for i := range secrets {
		if secrets[i].Key == key {
			secrets[i].Value = value
			secretExists = true
		}
	}
	if !secretExists {
		secrets = append(secrets, &domain.Secret{Key: key, Value: value})
	}

	if err := h.vault.Save(secrets); err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Secret '%s' saved", key))
	return nil
}

func (h *VaultCommandHandler) HandleGet(key string) error {
	secrets, err := h.vault.Load()
	if err != nil {
		return err
	}

	for _, secret := range secrets {
		if secret.Key == key {
			fmt.Println(secret.Value)
			return nil
		}
	}
	return fmt.Errorf("secret '%s' not found", key)
}

func (h *VaultCommandHandler) HandleList() error {
	secrets, err := h.vault.Load()
	if err != nil {
		return err
	}

	if len(secrets) == 0 {
		output.PrintInfo("No secrets stored")
		return nil
	}

	output.PrintHeader("Secrets")
	fmt.Println()

	sort.Slice(
		secrets, func(i, j int) bool {
			return secrets[i].Key < secrets[j].Key
		},
	)
	for _, secret := range secrets {
		fmt.Printf("  %s %s\n", output.SymbolBullet, output.Bold(secret.Key))
	}
	return nil
}

func (h *VaultCommandHandler) HandleDelete(key string) error {
	secrets, err := h.vault.Load()
	if err != nil {
		return err
	}

	remaining := make([]*domain.Secret, 0, len(secrets))
	for _, secret := range secrets {
		if secret.Key != key {
			remaining = append(remaining, secret)
		}
	}
	if len(remaining) == len(secrets) {
		return fmt.Errorf("secret '%s' not found", key)
	}

	if err := h.vault.Save(remaining); err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Secret '%s' deleted", key))
	return nil
}
