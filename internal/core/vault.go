package core

import (
	"encoding/json"
	"path/filepath"

	"askpass/internal/core/domain"
	"askpass/internal/ports"
)

var vaultFilePath = filepath.Join("~", ".askpass", "secrets")

// name of the keyring entry holding the vault's AES key
const encryptionKeyName = "vault-encryption-key"

// Vault stores named secrets in an encrypted file whose key lives in the
// operating system keyring.
type Vault interface {
	Load() ([]*domain.Secret, error)
	Save(secrets []*domain.Secret) error
}

func ProvideEncryptedFileVault(
	fileSystem ports.FileSystem,
	keyring ports.Keyring,
	encryptor ports.SymmetricEncryptor,
) Vault {
	return &EncryptedFileVault{
		fileSystem: fileSystem,
		keyring:    keyring,
		encryptor:  encryptor,
	}
}

type EncryptedFileVault struct {
	fileSystem ports.FileSystem
	keyring    ports.Keyring
	encryptor  ports.SymmetricEncryptor
}

// Load returns an empty store when either the vault file or its key does not
// exist yet.
func (v EncryptedFileVault) Load() ([]*domain.Secret, error) {
	fileExists, err := v.fileSystem.FileExists(vaultFilePath)
	if err != nil {
		return nil, err
	}
	keyExists, err := v.keyring.HasKey(encryptionKeyName)
	if err != nil {
		return nil, err
	}
	if !fileExists || !keyExists {
		return []*domain.Secret{}, nil
	}

	encryptedSecrets, err := v.fileSystem.ReadFile(vaultFilePath)
	if err != nil {
		return nil, err
	}
	key, err := v.keyring.GetKey(encryptionKeyName)
	if err != nil {
		return nil, err
	}
	decryptedSecrets, err := v.encryptor.Decrypt(encryptedSecrets, []byte(key))
	if err != nil {
		return nil, err
	}

	var secrets []*domain.Secret
	if err := json.Unmarshal(decryptedSecrets, &secrets); err != nil {
		return nil, err
	}
	return secrets, nil
}

// Save rewrites the whole vault file, creating the encryption key in the
// keyring on first use.
func (v EncryptedFileVault) Save(secrets []*domain.Secret) error {
	keyExists, err := v.keyring.HasKey(encryptionKeyName)
	if err != nil {
		return err
	}
	if !keyExists {
		key, err := v.encryptor.CreateKey()
		if err != nil {
			return err
		}
		if err := v.keyring.SetKey(encryptionKeyName, string(key)); err != nil {
			return err
		}
	}
	key, err := v.keyring.GetKey(encryptionKeyName)
	if err != nil {
		return err
	}

	secretBytes, err := json.Marshal(secrets)
	if err != nil {
		return err
	}
	encryptedSecrets, err := v.encryptor.Encrypt(secretBytes, []byte(key))
	if err != nil {
		return err
	}

	return v.fileSystem.WriteFile(vaultFilePath, encryptedSecrets, ports.OwnerRead)
}
