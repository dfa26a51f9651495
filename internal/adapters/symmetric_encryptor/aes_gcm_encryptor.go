package symmetric_encryptor

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"askpass/internal/ports"
)

// Compile-time interface compliance check
var _ ports.SymmetricEncryptor = (*AesGcmEncryptor)(nil)

// AesGcmEncryptor encrypts the vault file with AES-256-GCM. Keys and
// ciphertexts travel base64-encoded so they can be stored in the OS keyring
// and on disk as text.
type AesGcmEncryptor struct{}

func ProvideAesGcmEncryptor() *AesGcmEncryptor {
	return &AesGcmEncryptor{}
}

func (a AesGcmEncryptor) Encrypt(plaintext []byte, encodedKey []byte) ([]byte, error) {
	aesGCM, err := newGCM(encodedKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// nonce is prepended to the ciphertext
	ciphertext := aesGCM.Seal(nonce, nonce, plaintext, nil)
	return []byte(base64.StdEncoding.EncodeToString(ciphertext)), nil
}

func (a AesGcmEncryptor) Decrypt(encodedCiphertext []byte, encodedKey []byte) ([]byte, error) {
	aesGCM, err := newGCM(encodedKey)
	if err != nil {
		return nil, err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(string(encodedCiphertext))
	if err != nil {
		return nil, err
	}
	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	return aesGCM.Open(nil, ciphertext[:nonceSize], ciphertext[nonceSize:], nil)
}

func (a AesGcmEncryptor) CreateKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return []byte(base64.StdEncoding.EncodeToString(key)), nil
}

func newGCM(encodedKey []byte) (cipher.AEAD, error) {
	key, err := base64.StdEncoding.DecodeString(string(encodedKey))
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
