// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/smartspend/backend/internal/application/adapter"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

// fieldCipher implements adapter.FieldCipher with AES-256-GCM.
//
// Wire format: base64(nonce || ciphertext || tag) with a 12-byte nonce
// and a 128-bit tag. A fresh random nonce is drawn per Encrypt call, so
// identical plaintexts never produce identical ciphertexts.
type fieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher creates a field cipher from arbitrary-length key
// material. The key is derived to 32 bytes with SHA-256, which is
// deterministic across restarts.
func NewFieldCipher(key string) (adapter.FieldCipher, error) {
	derived := sha256.Sum256([]byte(key))
	block, err := aes.NewCipher(derived[:])
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GCM: %w", err)
	}
	return &fieldCipher{aead: aead}, nil
}

// Encrypt encrypts a plaintext field value. Empty input passes through.
func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodeEncryptionFailed,
			"failed to generate nonce",
			err,
		)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt decrypts a stored field value. Empty input passes through.
// Tampered or malformed payloads fail with a security error; corrupted
// data is never returned as garbage or silently emptied.
func (c *fieldCipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodeMalformedCiphertext,
			"payload is not valid base64",
			domainerror.ErrMalformedCiphertext,
		)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize+c.aead.Overhead() {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodeMalformedCiphertext,
			"payload is too short",
			domainerror.ErrMalformedCiphertext,
		)
	}

	nonce, sealed := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", domainerror.NewSecurityError(
			domainerror.ErrCodeDataIntegrity,
			"payload failed authentication",
			domainerror.ErrDataIntegrity,
		)
	}
	return string(plaintext), nil
}
