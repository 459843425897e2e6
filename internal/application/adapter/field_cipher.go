// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// FieldCipher encrypts and decrypts individual field values for storage
// at rest. Implementations must be safe for concurrent use.
//
// Empty strings pass through both directions unchanged. Decrypt fails
// with a data-integrity error on tampered or malformed input; it never
// degrades corrupted data to an empty value.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
