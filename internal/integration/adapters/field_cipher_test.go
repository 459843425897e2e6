package adapters

import (
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"testing"

	domainerror "github.com/smartspend/backend/internal/domain/error"
)

func newTestCipher(t *testing.T) *fieldCipher {
	t.Helper()
	c, err := NewFieldCipher("unit-test-key")
	if err != nil {
		t.Fatalf("NewFieldCipher() error = %v", err)
	}
	return c.(*fieldCipher)
}

func TestFieldCipherRoundtrip(t *testing.T) {
	c := newTestCipher(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"short", "coffee with mia"},
		{"unicode", "déjeuner — café ☕"},
		{"long", strings.Repeat("monthly rent payment ", 50)},
		{"single char", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := c.Encrypt(tt.plaintext)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}
			if encrypted == tt.plaintext {
				t.Error("ciphertext equals plaintext")
			}
			decrypted, err := c.Decrypt(encrypted)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}
			if decrypted != tt.plaintext {
				t.Errorf("Decrypt() = %q, want %q", decrypted, tt.plaintext)
			}
		})
	}
}

func TestFieldCipherEmptyStringPassesThrough(t *testing.T) {
	c := newTestCipher(t)

	encrypted, err := c.Encrypt("")
	if err != nil {
		t.Fatalf("Encrypt(\"\") error = %v", err)
	}
	if encrypted != "" {
		t.Errorf("Encrypt(\"\") = %q, want empty", encrypted)
	}

	decrypted, err := c.Decrypt("")
	if err != nil {
		t.Fatalf("Decrypt(\"\") error = %v", err)
	}
	if decrypted != "" {
		t.Errorf("Decrypt(\"\") = %q, want empty", decrypted)
	}
}

func TestFieldCipherFreshNoncePerCall(t *testing.T) {
	c := newTestCipher(t)

	first, err := c.Encrypt("identical plaintext")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	second, err := c.Encrypt("identical plaintext")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	if first == second {
		t.Error("two encryptions of the same plaintext produced the same ciphertext")
	}
}

func TestFieldCipherTamperDetection(t *testing.T) {
	c := newTestCipher(t)

	encrypted, err := c.Encrypt("sensitive notes")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		t.Fatalf("decoding ciphertext: %v", err)
	}
	// Flip one bit in the ciphertext body, past the nonce.
	raw[len(raw)/2] ^= 0x01
	tampered := base64.StdEncoding.EncodeToString(raw)

	got, err := c.Decrypt(tampered)
	if err == nil {
		t.Fatalf("Decrypt(tampered) = %q, want error", got)
	}
	if !errors.Is(err, domainerror.ErrDataIntegrity) {
		t.Errorf("Decrypt(tampered) error = %v, want ErrDataIntegrity", err)
	}
	if got != "" {
		t.Errorf("Decrypt(tampered) returned data %q alongside the error", got)
	}
}

func TestFieldCipherWrongKeyFailsAuthentication(t *testing.T) {
	c := newTestCipher(t)
	other, err := NewFieldCipher("a different key")
	if err != nil {
		t.Fatalf("NewFieldCipher() error = %v", err)
	}

	encrypted, err := c.Encrypt("sensitive notes")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}

	if _, err := other.Decrypt(encrypted); !errors.Is(err, domainerror.ErrDataIntegrity) {
		t.Errorf("Decrypt with wrong key error = %v, want ErrDataIntegrity", err)
	}
}

func TestFieldCipherMalformedInput(t *testing.T) {
	c := newTestCipher(t)

	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "not-base64!!!"},
		{"too short", base64.StdEncoding.EncodeToString([]byte("short"))},
		{"nonce only", base64.StdEncoding.EncodeToString(make([]byte, 12))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Decrypt(tt.input); !errors.Is(err, domainerror.ErrMalformedCiphertext) {
				t.Errorf("Decrypt(%q) error = %v, want ErrMalformedCiphertext", tt.input, err)
			}
		})
	}
}

func TestFieldCipherKeyDerivationIsDeterministic(t *testing.T) {
	first, err := NewFieldCipher("a much longer key than thirty-two bytes of material")
	if err != nil {
		t.Fatalf("NewFieldCipher() error = %v", err)
	}
	second, err := NewFieldCipher("a much longer key than thirty-two bytes of material")
	if err != nil {
		t.Fatalf("NewFieldCipher() error = %v", err)
	}

	encrypted, err := first.Encrypt("persisted before a restart")
	if err != nil {
		t.Fatalf("Encrypt() error = %v", err)
	}
	decrypted, err := second.Decrypt(encrypted)
	if err != nil {
		t.Fatalf("Decrypt() with re-derived key error = %v", err)
	}
	if decrypted != "persisted before a restart" {
		t.Errorf("Decrypt() = %q", decrypted)
	}
}

func TestFieldCipherConcurrentUse(t *testing.T) {
	c := newTestCipher(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			plaintext := strings.Repeat("n", n+1)
			encrypted, err := c.Encrypt(plaintext)
			if err != nil {
				t.Errorf("Encrypt() error = %v", err)
				return
			}
			decrypted, err := c.Decrypt(encrypted)
			if err != nil {
				t.Errorf("Decrypt() error = %v", err)
				return
			}
			if decrypted != plaintext {
				t.Errorf("roundtrip mismatch: got %q, want %q", decrypted, plaintext)
			}
		}(i)
	}
	wg.Wait()
}
