package config_test

import (
	"os"
	"testing"

	"github.com/quillnote/quillnote-api/internal/config"
)

const testKey = "01234567890123456789012345678901"

func TestInitCrypto(t *testing.T) {
	t.Run("ShortKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", "too_short")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("InitCrypto should panic on a key shorter than 32 bytes")
			}
		}()

		config.InitCrypto()
	})

	t.Run("ValidKey", func(t *testing.T) {
		os.Setenv("CRYPTO_KEY", testKey)
		config.InitCrypto()

		if !config.CryptoEnabled() {
			t.Error("expected crypto to be enabled with a valid key")
		}
	})

	t.Run("UnsetKeyDisablesCrypto", func(t *testing.T) {
		os.Unsetenv("CRYPTO_KEY")
		config.InitCrypto()

		if config.CryptoEnabled() {
			t.Error("expected crypto to be disabled without CRYPTO_KEY")
		}

		out, err := config.Encrypt("plain note body")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		if out != "plain note body" {
			t.Errorf("expected pass-through when crypto is disabled, got %q", out)
		}
	})
}

func TestEncryptDecrypt(t *testing.T) {
	os.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	t.Run("SimpleText", func(t *testing.T) {
		plaintext := "secret study notes"

		ciphertext, err := config.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}

		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}

		if decrypted != plaintext {
			t.Errorf("decrypted text %q does not match original %q", decrypted, plaintext)
		}

		ciphertext2, _ := config.Encrypt(plaintext)
		if ciphertext == ciphertext2 {
			t.Error("encryption is not randomized; ciphertexts should differ per call")
		}
	})

	t.Run("EmptyText", func(t *testing.T) {
		ciphertext, err := config.Encrypt("")
		if err != nil {
			t.Fatalf("Encrypt failed: %v", err)
		}
		decrypted, err := config.Decrypt(ciphertext)
		if err != nil {
			t.Fatalf("Decrypt failed: %v", err)
		}
		if decrypted != "" {
			t.Errorf("decrypted empty text is incorrect: %q", decrypted)
		}
	})
}
