package auth

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"strings"

	"adchecker/config"
	domainerrors "adchecker/internal/domain/errors"
	"adchecker/internal/domain/service"
	"adchecker/internal/errors"

	"golang.org/x/crypto/hkdf"
)

const (
	aesKeySize = 32 // AES-256
	hkdfInfo   = "adchecker user_tokens v1"
)

// aesGCMCipher encrypts access tokens with AES-256-GCM.
// Ciphertext layout is base64(nonce || sealed); the key never leaves the process.
type aesGCMCipher struct {
	aead cipher.AEAD
}

// NewTokenCipher builds the token cipher from security.encryptionKey.
func NewTokenCipher(cfg *config.Config) (service.TokenCipher, error) {
	return newAESGCMCipher(cfg.Security.EncryptionKey)
}

func newAESGCMCipher(secret string) (*aesGCMCipher, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("encryption key is not configured")
	}

	key := make([]byte, aesKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, errors.Wrap(err, "derive encryption key")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "create AES cipher block")
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "create GCM cipher")
	}

	return &aesGCMCipher{aead: aead}, nil
}

// Encrypt seals plaintext under a fresh random nonce.
func (c *aesGCMCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt with the same key.
func (c *aesGCMCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(err, "decode ciphertext")
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize+c.aead.Overhead() {
		return "", errors.New("ciphertext too short")
	}

	plaintext, err := c.aead.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return "", errors.Wrap(err, "open ciphertext")
	}

	return string(plaintext), nil
}

var _ service.TokenCipher = (*aesGCMCipher)(nil)
