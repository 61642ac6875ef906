package service

// TokenCipher encrypts access tokens before they are stored.
// Implementations hold the key; it is never part of the ciphertext.
type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}
