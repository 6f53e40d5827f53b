package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

var ErrSealTooShort = errors.New("sealed payload too short")

// KDFParams configures the Argon2id key derivation.
type KDFParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
}

// DefaultKDFParams returns recommended Argon2id parameters for deriving the
// state-store sealing key.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
	}
}

// Sealer encrypts session tokens before they are persisted at rest. The key
// is derived per payload from the configured secret with Argon2id and a
// random salt; the ciphertext is XChaCha20-Poly1305.
type Sealer struct {
	secret []byte
	params KDFParams
}

// NewSealer creates a sealer bound to the given secret.
func NewSealer(secret string) *Sealer {
	return &Sealer{secret: []byte(secret), params: DefaultKDFParams()}
}

// Seal encrypts plaintext. Layout: salt || nonce || ciphertext.
func (s *Sealer) Seal(plaintext string) ([]byte, error) {
	salt := make([]byte, s.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}

	aead, err := s.aead(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	sealed := append(salt, nonce...)
	return aead.Seal(sealed, nonce, []byte(plaintext), nil), nil
}

// Open decrypts a payload produced by Seal.
func (s *Sealer) Open(sealed []byte) (string, error) {
	saltLen := int(s.params.SaltLength)
	aeadProbe, err := s.aead(make([]byte, s.params.SaltLength))
	if err != nil {
		return "", err
	}
	if len(sealed) < saltLen+aeadProbe.NonceSize() {
		return "", ErrSealTooShort
	}

	salt := sealed[:saltLen]
	aead, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := sealed[saltLen : saltLen+aead.NonceSize()]
	ciphertext := sealed[saltLen+aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("open sealed payload: %w", err)
	}
	return string(plaintext), nil
}

func (s *Sealer) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.secret, salt, s.params.Iterations, s.params.Memory, s.params.Parallelism, chacha20poly1305.KeySize)
	return chacha20poly1305.NewX(key)
}
