package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

const (
	saltLength = 16
	iterations = 100000
	keyLength  = 32
)

// PasswordServiceImpl implements domain.PasswordService using salted
// PBKDF2-SHA256 derivation
type PasswordServiceImpl struct{}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{}
}

// Hash implements domain.PasswordService
func (p *PasswordServiceImpl) Hash(password string) ([]byte, []byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return p.HashWithSalt(password, salt), salt, nil
}

// HashWithSalt implements domain.PasswordService. Deterministic for a fixed salt.
func (p *PasswordServiceImpl) HashWithSalt(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLength, sha256.New)
}

// Verify implements domain.PasswordService. Returns false when either stored
// value is absent; comparison is constant time.
func (p *PasswordServiceImpl) Verify(password string, hash, salt []byte) bool {
	if len(hash) == 0 || len(salt) == 0 {
		return false
	}
	derived := p.HashWithSalt(password, salt)
	return subtle.ConstantTimeCompare(derived, hash) == 1
}
