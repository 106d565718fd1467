package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only consumes the first 72 bytes of input; longer passwords are
// truncated up front so hashing never fails on length.
const maxPasswordBytes = 72

// HashPassword hashes a password with bcrypt at the given cost factor.
// Each call produces a different hash for the same input (random salt).
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether the password matches the bcrypt hash.
// A malformed or empty hash yields false, never an error; the comparison
// itself is constant-time inside bcrypt.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
