// Package password hashes and verifies user passwords with bcrypt.
//
// Every call to GetHash draws a fresh salt, so hashing the same password twice
// yields different strings; both verify against the original password.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash returns the bcrypt hash of password.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash checks externalPassword against originalHash and returns nil on
// a match.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Verify reports whether password matches hash. A malformed hash is a
// mismatch.
func Verify(password, hash string) bool {
	return CompareHash(hash, password) == nil
}
