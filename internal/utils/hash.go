package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every stored
// password. Fixed; changing it only affects newly created hashes.
const passwordHashCost = 10

// HashPassword derives a one-way salted bcrypt hash from a plaintext
// password. The plaintext is not retained.
//
// Returns the encoded hash string, or a wrapped error if bcrypt fails
// (e.g. the password exceeds bcrypt's 72-byte limit).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored bcrypt hash.
//
// A mismatch is reported as ok == false with a nil error; an error is
// returned only for internal failures such as a malformed hash.
func CheckPassword(password string, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}

	return false, fmt.Errorf("error checking password: %w", err)
}
