package access

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrNoEmptyString rejects hashing an empty password
var ErrNoEmptyString = errors.New("password must not be empty")

// ErrMismatchedHashAndPassword is the normalized bcrypt mismatch error
var ErrMismatchedHashAndPassword = errors.New("hash and password mismatch")

// dummyHash is a valid bcrypt digest of a random string, compared against
// when no credential is on file so that the unknown-email path costs the
// same as a real mismatch.
var dummyHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("agencykit-dummy-credential"), passwordHashCost())
	if err != nil {
		panic("access: unable to generate dummy hash: " + err.Error())
	}
	return string(h)
}()

// HashPassword will generate a password hash
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost())
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext password matches
// the hashed password
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatchedHashAndPassword
		}
		return err
	}
	return nil
}

// VerifyPassword reports whether the cleartext password matches the stored
// hash. Malformed hashes, absent hashes, and mismatches are all false; the
// caller never learns which, and neither the password nor the hash is
// logged or returned.
func VerifyPassword(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return ComparePasswordAndHash(password, hash) == nil
}

// CompareDummyHash burns one bcrypt comparison against a throwaway digest.
// Called on lookup misses to keep the unknown-user path timing-comparable
// with a real password check.
func CompareDummyHash(password string) {
	_ = ComparePasswordAndHash(password, dummyHash)
}
