// Package cryptox wraps the password hashing and session token primitives.
package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = bcrypt.DefaultCost

// ErrPasswordMismatch is returned by CheckPassword when the password does not
// match the stored hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// ErrPasswordTooLong is returned by HashPassword for passwords over bcrypt's
// 72 byte input limit.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

// dummyHash is compared against when the account does not exist so that a
// lookup miss costs about the same as a wrong password.
var dummyHash = mustHash("not-a-real-password", bcrypt.DefaultCost)

func mustHash(password string, cost int) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		panic(err)
	}
	return h
}

// HashPassword returns a bcrypt hash of password. Costs outside the bcrypt
// range fall back to DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether password matches hash. A nil error means a
// match; ErrPasswordMismatch means a well-formed hash that did not match.
func CheckPassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}

// BurnPasswordCheck runs a comparison against a fixed hash and discards the
// result. Used on the unknown-account path of a login.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
