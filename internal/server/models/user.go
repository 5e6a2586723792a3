// Package models defines server-side data models persisted by the repositories.
package models

import "time"

// User is an account that may log in. PasswordHash is a bcrypt hash.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
