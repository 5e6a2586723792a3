// Package models holds the client-side view of server records.
package models

import "fmt"

// Student mirrors the wire shape returned by the server. Timestamps are kept
// as the RFC 3339 strings the server sends.
type Student struct {
	ID        string
	Firstname string
	Lastname  string
	Email     string
	Address   string
	Score     float64
	CreatedAt string
	UpdatedAt string
}

func (s *Student) String() string {
	return fmt.Sprintf("%s\t%s %s\t%s\t%s\t%g", s.ID, s.Firstname, s.Lastname, s.Email, s.Address, s.Score)
}

// Export locates an uploaded student export.
type Export struct {
	Key string
	URL string
}
