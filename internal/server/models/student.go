package models

import "time"

type Student struct {
	ID        int64     `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StudentFields is a partial set of student attributes. A nil field was not
// supplied by the caller and is left unchanged by an update.
type StudentFields struct {
	Firstname *string
	Lastname  *string
	Email     *string
	Address   *string
	Score     *float64
}

// Empty reports whether no field is set.
func (f StudentFields) Empty() bool {
	return f.Firstname == nil && f.Lastname == nil && f.Email == nil &&
		f.Address == nil && f.Score == nil
}

// Apply copies every set field onto s.
func (f StudentFields) Apply(s *Student) {
	if f.Firstname != nil {
		s.Firstname = *f.Firstname
	}
	if f.Lastname != nil {
		s.Lastname = *f.Lastname
	}
	if f.Email != nil {
		s.Email = *f.Email
	}
	if f.Address != nil {
		s.Address = *f.Address
	}
	if f.Score != nil {
		s.Score = *f.Score
	}
}

// NewStudent builds an unsaved Student from f; unset fields stay zero.
func (f StudentFields) NewStudent() *Student {
	s := &Student{}
	f.Apply(s)
	return s
}
