package domain

import (
	"time"
	"unicode/utf8"
)

// MaxNameLength bounds station and line names, in runes.
const MaxNameLength = 255

// Station is a named stop on the network. Its name is unique among stations.
type Station struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewStation creates an unsaved Station. The ID is assigned by the store.
// Returns a ValidationError if the name is empty or too long.
func NewStation(name string) (*Station, error) {
	s := &Station{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks if the Station has valid data.
func (s *Station) Validate() error {
	return validateName(s.Name)
}

func validateName(name string) error {
	if name == "" {
		return NewValidationError("name", "is required", nil)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return NewValidationError("name", "is too long", nil)
	}
	return nil
}
