package domain

import (
	"time"
	"unicode/utf8"
)

// MaxColorLength bounds the display color of a line, e.g. "bg-green-600".
const MaxColorLength = 20

// Line is a named route on the network. Its name is unique among lines.
type Line struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLine creates an unsaved Line with an optional color.
func NewLine(name, color string) (*Line, error) {
	l := &Line{
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate checks if the Line has valid data.
func (l *Line) Validate() error {
	if err := validateName(l.Name); err != nil {
		return err
	}
	if utf8.RuneCountInString(l.Color) > MaxColorLength {
		return NewValidationError("color", "is too long", nil)
	}
	return nil
}
