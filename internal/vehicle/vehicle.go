// Package vehicle defines the motorized vehicle category and its realizations.
package vehicle

import (
	"errors"
	"fmt"
)

// FirstYear is the year the first automobile was built. No vehicle predates it.
const FirstYear = 1886

// ErrInvalidYear is returned when a vehicle is constructed with a year before FirstYear.
var ErrInvalidYear = errors.New("invalid year")

// Vehicle is the contract every motorized vehicle realizes.
type Vehicle interface {
	Model() string
	Year() int
	StartEngine() string
	StopEngine() string
}

// Base holds the fields shared by all vehicles. The zero value is not valid;
// use NewBase.
type Base struct {
	model string
	year  int
}

// NewBase validates year and returns the shared vehicle fields.
func NewBase(model string, year int) (Base, error) {
	if year < FirstYear {
		return Base{}, fmt.Errorf("%w: %d is earlier than %d", ErrInvalidYear, year, FirstYear)
	}
	return Base{model: model, year: year}, nil
}

// Model returns the model name.
func (b Base) Model() string { return b.model }

// Year returns the production year.
func (b Base) Year() int { return b.year }
