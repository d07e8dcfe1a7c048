// Package animal defines the animal category and its realizations.
package animal

import (
	"errors"
	"fmt"
)

// ErrInvalidAge is returned when an animal is constructed with a negative age.
var ErrInvalidAge = errors.New("invalid age")

// Animal is the contract every animal realizes.
type Animal interface {
	Species() string
	Age() int
	MakeSound() string
	Eat(food string) string
}

// Base holds the fields shared by all animals.
type Base struct {
	species string
	age     int
}

// NewBase rejects negative ages.
func NewBase(species string, age int) (Base, error) {
	if age < 0 {
		return Base{}, fmt.Errorf("%w: %d is negative", ErrInvalidAge, age)
	}
	return Base{species: species, age: age}, nil
}

// Species returns the species label.
func (b Base) Species() string { return b.species }

// Age returns the age in years.
func (b Base) Age() int { return b.age }
