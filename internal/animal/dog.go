package animal

import "fmt"

var _ Animal = (*Dog)(nil)

// Dog barks the same way whatever its species label says.
type Dog struct {
	Base
}

// NewDog returns a dog or ErrInvalidAge.
func NewDog(species string, age int) (*Dog, error) {
	base, err := NewBase(species, age)
	if err != nil {
		return nil, fmt.Errorf("new dog %q: %w", species, err)
	}
	return &Dog{Base: base}, nil
}

// MakeSound returns "Woof!" for every dog.
func (d Dog) MakeSound() string { return "Woof!" }

// Eat reports that the dog ate food. food is inserted verbatim.
func (d Dog) Eat(food string) string {
	return fmt.Sprintf("%s eats %s.", d.species, food)
}
