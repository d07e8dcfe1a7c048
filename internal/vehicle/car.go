package vehicle

import "fmt"

var _ Vehicle = (*Car)(nil)

// Car is a passenger car.
type Car struct {
	Base
}

// NewCar returns a car or ErrInvalidYear.
func NewCar(model string, year int) (*Car, error) {
	base, err := NewBase(model, year)
	if err != nil {
		return nil, fmt.Errorf("new car %q: %w", model, err)
	}
	return &Car{Base: base}, nil
}

// StartEngine reports that the engine started.
func (c Car) StartEngine() string {
	return fmt.Sprintf("Engine %s started.", c.model)
}

// StopEngine reports that the engine stopped.
func (c Car) StopEngine() string {
	return fmt.Sprintf("Engine %s stopped.", c.model)
}
