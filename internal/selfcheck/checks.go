package selfcheck

import (
	"github.com/olehluchkiv/goabstract/internal/animal"
	"github.com/olehluchkiv/goabstract/internal/device"
	"github.com/olehluchkiv/goabstract/internal/vehicle"
)

// Category names used in reports.
const (
	CategoryVehicle = "vehicle"
	CategoryAnimal  = "animal"
	CategoryDevice  = "device"
)

// DefaultChecks returns the fixed battery: one construction of each realization
// with a representative operation, the counterpart operations, repeat calls, and
// the two rejected constructions.
func DefaultChecks() []Check {
	return []Check{
		{
			Name:     "car start engine",
			Category: CategoryVehicle,
			Want:     "Engine Toyota started.",
			Run: func() (string, error) {
				car, err := vehicle.NewCar("Toyota", 2020)
				if err != nil {
					return "", err
				}
				return car.StartEngine(), nil
			},
		},
		{
			Name:     "car stop engine",
			Category: CategoryVehicle,
			Want:     "Engine Toyota stopped.",
			Run: func() (string, error) {
				car, err := vehicle.NewCar("Toyota", 2020)
				if err != nil {
					return "", err
				}
				return car.StopEngine(), nil
			},
		},
		{
			Name:     "car start engine twice",
			Category: CategoryVehicle,
			Want:     "Engine Toyota started.",
			Run: func() (string, error) {
				car, err := vehicle.NewCar("Toyota", 2020)
				if err != nil {
					return "", err
				}
				return repeated(car.StartEngine)
			},
		},
		{
			Name:     "vehicle rejects year 1800",
			Category: CategoryVehicle,
			WantErr:  vehicle.ErrInvalidYear,
			Run: func() (string, error) {
				_, err := vehicle.NewBase("Toyota", 1800)
				return "", err
			},
		},
		{
			Name:     "dog make sound",
			Category: CategoryAnimal,
			Want:     "Woof!",
			Run: func() (string, error) {
				dog, err := animal.NewDog("Dog", 3)
				if err != nil {
					return "", err
				}
				return dog.MakeSound(), nil
			},
		},
		{
			Name:     "dog eat",
			Category: CategoryAnimal,
			Want:     "Dog eats meat.",
			Run: func() (string, error) {
				dog, err := animal.NewDog("Dog", 3)
				if err != nil {
					return "", err
				}
				return repeated(func() string { return dog.Eat("meat") })
			},
		},
		{
			Name:     "animal rejects age -1",
			Category: CategoryAnimal,
			WantErr:  animal.ErrInvalidAge,
			Run: func() (string, error) {
				_, err := animal.NewBase("Dog", -1)
				return "", err
			},
		},
		{
			Name:     "phone power on",
			Category: CategoryDevice,
			Want:     "iPhone 13 turned on.",
			Run: func() (string, error) {
				return device.NewPhone("Apple", "iPhone 13").PowerOn(), nil
			},
		},
		{
			Name:     "phone power off",
			Category: CategoryDevice,
			Want:     "iPhone 13 turned off.",
			Run: func() (string, error) {
				return repeated(device.NewPhone("Apple", "iPhone 13").PowerOff)
			},
		},
	}
}

// repeated calls op twice and fails if the results differ.
func repeated(op func() string) (string, error) {
	first, second := op(), op()
	if first != second {
		return first, &mismatchError{first: first, second: second}
	}
	return first, nil
}

type mismatchError struct {
	first, second string
}

func (e *mismatchError) Error() string {
	return "repeated call changed result: " + e.first + " then " + e.second
}
