package vehicle

type Vehicle interface {
	StartEngine() string
	StopEngine() string
}

type Car struct{ model string }

func (c Car) StartEngine() string { return "Engine " + c.model + " started." }
func (c Car) StopEngine() string  { return "Engine " + c.model + " stopped." }

// Truck is a second realization; the category allows only one.
type Truck struct{ model string }

func (t Truck) StartEngine() string { return "Engine " + t.model + " started." }
func (t Truck) StopEngine() string  { return "Engine " + t.model + " stopped." }

type engine struct{}

func (engine) StartEngine() string { return "" }
func (engine) StopEngine() string  { return "" }
