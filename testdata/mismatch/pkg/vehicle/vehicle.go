package vehicle

// Vehicle shares its short name with internal/vehicle.Vehicle but not its
// method set; Car here realizes only this one.
type Vehicle interface {
	StartEngine() string
	StopEngine() string
}

type Car struct{ model string }

func (c Car) StartEngine() string { return "Engine " + c.model + " started." }
func (c Car) StopEngine() string  { return "Engine " + c.model + " stopped." }
