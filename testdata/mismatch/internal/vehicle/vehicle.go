package vehicle

type Vehicle interface {
	Model() string
	StartEngine() string
	StopEngine() string
}

// Car has the category's method names but two of them have other signatures.
type Car struct{ model string }

func (c Car) Model() string              { return c.model }
func (c Car) StartEngine(force bool) int { return 0 }
func (c Car) StopEngine()                {}
