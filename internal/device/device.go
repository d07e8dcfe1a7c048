// Package device defines the electronic device category and its realizations.
// Device construction has no invariants and cannot fail.
package device

// ElectronicDevice is the contract every electronic device realizes.
type ElectronicDevice interface {
	Brand() string
	Model() string
	PowerOn() string
	PowerOff() string
}

// Base holds the fields every electronic device shares.
type Base struct {
	brand string
	model string
}

// NewBase stores brand and model as given.
func NewBase(brand, model string) Base {
	return Base{brand: brand, model: model}
}

// Brand returns the manufacturer name.
func (b Base) Brand() string { return b.brand }

// Model returns the model name.
func (b Base) Model() string { return b.model }
