package device

import "fmt"

var _ ElectronicDevice = (*Phone)(nil)

// Phone is a mobile phone.
type Phone struct {
	Base
}

// NewPhone returns a phone. It never fails.
func NewPhone(brand, model string) *Phone {
	return &Phone{Base: NewBase(brand, model)}
}

// PowerOn reports that the phone was switched on.
func (p Phone) PowerOn() string {
	return fmt.Sprintf("%s turned on.", p.model)
}

// PowerOff reports that the phone was switched off.
func (p Phone) PowerOff() string {
	return fmt.Sprintf("%s turned off.", p.model)
}
