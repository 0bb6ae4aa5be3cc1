package signal

// PinOption is one legal routing for a signal: a physical pin and the mux
// value that pin requires.
type PinOption struct {
	Pin PinID
	Alt AlternateFunction
}

// SignalDefinition lists every physical pin capable of carrying one
// peripheral signal. Definitions are generated per target chip and consumed
// read-only; the order of Options follows the vendor routing table.
type SignalDefinition struct {
	Peripheral PeripheralID
	Signal     SignalType
	Options    []PinOption
}

// SupportsPin reports whether pin appears in the compatible-pin list.
func (d *SignalDefinition) SupportsPin(pin PinID) bool {
	for _, o := range d.Options {
		if o.Pin == pin {
			return true
		}
	}
	return false
}

// Alternate returns the mux value required for pin to carry this signal, or
// NoAlternate when the pin cannot.
func (d *SignalDefinition) Alternate(pin PinID) AlternateFunction {
	for _, o := range d.Options {
		if o.Pin == pin {
			return o.Alt
		}
	}
	return NoAlternate
}

// Connection is the result of a combined routing check, suitable for a
// configuration-time assertion.
type Connection struct {
	Pin   PinID
	Alt   AlternateFunction
	Valid bool
}

// Validate performs the combined support+mux lookup for pin.
func (d *SignalDefinition) Validate(pin PinID) Connection {
	alt := d.Alternate(pin)
	return Connection{Pin: pin, Alt: alt, Valid: alt != NoAlternate}
}
