package bus

import (
	"tinygo.org/x/drivers"

	"halcore-go/errcode"
	"halcore-go/outcome"
	"halcore-go/signal"
)

// Adapters from the tinygo driver bus interfaces to the guard device
// contracts, so any configured tinygo.org/x/drivers bus plugs straight into
// ClaimI2C/ClaimSPI. The wrapper tracks the open/closed lifecycle the driver
// interfaces themselves do not expose.

func mapErr(err error) errcode.Kind {
	if err == nil {
		return errcode.OK
	}
	if k := errcode.Of(err); k != errcode.Unknown {
		return k
	}
	// Opaque driver errors are hardware-level failures by the time they
	// surface from Tx.
	return errcode.HardwareError
}

// DriverI2C adapts a drivers.I2C bus to the I2CDevice contract.
type DriverI2C struct {
	bus  drivers.I2C
	open bool
}

var _ I2CDevice = (*DriverI2C)(nil)

// WrapI2C wraps a configured (already-initialised) driver bus; the result
// reports open.
func WrapI2C(bus drivers.I2C) *DriverI2C {
	return &DriverI2C{bus: bus, open: true}
}

func (d *DriverI2C) IsOpen() bool { return d.open && d.bus != nil }

// Close marks the device closed; subsequent claims fail NotInitialized.
func (d *DriverI2C) Close() { d.open = false }

func (d *DriverI2C) Tx(addr uint16, w, r []byte) outcome.Status {
	if !d.IsOpen() {
		return outcome.ErrStatus(errcode.NotInitialized)
	}
	if k := mapErr(d.bus.Tx(addr, w, r)); k != errcode.OK {
		return outcome.ErrStatus(k)
	}
	return outcome.OkStatus()
}

// DriverSPI adapts a drivers.SPI bus plus its chip-select pin to the
// SPIDevice contract.
type DriverSPI struct {
	bus  drivers.SPI
	cs   signal.PinID
	open bool
}

var _ SPIDevice = (*DriverSPI)(nil)

// WrapSPI wraps a configured driver bus bound to the given chip-select pin.
func WrapSPI(bus drivers.SPI, cs signal.PinID) *DriverSPI {
	return &DriverSPI{bus: bus, cs: cs, open: true}
}

func (d *DriverSPI) IsOpen() bool { return d.open && d.bus != nil }

// Close marks the device closed; subsequent claims fail NotInitialized.
func (d *DriverSPI) Close() { d.open = false }

func (d *DriverSPI) ChipSelect() signal.PinID { return d.cs }

func (d *DriverSPI) Transfer(b byte) outcome.Outcome[byte] {
	if !d.IsOpen() {
		return outcome.Err[byte](errcode.NotInitialized)
	}
	v, err := d.bus.Transfer(b)
	if k := mapErr(err); k != errcode.OK {
		return outcome.Err[byte](k)
	}
	return outcome.Ok(v)
}

func (d *DriverSPI) Tx(w, r []byte) outcome.Status {
	if !d.IsOpen() {
		return outcome.ErrStatus(errcode.NotInitialized)
	}
	if k := mapErr(d.bus.Tx(w, r)); k != errcode.OK {
		return outcome.ErrStatus(k)
	}
	return outcome.OkStatus()
}
