//go:build rp2040

package platform

import (
	"machine"

	"halcore-go/bus"
	"halcore-go/signal"
)

// NewRP2SPIDevice exposes a configured machine.SPI controller as a guardable
// bus device. machine.SPI satisfies the drivers.SPI shape, so the shared
// driver shim does the adaptation; cs names the chip-select line the board
// wired for this device.
func NewRP2SPIDevice(spi *machine.SPI, cs signal.PinID) *bus.DriverSPI {
	return bus.WrapSPI(spi, cs)
}
