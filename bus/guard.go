// Package bus provides scoped, single-owner guards over shared bus devices
// (I2C, SPI). A guard is the only sanctioned access path to a claimed device:
// Claim is the sole constructor, at most one live guard exists per device,
// and Release deterministically gives the claim back without closing the
// device. Operations on a released guard fail NotInitialized and never touch
// the hardware.
//
// The target execution model is single-threaded, interrupt-driven firmware:
// ownership is enforced by construction discipline, not locks. Do not claim
// a guard from an interrupt context that can re-enter the same bus.
package bus

import (
	"halcore-go/errcode"
	"halcore-go/outcome"
	"halcore-go/signal"
)

// I2CDevice is the contract an underlying I2C controller must expose.
// Tx is one atomic write-then-read transaction.
type I2CDevice interface {
	IsOpen() bool
	Tx(addr uint16, w, r []byte) outcome.Status
}

// SPIDevice is the contract an underlying SPI controller must expose.
type SPIDevice interface {
	IsOpen() bool
	ChipSelect() signal.PinID
	Transfer(b byte) outcome.Outcome[byte]
	Tx(w, r []byte) outcome.Status
}

// Live claims, one slot per device. Plain map: the execution model is
// single-threaded (see package comment).
var claims = map[any]struct{}{}

func claim(dev any, open bool) errcode.Kind {
	if !open {
		return errcode.NotInitialized
	}
	if _, held := claims[dev]; held {
		return errcode.Busy
	}
	claims[dev] = struct{}{}
	return errcode.OK
}

func release(dev any) {
	delete(claims, dev)
}

// ---- I2C ----

// I2CGuard owns exclusive access to an I2C device for its lifetime.
type I2CGuard struct {
	dev  I2CDevice
	live bool
}

// ClaimI2C acquires the device. It fails NotInitialized when the device is
// not open and Busy when another guard is still live. Pair every successful
// claim with a deferred Release.
func ClaimI2C(dev I2CDevice) outcome.Outcome[*I2CGuard] {
	if k := claim(dev, dev != nil && dev.IsOpen()); k != errcode.OK {
		return outcome.Err[*I2CGuard](k)
	}
	return outcome.Ok(&I2CGuard{dev: dev, live: true})
}

// Release gives the claim back. Idempotent; the device itself stays open.
func (g *I2CGuard) Release() {
	if g == nil || !g.live {
		return
	}
	g.live = false
	release(g.dev)
}

func (g *I2CGuard) check() outcome.Status {
	if g == nil || !g.live {
		return outcome.ErrStatus(errcode.NotInitialized)
	}
	return outcome.OkStatus()
}

// Write sends w to the addressed device.
func (g *I2CGuard) Write(addr uint16, w []byte) outcome.Status {
	if s := g.check(); s.IsErr() {
		return s
	}
	return g.dev.Tx(addr, w, nil)
}

// Read fills r from the addressed device.
func (g *I2CGuard) Read(addr uint16, r []byte) outcome.Status {
	if s := g.check(); s.IsErr() {
		return s
	}
	return g.dev.Tx(addr, nil, r)
}

// WriteReg writes one byte to a register.
func (g *I2CGuard) WriteReg(addr uint16, reg, val byte) outcome.Status {
	if s := g.check(); s.IsErr() {
		return s
	}
	return g.dev.Tx(addr, []byte{reg, val}, nil)
}

// ReadReg reads one byte from a register.
func (g *I2CGuard) ReadReg(addr uint16, reg byte) outcome.Outcome[byte] {
	if s := g.check(); s.IsErr() {
		return outcome.Err[byte](s.Kind())
	}
	var r [1]byte
	if s := g.dev.Tx(addr, []byte{reg}, r[:]); s.IsErr() {
		return outcome.Err[byte](s.Kind())
	}
	return outcome.Ok(r[0])
}

// ReadReg16 reads a 16-bit register word, low byte first.
func (g *I2CGuard) ReadReg16(addr uint16, reg byte) outcome.Outcome[uint16] {
	if s := g.check(); s.IsErr() {
		return outcome.Err[uint16](s.Kind())
	}
	var r [2]byte
	if s := g.dev.Tx(addr, []byte{reg}, r[:]); s.IsErr() {
		return outcome.Err[uint16](s.Kind())
	}
	return outcome.Ok(uint16(r[0]) | uint16(r[1])<<8)
}

// WriteReg16 writes a 16-bit register word, low byte first.
func (g *I2CGuard) WriteReg16(addr uint16, reg byte, val uint16) outcome.Status {
	if s := g.check(); s.IsErr() {
		return s
	}
	return g.dev.Tx(addr, []byte{reg, byte(val), byte(val >> 8)}, nil)
}

// ---- SPI ----

// SPIGuard owns exclusive access to an SPI device for its lifetime.
type SPIGuard struct {
	dev  SPIDevice
	live bool
}

// ClaimSPI acquires the device; failure kinds match ClaimI2C.
func ClaimSPI(dev SPIDevice) outcome.Outcome[*SPIGuard] {
	if k := claim(dev, dev != nil && dev.IsOpen()); k != errcode.OK {
		return outcome.Err[*SPIGuard](k)
	}
	return outcome.Ok(&SPIGuard{dev: dev, live: true})
}

// Release gives the claim back. Idempotent; the device itself stays open.
func (g *SPIGuard) Release() {
	if g == nil || !g.live {
		return
	}
	g.live = false
	release(g.dev)
}

func (g *SPIGuard) check() outcome.Status {
	if g == nil || !g.live {
		return outcome.ErrStatus(errcode.NotInitialized)
	}
	return outcome.OkStatus()
}

// ChipSelect reports which chip-select line the device is bound to.
// NoPin when the guard is not live.
func (g *SPIGuard) ChipSelect() signal.PinID {
	if g == nil || !g.live {
		return signal.NoPin
	}
	return g.dev.ChipSelect()
}

// Transfer clocks one byte out and returns the byte clocked in.
func (g *SPIGuard) Transfer(b byte) outcome.Outcome[byte] {
	if s := g.check(); s.IsErr() {
		return outcome.Err[byte](s.Kind())
	}
	return g.dev.Transfer(b)
}

// Write clocks w out, discarding the read side.
func (g *SPIGuard) Write(w []byte) outcome.Status {
	if s := g.check(); s.IsErr() {
		return s
	}
	return g.dev.Tx(w, nil)
}

// Read fills r, clocking zeroes out.
func (g *SPIGuard) Read(r []byte) outcome.Status {
	if s := g.check(); s.IsErr() {
		return s
	}
	return g.dev.Tx(nil, r)
}

// WriteByte is the single-byte convenience for Write.
func (g *SPIGuard) WriteByte(b byte) outcome.Status {
	return g.Transfer(b).Status()
}

// ReadByte is the single-byte convenience for Read.
func (g *SPIGuard) ReadByte() outcome.Outcome[byte] {
	return g.Transfer(0)
}
