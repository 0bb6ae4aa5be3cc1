//go:build rp2040

// Package platform provides target-specific adapters proving that real
// hardware handles satisfy the hal capability contracts. Files are gated per
// target; nothing here is imported by the core packages.
package platform

import (
	"machine"

	"halcore-go/errcode"
	"halcore-go/hal"
	"halcore-go/outcome"
)

// RP2Pin adapts machine.Pin to the GPIO capability, with the interrupt
// capability layered on top.
type RP2Pin struct {
	p    machine.Pin
	edge machine.PinChange
	fn   func()
}

var (
	_ hal.GPIOPin    = (*RP2Pin)(nil)
	_ hal.IRQCapable = (*RP2Pin)(nil)
)

// NewRP2Pin wraps a GPIO number (0..29).
func NewRP2Pin(n int) outcome.Outcome[*RP2Pin] {
	if n < 0 || n > 29 {
		return outcome.Err[*RP2Pin](errcode.InvalidParameter)
	}
	return outcome.Ok(&RP2Pin{p: machine.Pin(n), edge: machine.PinRising})
}

func (r *RP2Pin) SetHigh() outcome.Status { r.p.High(); return outcome.OkStatus() }
func (r *RP2Pin) SetLow() outcome.Status  { r.p.Low(); return outcome.OkStatus() }
func (r *RP2Pin) Toggle() outcome.Status {
	r.p.Set(!r.p.Get())
	return outcome.OkStatus()
}
func (r *RP2Pin) Write(level bool) outcome.Status {
	r.p.Set(level)
	return outcome.OkStatus()
}
func (r *RP2Pin) Read() outcome.Outcome[bool] { return outcome.Ok(r.p.Get()) }

func (r *RP2Pin) SetDirection(d hal.Direction) outcome.Status {
	if d == hal.DirOutput {
		r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	} else {
		r.p.Configure(machine.PinConfig{Mode: machine.PinInput})
	}
	return outcome.OkStatus()
}

func (r *RP2Pin) SetPull(p hal.Pull) outcome.Status {
	var mode machine.PinMode
	switch p {
	case hal.PullUp:
		mode = machine.PinInputPullup
	case hal.PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return outcome.OkStatus()
}

// RP2040 pads have fixed push-pull drivers; open-drain is not available.
func (r *RP2Pin) SetDrive(d hal.Drive) outcome.Status {
	if d != hal.DrivePushPull {
		return outcome.ErrStatus(errcode.NotSupported)
	}
	return outcome.OkStatus()
}

// SetHandler selects the edge and callback used when the interrupt is
// enabled.
func (r *RP2Pin) SetHandler(edge machine.PinChange, fn func()) {
	r.edge = edge
	r.fn = fn
}

func (r *RP2Pin) EnableIRQ() outcome.Status {
	fn := r.fn
	err := r.p.SetInterrupt(r.edge, func(machine.Pin) {
		if fn != nil {
			fn()
		}
	})
	return outcome.StatusOf(err)
}

func (r *RP2Pin) DisableIRQ() outcome.Status {
	return outcome.StatusOf(r.p.SetInterrupt(0, nil))
}

// The RP2040 IO bank clears the latched event when the handler runs; there
// is no separate acknowledge to perform here.
func (r *RP2Pin) ClearIRQ() outcome.Status { return outcome.OkStatus() }
