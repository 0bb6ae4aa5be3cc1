package hal

import (
	"time"

	"halcore-go/errcode"
	"halcore-go/outcome"
	"halcore-go/x/mathx"
	"halcore-go/x/ramp"
)

// Generic HAL algorithms. Each is parameterized over "any type satisfying
// capability X", never over a concrete driver type, so a new peripheral
// implementation needs only to satisfy the contract, not to be known here.

// Pulse drives the pin high then low, times times.
func Pulse[P GPIOPin](p P, times int) outcome.Status {
	if times < 0 {
		return outcome.ErrStatus(errcode.InvalidParameter)
	}
	for i := 0; i < times; i++ {
		if s := p.SetHigh(); s.IsErr() {
			return s
		}
		if s := p.SetLow(); s.IsErr() {
			return s
		}
	}
	return outcome.OkStatus()
}

// WriteAll writes the whole buffer, failing with the kind of the first
// rejected byte.
func WriteAll[U UART](u U, p []byte) outcome.Outcome[int] {
	for _, b := range p {
		if s := u.WriteByte(b); s.IsErr() {
			return outcome.Err[int](s.Kind())
		}
	}
	return outcome.Ok(len(p))
}

// ReadExact reads len(p) bytes, polling Buffered between reads.
func ReadExact[U UART](u U, p []byte) outcome.Outcome[int] {
	for i := range p {
		if u.Buffered() == 0 {
			return outcome.Err[int](errcode.Timeout)
		}
		r := u.ReadByte()
		if r.IsErr() {
			return outcome.Err[int](r.Kind())
		}
		p[i] = r.Value()
	}
	return outcome.Ok(len(p))
}

// TransferAll clocks len(tx) bytes out while reading into rx (which must be
// at least as long), one byte at a time.
func TransferAll[S SPI](s S, tx, rx []byte) outcome.Status {
	if len(rx) < len(tx) {
		return outcome.ErrStatus(errcode.InvalidParameter)
	}
	if s.IsBusy() {
		return outcome.ErrStatus(errcode.Busy)
	}
	for i, b := range tx {
		r := s.Transfer(b)
		if r.IsErr() {
			return r.Status()
		}
		rx[i] = r.Value()
	}
	return outcome.OkStatus()
}

// ReadAveraged samples a channel n times and returns the mean.
func ReadAveraged[A ADC](a A, ch uint8, n int) outcome.Outcome[uint16] {
	if n <= 0 {
		return outcome.Err[uint16](errcode.InvalidParameter)
	}
	var sum uint32
	for i := 0; i < n; i++ {
		r := a.ReadChannel(ch)
		if r.IsErr() {
			return r
		}
		sum += uint32(r.Value())
	}
	return outcome.Ok(uint16(sum / uint32(n)))
}

// SetDutyPercent sets a channel's duty as a percentage of the counter top.
// Percent is clamped to [0,100].
func SetDutyPercent[P PWM](p P, channel uint8, percent uint8) outcome.Status {
	pc := mathx.Clamp(percent, 0, 100)
	duty := uint16(uint32(p.Top()) * uint32(pc) / 100)
	return p.SetDuty(channel, duty)
}

// FadePWM ramps a channel linearly from its current level to 'to' over
// durationMs in the given number of steps. Synchronous; returns after the
// final level is set.
func FadePWM[P PWM](p P, channel uint8, from, to uint16, durationMs uint32, steps uint16) outcome.Status {
	last := outcome.OkStatus()
	ramp.StartLinear(from, to, p.Top(), durationMs, steps,
		func(d time.Duration) bool {
			time.Sleep(d)
			return last.IsOK()
		},
		func(level uint16) { last = p.SetDuty(channel, level) })
	return last
}

// Restart stops a running timer before starting it with a new period.
func Restart[T Timer](t T, periodMicros uint32) outcome.Status {
	if t.Running() {
		if s := t.Stop(); s.IsErr() {
			return s
		}
	}
	return t.Start(periodMicros)
}

// ReadBurst enables the receive interrupt for the duration of a burst read.
// The constraint composes the UART contract with the orthogonal
// interrupt capability.
func ReadBurst[U interface {
	UART
	IRQCapable
}](u U, p []byte) outcome.Outcome[int] {
	if s := u.EnableIRQ(); s.IsErr() {
		return outcome.Err[int](s.Kind())
	}
	r := ReadExact(u, p)
	if s := u.DisableIRQ(); s.IsErr() && r.IsOK() {
		return outcome.Err[int](s.Kind())
	}
	return r
}

// TransmitDMA runs one transmit with the peripheral's DMA path enabled.
// A zero data-register address means the device lied about DMA capability.
func TransmitDMA[S interface {
	SPI
	DMACapable
}](s S, w []byte) outcome.Status {
	if s.DataRegister() == 0 {
		return outcome.ErrStatus(errcode.NotSupported)
	}
	if st := s.EnableDMA(); st.IsErr() {
		return st
	}
	st := s.Transmit(w)
	if d := s.DisableDMA(); d.IsErr() && st.IsOK() {
		return d
	}
	return st
}
