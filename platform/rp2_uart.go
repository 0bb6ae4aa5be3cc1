//go:build rp2040

package platform

import (
	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"halcore-go/errcode"
	"halcore-go/hal"
	"halcore-go/outcome"
)

// RP2UART adapts a uartx port to the UART capability.
type RP2UART struct {
	u *uartx.UART
}

var _ hal.UART = (*RP2UART)(nil)

// NewRP2UART wraps a configured uartx port.
func NewRP2UART(u *uartx.UART) outcome.Outcome[*RP2UART] {
	if u == nil {
		return outcome.Err[*RP2UART](errcode.NotInitialized)
	}
	return outcome.Ok(&RP2UART{u: u})
}

func (r *RP2UART) WriteByte(b byte) outcome.Status {
	return outcome.StatusOf(r.u.WriteByte(b))
}

func (r *RP2UART) ReadByte() outcome.Outcome[byte] {
	b, err := r.u.ReadByte()
	if err != nil {
		// The ring buffer reports only emptiness; map it to the wait kind.
		return outcome.Err[byte](errcode.Timeout)
	}
	return outcome.Ok(b)
}

func (r *RP2UART) Buffered() int { return r.u.Buffered() }
