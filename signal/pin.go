// Package signal models physical pin routing: which package pins can carry
// which peripheral signals, and which allocations a board configuration has
// committed to. Everything here is configuration-time data with plain value
// semantics; nothing in this package touches hardware.
package signal

// Port is one GPIO port on the package (PORTA..PORTF on the supported
// targets).
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
)

func (p Port) letter() byte { return byte('A' + p) }

// PinID identifies one physical package pin as port*8 + index.
// It is comparable and totally ordered, and never describes a logical or
// virtual pin.
type PinID uint8

// NoPin marks an unset pin field. It is never a valid physical pin.
const NoPin PinID = 0xFF

// MakePin builds a PinID from a port and a pin index within the port (0..7).
func MakePin(port Port, index uint8) PinID {
	return PinID(uint8(port)<<3 | index&0x07)
}

func (p PinID) Port() Port   { return Port(p >> 3) }
func (p PinID) Index() uint8 { return uint8(p) & 0x07 }

// AppendName appends the conventional pin name ("PD4") to buf.
func (p PinID) AppendName(buf []byte) []byte {
	if p == NoPin {
		return append(buf, "none"...)
	}
	return append(buf, 'P', p.Port().letter(), '0'+p.Index())
}

func (p PinID) Name() string {
	var buf [4]byte
	return string(p.AppendName(buf[:0]))
}

// PeripheralClass groups peripheral instances by function.
type PeripheralClass uint8

const (
	ClassNone PeripheralClass = iota
	ClassUSART
	ClassSPI
	ClassTWI
	ClassTimer
	ClassADC
	ClassPWM
)

func (c PeripheralClass) String() string {
	switch c {
	case ClassUSART:
		return "USART"
	case ClassSPI:
		return "SPI"
	case ClassTWI:
		return "TWI"
	case ClassTimer:
		return "TIMER"
	case ClassADC:
		return "ADC"
	case ClassPWM:
		return "PWM"
	default:
		return "NONE"
	}
}

// PeripheralID identifies one peripheral instance as class<<4 | instance.
type PeripheralID uint8

// MakePeripheral builds a PeripheralID from a class and an instance number
// (0..15).
func MakePeripheral(class PeripheralClass, instance uint8) PeripheralID {
	return PeripheralID(uint8(class)<<4 | instance&0x0F)
}

func (p PeripheralID) Class() PeripheralClass { return PeripheralClass(p >> 4) }
func (p PeripheralID) Instance() uint8        { return uint8(p) & 0x0F }

// AppendName appends the conventional instance name ("USART0") to buf.
func (p PeripheralID) AppendName(buf []byte) []byte {
	buf = append(buf, p.Class().String()...)
	return append(buf, '0'+p.Instance())
}

func (p PeripheralID) Name() string {
	var buf [8]byte
	return string(p.AppendName(buf[:0]))
}

// SignalType is the functional role a pin plays for a peripheral.
type SignalType uint8

const (
	SignalRX SignalType = iota
	SignalTX
	SignalXCK
	SignalXDIR
	SignalMOSI
	SignalMISO
	SignalSCK
	SignalSS
	SignalSDA
	SignalSCL
	SignalW0
	SignalW1
	SignalADCIn
	SignalTimerOut
)

func (s SignalType) String() string {
	switch s {
	case SignalRX:
		return "RX"
	case SignalTX:
		return "TX"
	case SignalXCK:
		return "XCK"
	case SignalXDIR:
		return "XDIR"
	case SignalMOSI:
		return "MOSI"
	case SignalMISO:
		return "MISO"
	case SignalSCK:
		return "SCK"
	case SignalSS:
		return "SS"
	case SignalSDA:
		return "SDA"
	case SignalSCL:
		return "SCL"
	case SignalW0:
		return "W0"
	case SignalW1:
		return "W1"
	case SignalADCIn:
		return "AIN"
	case SignalTimerOut:
		return "WO"
	default:
		return "?"
	}
}

// AlternateFunction is the pin-mux selector value routing a physical pin to a
// peripheral signal. Purely data.
type AlternateFunction uint8

// NoAlternate is the "no function" sentinel returned for unsupported
// pin/signal pairs.
const NoAlternate AlternateFunction = 0xFF
