// Package atmega4809 carries the generated routing data for the ATmega4809
// (48-pin): package pins, peripheral instances, and the PORTMUX signal
// definition tables. Data only; consumed read-only by the signal package.
package atmega4809

import "halcore-go/signal"

// Package pins, port-major. The encoding matches signal.MakePin(port, index).
const (
	PA0 signal.PinID = iota
	PA1
	PA2
	PA3
	PA4
	PA5
	PA6
	PA7
	PB0
	PB1
	PB2
	PB3
	PB4
	PB5
	_
	_
	PC0
	PC1
	PC2
	PC3
	PC4
	PC5
	PC6
	PC7
	PD0
	PD1
	PD2
	PD3
	PD4
	PD5
	PD6
	PD7
	PE0
	PE1
	PE2
	PE3
	_
	_
	_
	_
	PF0
	PF1
	PF2
	PF3
	PF4
	PF5
	PF6
)

// Peripheral instances.
const (
	USART0 = signal.PeripheralID(uint8(signal.ClassUSART)<<4 | 0)
	USART1 = signal.PeripheralID(uint8(signal.ClassUSART)<<4 | 1)
	USART2 = signal.PeripheralID(uint8(signal.ClassUSART)<<4 | 2)
	USART3 = signal.PeripheralID(uint8(signal.ClassUSART)<<4 | 3)
	TWI0   = signal.PeripheralID(uint8(signal.ClassTWI) << 4)
	SPI0   = signal.PeripheralID(uint8(signal.ClassSPI) << 4)
	TCA0   = signal.PeripheralID(uint8(signal.ClassTimer) << 4)
	ADC0   = signal.PeripheralID(uint8(signal.ClassADC) << 4)
)
