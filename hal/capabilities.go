// Package hal defines the capability contracts peripheral implementations
// must satisfy, and generic algorithms written against those contracts.
//
// A capability is a structural contract, not a base class: a concrete driver
// satisfies it by exposing the required operations with the required
// signatures, checked entirely at compile time (interface satisfaction and
// generic instantiation). A type missing even one operation fails to
// instantiate with a compiler diagnostic naming the missing method; nothing
// is deferred to runtime.
package hal

import (
	"halcore-go/outcome"
)

// ---- GPIO ----

type Direction uint8

const (
	DirInput Direction = iota
	DirOutput
)

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

type Drive uint8

const (
	DrivePushPull Drive = iota
	DriveOpenDrain
)

// GPIOPin is the contract for one digital pin.
type GPIOPin interface {
	SetHigh() outcome.Status
	SetLow() outcome.Status
	Toggle() outcome.Status
	Write(level bool) outcome.Status
	Read() outcome.Outcome[bool]
	SetDirection(d Direction) outcome.Status
	SetPull(p Pull) outcome.Status
	SetDrive(d Drive) outcome.Status
}

// ---- UART ----

// UART is the contract for a byte-stream serial peripheral.
// Buffered never fails; it reports bytes ready to read.
type UART interface {
	WriteByte(b byte) outcome.Status
	ReadByte() outcome.Outcome[byte]
	Buffered() int
}

// ---- SPI ----

// SPI is the contract for a full-duplex serial peripheral.
// IsBusy never fails; it reports an in-flight transfer.
type SPI interface {
	Transfer(b byte) outcome.Outcome[byte]
	Transmit(w []byte) outcome.Status
	Receive(r []byte) outcome.Status
	IsBusy() bool
}

// ---- Timer ----

type Timer interface {
	Start(periodMicros uint32) outcome.Status
	Stop() outcome.Status
	Count() outcome.Outcome[uint32]
	Running() bool
}

// ---- ADC ----

type ADC interface {
	ReadChannel(ch uint8) outcome.Outcome[uint16]
	Resolution() uint8 // bits
}

// ---- PWM ----

type PWM interface {
	SetTop(top uint16) outcome.Status
	Top() uint16
	SetDuty(channel uint8, duty uint16) outcome.Status
	Enable(channel uint8, on bool) outcome.Status
}

// ---- Orthogonal capabilities ----
// These compose with any peripheral contract via interface embedding in the
// generic constraint, e.g. interface{ UART; IRQCapable }.

type IRQCapable interface {
	EnableIRQ() outcome.Status
	DisableIRQ() outcome.Status
	ClearIRQ() outcome.Status
}

type DMACapable interface {
	EnableDMA() outcome.Status
	DisableDMA() outcome.Status
	DataRegister() uintptr
}
