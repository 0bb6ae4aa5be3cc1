// cmd/boardcheck/main.go
//
// Host-runnable routing check for a board pin plan: validates every desired
// connection against the target's signal definition tables, accumulates the
// allocations, and prints conflict diagnostics. Exits non-zero when the plan
// cannot be routed, so it can gate a firmware build.
package main

import (
	"os"

	"halcore-go/signal"
	"halcore-go/targets/atmega4809"
)

type want struct {
	per signal.PeripheralID
	sig signal.SignalType
	pin signal.PinID
}

// The plan under check. Edit to match the board being brought up.
var plan = []want{
	{atmega4809.USART0, signal.SignalTX, atmega4809.PA0},
	{atmega4809.USART0, signal.SignalRX, atmega4809.PA1},
	{atmega4809.TWI0, signal.SignalSDA, atmega4809.PA2},
	{atmega4809.TWI0, signal.SignalSCL, atmega4809.PA3},
	{atmega4809.SPI0, signal.SignalMOSI, atmega4809.PC0},
	{atmega4809.SPI0, signal.SignalMISO, atmega4809.PC1},
	{atmega4809.SPI0, signal.SignalSCK, atmega4809.PC2},
	{atmega4809.SPI0, signal.SignalSS, atmega4809.PC3},
}

func main() {
	var reg signal.Registry
	failed := false

	for _, w := range plan {
		def, ok := atmega4809.SignalDef(w.per, w.sig)
		if !ok {
			println("no signal definition:", w.per.Name(), w.sig.String())
			failed = true
			continue
		}
		if c := def.Validate(w.pin); !c.Valid {
			println("unroutable:", w.pin.Name(), "cannot carry", w.per.Name(), w.sig.String())
			failed = true
			continue
		}
		if reg.WouldConflict(w.pin) {
			prior, _ := reg.Allocation(w.pin)
			println("collision:", w.pin.Name(), "already carries", prior.Peripheral.Name(), prior.Signal.String())
		}
		reg = reg.Add(signal.PinAllocation{Pin: w.pin, Peripheral: w.per, Signal: w.sig})
	}

	if reg.HasConflicts() {
		pin, _ := reg.FirstConflict()
		println(reg.ConflictMessage(pin))
		println("hint:", signal.ConflictSuggestion())
		failed = true
	}

	if failed {
		println("boardcheck: FAIL")
		os.Exit(1)
	}
	println("boardcheck: OK,", reg.Size(), "signals routed")
}
