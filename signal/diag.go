package signal

import "halcore-go/x/conv"

// Diagnostic message builders. These feed configuration-time failure output,
// so they favour the append-to-buffer style over fmt: usable from TinyGo
// mains without pulling in printf machinery.

// AppendConflictMessage appends a human-readable description of the
// competition for pin: every peripheral/signal pair bound to it, in insertion
// order. With fewer than two claimants it reports the pin as not conflicted.
func (r Registry) AppendConflictMessage(buf []byte, pin PinID) []byte {
	count := r.PinCount(pin)
	buf = append(buf, "pin "...)
	buf = pin.AppendName(buf)
	if count < 2 {
		return append(buf, " is not conflicted"...)
	}
	var nb [4]byte
	buf = append(buf, " claimed "...)
	buf = append(buf, conv.Utoa(nb[:], uint64(count))...)
	buf = append(buf, " times: "...)
	first := true
	for i := 0; i < r.n; i++ {
		if r.entries[i].Pin != pin {
			continue
		}
		if !first {
			buf = append(buf, ", "...)
		}
		first = false
		buf = r.entries[i].Peripheral.AppendName(buf)
		buf = append(buf, ' ')
		buf = append(buf, r.entries[i].Signal.String()...)
	}
	return buf
}

// ConflictMessage is the string-returning convenience form for host tools
// and tests.
func (r Registry) ConflictMessage(pin PinID) string {
	return string(r.AppendConflictMessage(nil, pin))
}

// ConflictSuggestion returns generic remediation text for a pin conflict.
func ConflictSuggestion() string {
	return "move one of the competing signals to a different supported pin (see the signal definition's pin options)"
}
