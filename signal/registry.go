package signal

// PinAllocation is one committed pin/peripheral/signal binding. The alternate
// function is deliberately not stored: the allocation records the user's
// intent, the mux value is derived from the signal definition on demand.
type PinAllocation struct {
	Pin        PinID
	Peripheral PeripheralID
	Signal     SignalType
}

// MaxAllocations bounds one board configuration. Boards use tens of pins;
// the fixed capacity keeps Registry a plain value with no aliased storage.
const MaxAllocations = 64

// Registry is an append-only, insertion-ordered collection of allocations.
// It is a pure value: Add returns a grown copy and never mutates its
// receiver, so partially-built configurations remain inspectable in every
// prior state. The zero value is the canonical empty registry.
//
// Conflicts are a derived property, not an insertion error: Add accepts
// anything so that an invalid intermediate configuration can still be
// queried and diagnosed.
type Registry struct {
	n       int
	entries [MaxAllocations]PinAllocation
}

// Add returns a registry holding every prior entry plus a, in insertion
// order. It never fails and performs no conflict check. Note that a second
// binding of the same peripheral+signal to a different pin is accepted and
// is not reported by HasConflicts; only pin sharing is.
// Exceeding MaxAllocations panics, as that is a configuration bug.
func (r Registry) Add(a PinAllocation) Registry {
	if r.n >= MaxAllocations {
		panic("signal: registry full")
	}
	r.entries[r.n] = a
	r.n++
	return r
}

// Size returns the number of committed allocations.
func (r Registry) Size() int { return r.n }

// Entry returns the i-th allocation in insertion order.
func (r Registry) Entry(i int) PinAllocation { return r.entries[i] }

// IsPinAllocated reports whether any entry is bound to pin.
func (r Registry) IsPinAllocated(pin PinID) bool {
	return r.PinCount(pin) > 0
}

// IsSignalAllocated reports whether any entry matches both peripheral and
// signal.
func (r Registry) IsSignalAllocated(per PeripheralID, sig SignalType) bool {
	for i := 0; i < r.n; i++ {
		if r.entries[i].Peripheral == per && r.entries[i].Signal == sig {
			return true
		}
	}
	return false
}

// PinCount returns the multiplicity of a pin across all entries:
// 0 unused, 1 exclusively used, >= 2 conflicted.
func (r Registry) PinCount(pin PinID) int {
	n := 0
	for i := 0; i < r.n; i++ {
		if r.entries[i].Pin == pin {
			n++
		}
	}
	return n
}

// HasConflicts reports whether any pin is bound by two or more entries.
// Registries are small and evaluated at configuration time, so the quadratic
// scan is fine.
func (r Registry) HasConflicts() bool {
	_, ok := r.FirstConflict()
	return ok
}

// FirstConflict returns the first pin bound by two or more entries. Ties
// between conflicting pins break on the position of the second binding, not
// the first: with entries on pins A, B, B, A the report names B, because B's
// repeat lands before A's. The second result is false when the registry is
// conflict-free.
func (r Registry) FirstConflict() (PinID, bool) {
	for i := 1; i < r.n; i++ {
		for j := 0; j < i; j++ {
			if r.entries[j].Pin == r.entries[i].Pin {
				return r.entries[i].Pin, true
			}
		}
	}
	return NoPin, false
}

// Allocation returns the first entry bound to pin. The second result is
// false when no entry is bound to pin; callers can never mistake absence for
// a zero-valued binding.
func (r Registry) Allocation(pin PinID) (PinAllocation, bool) {
	for i := 0; i < r.n; i++ {
		if r.entries[i].Pin == pin {
			return r.entries[i], true
		}
	}
	return PinAllocation{}, false
}

// WouldConflict reports whether committing one more allocation at pin would
// raise that pin's multiplicity to two or more. It never modifies r; it is
// the predictive check used before a binding is committed.
func (r Registry) WouldConflict(pin PinID) bool {
	return r.PinCount(pin) >= 1
}
