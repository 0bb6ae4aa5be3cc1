package errcode

// Kind is a stable error identifier for fallible HAL operations.
// It is a one-byte newtype, comparable, allocation-free, and implements error.
// The enumeration is closed: drivers map their native failures onto these
// kinds rather than inventing new ones.
type Kind uint8

// Canonical kinds (short, stable).
const (
	OK Kind = iota
	InvalidParameter
	NotInitialized
	AlreadyInitialized
	Timeout
	Busy
	NotSupported
	HardwareError
	Unknown // generic fallback
)

func (k Kind) String() string {
	switch k {
	case OK:
		return "ok"
	case InvalidParameter:
		return "invalid_parameter"
	case NotInitialized:
		return "not_initialized"
	case AlreadyInitialized:
		return "already_initialized"
	case Timeout:
		return "timeout"
	case Busy:
		return "busy"
	case NotSupported:
		return "not_supported"
	case HardwareError:
		return "hardware_error"
	default:
		return "unknown"
	}
}

func (k Kind) Error() string { return k.String() }

// IsOK reports whether k is the success kind.
func (k Kind) IsOK() bool { return k == OK }

// Of extracts a Kind from an error, defaulting to Unknown.
func Of(err error) Kind {
	if err == nil {
		return OK
	}
	if k, ok := err.(Kind); ok {
		return k
	}
	type kinder interface{ Kind() Kind }
	if x, ok := err.(kinder); ok {
		return x.Kind()
	}
	return Unknown
}
