// Package outcome provides the success-or-error value type used by every
// fallible HAL operation. An Outcome carries either a payload or an
// errcode.Kind, costs one discriminator byte over the raw payload, and never
// allocates. There are no exceptions anywhere in this stack: callers check
// IsOK/IsErr or chain with the combinators.
package outcome

import "halcore-go/errcode"

// Outcome is either a success payload of type T or an error kind.
// The zero value is Ok with T's zero value; prefer the constructors.
type Outcome[T any] struct {
	v    T
	kind errcode.Kind
}

// Ok constructs a success outcome holding v.
func Ok[T any](v T) Outcome[T] { return Outcome[T]{v: v} }

// Err constructs a failure outcome. An OK kind is coerced to Unknown so the
// two factory paths stay disjoint.
func Err[T any](k errcode.Kind) Outcome[T] {
	if k == errcode.OK {
		k = errcode.Unknown
	}
	return Outcome[T]{kind: k}
}

func (o Outcome[T]) IsOK() bool         { return o.kind == errcode.OK }
func (o Outcome[T]) IsErr() bool        { return o.kind != errcode.OK }
func (o Outcome[T]) Kind() errcode.Kind { return o.kind }

// Value returns the payload. Calling Value on a failure outcome panics;
// callers must check IsOK first or use ValueOr/Get.
func (o Outcome[T]) Value() T {
	if o.kind != errcode.OK {
		panic("outcome: Value on " + o.kind.String())
	}
	return o.v
}

// ValueOr returns the payload on success, def otherwise. Never fails.
func (o Outcome[T]) ValueOr(def T) T {
	if o.kind != errcode.OK {
		return def
	}
	return o.v
}

// Get is the comma-ok accessor.
func (o Outcome[T]) Get() (T, bool) { return o.v, o.kind == errcode.OK }

// Map transforms the payload of a success outcome; failures pass through
// unchanged and f is not invoked.
func (o Outcome[T]) Map(f func(T) T) Outcome[T] {
	if o.kind != errcode.OK {
		return o
	}
	return Ok(f(o.v))
}

// AndThen chains a second fallible operation, invoked only on success.
func (o Outcome[T]) AndThen(f func(T) Outcome[T]) Outcome[T] {
	if o.kind != errcode.OK {
		return o
	}
	return f(o.v)
}

// OrElse substitutes a recovery outcome, invoked only on failure.
func (o Outcome[T]) OrElse(f func(errcode.Kind) Outcome[T]) Outcome[T] {
	if o.kind == errcode.OK {
		return o
	}
	return f(o.kind)
}

// Status projects the outcome to its payload-free form.
func (o Outcome[T]) Status() Status { return Status{kind: o.kind} }

// MapTo transforms the payload type of a success outcome. Go methods cannot
// introduce type parameters, hence the package-level form.
func MapTo[T, U any](o Outcome[T], f func(T) U) Outcome[U] {
	if o.kind != errcode.OK {
		return Outcome[U]{kind: o.kind}
	}
	return Ok(f(o.v))
}

// AndThenTo chains a fallible operation producing a different payload type.
func AndThenTo[T, U any](o Outcome[T], f func(T) Outcome[U]) Outcome[U] {
	if o.kind != errcode.OK {
		return Outcome[U]{kind: o.kind}
	}
	return f(o.v)
}

// ---- Zero-payload specialization ----

// Status is a pure success/failure outcome with no payload.
// The zero value is success.
type Status struct {
	kind errcode.Kind
}

// OkStatus constructs a success status.
func OkStatus() Status { return Status{} }

// ErrStatus constructs a failure status; OK coerces to Unknown as in Err.
func ErrStatus(k errcode.Kind) Status {
	if k == errcode.OK {
		k = errcode.Unknown
	}
	return Status{kind: k}
}

// StatusOf maps an error to a Status via errcode.Of.
func StatusOf(err error) Status { return Status{kind: errcode.Of(err)} }

func (s Status) IsOK() bool         { return s.kind == errcode.OK }
func (s Status) IsErr() bool        { return s.kind != errcode.OK }
func (s Status) Kind() errcode.Kind { return s.kind }

// AndThen chains a second fallible operation, invoked only on success.
func (s Status) AndThen(f func() Status) Status {
	if s.kind != errcode.OK {
		return s
	}
	return f()
}

// OrElse substitutes a recovery status, invoked only on failure.
func (s Status) OrElse(f func(errcode.Kind) Status) Status {
	if s.kind == errcode.OK {
		return s
	}
	return f(s.kind)
}
