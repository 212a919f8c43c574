// SPDX-License-Identifier: MPL-2.0

// Package option provides a tagged optional value. The tool's layered
// configuration depends on distinguishing "caller said nothing" from
// "caller said the empty string", so optional fields are carried as Opt
// values rather than sentinel zero values.
package option

type (
	// Opt holds either a value of type T or nothing.
	// The zero value is the absent state.
	Opt[T any] struct {
		value T
		set   bool
	}
)

// Some returns an Opt holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// None returns the absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// IsSome reports whether a value is present.
func (o Opt[T]) IsSome() bool { return o.set }

// Get returns the held value and whether one is present.
func (o Opt[T]) Get() (T, bool) { return o.value, o.set }

// GetOr returns the held value, or def when absent.
func (o Opt[T]) GetOr(def T) T {
	if o.set {
		return o.value
	}
	return def
}
