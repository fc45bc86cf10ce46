/*
Package maybe provides an option type.

A Maybe is either Just(value) or Nothing. We use it for values derived
from document attributes, where "attribute absent" has to stay
distinguishable from any present value, including zero.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is an option type. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust denotes if m carries a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// Value unwraps m, returning the value and a flag for its presence.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.just
}

// WithDefault unwraps m, substituting def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Map applies f to the value of m, if present.
func Map[T, S any](f func(T) S, m Maybe[T]) Maybe[S] {
	if m.just {
		return Just(f(m.value))
	}
	return Nothing[S]()
}

// AndThen chains m into a function which may fail itself.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if m.just {
		return f(m.value)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Match returns a Matcher for m, to be used in a switch statement:
//
//	var v int
//	switch m := x.Match(); m {
//	case m.Just(&v):
//	    …
//	case m.Nothing():
//	    …
//	}
//
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Matcher is returned by Maybe.Match.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
