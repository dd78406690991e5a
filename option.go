// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

// Option represents an optional value: either Some (a value is present)
// or None (no value). The zero value of Option is None.
//
// Option has value semantics: it stores the value and a presence flag
// inline, so constructing and transforming Options does not allocate.
type Option[A any] struct {
	isSome bool
	value  A
}

// Some creates an Option containing the given value.
func Some[A any](a A) Option[A] {
	return Option[A]{isSome: true, value: a}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPtr converts a possibly-nil pointer into an Option.
// A nil pointer becomes None; otherwise the pointee is copied into Some.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// IsSome returns true if a value is present.
func (m Option[A]) IsSome() bool {
	return m.isSome
}

// IsNone returns true if no value is present.
func (m Option[A]) IsNone() bool {
	return !m.isSome
}

// Get returns the value and true, or zero and false.
func (m Option[A]) Get() (A, bool) {
	if m.isSome {
		return m.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value if present, otherwise def.
func (m Option[A]) GetOrElse(def A) A {
	if m.isSome {
		return m.value
	}
	return def
}

// OrElse returns m if a value is present, otherwise alt.
func (m Option[A]) OrElse(alt Option[A]) Option[A] {
	if m.isSome {
		return m
	}
	return alt
}

// Filter returns m if the value is present and satisfies pred, otherwise None.
func (m Option[A]) Filter(pred func(A) bool) Option[A] {
	if m.isSome && pred(m.value) {
		return m
	}
	return None[A]()
}

// IfSome calls f with the value if present.
func (m Option[A]) IfSome(f func(A)) {
	if m.isSome {
		f(m.value)
	}
}

// IfNone calls f if no value is present.
func (m Option[A]) IfNone(f func()) {
	if !m.isSome {
		f()
	}
}

// ToPtr returns a pointer to a copy of the value, or nil for None.
func (m Option[A]) ToPtr() *A {
	if !m.isSome {
		return nil
	}
	v := m.value
	return &v
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](m Option[A], onSome func(A) T, onNone func() T) T {
	if m.isSome {
		return onSome(m.value)
	}
	return onNone()
}

// MapOption applies a function to the value of a Some.
func MapOption[A, B any](m Option[A], f func(A) B) Option[B] {
	if m.isSome {
		return Some(f(m.value))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations (monadic bind).
// None short-circuits: f is not called.
func FlatMapOption[A, B any](m Option[A], f func(A) Option[B]) Option[B] {
	if m.isSome {
		return f(m.value)
	}
	return None[B]()
}

// FoldOption folds the value into an accumulator.
// For None the accumulator is returned unchanged.
func FoldOption[A, S any](m Option[A], s S, f func(S, A) S) S {
	if m.isSome {
		return f(s, m.value)
	}
	return s
}

// FlattenOption collapses a nested Option by one level.
func FlattenOption[A any](m Option[Option[A]]) Option[A] {
	if m.isSome {
		return m.value
	}
	return None[A]()
}

// ExistsOption returns true if a value is present and satisfies pred.
func ExistsOption[A any](m Option[A], pred func(A) bool) bool {
	return m.isSome && pred(m.value)
}

// ForAllOption returns true if no value is present, or the value satisfies pred.
func ForAllOption[A any](m Option[A], pred func(A) bool) bool {
	return !m.isSome || pred(m.value)
}

// ContainsOption returns true if a value is present and equals v.
func ContainsOption[A comparable](m Option[A], v A) bool {
	return m.isSome && m.value == v
}

// OptionToSeq converts an Option to a Seq of zero or one elements.
func OptionToSeq[A any](m Option[A]) Seq[A] {
	if m.isSome {
		return SeqOf(m.value)
	}
	return EmptySeq[A]()
}

// OptionToEither converts an Option to an Either, using left for None.
func OptionToEither[E, A any](m Option[A], left E) Either[E, A] {
	if m.isSome {
		return Right[E](m.value)
	}
	return Left[E, A](left)
}

// EitherToOption converts an Either to an Option, discarding the Left value.
func EitherToOption[E, A any](e Either[E, A]) Option[A] {
	if a, ok := e.GetRight(); ok {
		return Some(a)
	}
	return None[A]()
}
