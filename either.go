// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

// Either represents a disjoint union of two possibilities: Left,
// conventionally carrying an error or alternative value, or Right,
// conventionally carrying a success value.
//
// The zero value of Either is Left with the zero value of E.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// EitherFromResult converts a conventional Go (value, error) pair into an
// Either: a non-nil error becomes Left, otherwise the value becomes Right.
func EitherFromResult[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Left[error, A](err)
	}
	return Right[error](a)
}

// EitherToResult converts an Either with an error Left back into the
// conventional Go (value, error) pair.
func EitherToResult[A any](e Either[error, A]) (A, error) {
	if e.isRight {
		return e.right, nil
	}
	var zero A
	return zero, e.left
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// GetOrElse returns the Right value if present, otherwise def.
func (e Either[E, A]) GetOrElse(def A) A {
	if e.isRight {
		return e.right
	}
	return def
}

// OrElse returns e if it is Right, otherwise alt.
func (e Either[E, A]) OrElse(alt Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	return alt
}

// IfRight calls f with the Right value if present.
func (e Either[E, A]) IfRight(f func(A)) {
	if e.isRight {
		f(e.right)
	}
}

// IfLeft calls f with the Left value if present.
func (e Either[E, A]) IfLeft(f func(E)) {
	if !e.isRight {
		f(e.left)
	}
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations (monadic bind).
// Left short-circuits: f is not called.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// BiMapEither applies fl to a Left value or fr to a Right value.
func BiMapEither[E, F, A, B any](e Either[E, A], fl func(E) F, fr func(A) B) Either[F, B] {
	if e.isRight {
		return Right[F](fr(e.right))
	}
	return Left[F, B](fl(e.left))
}

// SwapEither exchanges the Left and Right positions.
func SwapEither[E, A any](e Either[E, A]) Either[A, E] {
	if e.isRight {
		return Left[A, E](e.right)
	}
	return Right[A](e.left)
}

// FoldEither folds the Right value into an accumulator.
// For Left the accumulator is returned unchanged.
func FoldEither[E, A, S any](e Either[E, A], s S, f func(S, A) S) S {
	if e.isRight {
		return f(s, e.right)
	}
	return s
}
