// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

// Unit is the informationless type: a type alias for the empty struct.
type Unit = struct{}

// Identity returns its argument unchanged.
// Named generic function produces a static function value per type
// instantiation, avoiding the heap allocation that anonymous closures incur.
func Identity[A any](a A) A { return a }

// Compose is left-to-right function composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and always returns a.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// PairOf creates a Pair from two values.
func PairOf[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}
