// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

// Seq is an immutable sequence of values.
//
// Seq is backed by a slice but is treated as immutable: every operation
// returns a fresh Seq and never modifies the receiver or its backing array.
// The zero value is the empty sequence.
type Seq[A any] []A

// SeqOf creates a Seq from the given elements.
func SeqOf[A any](items ...A) Seq[A] {
	if len(items) == 0 {
		return nil
	}
	s := make(Seq[A], len(items))
	copy(s, items)
	return s
}

// EmptySeq creates an empty Seq.
func EmptySeq[A any]() Seq[A] {
	return nil
}

// Len returns the number of elements.
func (s Seq[A]) Len() int {
	return len(s)
}

// IsEmpty returns true if the sequence has no elements.
func (s Seq[A]) IsEmpty() bool {
	return len(s) == 0
}

// Head returns the first element, or None for an empty sequence.
func (s Seq[A]) Head() Option[A] {
	if len(s) == 0 {
		return None[A]()
	}
	return Some(s[0])
}

// Last returns the final element, or None for an empty sequence.
func (s Seq[A]) Last() Option[A] {
	if len(s) == 0 {
		return None[A]()
	}
	return Some(s[len(s)-1])
}

// Tail returns the sequence without its first element.
// The tail of an empty sequence is empty.
func (s Seq[A]) Tail() Seq[A] {
	if len(s) <= 1 {
		return nil
	}
	t := make(Seq[A], len(s)-1)
	copy(t, s[1:])
	return t
}

// At returns the element at index i, or None if i is out of range.
func (s Seq[A]) At(i int) Option[A] {
	if i < 0 || i >= len(s) {
		return None[A]()
	}
	return Some(s[i])
}

// Append returns a new sequence with the given elements added at the end.
// The receiver's backing array is never shared with the result.
func (s Seq[A]) Append(items ...A) Seq[A] {
	if len(items) == 0 {
		return s
	}
	t := make(Seq[A], len(s)+len(items))
	copy(t, s)
	copy(t[len(s):], items)
	return t
}

// Filter returns the elements satisfying pred, in order.
func (s Seq[A]) Filter(pred func(A) bool) Seq[A] {
	var t Seq[A]
	for _, a := range s {
		if pred(a) {
			t = append(t, a)
		}
	}
	return t
}

// Reverse returns the elements in reverse order.
func (s Seq[A]) Reverse() Seq[A] {
	if len(s) == 0 {
		return nil
	}
	t := make(Seq[A], len(s))
	for i, a := range s {
		t[len(s)-1-i] = a
	}
	return t
}

// MapSeq applies a function to each element.
func MapSeq[A, B any](s Seq[A], f func(A) B) Seq[B] {
	if len(s) == 0 {
		return nil
	}
	t := make(Seq[B], len(s))
	for i, a := range s {
		t[i] = f(a)
	}
	return t
}

// FlatMapSeq applies f to each element and concatenates the results
// (monadic bind).
func FlatMapSeq[A, B any](s Seq[A], f func(A) Seq[B]) Seq[B] {
	var t Seq[B]
	for _, a := range s {
		t = append(t, f(a)...)
	}
	return t
}

// FoldSeq folds the elements left to right into an accumulator.
func FoldSeq[A, S any](s Seq[A], init S, f func(S, A) S) S {
	acc := init
	for _, a := range s {
		acc = f(acc, a)
	}
	return acc
}

// ZipSeq pairs elements of two sequences positionally.
// The result length is the shorter of the two inputs.
func ZipSeq[A, B any](a Seq[A], b Seq[B]) Seq[Pair[A, B]] {
	n := min(len(a), len(b))
	if n == 0 {
		return nil
	}
	t := make(Seq[Pair[A, B]], n)
	for i := range n {
		t[i] = Pair[A, B]{Fst: a[i], Snd: b[i]}
	}
	return t
}

// ExistsSeq returns true if any element satisfies pred.
func ExistsSeq[A any](s Seq[A], pred func(A) bool) bool {
	for _, a := range s {
		if pred(a) {
			return true
		}
	}
	return false
}

// ForAllSeq returns true if every element satisfies pred.
// Vacuously true for the empty sequence.
func ForAllSeq[A any](s Seq[A], pred func(A) bool) bool {
	for _, a := range s {
		if !pred(a) {
			return false
		}
	}
	return true
}

// ContainsSeq returns true if any element equals v.
func ContainsSeq[A comparable](s Seq[A], v A) bool {
	for _, a := range s {
		if a == v {
			return true
		}
	}
	return false
}
