// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

import "sync"

// Typeclass dispatch for traversal.
//
// Go has no higher-kinded types, so a container shape cannot be abstracted
// over directly. Instead, the traversal machinery works on type-erased
// container representations (Option[Erased], Seq[Erased], Either[Erased,
// Erased], Task[Erased]) and recovers concrete types via type assertions at
// the dispatch boundary. Each traversal loop is written once per outer
// shape against the Applicative interface; each inner shape supplies one
// Applicative instance. A Traverse/Sequence pair for two shapes is then a
// thin typed wrapper that erases, runs the shared loop, and recovers.

// Erased marks a type-erased value at the typeclass dispatch boundary.
// Concrete types are recovered via type assertions when crossing back.
type Erased = any

// Applicative is the typeclass dictionary for a container shape over
// type-erased values.
//
// Minimal definition: Pure and Map2 are necessary and sufficient; a unary
// map is derived via [apMap]. Instances must treat the contained values as
// opaque.
type Applicative interface {
	// Pure lifts a value into the container shape.
	Pure(v Erased) Erased
	// Map2 combines two containers of this shape with a binary function.
	Map2(fa, fb Erased, f func(a, b Erased) Erased) Erased
}

// apMap applies a function inside a container.
// Derived from Map2 with a unit Pure, kept as a shared helper rather than
// a third interface method.
func apMap(ap Applicative, fa Erased, f func(Erased) Erased) Erased {
	return ap.Map2(ap.Pure(Unit{}), fa, func(_, a Erased) Erased {
		return f(a)
	})
}

// optionApplicative is the Applicative instance for Option.
// None short-circuits Map2.
type optionApplicative struct{}

func (optionApplicative) Pure(v Erased) Erased {
	return Some(v)
}

func (optionApplicative) Map2(fa, fb Erased, f func(a, b Erased) Erased) Erased {
	a, ok := fa.(Option[Erased]).Get()
	if !ok {
		return None[Erased]()
	}
	b, ok := fb.(Option[Erased]).Get()
	if !ok {
		return None[Erased]()
	}
	return Some(f(a, b))
}

// eitherApplicative is the Applicative instance for Either.
// The first Left short-circuits Map2.
type eitherApplicative struct{}

func (eitherApplicative) Pure(v Erased) Erased {
	return Right[Erased](v)
}

func (eitherApplicative) Map2(fa, fb Erased, f func(a, b Erased) Erased) Erased {
	a, ok := fa.(Either[Erased, Erased]).GetRight()
	if !ok {
		return fa
	}
	b, ok := fb.(Either[Erased, Erased]).GetRight()
	if !ok {
		return fb
	}
	return Right[Erased](f(a, b))
}

// seqApplicative is the Applicative instance for Seq.
// Map2 is the cartesian combination, as for the list applicative.
type seqApplicative struct{}

func (seqApplicative) Pure(v Erased) Erased {
	return SeqOf(v)
}

func (seqApplicative) Map2(fa, fb Erased, f func(a, b Erased) Erased) Erased {
	sa := fa.(Seq[Erased])
	sb := fb.(Seq[Erased])
	var t Seq[Erased]
	for _, a := range sa {
		for _, b := range sb {
			t = append(t, f(a, b))
		}
	}
	return t
}

// taskApplicative is the Applicative instance for Task.
// Map2 is lazy and awaits its inputs in order when forced.
type taskApplicative struct{}

func (taskApplicative) Pure(v Erased) Erased {
	return TaskOf(v)
}

func (taskApplicative) Map2(fa, fb Erased, f func(a, b Erased) Erased) Erased {
	ta := fa.(Task[Erased])
	tb := fb.(Task[Erased])
	return NewTask(func() Erased {
		return f(ta.Await(), tb.Await())
	})
}

// composedApplicative nests one container shape inside another.
// The composite shape outer∘inner is itself applicative; this drives
// traversals into OptionAsync (Task∘Option) without a dedicated loop.
type composedApplicative struct {
	outer, inner Applicative
}

func (c composedApplicative) Pure(v Erased) Erased {
	return c.outer.Pure(c.inner.Pure(v))
}

func (c composedApplicative) Map2(fa, fb Erased, f func(a, b Erased) Erased) Erased {
	return c.outer.Map2(fa, fb, func(ia, ib Erased) Erased {
		return c.inner.Map2(ia, ib, f)
	})
}

// appendErased extends an erased Seq accumulator by one element.
// Named function keeps the traversal loops free of per-iteration closures.
func appendErased(s, b Erased) Erased {
	return s.(Seq[Erased]).Append(b)
}

func someErased(v Erased) Erased {
	return Some(v)
}

func rightErased(v Erased) Erased {
	return Right[Erased](v)
}

// traverseSeq is the single traversal loop shared by every Seq⊗F pair.
// It applies f to each element, yielding an erased F container, and chains
// the results with Map2, accumulating an F of Seq.
func traverseSeq(ap Applicative, xs Seq[Erased], f func(Erased) Erased) Erased {
	acc := ap.Pure(EmptySeq[Erased]())
	for _, x := range xs {
		acc = ap.Map2(acc, f(x), appendErased)
	}
	return acc
}

// traverseOption is the single traversal loop shared by every Option⊗F
// pair. None becomes Pure(None); Some(a) maps f(a) back into Some.
func traverseOption(ap Applicative, m Option[Erased], f func(Erased) Erased) Erased {
	a, ok := m.Get()
	if !ok {
		return ap.Pure(None[Erased]())
	}
	return apMap(ap, f(a), someErased)
}

// traverseEither is the single traversal loop shared by every Either⊗F
// pair. Left becomes Pure(Left); Right(a) maps f(a) back into Right.
func traverseEither(ap Applicative, e Either[Erased, Erased], f func(Erased) Erased) Erased {
	a, ok := e.GetRight()
	if !ok {
		return ap.Pure(e)
	}
	return apMap(ap, f(a), rightErased)
}

// toErased lifts a concrete value across the dispatch boundary.
func toErased[A any](a A) Erased { return a }

func eraseSeq[A any](s Seq[A]) Seq[Erased] {
	return MapSeq(s, toErased[A])
}

// recoverSeq asserts the concrete element type back out of an erased Seq.
func recoverSeq[A any](s Seq[Erased]) Seq[A] {
	return MapSeq(s, func(v Erased) A { return v.(A) })
}

func eraseOption[A any](m Option[A]) Option[Erased] {
	return MapOption(m, toErased[A])
}

func recoverOption[A any](m Option[Erased]) Option[A] {
	return MapOption(m, func(v Erased) A { return v.(A) })
}

func eraseEither[E, A any](e Either[E, A]) Either[Erased, Erased] {
	return BiMapEither(e, toErased[E], toErased[A])
}

// TraverseSeqOption applies an Option-producing function to each element.
// All results must be Some for the whole traversal to be Some; any None
// collapses the result to None. f is still applied to the remaining
// elements after a None, so effects in f are not cut short.
func TraverseSeqOption[A, B any](xs Seq[A], f func(A) Option[B]) Option[Seq[B]] {
	r := traverseSeq(optionApplicative{}, eraseSeq(xs), func(x Erased) Erased {
		return eraseOption(f(x.(A)))
	})
	s, ok := r.(Option[Erased]).Get()
	if !ok {
		return None[Seq[B]]()
	}
	return Some(recoverSeq[B](s.(Seq[Erased])))
}

// SequenceSeqOption turns a Seq of Options inside out: Some of all the
// values if every element is Some, otherwise None.
func SequenceSeqOption[A any](xs Seq[Option[A]]) Option[Seq[A]] {
	return TraverseSeqOption(xs, Identity[Option[A]])
}

// TraverseSeqEither applies an Either-producing function to each element.
// The first Left becomes the result; on success the Rights are collected.
// f is still applied to the remaining elements after a Left, so effects
// in f are not cut short.
func TraverseSeqEither[E, A, B any](xs Seq[A], f func(A) Either[E, B]) Either[E, Seq[B]] {
	r := traverseSeq(eitherApplicative{}, eraseSeq(xs), func(x Erased) Erased {
		return eraseEither(f(x.(A)))
	})
	e := r.(Either[Erased, Erased])
	a, ok := e.GetRight()
	if !ok {
		l, _ := e.GetLeft()
		return Left[E, Seq[B]](l.(E))
	}
	return Right[E](recoverSeq[B](a.(Seq[Erased])))
}

// SequenceSeqEither turns a Seq of Eithers inside out: Right of all the
// values, or the first Left.
func SequenceSeqEither[E, A any](xs Seq[Either[E, A]]) Either[E, Seq[A]] {
	return TraverseSeqEither(xs, Identity[Either[E, A]])
}

// TraverseSeqTask applies a Task-producing function to each element,
// joining into a single lazy Task of the collected results.
// The element tasks are awaited in order when the result is forced.
func TraverseSeqTask[A, B any](xs Seq[A], f func(A) Task[B]) Task[Seq[B]] {
	r := traverseSeq(taskApplicative{}, eraseSeq(xs), func(x Erased) Erased {
		return MapTask(f(x.(A)), toErased[B])
	})
	return MapTask(r.(Task[Erased]), func(v Erased) Seq[B] {
		return recoverSeq[B](v.(Seq[Erased]))
	})
}

// SequenceSeqTask joins a Seq of Tasks into a Task of a Seq.
func SequenceSeqTask[A any](xs Seq[Task[A]]) Task[Seq[A]] {
	return TraverseSeqTask(xs, Identity[Task[A]])
}

// TraverseOptionSeq applies a Seq-producing function under an Option.
// None traverses to the unit Seq containing None; Some(a) yields f(a)
// with each element rewrapped in Some.
func TraverseOptionSeq[A, B any](m Option[A], f func(A) Seq[B]) Seq[Option[B]] {
	r := traverseOption(seqApplicative{}, eraseOption(m), func(x Erased) Erased {
		return eraseSeq(f(x.(A)))
	})
	return MapSeq(r.(Seq[Erased]), func(v Erased) Option[B] {
		return recoverOption[B](v.(Option[Erased]))
	})
}

// SequenceOptionSeq turns an Option of a Seq inside out: None becomes the
// single-element Seq holding None; Some(s) becomes s with every element
// wrapped in Some.
func SequenceOptionSeq[A any](m Option[Seq[A]]) Seq[Option[A]] {
	return TraverseOptionSeq(m, Identity[Seq[A]])
}

// SequenceOptionEither turns an Option of an Either inside out.
// None becomes Right(None); Some(Left(e)) becomes Left(e).
func SequenceOptionEither[E, A any](m Option[Either[E, A]]) Either[E, Option[A]] {
	r := traverseOption(eitherApplicative{}, eraseOption(m), func(x Erased) Erased {
		return eraseEither(x.(Either[E, A]))
	})
	e := r.(Either[Erased, Erased])
	a, ok := e.GetRight()
	if !ok {
		l, _ := e.GetLeft()
		return Left[E, Option[A]](l.(E))
	}
	return Right[E](recoverOption[A](a.(Option[Erased])))
}

// SequenceOptionTask turns an Option of a Task inside out into a lazy
// Task of an Option. None resolves immediately to None.
func SequenceOptionTask[A any](m Option[Task[A]]) Task[Option[A]] {
	r := traverseOption(taskApplicative{}, eraseOption(m), func(x Erased) Erased {
		return MapTask(x.(Task[A]), toErased[A])
	})
	return MapTask(r.(Task[Erased]), func(v Erased) Option[A] {
		return recoverOption[A](v.(Option[Erased]))
	})
}

// SequenceEitherTask turns an Either of a Task inside out into a lazy
// Task of an Either. Left resolves immediately to Left.
func SequenceEitherTask[E, A any](e Either[E, Task[A]]) Task[Either[E, A]] {
	r := traverseEither(taskApplicative{}, eraseEither(MapEither(e, func(t Task[A]) Task[Erased] {
		return MapTask(t, toErased[A])
	})), Identity[Erased])
	return MapTask(r.(Task[Erased]), func(v Erased) Either[E, A] {
		ee := v.(Either[Erased, Erased])
		a, ok := ee.GetRight()
		if !ok {
			l, _ := ee.GetLeft()
			return Left[E, A](l.(E))
		}
		return Right[E](a.(A))
	})
}

// eraseOptionAsync lifts an OptionAsync into the erased Task∘Option
// representation the composed instance dispatches on.
func eraseOptionAsync[A any](m OptionAsync[A]) Erased {
	return MapTask(m.task, func(o Option[A]) Erased {
		return eraseOption(o)
	})
}

// TraverseSeqOptionAsync applies an OptionAsync-producing function to each
// element, joining into a single OptionAsync of the collected results via
// the composed Task∘Option instance. The element computations are awaited
// in order when the result is forced; any None makes the whole result None.
func TraverseSeqOptionAsync[A, B any](xs Seq[A], f func(A) OptionAsync[B]) OptionAsync[Seq[B]] {
	ap := composedApplicative{outer: taskApplicative{}, inner: optionApplicative{}}
	r := traverseSeq(ap, eraseSeq(xs), func(x Erased) Erased {
		return eraseOptionAsync(f(x.(A)))
	})
	t := MapTask(r.(Task[Erased]), func(v Erased) Option[Seq[B]] {
		s, ok := v.(Option[Erased]).Get()
		if !ok {
			return None[Seq[B]]()
		}
		return Some(recoverSeq[B](s.(Seq[Erased])))
	})
	return OptionAsyncOf(t)
}

// SequenceSeqOptionAsync joins a Seq of OptionAsyncs into an OptionAsync
// of a Seq.
func SequenceSeqOptionAsync[A any](xs Seq[OptionAsync[A]]) OptionAsync[Seq[A]] {
	return TraverseSeqOptionAsync(xs, Identity[OptionAsync[A]])
}

// TraverseSeqTaskPar is the parallel counterpart of [TraverseSeqTask]:
// every element task is awaited on its own goroutine and the results are
// collected in input order. The fan-out happens when the result is forced.
func TraverseSeqTaskPar[A, B any](xs Seq[A], f func(A) Task[B]) Task[Seq[B]] {
	return NewTask(func() Seq[B] {
		if len(xs) == 0 {
			return nil
		}
		out := make(Seq[B], len(xs))
		var wg sync.WaitGroup
		for i, x := range xs {
			t := f(x)
			wg.Add(1)
			go func() {
				defer wg.Done()
				out[i] = t.Await()
			}()
		}
		wg.Wait()
		return out
	})
}

// SequenceSeqTaskPar joins a Seq of Tasks into a Task of a Seq, awaiting
// the elements in parallel.
func SequenceSeqTaskPar[A any](xs Seq[Task[A]]) Task[Seq[A]] {
	return TraverseSeqTaskPar(xs, Identity[Task[A]])
}
