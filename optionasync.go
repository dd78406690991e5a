// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

// OptionAsync represents an asynchronous optional value: a Task that
// resolves to an Option.
//
// OptionAsync is a thin facade over Task[Option[A]]. Every member forwards
// to the shared Task and Option operations, so the same semantics apply
// whether the underlying computation is already resolved ([SomeAsync],
// [NoneAsync]) or still pending ([GoOption], a wrapped completable Task).
// Transformations are lazy: nothing is awaited until the resulting value
// is itself awaited.
type OptionAsync[A any] struct {
	task Task[Option[A]]
}

// SomeAsync creates a resolved OptionAsync containing the given value.
func SomeAsync[A any](a A) OptionAsync[A] {
	return OptionAsync[A]{task: TaskOf(Some(a))}
}

// NoneAsync creates a resolved empty OptionAsync.
func NoneAsync[A any]() OptionAsync[A] {
	return OptionAsync[A]{task: TaskOf(None[A]())}
}

// OptionAsyncOf wraps a Task producing an Option.
func OptionAsyncOf[A any](t Task[Option[A]]) OptionAsync[A] {
	return OptionAsync[A]{task: t}
}

// GoOption runs f immediately on a new goroutine and returns an
// OptionAsync that joins with its result.
func GoOption[A any](f func() Option[A]) OptionAsync[A] {
	return OptionAsync[A]{task: Go(f)}
}

// LiftOptionAsync creates a lazy OptionAsync from a (value, ok) function,
// the conventional Go shape for optional results.
func LiftOptionAsync[A any](f func() (A, bool)) OptionAsync[A] {
	return OptionAsync[A]{task: NewTask(func() Option[A] {
		if a, ok := f(); ok {
			return Some(a)
		}
		return None[A]()
	})}
}

// Await blocks until the underlying computation resolves and returns
// the resulting Option.
func (m OptionAsync[A]) Await() Option[A] {
	return m.task.Await()
}

// ToTask returns the underlying Task.
func (m OptionAsync[A]) ToTask() Task[Option[A]] {
	return m.task
}

// IsSome awaits the computation and returns true if a value is present.
func (m OptionAsync[A]) IsSome() bool {
	return m.task.Await().IsSome()
}

// IsNone awaits the computation and returns true if no value is present.
func (m OptionAsync[A]) IsNone() bool {
	return m.task.Await().IsNone()
}

// GetOrElse awaits the computation and returns the value if present,
// otherwise def.
func (m OptionAsync[A]) GetOrElse(def A) A {
	return m.task.Await().GetOrElse(def)
}

// Filter returns a lazy OptionAsync holding the value only if it
// satisfies pred.
func (m OptionAsync[A]) Filter(pred func(A) bool) OptionAsync[A] {
	return OptionAsync[A]{task: MapTask(m.task, func(o Option[A]) Option[A] {
		return o.Filter(pred)
	})}
}

// OrElse returns a lazy OptionAsync that resolves to m if it holds a
// value, otherwise to alt. alt is only awaited if m resolves to None.
func (m OptionAsync[A]) OrElse(alt OptionAsync[A]) OptionAsync[A] {
	return OptionAsync[A]{task: NewTask(func() Option[A] {
		if o := m.task.Await(); o.IsSome() {
			return o
		}
		return alt.task.Await()
	})}
}

// IfSome awaits the computation and calls f with the value if present.
func (m OptionAsync[A]) IfSome(f func(A)) {
	m.task.Await().IfSome(f)
}

// IfNone awaits the computation and calls f if no value is present.
func (m OptionAsync[A]) IfNone(f func()) {
	m.task.Await().IfNone(f)
}

// MatchOptionAsync awaits the computation and pattern matches on the
// resulting Option.
func MatchOptionAsync[A, T any](m OptionAsync[A], onSome func(A) T, onNone func() T) T {
	return MatchOption(m.task.Await(), onSome, onNone)
}

// MapOptionAsync applies a function to the eventual value, if present.
func MapOptionAsync[A, B any](m OptionAsync[A], f func(A) B) OptionAsync[B] {
	return OptionAsync[B]{task: MapTask(m.task, func(o Option[A]) Option[B] {
		return MapOption(o, f)
	})}
}

// FlatMapOptionAsync sequences two asynchronous optional computations
// (monadic bind). None short-circuits: f is not called.
func FlatMapOptionAsync[A, B any](m OptionAsync[A], f func(A) OptionAsync[B]) OptionAsync[B] {
	return OptionAsync[B]{task: NewTask(func() Option[B] {
		if a, ok := m.task.Await().Get(); ok {
			return f(a).task.Await()
		}
		return None[B]()
	})}
}

// FoldOptionAsync folds the eventual value into an accumulator,
// returning a Task of the result.
func FoldOptionAsync[A, S any](m OptionAsync[A], s S, f func(S, A) S) Task[S] {
	return MapTask(m.task, func(o Option[A]) S {
		return FoldOption(o, s, f)
	})
}

// OptionAsyncToEither converts to a Task of Either, using left for None.
func OptionAsyncToEither[E, A any](m OptionAsync[A], left E) Task[Either[E, A]] {
	return MapTask(m.task, func(o Option[A]) Either[E, A] {
		return OptionToEither(o, left)
	})
}
