// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

import (
	"sync"
	"sync/atomic"
)

// Task represents a deferred computation producing a value of type A.
//
// A Task created with [NewTask] is lazy: the computation runs on the first
// call to Await and its result is memoized, so subsequent Awaits are cheap
// reads. A Task created with [Go] starts immediately on its own goroutine;
// Await then blocks until the result is available. Either way, the
// computation runs at most once.
//
// Task provides no scheduler of its own. Asynchrony rides entirely on
// goroutines and channels; a Task is just a memoized join point.
type Task[A any] struct {
	state *taskState[A]
}

type taskState[A any] struct {
	once     sync.Once
	resolved atomic.Bool
	run      func() A
	value    A
	failed   bool
	panicked any
}

// TaskOf creates an already-completed Task holding the given value.
func TaskOf[A any](a A) Task[A] {
	s := &taskState[A]{value: a}
	s.resolved.Store(true)
	return Task[A]{state: s}
}

// NewTask creates a lazy Task. The computation f runs on the first Await,
// on the awaiting goroutine, and runs at most once.
func NewTask[A any](f func() A) Task[A] {
	return Task[A]{state: &taskState[A]{run: f}}
}

// Go starts f immediately on a new goroutine and returns a Task that
// joins with its result.
func Go[A any](f func() A) Task[A] {
	ch := make(chan A, 1)
	go func() {
		ch <- f()
	}()
	return NewTask(func() A {
		return <-ch
	})
}

// Await returns the Task's value, running or waiting for the underlying
// computation as needed. Await is safe to call from multiple goroutines;
// all callers observe the same value.
//
// If the computation panics, the panic value is recorded and every Await,
// including later ones, panics with that same value. A panicked Task never
// resolves and never fabricates a zero value.
func (t Task[A]) Await() A {
	s := t.state
	s.once.Do(func() {
		if s.run == nil {
			s.resolved.Store(true)
			return
		}
		defer func() {
			if r := recover(); r != nil {
				s.failed = true
				s.panicked = r
				panic(r)
			}
		}()
		s.value = s.run()
		s.run = nil
		s.resolved.Store(true)
	})
	// sync.Once marks itself done even when f panics, and publishes the
	// fields written inside f to every later caller.
	if s.failed {
		panic(s.panicked)
	}
	return s.value
}

// Resolved reports whether the Task's value is already available.
// A false result may be stale by the time it is observed.
func (t Task[A]) Resolved() bool {
	return t.state.resolved.Load()
}

// MapTask applies a pure function to the result of a Task.
// The returned Task is lazy; the source is not awaited until it is.
func MapTask[A, B any](t Task[A], f func(A) B) Task[B] {
	return NewTask(func() B {
		return f(t.Await())
	})
}

// FlatMapTask sequences two deferred computations (monadic bind).
// It awaits t, then passes the result to f and awaits the resulting Task.
func FlatMapTask[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return NewTask(func() B {
		return f(t.Await()).Await()
	})
}

// ThenTask sequences two Tasks, discarding the first result.
func ThenTask[A, B any](t Task[A], u Task[B]) Task[B] {
	return NewTask(func() B {
		t.Await()
		return u.Await()
	})
}

// BothTask joins two Tasks into a Task of their paired results.
// The inputs are awaited in order; combine with [Go] to overlap them.
func BothTask[A, B any](a Task[A], b Task[B]) Task[Pair[A, B]] {
	return NewTask(func() Pair[A, B] {
		return Pair[A, B]{Fst: a.Await(), Snd: b.Await()}
	})
}
