// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

import (
	"sync/atomic"
)

// Completer is a one-shot resolution handle for a Task created with
// [NewCompletable]. The Task can be completed at most once; subsequent
// attempts panic (Complete) or return false (TryComplete).
//
// Completer models affine resource usage: the resolution handle must not
// be duplicated, mirroring a promise that resolves exactly once.
type Completer[A any] struct {
	used atomic.Uintptr
	ch   chan A
}

// NewCompletable creates a pending Task together with its Completer.
// Await blocks until Complete or TryComplete supplies the value.
func NewCompletable[A any]() (Task[A], *Completer[A]) {
	c := &Completer[A]{ch: make(chan A, 1)}
	t := NewTask(func() A {
		return <-c.ch
	})
	return t, c
}

// Complete resolves the Task with the given value.
// Panics if the Task has already been completed.
func (c *Completer[A]) Complete(v A) {
	if c.used.Add(1) != 1 {
		panic("ext: task completed twice")
	}
	c.ch <- v
}

// TryComplete attempts to resolve the Task.
// Returns true on success, or false if already completed.
func (c *Completer[A]) TryComplete(v A) bool {
	if c.used.Add(1) != 1 {
		return false
	}
	c.ch <- v
	return true
}
