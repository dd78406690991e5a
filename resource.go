// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext

import "fmt"

// Resource safety primitives for exception-safe deferred computations.
// These provide the minimal interface for bracketed resource handling
// over Tasks, with panics captured as Left values.

// recoveredError converts a recovered panic value into an error.
func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("ext: panic: %v", r)
}

// TryTask shields a Task against panics in its computation.
// The returned Task resolves to Right on success, or Left holding the
// recovered panic as an error.
func TryTask[A any](t Task[A]) Task[Either[error, A]] {
	return NewTask(func() (result Either[error, A]) {
		defer func() {
			if r := recover(); r != nil {
				result = Left[error, A](recoveredError(r))
			}
		}()
		return Right[error](t.Await())
	})
}

// BracketTask provides exception-safe resource acquisition and release.
// This follows the bracket pattern: acquire → use → release, where release
// is guaranteed to run even if use panics.
//
// The returned Task is lazy and resolves to Either containing the result
// or the recovered error.
func BracketTask[R, A any](
	acquire Task[R],
	release func(R),
	use func(R) Task[A],
) Task[Either[error, A]] {
	return NewTask(func() Either[error, A] {
		resource := acquire.Await()
		defer release(resource)
		return TryTask(NewTask(func() A {
			return use(resource).Await()
		})).Await()
	})
}

// OnErrorTask runs cleanup only if the computation panics.
// The error is still surfaced as Left after cleanup.
func OnErrorTask[A any](body Task[A], cleanup func(error)) Task[Either[error, A]] {
	return NewTask(func() Either[error, A] {
		result := TryTask(body).Await()
		if err, ok := result.GetLeft(); ok {
			cleanup(err)
		}
		return result
	})
}
