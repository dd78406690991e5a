// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext_test

import (
	"errors"
	"strings"
	"testing"

	ext "github.com/dima1034/language-ext"
)

func TestTryTaskSuccess(t *testing.T) {
	got := ext.TryTask(ext.TaskOf(42)).Await()
	if v, ok := got.GetRight(); !ok || v != 42 {
		t.Fatalf("TryTask on success = %v; want Right(42)", got)
	}
}

func TestTryTaskCapturesPanic(t *testing.T) {
	task := ext.NewTask(func() int {
		panic("boom")
	})
	got := ext.TryTask(task).Await()
	err, ok := got.GetLeft()
	if !ok {
		t.Fatal("TryTask on panic should be Left")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("error = %v; want it to mention boom", err)
	}
}

func TestTryTaskKeepsErrorPanicValue(t *testing.T) {
	errBoom := errors.New("boom")
	task := ext.NewTask(func() int {
		panic(errBoom)
	})
	got := ext.TryTask(task).Await()
	if err, _ := got.GetLeft(); !errors.Is(err, errBoom) {
		t.Fatalf("error = %v; want the original error value", err)
	}
}

func TestTryTaskConsistentAcrossWrappers(t *testing.T) {
	// Two independent wrappers over the same failing task must both see
	// the failure; the memoized panic must not decay into a success.
	task := ext.NewTask(func() int {
		panic("boom")
	})
	first := ext.TryTask(task).Await()
	second := ext.TryTask(task).Await()
	if !first.IsLeft() || !second.IsLeft() {
		t.Fatalf("TryTask results = %v, %v; want both Left", first, second)
	}
	e1, _ := first.GetLeft()
	e2, _ := second.GetLeft()
	if !strings.Contains(e1.Error(), "boom") || !strings.Contains(e2.Error(), "boom") {
		t.Fatalf("errors = %v, %v; want both to mention boom", e1, e2)
	}
}

func TestBracketTaskReleasesOnSuccess(t *testing.T) {
	var released []string
	result := ext.BracketTask(
		ext.TaskOf("res"),
		func(r string) { released = append(released, r) },
		func(r string) ext.Task[int] { return ext.TaskOf(len(r)) },
	).Await()
	if v, ok := result.GetRight(); !ok || v != 3 {
		t.Fatalf("BracketTask = %v; want Right(3)", result)
	}
	if len(released) != 1 || released[0] != "res" {
		t.Fatalf("released = %v; want [res]", released)
	}
}

func TestBracketTaskReleasesOnPanic(t *testing.T) {
	var released bool
	result := ext.BracketTask(
		ext.TaskOf("res"),
		func(string) { released = true },
		func(string) ext.Task[int] {
			return ext.NewTask(func() int { panic("use failed") })
		},
	).Await()
	if !result.IsLeft() {
		t.Fatal("BracketTask should surface the panic as Left")
	}
	if !released {
		t.Fatal("release must run even when use panics")
	}
}

func TestBracketTaskIsLazy(t *testing.T) {
	acquired := false
	task := ext.BracketTask(
		ext.NewTask(func() string { acquired = true; return "res" }),
		func(string) {},
		func(string) ext.Task[int] { return ext.TaskOf(1) },
	)
	if acquired {
		t.Fatal("BracketTask must not acquire before Await")
	}
	task.Await()
	if !acquired {
		t.Fatal("BracketTask should acquire on Await")
	}
}

func TestOnErrorTaskRunsCleanupOnlyOnError(t *testing.T) {
	var cleanups int
	ok := ext.OnErrorTask(ext.TaskOf(1), func(error) { cleanups++ }).Await()
	if !ok.IsRight() || cleanups != 0 {
		t.Fatal("OnErrorTask must not run cleanup on success")
	}
	failing := ext.NewTask(func() int { panic("boom") })
	bad := ext.OnErrorTask(failing, func(error) { cleanups++ }).Await()
	if !bad.IsLeft() || cleanups != 1 {
		t.Fatal("OnErrorTask should run cleanup once and keep the Left")
	}
}
