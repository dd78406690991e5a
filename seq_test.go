// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ext_test

import (
	"testing"

	ext "github.com/dima1034/language-ext"
)

func seqEqual[A comparable](a, b ext.Seq[A]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}

func TestSeqConstructors(t *testing.T) {
	s := ext.SeqOf(1, 2, 3)
	if s.Len() != 3 || s.IsEmpty() {
		t.Fatalf("SeqOf(1,2,3).Len() = %d; want 3", s.Len())
	}
	e := ext.EmptySeq[int]()
	if e.Len() != 0 || !e.IsEmpty() {
		t.Fatal("EmptySeq should be empty")
	}
	var zero ext.Seq[int]
	if !zero.IsEmpty() {
		t.Fatal("zero Seq should be empty")
	}
}

func TestSeqOfCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	s := ext.SeqOf(src...)
	src[0] = 99
	if v, _ := s.Head().Get(); v != 1 {
		t.Fatal("SeqOf must copy its input slice")
	}
}

func TestSeqHeadLastTail(t *testing.T) {
	s := ext.SeqOf(1, 2, 3)
	if v, _ := s.Head().Get(); v != 1 {
		t.Fatal("Head")
	}
	if v, _ := s.Last().Get(); v != 3 {
		t.Fatal("Last")
	}
	if !seqEqual(s.Tail(), ext.SeqOf(2, 3)) {
		t.Fatal("Tail")
	}
	e := ext.EmptySeq[int]()
	if !e.Head().IsNone() || !e.Last().IsNone() {
		t.Fatal("Head/Last of empty should be None")
	}
	if !e.Tail().IsEmpty() || !ext.SeqOf(1).Tail().IsEmpty() {
		t.Fatal("Tail of empty and singleton should be empty")
	}
}

func TestSeqAt(t *testing.T) {
	s := ext.SeqOf("a", "b")
	if v, _ := s.At(1).Get(); v != "b" {
		t.Fatal("At(1)")
	}
	if !s.At(-1).IsNone() || !s.At(2).IsNone() {
		t.Fatal("At out of range should be None")
	}
}

func TestSeqAppendDoesNotAlias(t *testing.T) {
	s := ext.SeqOf(1, 2)
	u := s.Append(3)
	v := s.Append(4)
	if !seqEqual(u, ext.SeqOf(1, 2, 3)) || !seqEqual(v, ext.SeqOf(1, 2, 4)) {
		t.Fatal("Append results must be independent")
	}
	if !seqEqual(s, ext.SeqOf(1, 2)) {
		t.Fatal("Append must not modify the receiver")
	}
}

func TestSeqFilterReverse(t *testing.T) {
	s := ext.SeqOf(1, 2, 3, 4)
	if !seqEqual(s.Filter(func(x int) bool { return x%2 == 0 }), ext.SeqOf(2, 4)) {
		t.Fatal("Filter")
	}
	if !seqEqual(s.Reverse(), ext.SeqOf(4, 3, 2, 1)) {
		t.Fatal("Reverse")
	}
	if !ext.EmptySeq[int]().Reverse().IsEmpty() {
		t.Fatal("Reverse of empty")
	}
}

func TestSeqMap(t *testing.T) {
	got := ext.MapSeq(ext.SeqOf(1, 2, 3), func(x int) int { return x * x })
	if !seqEqual(got, ext.SeqOf(1, 4, 9)) {
		t.Fatal("MapSeq")
	}
	if ext.MapSeq(ext.EmptySeq[int](), func(x int) int { return x }).Len() != 0 {
		t.Fatal("MapSeq of empty")
	}
}

func TestSeqFlatMap(t *testing.T) {
	got := ext.FlatMapSeq(ext.SeqOf(1, 2), func(x int) ext.Seq[int] {
		return ext.SeqOf(x, x*10)
	})
	if !seqEqual(got, ext.SeqOf(1, 10, 2, 20)) {
		t.Fatal("FlatMapSeq should concatenate in order")
	}
	got = ext.FlatMapSeq(ext.SeqOf(1, 2), func(x int) ext.Seq[int] {
		return ext.EmptySeq[int]()
	})
	if !got.IsEmpty() {
		t.Fatal("FlatMapSeq with empty results should be empty")
	}
}

func TestSeqFold(t *testing.T) {
	got := ext.FoldSeq(ext.SeqOf("a", "b", "c"), "", func(s, a string) string { return s + a })
	if got != "abc" {
		t.Fatalf("FoldSeq = %q; want abc", got)
	}
	if ext.FoldSeq(ext.EmptySeq[int](), 7, func(s, a int) int { return s + a }) != 7 {
		t.Fatal("FoldSeq of empty should return init")
	}
}

func TestSeqZip(t *testing.T) {
	got := ext.ZipSeq(ext.SeqOf(1, 2, 3), ext.SeqOf("a", "b"))
	if got.Len() != 2 {
		t.Fatalf("ZipSeq len = %d; want 2", got.Len())
	}
	if got[0] != ext.PairOf(1, "a") || got[1] != ext.PairOf(2, "b") {
		t.Fatal("ZipSeq pairs")
	}
}

func TestSeqPredicates(t *testing.T) {
	s := ext.SeqOf(1, 2, 3)
	even := func(x int) bool { return x%2 == 0 }
	if !ext.ExistsSeq(s, even) || ext.ExistsSeq(ext.SeqOf(1, 3), even) {
		t.Fatal("ExistsSeq")
	}
	if ext.ForAllSeq(s, even) || !ext.ForAllSeq(ext.SeqOf(2, 4), even) || !ext.ForAllSeq(ext.EmptySeq[int](), even) {
		t.Fatal("ForAllSeq: empty is vacuously true")
	}
	if !ext.ContainsSeq(s, 2) || ext.ContainsSeq(s, 9) {
		t.Fatal("ContainsSeq")
	}
}
