// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ext provides algebraic container types and a generic traversal
// mechanism in Go.
//
// The containers are [Option] (an optional value), [Either] (a disjoint
// union), [Seq] (an immutable sequence), [Task] (a deferred, memoized
// computation) and [OptionAsync] (an asynchronous optional value). The
// traversal mechanism lets Sequence — turning a container of containers
// inside out, e.g. Option of Seq into Seq of Option — be written once per
// pair of container shapes and work for all element types.
//
// # Design Philosophy
//
// ext provides:
//   - Value-semantics containers whose zero values are the empty cases
//   - Errors as values (Either), with misuse surfacing as panics
//   - Type-erased typeclass dispatch with concrete types recovered by
//     assertion at the dispatch boundary
//
// # Containers
//
// Optional values:
//
//   - [Some], [None], [FromPtr]: Constructors
//   - [Option.IsSome], [Option.IsNone], [Option.Get], [Option.GetOrElse],
//     [Option.OrElse], [Option.Filter], [Option.IfSome], [Option.IfNone],
//     [Option.ToPtr]
//   - [MatchOption]: Pattern matching
//   - [MapOption], [FlatMapOption], [FoldOption], [FlattenOption]
//   - [ExistsOption], [ForAllOption], [ContainsOption]
//   - [OptionToSeq], [OptionToEither], [EitherToOption]: Bridges
//
// Disjoint unions:
//
//   - [Left], [Right]: Constructors
//   - [EitherFromResult], [EitherToResult]: Bridges to conventional
//     (value, error) pairs
//   - [Either.IsLeft], [Either.IsRight], [Either.GetLeft],
//     [Either.GetRight], [Either.GetOrElse], [Either.OrElse],
//     [Either.IfLeft], [Either.IfRight]
//   - [MatchEither]: Pattern matching
//   - [MapEither], [FlatMapEither], [MapLeftEither], [BiMapEither],
//     [SwapEither], [FoldEither]
//
// Sequences:
//
//   - [SeqOf], [EmptySeq]: Constructors
//   - [Seq.Head], [Seq.Last], [Seq.Tail], [Seq.At], [Seq.Append],
//     [Seq.Filter], [Seq.Reverse]
//   - [MapSeq], [FlatMapSeq], [FoldSeq], [ZipSeq]
//   - [ExistsSeq], [ForAllSeq], [ContainsSeq]
//
// # Deferred Computations
//
// [Task] is a deferred computation with at-most-once execution and a
// memoized result. Asynchrony rides on goroutines and channels; there is
// no scheduler.
//
//   - [TaskOf]: Already-completed Task
//   - [NewTask]: Lazy Task, runs on first Await
//   - [Go]: Eager Task backed by a new goroutine
//   - [NewCompletable]: Pending Task with a one-shot [Completer] handle
//   - [Task.Await], [Task.Resolved]
//   - [MapTask], [FlatMapTask], [ThenTask], [BothTask]
//
// Affine completion: a [Completer] may resolve its Task at most once.
// [Completer.Complete] panics on reuse; [Completer.TryComplete] reports it.
//
// # Asynchronous Optional Values
//
// [OptionAsync] is a thin facade over Task of Option. Every member
// forwards to the shared Task and Option operations, so behavior is
// uniform whether the computation is already resolved or still pending.
//
//   - [SomeAsync], [NoneAsync], [OptionAsyncOf], [GoOption],
//     [LiftOptionAsync]: Constructors
//   - [OptionAsync.Await], [OptionAsync.IsSome], [OptionAsync.IsNone],
//     [OptionAsync.GetOrElse], [OptionAsync.OrElse], [OptionAsync.Filter],
//     [OptionAsync.IfSome], [OptionAsync.IfNone], [OptionAsync.ToTask]
//   - [MatchOptionAsync], [MapOptionAsync], [FlatMapOptionAsync],
//     [FoldOptionAsync], [OptionAsyncToEither]
//
// # Typeclass Dispatch and Traversal
//
// Go lacks higher-kinded types, so container shapes are abstracted through
// type erasure: the [Applicative] dictionary operates on erased container
// representations, and typed wrappers recover concrete types at the
// boundary. [Erased] marks values crossing that boundary.
//
// One traversal loop exists per outer shape (Seq, Option, Either), written
// once against [Applicative]; one instance exists per inner shape (Option,
// Either, Seq, Task), plus a composed instance for nested shapes such as
// Task over Option. Every exported Traverse/Sequence pair is a thin typed
// wrapper over a loop and an instance:
//
//   - [TraverseSeqOption], [SequenceSeqOption]: Seq⊗Option, all-or-nothing
//   - [TraverseSeqEither], [SequenceSeqEither]: Seq⊗Either, first Left wins
//   - [TraverseSeqTask], [SequenceSeqTask]: Seq⊗Task, lazy in-order join
//   - [TraverseSeqTaskPar], [SequenceSeqTaskPar]: Parallel join,
//     input-order results
//   - [TraverseOptionSeq], [SequenceOptionSeq]: Option⊗Seq — None yields
//     the unit Seq of None, Some(s) yields s rewrapped in Some
//   - [SequenceOptionEither], [SequenceOptionTask], [SequenceEitherTask]
//   - [TraverseSeqOptionAsync], [SequenceSeqOptionAsync]: Via the composed
//     Task∘Option instance
//
// # Resource Safety
//
// Exception-safe deferred computations:
//
//   - [TryTask]: Captures panics as Left errors
//   - [BracketTask]: Acquire-release-use with guaranteed cleanup
//   - [OnErrorTask]: Run cleanup only on error
//
// # Example
//
//	lookup := func(id int) ext.OptionAsync[string] {
//		return ext.GoOption(func() ext.Option[string] {
//			if id > 0 {
//				return ext.Some(fmt.Sprintf("user-%d", id))
//			}
//			return ext.None[string]()
//		})
//	}
//
//	users := ext.TraverseSeqOptionAsync(ext.SeqOf(1, 2, 3), lookup)
//	result := users.Await()
//	// result == Some(SeqOf("user-1", "user-2", "user-3"))
package ext
