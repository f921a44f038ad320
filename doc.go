// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tramp provides stack-safe trampolined computations in Go.
//
// The core type [Tramp] represents a deferred computation built from
// three node shapes: a completed value, a suspended thunk, and an
// unflattened bind. [Run] forces such a structure iteratively, so a chain
// of millions of sequential binds evaluates in constant stack space where
// naive recursive evaluation would overflow.
//
// # Design Philosophy
//
// tramp provides:
//   - Minimal but complete monadic primitives: [Now], [Later], [Bind], [Run]
//   - A codensity-style re-association rule that flattens left-nested
//     bind chains one O(1) step at a time, moving cost to the heap
//   - An iterative driver loop with O(1) stack usage regardless of chain
//     length
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Now]: Lift a pure value into a completed computation
//   - [Bind]: Sequence two computations
//
// Suspension:
//
//   - [Later]: Defer a computation-producing thunk
//   - [Delay]: Defer a value-producing thunk
//
// Derived operations:
//
//   - [Map]: Apply a function to the result — equivalent to Bind(m, func(a) Now(f(a)))
//   - [Then]: Sequence, discarding the first result
//   - [Before]: Sequence, keeping the first result
//   - [Join]: Flatten a nested computation
//
// Execution:
//
//   - [Run]: Drive a computation to its final value
//
// Run is the sole forcing operation; there is no partial or incremental
// observation of an in-progress computation. Construction never evaluates
// caller code: thunks and continuations run only when the driver reaches
// their nodes, each at most once per drive, in exactly the left-to-right
// order the logical bind chain implies.
//
// # Sequencing
//
//   - [Sequence]: Collect a slice of computations, preserving order
//   - [Drain]: Run a slice of computations for effects only
//   - [Traverse]: Apply an effectful function across a slice, collecting results
//   - [ForEach]: Apply an effectful function across a slice, effects only
//
// # Applicative Sugar
//
//   - [Ap]: Apply a computed function to a computed argument
//   - [Lift2], [Lift3]: Lift n-ary functions over computations
//
// # Stack Safety
//
// A left-associated chain Bind(Bind(Bind(m, f), g), h) would recurse once
// per nesting level if reduced eagerly. The evaluator instead applies the
// monad associativity law
//
//	(m >>= f) >>= g  ≡  m >>= (λx. f x >>= g)
//
// structurally at resume time: each step pushes the outer continuation
// one level inward on the heap instead of growing the call stack. The
// driver loop then consumes the flattened chain as a sequence of O(1)
// steps. Suspension via [Later] is a structural annotation, not a
// concurrency primitive — it never yields the thread.
//
// A computation built by unconditional self-suspension diverges;
// [Run] then never returns, mirroring unbounded recursion.
//
// # Error Handling
//
// The evaluator is pure: any panic raised inside a caller-supplied thunk
// or continuation propagates unchanged through [Run], aborting the drive
// at the step where it occurred. There are no retries and no recovery
// inside the package.
//
// Nil completion convention: a computation completing with a nil value
// yields the zero value of its result type.
//
// # Version Values
//
// [Version] is an immutable version identifier — ordered numeric
// components plus an unordered tag set — with structural equality and
// deterministic rendering:
//
//   - [MakeVersion]: Construct from components and tags
//   - [Version.Equal], [Version.Compare]: Structural equality and ordering
//   - [Version.String]: Textual rendering
//
// It has no coupling to the evaluator beyond being an ordinary payload
// type for the generic combinators.
//
// # Example
//
//	var fib func(n, a, b int) tramp.Tramp[int]
//	fib = func(n, a, b int) tramp.Tramp[int] {
//		if n == 0 {
//			return tramp.Now(a)
//		}
//		return tramp.Later(func() tramp.Tramp[int] {
//			return fib(n-1, b, a+b)
//		})
//	}
//
//	result := tramp.Run(fib(90, 0, 1)) // constant stack, any n
package tramp
