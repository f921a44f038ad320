// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Tramp is a deferred computation producing a value of type A.
// It is an immutable handle owning exactly one node; nodes are never
// mutated after construction, only consumed and replaced during a drive.
//
// A handle may be driven more than once. Each [Run] re-executes any
// captured thunks from scratch — results are not cached, so determinism
// across drives depends on the purity of caller-supplied thunks.
type Tramp[A any] struct {
	node node
}

// Now lifts a pure value into a completed computation.
func Now[A any](a A) Tramp[A] {
	return Tramp[A]{node: doneNode{value: a}}
}

// Later creates a suspended computation from a thunk producing the next
// computation. The thunk is not evaluated here; it runs at most once per
// drive, when [Run] reaches the suspension.
//
// Later is the suspension primitive that makes recursive definitions
// stack-safe: a self-referential computation written with Later unwinds
// one step at a time on the heap instead of one call frame per step.
func Later[A any](f func() Tramp[A]) Tramp[A] {
	return Tramp[A]{node: &suspendNode{thunk: func() node {
		return f().node
	}}}
}

// Delay creates a suspended computation from a value thunk.
// Delay(f) is Later of f followed by Now and inherits the same laziness
// contract: f runs at most once per drive, when the driver reaches it.
func Delay[A any](f func() A) Tramp[A] {
	return Tramp[A]{node: &suspendNode{thunk: func() node {
		return doneNode{value: f()}
	}}}
}
