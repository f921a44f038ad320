// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Applicative combinators, all derived from Bind and Map.
// Effects run left to right in argument order.

// Ap applies a computed function to a computed argument.
func Ap[A, B any](mf Tramp[func(A) B], ma Tramp[A]) Tramp[B] {
	return Bind(mf, func(f func(A) B) Tramp[B] {
		return Map(ma, f)
	})
}

// Lift2 lifts a binary function over two computations.
func Lift2[A, B, C any](f func(A, B) C, ma Tramp[A], mb Tramp[B]) Tramp[C] {
	return Bind(ma, func(a A) Tramp[C] {
		return Map(mb, func(b B) C { return f(a, b) })
	})
}

// Lift3 lifts a ternary function over three computations.
func Lift3[A, B, C, D any](f func(A, B, C) D, ma Tramp[A], mb Tramp[B], mc Tramp[C]) Tramp[D] {
	return Bind(ma, func(a A) Tramp[D] {
		return Bind(mb, func(b B) Tramp[D] {
			return Map(mc, func(c C) D { return f(a, b, c) })
		})
	})
}
