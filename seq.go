// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Sequencing combinators over slices of computations.
//
// All of these preserve input order for both effect execution and result
// collection, and all build left-nested bind chains iteratively — the
// exact shape the associativity rewrite in resume flattens, so they stay
// stack-safe for arbitrarily long inputs.

// Sequence runs each computation in input order and collects the results
// in the same order.
func Sequence[A any](ms []Tramp[A]) Tramp[[]A] {
	// The nil seed makes every drive grow its own backing array, keeping
	// result slices from different drives of the same handle independent.
	acc := Now[[]A](nil)
	for _, m := range ms {
		acc = Bind(acc, func(vs []A) Tramp[[]A] {
			return Map(m, func(a A) []A { return append(vs, a) })
		})
	}
	return acc
}

// Drain runs each computation in input order for its effects, discarding
// all results.
func Drain[A any](ms []Tramp[A]) Tramp[struct{}] {
	acc := Now(struct{}{})
	for _, m := range ms {
		acc = Then(acc, Map(m, func(_ A) struct{} { return struct{}{} }))
	}
	return acc
}

// Traverse applies an effectful function to each element in input order
// and collects the results in the same order.
//
// f is invoked lazily: the call for element i happens only after the
// computation for element i-1 has fully reduced.
func Traverse[A, B any](xs []A, f func(A) Tramp[B]) Tramp[[]B] {
	acc := Now[[]B](nil)
	for _, x := range xs {
		acc = Bind(acc, func(vs []B) Tramp[[]B] {
			return Map(f(x), func(b B) []B { return append(vs, b) })
		})
	}
	return acc
}

// ForEach applies an effectful function to each element in input order,
// discarding all results. Like [Traverse], f is invoked lazily.
func ForEach[A, B any](xs []A, f func(A) Tramp[B]) Tramp[struct{}] {
	acc := Now(struct{}{})
	for _, x := range xs {
		acc = Bind(acc, func(_ struct{}) Tramp[struct{}] {
			return Map(f(x), func(_ B) struct{} { return struct{}{} })
		})
	}
	return acc
}
