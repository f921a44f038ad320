// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Monad operations for trampolined computations.
//
// Minimal definition: Now (unit) and Bind are necessary and sufficient.
// Map, Then, Before, and Join are derived operations kept to avoid
// intermediate node and handle allocations.

// Bind sequences two computations (monadic bind).
// The resulting computation reduces m, then feeds the value to f.
//
// Construction is O(1): one node and one closure, and no caller code
// runs here — f is applied only when [Run] reaches this node, even when
// m is already completed. Left-nesting Bind arbitrarily deep is safe;
// the driver flattens it via the associativity rewrite in resume.
func Bind[A, B any](m Tramp[A], f func(A) Tramp[B]) Tramp[B] {
	return Tramp[B]{node: &bindNode{sub: m.node, cont: func(v Erased) node {
		return f(v.(A)).node
	}}}
}

// Map applies a pure function to the result of a computation.
//
// Allocation note: Map is equivalent to Bind(m, compose(Now, f)) but
// produces the terminal node directly, skipping the intermediate handle,
// making it the preferred choice for pure transformations.
func Map[A, B any](m Tramp[A], f func(A) B) Tramp[B] {
	return Tramp[B]{node: &bindNode{sub: m.node, cont: func(v Erased) node {
		return doneNode{value: f(v.(A))}
	}}}
}

// Then sequences two computations, discarding the first result.
// Effects run left to right: m reduces fully before n starts.
//
// Allocation note: Then avoids the closure capture of a continuation
// function that would occur with Bind(m, func(_ A) { return n }).
func Then[A, B any](m Tramp[A], n Tramp[B]) Tramp[B] {
	return Tramp[B]{node: &bindNode{sub: m.node, cont: func(Erased) node {
		return n.node
	}}}
}

// Before sequences two computations, keeping the first result.
// Effects run left to right: m reduces fully, then n reduces for its
// effects only, and m's value is produced.
func Before[A, B any](m Tramp[A], n Tramp[B]) Tramp[A] {
	return Tramp[A]{node: &bindNode{sub: m.node, cont: func(v Erased) node {
		return &bindNode{sub: n.node, cont: func(Erased) node {
			return doneNode{value: v}
		}}
	}}}
}

// Join flattens a nested computation.
// Join(mm) is equivalent to Bind(mm, identity).
func Join[A any](mm Tramp[Tramp[A]]) Tramp[A] {
	return Tramp[A]{node: &bindNode{sub: mm.node, cont: func(v Erased) node {
		return v.(Tramp[A]).node
	}}}
}
