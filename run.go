// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// resume performs one reduction step on a node.
// It returns (value, nil, true) when the node reduced to a final value,
// or (nil, more, false) when work remains; invoking more performs at most
// one thunk or continuation call and yields the next node.
//
// For bindNode, resume dispatches on the shape of sub:
//
//   - doneNode: more applies the continuation to the value. The
//     continuation is never applied inside resume itself.
//   - suspendNode: more forces the inner thunk and rewraps the result in
//     a fresh bindNode carrying the same continuation.
//   - bindNode: the monad associativity law (m >>= f) >>= g ≡
//     m >>= (x -> f x >>= g) applied structurally — the outer continuation
//     is pushed one level inward and the rewritten node is resumed in
//     place. Each rewrite is O(1) and allocates one closure on the heap;
//     the loop below iterates instead of recursing, so an arbitrarily
//     deep left-nested chain costs O(1) stack.
//
// Left-to-right effect order is preserved: the rewrite changes when stack
// frames exist, never when thunks and continuations run.
func resume(n node) (Erased, func() node, bool) {
	switch cur := n.(type) {
	case doneNode:
		return cur.value, nil, true
	case *suspendNode:
		return nil, cur.thunk, false
	case *bindNode:
		for {
			switch sub := cur.sub.(type) {
			case doneNode:
				k := cur.cont
				v := sub.value
				return nil, func() node { return k(v) }, false
			case *suspendNode:
				k := cur.cont
				th := sub.thunk
				return nil, func() node {
					return &bindNode{sub: th(), cont: k}
				}, false
			case *bindNode:
				inner, outer := sub.cont, cur.cont
				cur = &bindNode{sub: sub.sub, cont: func(v Erased) node {
					return &bindNode{sub: inner(v), cont: outer}
				}}
			default:
				panic("tramp: unknown node variant under bind")
			}
		}
	default:
		panic("tramp: unknown node variant")
	}
}

// Run drives a computation to its final value.
// It is the sole forcing operation: a flat loop that repeatedly resumes
// the current node, so its own stack usage is O(1) no matter how many
// bind and suspension steps the computation contains.
//
// Run returns iff the chain of resumes eventually reaches a completed
// node; a computation built by unconditional self-suspension never
// returns. Panics raised by caller-supplied thunks or continuations
// propagate unchanged, aborting the drive at the step where they occur.
//
// Nil completion convention: a computation completing with a nil value
// yields the zero value of A. Computations whose result type is a pointer
// or interface cannot use nil as a meaningful result value.
func Run[A any](m Tramp[A]) A {
	current := m.node
	for {
		v, more, done := resume(current)
		if done {
			if v == nil {
				var zero A
				return zero
			}
			return v.(A)
		}
		current = more()
	}
}
