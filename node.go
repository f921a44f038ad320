// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tramp

// Erased represents a type-erased value flowing through the node graph.
// Node types use Erased so that heterogeneous bind chains share one
// homogeneous evaluation pipeline. Concrete types are recovered via type
// assertions at API boundaries.
type Erased = any

// node is the sum type for deferred computation steps.
// Dispatch uses exhaustive type switches, not tags — node is a pure marker
// interface. The marker method is unexported, so the three variants below
// are the only inhabitants.
type node interface {
	node() // unexported marker method
}

// doneNode is the terminal leaf: the computation has produced a value.
type doneNode struct {
	value Erased
}

func (doneNode) node() {}

// suspendNode is a deferred branch. The thunk is invoked at most once per
// drive, strictly when the driver reaches this node.
type suspendNode struct {
	thunk func() node
}

func (*suspendNode) node() {}

// bindNode is an unflattened bind: first reduce sub, then feed its value
// to cont. The continuation is type-erased; its only contract is that it
// accepts the value sub reduces to and returns a node of the outer result
// type. sub may itself be any variant, including another bindNode — the
// re-association step in resume keeps such nesting from recursing.
type bindNode struct {
	sub  node
	cont func(Erased) node
}

func (*bindNode) node() {}
