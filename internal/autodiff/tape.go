package autodiff

import (
	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// node is one scalar in the computational graph.
//
// operands always hold indices smaller than the node's own index, since a
// node can only consume variables that already exist. That keeps the graph
// acyclic by construction.
type node struct {
	kind         ops.Kind
	value        float64
	grad         float64
	operands     [2]int
	requiresGrad bool
}

// inputs returns the operand indices actually used by n.
func (n *node) inputs() []int {
	return n.operands[:n.kind.Arity()]
}

// Tape owns the nodes of a computational graph.
//
// Nodes are appended in creation order, which is also a valid topological
// order of the graph. Variables are handles into the tape. They stay valid
// until Reset is called.
//
// Usage:
//
//	tape := NewTape()
//	for step := range steps {
//	    tape.Reset()
//	    loss := model(tape)
//	    loss.Backward()
//	}
type Tape struct {
	id    uuid.UUID
	nodes []node
	gen   uint64
	cfg   Config
}

// NewTape creates an empty tape with the default configuration.
func NewTape() *Tape {
	return NewTapeWithConfig(DefaultConfig())
}

// NewTapeWithConfig creates an empty tape.
func NewTapeWithConfig(cfg Config) *Tape {
	if cfg.InitialCapacity <= 0 {
		cfg.InitialCapacity = DefaultConfig().InitialCapacity
	}
	return &Tape{
		id:    uuid.New(),
		nodes: make([]node, 0, cfg.InitialCapacity),
		cfg:   cfg,
	}
}

// ID returns the tape's unique identifier, used in logs and graph dumps.
func (t *Tape) ID() uuid.UUID {
	return t.id
}

// Len returns the number of nodes recorded on the tape.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Reset drops every node while keeping the arena's capacity.
// Variables created before the reset become stale: using them panics
// with ErrStaleVariable.
func (t *Tape) Reset() {
	t.nodes = t.nodes[:0]
	t.gen++
}

// ZeroGrad sets the gradient of every node on the tape to zero.
func (t *Tape) ZeroGrad() {
	for i := range t.nodes {
		t.nodes[i].grad = 0
	}
}

// Var records a differentiable leaf holding x.
func (t *Tape) Var(x float64) Variable {
	return t.leaf(x, true)
}

// Const records a leaf holding x that never receives a gradient.
func (t *Tape) Const(x float64) Variable {
	return t.leaf(x, false)
}

func (t *Tape) leaf(x float64, requiresGrad bool) Variable {
	t.nodes = append(t.nodes, node{
		kind:         ops.Leaf,
		value:        x,
		requiresGrad: requiresGrad,
	})
	return Variable{tape: t, id: len(t.nodes) - 1, gen: t.gen}
}

// record appends the result of applying kind to operands.
// Operands must be live variables of this tape.
func (t *Tape) record(kind ops.Kind, operands ...Variable) Variable {
	if !kind.Valid() || kind == ops.Leaf {
		panic(errors.Wrapf(ErrUnknownOp, "cannot record %s", kind))
	}
	if len(operands) != kind.Arity() {
		panic(errors.Wrapf(ErrArity, "%s takes %d operands, got %d", kind, kind.Arity(), len(operands)))
	}

	n := node{kind: kind}
	var vals [2]float64
	for i, v := range operands {
		if v.tape != t {
			panic(errors.Wrapf(ErrTapeMismatch, "operand #%d of %s", i, kind))
		}
		in := t.at(v)
		n.operands[i] = v.id
		vals[i] = in.value
		n.requiresGrad = n.requiresGrad || in.requiresGrad
	}
	n.value = ops.Forward(kind, vals[0], vals[1])

	t.nodes = append(t.nodes, n)
	return Variable{tape: t, id: len(t.nodes) - 1, gen: t.gen}
}

// check validates that v still refers to a node of t.
func (t *Tape) check(v Variable) error {
	if v.gen != t.gen || v.id < 0 || v.id >= len(t.nodes) {
		return errors.Wrapf(ErrStaleVariable, "node #%d of tape %s", v.id, t.id)
	}
	return nil
}

// at returns the node behind v, panicking if v is stale.
func (t *Tape) at(v Variable) *node {
	if err := t.check(v); err != nil {
		panic(err)
	}
	return &t.nodes[v.id]
}
