package autodiff

import (
	"math"

	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Backward computes the gradient of v with respect to every node it depends
// on and adds it into their Grad.
//
// Algorithm:
//  1. Seed dv/dv = 1
//  2. Visit nodes so that each one is processed only after all of its
//     consumers have pushed their contribution into it
//  3. For each operand edge, add upstream * local derivative into the operand
//  4. Leaves collect gradient and propagate nothing further
//
// Nodes that do not require a gradient (constants, detached values and
// everything computed only from them) are skipped. Calling Backward on such
// a root is a no-op.
//
// Backward panics with an error wrapping ErrCyclicGraph if the graph was
// corrupted into a cycle. Use TryBackward to get the error instead.
func (v Variable) Backward() {
	if err := v.TryBackward(); err != nil {
		panic(err)
	}
}

// TryBackward is like Backward but returns invariant violations as errors.
// When an error is returned no gradient has been modified.
func (v Variable) TryBackward() error {
	if v.tape == nil {
		return errors.Wrap(ErrNoTape, "backward on zero Variable")
	}
	if err := v.tape.check(v); err != nil {
		return err
	}
	return v.tape.backward(v.id)
}

func (t *Tape) backward(root int) error {
	if !t.nodes[root].requiresGrad {
		return nil
	}

	order, numEdges, err := t.reverseTopoOrder(root)
	if err != nil {
		return err
	}
	klog.V(2).Infof("tape %s: backward from node #%d over %d nodes and %d edges",
		t.id, root, len(order), numEdges)

	// Per-pass adjoints. Accumulating into node.grad directly would feed
	// gradients from earlier passes back into this one.
	adjoints := make([]float64, len(t.nodes))
	adjoints[root] = 1

	for _, id := range order {
		n := &t.nodes[id]
		in := n.inputs()
		if len(in) == 0 {
			continue
		}
		var a, b float64
		a = t.nodes[in[0]].value
		if len(in) == 2 {
			b = t.nodes[in[1]].value
		}
		da, db := ops.LocalGrads(n.kind, a, b, n.value)
		local := [2]float64{da, db}

		upstream := adjoints[id]
		for i, op := range in {
			if !t.nodes[op].requiresGrad {
				continue
			}
			adjoints[op] += upstream * local[i]
		}
	}

	for _, id := range order {
		n := &t.nodes[id]
		n.grad += adjoints[id]
		if t.cfg.WarnNonFinite && n.kind == ops.Leaf && !isFinite(n.grad) {
			klog.Warningf("tape %s: leaf #%d (value=%g) has non-finite gradient %g", t.id, id, n.value, n.grad)
		}
	}
	return nil
}

// reverseTopoOrder returns the nodes reachable from root through edges
// into gradient-requiring operands. Each node comes after all of its
// consumers. Repeated operand edges are counted separately.
//
// This is Kahn's algorithm over consumer counts. A node left with pending
// consumers when the queue drains can only sit on a cycle.
func (t *Tape) reverseTopoOrder(root int) (order []int, numEdges int, err error) {
	pending := make([]int, len(t.nodes))
	seen := make([]bool, len(t.nodes))
	seen[root] = true
	numReachable := 1

	stack := []int{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, op := range t.nodes[id].inputs() {
			if !t.nodes[op].requiresGrad {
				continue
			}
			pending[op]++
			numEdges++
			if !seen[op] {
				seen[op] = true
				numReachable++
				stack = append(stack, op)
			}
		}
	}
	if pending[root] != 0 {
		return nil, 0, errors.Wrapf(ErrCyclicGraph, "root node #%d is its own ancestor", root)
	}

	order = make([]int, 0, numReachable)
	queue := []int{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, op := range t.nodes[id].inputs() {
			if !t.nodes[op].requiresGrad {
				continue
			}
			pending[op]--
			if pending[op] == 0 {
				queue = append(queue, op)
			}
		}
	}
	if len(order) != numReachable {
		return nil, 0, errors.Wrapf(ErrCyclicGraph, "%d of %d nodes reachable from #%d never became ready",
			numReachable-len(order), numReachable, root)
	}
	return order, numEdges, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
