package autodiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/autograd/internal/autodiff/ops"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// WriteDOT writes the subgraph reachable from root in Graphviz DOT format.
//
// Edges point from each node to its operands, the direction gradients
// travel. An operand used more than once by the same node (x*x) gets a
// single edge labelled with its multiplicity.
func WriteDOT(w io.Writer, root Variable) error {
	if root.tape == nil {
		return errors.Wrap(ErrNoTape, "WriteDOT on zero Variable")
	}
	t := root.tape
	if err := t.check(root); err != nil {
		return err
	}

	g := simple.NewDirectedGraph()
	seen := map[int]bool{root.id: true}
	stack := []int{root.id}
	g.AddNode(t.dotNode(root.id))
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		counts := make(map[int]int, 2)
		for _, op := range t.nodes[id].inputs() {
			counts[op]++
		}
		for op, count := range counts {
			if op == id {
				return errors.Wrapf(ErrCyclicGraph, "node #%d is its own operand", id)
			}
			if !seen[op] {
				seen[op] = true
				stack = append(stack, op)
				g.AddNode(t.dotNode(op))
			}
			g.SetEdge(dotEdge{from: t.dotNode(id), to: t.dotNode(op), count: count})
		}
	}

	name := "tape_" + strings.ReplaceAll(t.id.String(), "-", "")
	data, err := dot.Marshal(g, name, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal graph")
	}
	if _, err = w.Write(data); err != nil {
		return errors.Wrap(err, "failed to write graph")
	}
	return nil
}

func (t *Tape) dotNode(id int) dotNode {
	n := &t.nodes[id]
	return dotNode{id: int64(id), kind: n.kind, value: n.value, grad: n.grad}
}

type dotNode struct {
	id          int64
	kind        ops.Kind
	value, grad float64
}

func (n dotNode) ID() int64 { return n.id }

// DOTID names nodes after their operation, e.g. mul_4.
func (n dotNode) DOTID() string { return fmt.Sprintf("%s_%d", n.kind, n.id) }

func (n dotNode) Attributes() []encoding.Attribute {
	label := fmt.Sprintf("%s\nvalue=%g\ngrad=%g", n.kind, n.value, n.grad)
	attrs := []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", label)}}
	if n.kind == ops.Leaf {
		attrs = append(attrs, encoding.Attribute{Key: "shape", Value: "box"})
	}
	return attrs
}

type dotEdge struct {
	from, to dotNode
	count    int
}

func (e dotEdge) From() graph.Node         { return e.from }
func (e dotEdge) To() graph.Node           { return e.to }
func (e dotEdge) ReversedEdge() graph.Edge { return dotEdge{from: e.to, to: e.from, count: e.count} }

func (e dotEdge) Attributes() []encoding.Attribute {
	if e.count < 2 {
		return nil
	}
	return []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", fmt.Sprintf("x%d", e.count))}}
}
