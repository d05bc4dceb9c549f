package nn

import (
	"fmt"
	"math/rand"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/pkg/errors"
)

// Neuron computes act(w·x + b) over scalar inputs.
//
// Example:
//
//	n := nn.NewNeuron(2, nn.NewSigmoid(), rng)
//	y := n.Output(tape, nn.Constants(tape, 0, 1))
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
	act     Activation
}

// NewNeuron creates a neuron with in inputs.
//
// Weights use Xavier uniform initialization with fan-out 1.
// The bias starts at zero. A nil act means Identity.
func NewNeuron(in int, act Activation, rng *rand.Rand) *Neuron {
	return newNeuron("", in, 1, act, rng)
}

func newNeuron(prefix string, in, fanOut int, act Activation, rng *rand.Rand) *Neuron {
	weights := make([]float64, in)
	for i := range weights {
		weights[i] = Xavier(in, fanOut, rng)
	}
	return newNeuronFromWeights(prefix, weights, 0, act)
}

// NewNeuronFromWeights creates a neuron with the given initial weights and bias.
func NewNeuronFromWeights(weights []float64, bias float64, act Activation) *Neuron {
	return newNeuronFromWeights("", weights, bias, act)
}

func newNeuronFromWeights(prefix string, weights []float64, bias float64, act Activation) *Neuron {
	if act == nil {
		act = NewIdentity()
	}
	n := &Neuron{
		weights: make([]*Parameter, len(weights)),
		bias:    NewParameter(prefix+"bias", bias),
		act:     act,
	}
	for i, w := range weights {
		n.weights[i] = NewParameter(fmt.Sprintf("%sweight.%d", prefix, i), w)
	}
	return n
}

// In returns the number of inputs the neuron expects.
func (n *Neuron) In() int {
	return len(n.weights)
}

// Weights returns the weight parameters.
func (n *Neuron) Weights() []*Parameter {
	return n.weights
}

// Bias returns the bias parameter.
func (n *Neuron) Bias() *Parameter {
	return n.bias
}

// Output records act(w·x + b) on t.
//
// Panics with an error wrapping autodiff.ErrArity if len(inputs) != In().
func (n *Neuron) Output(t *autodiff.Tape, inputs []autodiff.Variable) autodiff.Variable {
	if len(inputs) != len(n.weights) {
		panic(errors.Wrapf(autodiff.ErrArity, "neuron expects %d inputs, got %d", len(n.weights), len(inputs)))
	}
	sum := n.bias.Bind(t)
	if len(inputs) > 0 {
		terms := make([]autodiff.Variable, len(inputs))
		for i, x := range inputs {
			terms[i] = n.weights[i].Bind(t).Mul(x)
		}
		sum = autodiff.Sum(terms...).Add(sum)
	}
	return n.act.Activate(sum)
}

// Forward implements Module with a single output.
func (n *Neuron) Forward(t *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable {
	return []autodiff.Variable{n.Output(t, inputs)}
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Linear implements a fully connected layer of neurons sharing one activation.
//
// Performs y_j = act(Σ_i W[j][i]·x_i + b_j) for every output j.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewLinear(2, 3, nn.NewTanh(), rng)
//	outputs := layer.Forward(tape, nn.Constants(tape, 1, 0))  // 3 outputs
type Linear struct {
	inFeatures int
	neurons    []*Neuron
}

// NewLinear creates a new Linear layer.
//
// Weights are initialized using Xavier/Glorot uniform distribution.
// Biases are initialized to zeros. A nil act means Identity.
func NewLinear(inFeatures, outFeatures int, act Activation, rng *rand.Rand) *Linear {
	l := &Linear{inFeatures: inFeatures, neurons: make([]*Neuron, outFeatures)}
	for j := range l.neurons {
		l.neurons[j] = newNeuron(fmt.Sprintf("neuron.%d.", j), inFeatures, outFeatures, act, rng)
	}
	return l
}

// NewLinearFromWeights creates a Linear layer with explicit initial values.
//
// weights has one row per output, each with the same number of inputs.
func NewLinearFromWeights(weights [][]float64, biases []float64, act Activation) (*Linear, error) {
	if len(weights) == 0 {
		return nil, errors.New("linear layer needs at least one output")
	}
	if len(biases) != len(weights) {
		return nil, errors.Errorf("got %d weight rows but %d biases", len(weights), len(biases))
	}
	l := &Linear{inFeatures: len(weights[0]), neurons: make([]*Neuron, len(weights))}
	for j, row := range weights {
		if len(row) != l.inFeatures {
			return nil, errors.Errorf("weight row %d has %d inputs, want %d", j, len(row), l.inFeatures)
		}
		l.neurons[j] = newNeuronFromWeights(fmt.Sprintf("neuron.%d.", j), row, biases[j], act)
	}
	return l, nil
}

// InFeatures returns the number of inputs.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of outputs.
func (l *Linear) OutFeatures() int {
	return len(l.neurons)
}

// Neurons returns the layer's neurons, one per output.
func (l *Linear) Neurons() []*Neuron {
	return l.neurons
}

// Forward records every neuron's output on t.
func (l *Linear) Forward(t *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable {
	out := make([]autodiff.Variable, len(l.neurons))
	for j, n := range l.neurons {
		out[j] = n.Output(t, inputs)
	}
	return out
}

// Parameters returns the parameters of every neuron, in output order.
func (l *Linear) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(l.neurons)*(l.inFeatures+1))
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}
