package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
)

// Sequential is a container module that chains multiple modules together.
//
// Each module's outputs become the next module's inputs.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 3, nil, rng),
//	    nn.NewTanh(),
//	    nn.NewLinear(3, 1, nn.NewSigmoid(), rng),
//	)
//
//	outputs := model.Forward(tape, inputs)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(t *autodiff.Tape, inputs []autodiff.Variable) []autodiff.Variable {
	output := inputs
	for _, module := range s.modules {
		output = module.Forward(t, output)
	}
	return output
}

// Parameters returns all parameters from all modules, in order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Modules returns the list of modules in this container.
func (s *Sequential) Modules() []Module {
	return s.modules
}

// Add appends a module to the end of the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}
