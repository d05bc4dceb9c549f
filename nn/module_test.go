// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"math/rand"
	"testing"

	"github.com/born-ml/autograd/autodiff"
	"github.com/born-ml/autograd/nn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModuleInterface verifies that concrete types implement Module interface.
func TestModuleInterface(t *testing.T) {
	rng := rand.New(rand.NewSource(0))

	tests := []struct {
		name       string
		module     nn.Module
		outputs    int
		parameters int
	}{
		{"Neuron", nn.NewNeuron(4, nil, rng), 1, 5},
		{"Linear", nn.NewLinear(4, 2, nn.NewReLU(), rng), 2, 10},
		{"Sequential", nn.NewSequential(
			nn.NewLinear(4, 3, nil, rng),
			nn.NewTanh(),
			nn.NewLinear(3, 1, nn.NewSigmoid(), rng),
		), 1, 19},
		{"Identity", nn.NewIdentity(), 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape := autodiff.NewTape()
			out := tt.module.Forward(tape, nn.Constants(tape, 1, 2, 3, 4))
			require.Len(t, out, tt.outputs)
			assert.Len(t, tt.module.Parameters(), tt.parameters)
		})
	}
}
