// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides scalar neural network layers and building blocks.
//
// # Overview
//
// This package contains:
//   - Layers: Neuron, Linear
//   - Activations: Identity, ReLU, Sigmoid, Tanh, SiLU
//   - Loss functions: MSELoss, BCELoss, MeanLoss
//   - Utilities: Sequential, Module interface, Parameter
//   - Initialization: Xavier
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/autograd/autodiff"
//	    "github.com/born-ml/autograd/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//
//	    // Build a small MLP
//	    model := nn.NewSequential(
//	        nn.NewLinear(2, 4, nn.NewTanh(), rng),
//	        nn.NewLinear(4, 1, nn.NewSigmoid(), rng),
//	    )
//
//	    // Forward pass
//	    tape := autodiff.NewTape()
//	    output := model.Forward(tape, nn.Constants(tape, 1, 0))
//	}
//
// # Parameters and Tapes
//
// Parameter values live outside the tape. Each forward pass binds them as
// leaves on the tape it records on, and Backward accumulates their
// gradients there. Reset the tape at the start of every iteration:
//
//	for range epochs {
//	    tape.Reset()
//	    loss := nn.MeanLoss(losses(tape))
//	    loss.Backward()
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
//
// # Loss Functions
//
// MSELoss: For regression tasks
//
//	loss := nn.NewMSELoss().Forward(prediction, target)
//
// BCELoss: For binary classification with a Sigmoid output
//
//	loss := nn.NewBCELoss().Forward(probability, label)
package nn
