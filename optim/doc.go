// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training neural networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer := optim.NewAdam(
//	    model.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
//
// # Training Loop Pattern
//
//	tape := autodiff.NewTape()
//	for epoch := range numEpochs {
//	    // 1. Start a fresh graph
//	    tape.Reset()
//
//	    // 2. Forward pass
//	    output := model.Forward(tape, nn.Constants(tape, input...))
//	    loss := criterion.Forward(output[0], target)
//
//	    // 3. Backward pass
//	    loss.Backward()
//
//	    // 4. Update parameters and clear gradients
//	    optimizer.Step()
//	    optimizer.ZeroGrad()
//	}
package optim
