package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/born-ml/autograd/internal/nn"
	"github.com/born-ml/autograd/internal/optim"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearStep records loss = slope * param and runs backward, giving a
// constant gradient of slope.
func linearStep(tape *autodiff.Tape, p *nn.Parameter, slope float64) {
	tape.Reset()
	p.Bind(tape).MulScalar(slope).Backward()
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	tape := autodiff.NewTape()
	param := nn.NewParameter("x", 2)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	linearStep(tape, param, 1)
	optimizer.Step()

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0
	assert.InDelta(t, 1.9, param.Value(), 1e-12)
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	tape := autodiff.NewTape()
	param := nn.NewParameter("x", 1)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// v1 = 2, x = 1 - 0.1*2
	linearStep(tape, param, 2)
	optimizer.Step()
	optimizer.ZeroGrad()
	assert.InDelta(t, 0.8, param.Value(), 1e-12)

	// v2 = 0.9*2 + 2 = 3.8, x = 0.8 - 0.1*3.8
	linearStep(tape, param, 2)
	optimizer.Step()
	assert.InDelta(t, 0.42, param.Value(), 1e-12)
}

// TestSGD_Defaults tests the default and adjustable learning rate.
func TestSGD_Defaults(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, optim.DefaultSGDLR, optimizer.GetLR())

	optimizer.SetLR(0.25)
	assert.Equal(t, 0.25, optimizer.GetLR())

	// No parameters is a no-op.
	optimizer.Step()
	optimizer.ZeroGrad()
}

// TestSGD_UnusedParameter tests that parameters outside the graph are left alone.
func TestSGD_UnusedParameter(t *testing.T) {
	tape := autodiff.NewTape()
	used := nn.NewParameter("used", 1)
	unused := nn.NewParameter("unused", 5)
	optimizer := optim.NewSGD([]*nn.Parameter{used, unused}, optim.SGDConfig{LR: 0.5})

	linearStep(tape, used, 1)
	optimizer.Step()
	assert.InDelta(t, 0.5, used.Value(), 1e-12)
	assert.Equal(t, 5.0, unused.Value())
}

// TestOptimizer_ZeroGrad tests clearing gradients through the interface.
func TestOptimizer_ZeroGrad(t *testing.T) {
	for _, newOptimizer := range []func([]*nn.Parameter) optim.Optimizer{
		func(ps []*nn.Parameter) optim.Optimizer { return optim.NewSGD(ps, optim.SGDConfig{}) },
		func(ps []*nn.Parameter) optim.Optimizer { return optim.NewAdam(ps, optim.AdamConfig{}) },
	} {
		tape := autodiff.NewTape()
		param := nn.NewParameter("x", 3)
		optimizer := newOptimizer([]*nn.Parameter{param})

		linearStep(tape, param, 4)
		require.InDelta(t, 4.0, param.Grad(), 1e-12)

		optimizer.ZeroGrad()
		assert.Equal(t, 0.0, param.Grad())
	}
}

// TestAdam_FirstStep tests that the bias-corrected first step has size lr.
func TestAdam_FirstStep(t *testing.T) {
	tape := autodiff.NewTape()
	param := nn.NewParameter("x", 1)
	optimizer := optim.NewAdam([]*nn.Parameter{param}, optim.AdamConfig{LR: 0.1})

	linearStep(tape, param, 3)
	optimizer.Step()

	// m_hat = g, v_hat = g², so the update is lr * g / |g|.
	assert.InDelta(t, 0.9, param.Value(), 1e-6)
}

// TestAdam_Defaults tests the default hyperparameters.
func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())

	optimizer.SetLR(0.01)
	assert.Equal(t, 0.01, optimizer.GetLR())
}

// TestAdam_Quadratic tests convergence on (x - 3)².
func TestAdam_Quadratic(t *testing.T) {
	tape := autodiff.NewTape()
	param := nn.NewParameter("x", 0)
	optimizer := optim.NewAdam([]*nn.Parameter{param}, optim.AdamConfig{LR: 0.1})

	for i := 0; i < 2000; i++ {
		tape.Reset()
		diff := param.Bind(tape).SubScalar(3)
		diff.Mul(diff).Backward()
		optimizer.Step()
		optimizer.ZeroGrad()
	}
	assert.InDelta(t, 3.0, param.Value(), 5e-2)
}

// TestLinearRegression fits y = x + 1 on x = 0..31 with mean squared error.
func TestLinearRegression(t *testing.T) {
	tape := autodiff.NewTape()
	model := nn.NewNeuronFromWeights([]float64{0.128911248}, -0.423790183, nil)
	mse := nn.NewMSELoss()
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{})

	var loss autodiff.Variable
	for i := 0; i < 8000; i++ {
		tape.Reset()
		losses := make([]autodiff.Variable, 0, 32)
		for x := 0.0; x < 32; x++ {
			prediction := model.Output(tape, nn.Constants(tape, x))
			losses = append(losses, mse.Forward(prediction, x+1))
		}
		loss = nn.MeanLoss(losses)
		loss.Backward()

		optimizer.Step()
		optimizer.ZeroGrad()
	}

	assert.InDelta(t, 1.0, model.Weights()[0].Value(), 1e-3)
	assert.InDelta(t, 1.0, model.Bias().Value(), 1e-3)
	assert.Less(t, loss.Value(), 1e-5)
}

// xorNet builds the 2-3-1 sigmoid network with fixed initial weights.
func xorNet() *nn.Sequential {
	hidden := must.M1(nn.NewLinearFromWeights(
		[][]float64{
			{0.71423874, -0.2349723},
			{-0.234782, 0.21328192},
			{0.234782, 0.51328292},
		},
		[]float64{0.32478342, -0.2389934, 0.81328192},
		nn.NewSigmoid(),
	))
	output := must.M1(nn.NewLinearFromWeights(
		[][]float64{{0.41328192, -0.2389934, -0.5349832}},
		[]float64{-0.2349832},
		nn.NewSigmoid(),
	))
	return nn.NewSequential(hidden, output)
}

// TestXOR trains a small network on XOR with binary cross-entropy.
func TestXOR(t *testing.T) {
	inputs := [][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	targets := []float64{0, 1, 1, 0}

	tape := autodiff.NewTape()
	model := xorNet()
	bce := nn.NewBCELoss()
	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.5})
	require.Len(t, model.Parameters(), 13)

	for i := 0; i < 10000; i++ {
		tape.Reset()
		losses := make([]autodiff.Variable, len(inputs))
		for b, x := range inputs {
			output := model.Forward(tape, nn.Constants(tape, x...))[0]
			losses[b] = bce.Forward(output, targets[b])
		}
		nn.MeanLoss(losses).Backward()

		optimizer.Step()
		optimizer.ZeroGrad()
	}

	tape.Reset()
	for b, x := range inputs {
		output := model.Forward(tape, nn.Constants(tape, x...))[0]
		assert.InDelta(t, targets[b], output.Value(), 1e-2, "xor(%g, %g)", x[0], x[1])
		assert.False(t, math.IsNaN(output.Value()))
	}
}
