package nn

import (
	"github.com/born-ml/autograd/internal/autodiff"
)

// BCEEpsilon keeps the logarithms in BCELoss finite when a prediction
// saturates at 0 or 1.
const BCEEpsilon = 1e-7

// Loss compares a prediction with a target value.
type Loss interface {
	Forward(prediction autodiff.Variable, target float64) autodiff.Variable
}

// MSELoss computes the squared error of one prediction.
//
// Loss = (prediction - target)²
//
// Average a batch of losses with MeanLoss.
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward records (prediction - target)² on the prediction's tape.
func (*MSELoss) Forward(prediction autodiff.Variable, target float64) autodiff.Variable {
	diff := prediction.SubScalar(target)
	return diff.Mul(diff)
}

// BCELoss computes binary cross-entropy for a probability in (0, 1).
//
// Loss = -t·log(p + ε) - (1 - t)·log(1 - p + ε), with ε = BCEEpsilon.
//
// Pair it with a Sigmoid output.
type BCELoss struct{}

// NewBCELoss creates a new binary cross-entropy loss function.
func NewBCELoss() *BCELoss {
	return &BCELoss{}
}

// Forward records the binary cross-entropy on the prediction's tape.
func (*BCELoss) Forward(prediction autodiff.Variable, target float64) autodiff.Variable {
	positive := prediction.AddScalar(BCEEpsilon).Log().MulScalar(target)
	negative := prediction.Neg().AddScalar(1 + BCEEpsilon).Log().MulScalar(1 - target)
	return positive.Add(negative).Neg()
}

// MeanLoss averages per-sample losses into one batch loss.
//
// Panics with an error wrapping autodiff.ErrArity if losses is empty.
func MeanLoss(losses []autodiff.Variable) autodiff.Variable {
	return autodiff.Sum(losses...).DivScalar(float64(len(losses)))
}
