package autodiff

import "github.com/pkg/errors"

// Common errors. Errors returned or raised by this package wrap one of these
// with context, so callers match them with errors.Is.
var (
	ErrDivisionByZero         = errors.New("division by zero")
	ErrCyclicGraph            = errors.New("computational graph contains a cycle")
	ErrUnsupportedOperandType = errors.New("unsupported operand type")
	ErrArity                  = errors.New("wrong number of operands")
	ErrNoTape                 = errors.New("no variable operand to take the tape from")
	ErrTapeMismatch           = errors.New("variables belong to different tapes")
	ErrStaleVariable          = errors.New("variable outlived a tape reset")
	ErrUnknownOp              = errors.New("unknown operation")
	ErrGradientMismatch       = errors.New("analytic and numerical gradients disagree")
)
