package autodiff_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/born-ml/autograd/internal/autodiff"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDOT(t *testing.T) {
	tape := autodiff.NewTape()
	x := tape.Var(2)
	y := tape.Var(3)
	sq := x.Mul(x)
	z := sq.Add(y)
	z.Backward()

	var buf bytes.Buffer
	require.NoError(t, autodiff.WriteDOT(&buf, z))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "strict digraph tape_") || strings.HasPrefix(out, "digraph tape_"), out)
	for _, want := range []string{"leaf_0", "leaf_1", "mul_2", "add_3", "x2", "shape=box", "grad=4"} {
		assert.Contains(t, out, want)
	}

	// Nodes unreachable from the root are left out.
	tape.Var(7)
	buf.Reset()
	require.NoError(t, autodiff.WriteDOT(&buf, sq))
	assert.Contains(t, buf.String(), "mul_2")
	assert.NotContains(t, buf.String(), "add_3")
	assert.NotContains(t, buf.String(), "leaf_1")
	assert.NotContains(t, buf.String(), "leaf_4")
}

func TestWriteDOT_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := autodiff.WriteDOT(&buf, autodiff.Variable{})
	assert.True(t, errors.Is(err, autodiff.ErrNoTape))

	tape := autodiff.NewTape()
	x := tape.Var(1)
	tape.Reset()
	err = autodiff.WriteDOT(&buf, x)
	assert.True(t, errors.Is(err, autodiff.ErrStaleVariable))
	assert.Zero(t, buf.Len())
}
