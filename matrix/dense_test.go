// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingraph/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDenseAccessors covers Rows/Cols, Set/At/Add and bounds errors.
func TestDenseAccessors(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	require.NoError(t, m.Add(1, 2, 0.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 8.0, v)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Add(0, 3, 1), matrix.ErrIndexOutOfBounds)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 8}, row)
	row[0] = 99 // copy must not alias
	v, _ = m.At(1, 0)
	require.Zero(t, v)
	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestDenseCloneAndString ensures Clone() is deep and String() is stable.
func TestDenseCloneAndString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 1, -1)
	_ = m.Set(1, 0, 2.5)

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 42))
	v, _ := m.At(0, 1)
	require.Equal(t, -1.0, v)

	require.Equal(t, "[0, -1]\n[2.5, 0]\n", m.String())
}
