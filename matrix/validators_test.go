// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isingraph/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, r := range rows {
		for j, v := range r {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(dense(t, [][]float64{{1, 2}})), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(dense(t, [][]float64{{1}})))
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Matrix
		tol     float64
		wantErr error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"non-square", dense(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), 0, matrix.ErrNonSquare},
		{"symmetric", dense(t, [][]float64{{0, 1}, {1, 0}}), 0, nil},
		{"within tolerance", dense(t, [][]float64{{0, 1}, {1.0005, 0}}), -1e-3, nil},
		{"asymmetric", dense(t, [][]float64{{0, 1}, {2, 0}}), 1e-9, matrix.ErrAsymmetry},
		{"nan entry", dense(t, [][]float64{{math.NaN(), 0}, {0, 0}}), 0, matrix.ErrNaNInf},
		{"nan tolerance", dense(t, [][]float64{{0}}), math.NaN(), matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(tc.m, tc.tol)
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
