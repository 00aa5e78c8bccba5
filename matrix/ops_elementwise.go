// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels needed to derive a surprisal weight basis from a
//     transition matrix: Transpose, Hadamard (T ⊙ Tᵀ) and ZeroDiagonal.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).

package matrix

import "fmt"

const (
	opTranspose    = "Transpose"
	opHadamard     = "Hadamard"
	opZeroDiagonal = "ZeroDiagonal"
	opRows         = "ToRows"
)

// Transpose returns a new matrix mᵀ. The input is not mutated.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	// Fast-path for Dense → Dense: data[i*cols + j] → res.data[j*rows + i]
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Hadamard returns the element-wise product a ⊙ b as a fresh Dense.
// Operands must share a shape; neither is mutated.
// Complexity: O(r*c).
func Hadamard(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Fast-path: both Dense, single flat loop.
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range res.data {
			res.data[idx] = da.data[idx] * db.data[idx]
		}
		return res, nil
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opHadamard, err)
			}
			res.data[i*cols+j] = av * bv
		}
	}

	return res, nil
}

// ZeroDiagonal sets every diagonal entry of the square matrix m to 0 IN PLACE.
// Callers that must preserve their input should pass a Clone.
// Complexity: O(n).
func ZeroDiagonal(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return matrixErrorf(opZeroDiagonal, err)
	}
	for i := 0; i < m.Rows(); i++ {
		if err := m.Set(i, i, 0); err != nil {
			return matrixErrorf(opZeroDiagonal, err)
		}
	}

	return nil
}

// ToRows copies m into a freshly allocated [][]float64.
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRows, err)
	}
	out := make([][]float64, m.Rows())
	var (
		v   float64
		err error
	)
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRows, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
