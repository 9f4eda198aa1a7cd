package gm3

import (
	"fmt"

	"github.com/avendal/gm3/internal/assert"
)

// Mat4 is a 4x4 matrix of float32 values in row major order.
//
// Memory layout (indices):
//
//	|  0  1  2  3 |
//	|  4  5  6  7 |
//	|  8  9 10 11 |
//	| 12 13 14 15 |
type Mat4 [16]float32

// IdentityMat4 returns the 4x4 identity matrix.
func IdentityMat4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul multiplies the matrix with another matrix.
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			result[i*4+j] = m[i*4+0]*other[0*4+j] +
				m[i*4+1]*other[1*4+j] +
				m[i*4+2]*other[2*4+j] +
				m[i*4+3]*other[3*4+j]
		}
	}

	return result
}

// Transform applies the matrix to the given vector and returns the
// transformed vector.
func (m Mat4) Transform(v Vec4) Vec4 {
	var result Vec4

	for i := 0; i < 4; i++ {
		result[i] = m[i*4+0]*v[X] + m[i*4+1]*v[Y] + m[i*4+2]*v[Z] + m[i*4+3]*v[W]
	}

	return result
}

// MulScalar scales every element by a scalar.
func (m Mat4) MulScalar(scalar float32) Mat4 {
	for i := range m {
		m[i] *= scalar
	}
	return m
}

func (m Mat4) Add(other Mat4) Mat4 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

func (m Mat4) Sub(other Mat4) Mat4 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// Transposed returns the matrix with rows and columns exchanged.
func (m Mat4) Transposed() Mat4 {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 4; j++ {
			m[j*4+i], m[i*4+j] = m[i*4+j], m[j*4+i]
		}
	}
	return m
}

// Decompose factors the matrix into a lower triangular matrix with unit
// diagonal and an upper triangular matrix such that lower.Mul(upper)
// reproduces the original matrix (Doolittle decomposition).
//
// No pivoting is performed. A zero pivot on the diagonal of upper yields
// Inf or NaN elements without any error being reported.
func (m Mat4) Decompose() (lower, upper Mat4) {
	for i := 0; i < 4; i++ {
		lower[i*4+i] = 1
	}

	for i := 0; i < 4; i++ {
		for j := i; j < 4; j++ {
			upper[i*4+j] = m[i*4+j]
			for k := 0; k < i; k++ {
				upper[i*4+j] -= lower[i*4+k] * upper[k*4+j]
			}
			upper[i*4+j] /= lower[i*4+i]
		}

		for j := i + 1; j < 4; j++ {
			lower[j*4+i] = m[j*4+i]
			for k := 0; k < i; k++ {
				lower[j*4+i] -= lower[j*4+k] * upper[k*4+i]
			}
			lower[j*4+i] /= upper[i*4+i]
		}
	}

	return lower, upper
}

// Inverse returns the inverse of the matrix, computed by LU decomposition
// followed by a forward and a backward solve per column of the identity.
// Inverting a singular matrix yields Inf or NaN elements.
func (m Mat4) Inverse() Mat4 {
	lower, upper := m.Decompose()

	var result Mat4

	identity := [4]Vec4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}

	for i := 0; i < 4; i++ {
		z := lower.SolveL(identity[i])
		x := upper.SolveU(z)
		for j := 0; j < 4; j++ {
			result[j*4+i] = x[j]
		}
	}

	return result
}

// SolveL solves m*x = b by forward substitution. The receiver is assumed
// to be lower triangular with a nonzero diagonal, neither is checked.
func (m Mat4) SolveL(b Vec4) Vec4 {
	var solution Vec4

	for i := 0; i < 4; i++ {
		solution[i] = b[i]
		for j := 0; j < i; j++ {
			solution[i] -= m[i*4+j] * solution[j]
		}
		solution[i] /= m[i*4+i]
	}

	return solution
}

// SolveU solves m*x = b by backward substitution. The receiver is assumed
// to be upper triangular with a nonzero diagonal, neither is checked.
func (m Mat4) SolveU(b Vec4) Vec4 {
	var solution Vec4

	for i := 3; i > -1; i-- {
		solution[i] = b[i]
		for j := 3; j > i; j-- {
			solution[i] -= m[i*4+j] * solution[j]
		}
		solution[i] /= m[i*4+i]
	}

	return solution
}

// Mat3 copies the top left 3x3 block.
func (m Mat4) Mat3() Mat3 {
	var result Mat3

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i*3+j] = m[i*4+j]
		}
	}

	return result
}

// At returns the element at the given row and column. Indices outside of
// [0, 4) panic.
func (m Mat4) At(row, column int) float32 {
	assert.Index("row", row, 4)
	assert.Index("column", column, 4)
	return m[row*4+column]
}

// Set updates the element at the given row and column in place.
func (m *Mat4) Set(row, column int, value float32) {
	assert.Index("row", row, 4)
	assert.Index("column", column, 4)
	m[row*4+column] = value
}

// Data returns a view of the sixteen elements in row major order. The
// slice aliases the matrix, it stays valid only while the matrix is alive.
func (m *Mat4) Data() []float32 {
	return m[:]
}

func (m Mat4) String() string {
	return fmt.Sprintf("mat4(%v %v %v %v; %v %v %v %v; %v %v %v %v; %v %v %v %v)",
		m[0], m[1], m[2], m[3],
		m[4], m[5], m[6], m[7],
		m[8], m[9], m[10], m[11],
		m[12], m[13], m[14], m[15])
}
