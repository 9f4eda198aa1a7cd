package gm3

import (
	"fmt"

	"github.com/avendal/gm3/internal/assert"
)

// Mat3 is a 3x3 matrix of float32 values in row major order.
//
// Memory layout (indices):
//
//	| 0 1 2 |
//	| 3 4 5 |
//	| 6 7 8 |
type Mat3 [9]float32

// IdentityMat3 returns the 3x3 identity matrix.
func IdentityMat3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul multiplies the matrix with another matrix.
func (m Mat3) Mul(other Mat3) Mat3 {
	var result Mat3

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			result[i*3+j] = m[i*3+0]*other[0*3+j] +
				m[i*3+1]*other[1*3+j] +
				m[i*3+2]*other[2*3+j]
		}
	}

	return result
}

// Transform applies the matrix to the given vector and returns the
// transformed vector.
func (m Mat3) Transform(v Vec3) Vec3 {
	var result Vec3

	for i := 0; i < 3; i++ {
		result[i] = m[i*3+0]*v[X] + m[i*3+1]*v[Y] + m[i*3+2]*v[Z]
	}

	return result
}

// MulScalar scales every element by a scalar.
func (m Mat3) MulScalar(scalar float32) Mat3 {
	for i := range m {
		m[i] *= scalar
	}
	return m
}

func (m Mat3) Add(other Mat3) Mat3 {
	for i := range m {
		m[i] += other[i]
	}
	return m
}

func (m Mat3) Sub(other Mat3) Mat3 {
	for i := range m {
		m[i] -= other[i]
	}
	return m
}

// Transposed returns the matrix with rows and columns exchanged.
func (m Mat3) Transposed() Mat3 {
	for i := 0; i < 2; i++ {
		for j := i + 1; j < 3; j++ {
			m[j*3+i], m[i*3+j] = m[i*3+j], m[j*3+i]
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
func (m Mat3) Decompose() (lower, upper Mat3) {
	for i := 0; i < 3; i++ {
		lower[i*3+i] = 1
	}

	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			upper[i*3+j] = m[i*3+j]
			for k := 0; k < i; k++ {
				upper[i*3+j] -= lower[i*3+k] * upper[k*3+j]
			}
			upper[i*3+j] /= lower[i*3+i]
		}

		for j := i + 1; j < 3; j++ {
			lower[j*3+i] = m[j*3+i]
			for k := 0; k < i; k++ {
				lower[j*3+i] -= lower[j*3+k] * upper[k*3+i]
			}
			lower[j*3+i] /= upper[i*3+i]
		}
	}

	return lower, upper
}

// Inverse returns the inverse of the matrix, computed by LU decomposition
// followed by a forward and a backward solve per column of the identity.
// Inverting a singular matrix yields Inf or NaN elements.
func (m Mat3) Inverse() Mat3 {
	lower, upper := m.Decompose()

	var result Mat3

	identity := [3]Vec3{Vec3UnitX, Vec3UnitY, Vec3UnitZ}

	for i := 0; i < 3; i++ {
		z := lower.SolveL(identity[i])
		x := upper.SolveU(z)
		for j := 0; j < 3; j++ {
			result[j*3+i] = x[j]
		}
	}

	return result
}

// SolveL solves m*x = b by forward substitution. The receiver is assumed
// to be lower triangular with a nonzero diagonal, neither is checked.
func (m Mat3) SolveL(b Vec3) Vec3 {
	var solution Vec3

	for i := 0; i < 3; i++ {
		solution[i] = b[i]
		for j := 0; j < i; j++ {
			solution[i] -= m[i*3+j] * solution[j]
		}
		solution[i] /= m[i*3+i]
	}

	return solution
}

// SolveU solves m*x = b by backward substitution. The receiver is assumed
// to be upper triangular with a nonzero diagonal, neither is checked.
func (m Mat3) SolveU(b Vec3) Vec3 {
	var solution Vec3

	for i := 2; i > -1; i-- {
		solution[i] = b[i]
		for j := 2; j > i; j-- {
			solution[i] -= m[i*3+j] * solution[j]
		}
		solution[i] /= m[i*3+i]
	}

	return solution
}

// At returns the element at the given row and column. Indices outside of
// [0, 3) panic.
func (m Mat3) At(row, column int) float32 {
	assert.Index("row", row, 3)
	assert.Index("column", column, 3)
	return m[row*3+column]
}

// Set updates the element at the given row and column in place.
func (m *Mat3) Set(row, column int, value float32) {
	assert.Index("row", row, 3)
	assert.Index("column", column, 3)
	m[row*3+column] = value
}

// Data returns a view of the nine elements in row major order. The slice
// aliases the matrix, it stays valid only while the matrix is alive.
func (m *Mat3) Data() []float32 {
	return m[:]
}

func (m Mat3) String() string {
	return fmt.Sprintf("mat3(%v %v %v; %v %v %v; %v %v %v)",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
