package gm3

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/avendal/gm3/internal/assert"
)

// Component indices for the At and Set accessors.
const (
	X = 0
	Y = 1
	Z = 2
	W = 3
)

var (
	Vec3Zero  = Vec3{0, 0, 0}
	Vec3UnitX = Vec3{1, 0, 0}
	Vec3UnitY = Vec3{0, 1, 0}
	Vec3UnitZ = Vec3{0, 0, 1}
)

// Vec3 is a three component vector. The components are laid out
// contiguously as x, y, z.
type Vec3 [3]float32

func Vec3Of(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) Add(other Vec3) Vec3 {
	v[X] += other[X]
	v[Y] += other[Y]
	v[Z] += other[Z]
	return v
}

func (v Vec3) Sub(other Vec3) Vec3 {
	v[X] -= other[X]
	v[Y] -= other[Y]
	v[Z] -= other[Z]
	return v
}

// Mul scales the vector by a scalar.
func (v Vec3) Mul(scalar float32) Vec3 {
	v[X] *= scalar
	v[Y] *= scalar
	v[Z] *= scalar
	return v
}

func (v Vec3) Neg() Vec3 {
	v[X] = -v[X]
	v[Y] = -v[Y]
	v[Z] = -v[Z]
	return v
}

func (v Vec3) Dot(other Vec3) float32 {
	return v[X]*other[X] + v[Y]*other[Y] + v[Z]*other[Z]
}

// Cross returns the right handed cross product of the two vectors.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v[Y]*other[Z] - v[Z]*other[Y],
		v[Z]*other[X] - v[X]*other[Z],
		v[X]*other[Y] - v[Y]*other[X],
	}
}

// Normalized returns the vector scaled to length one. A zero length
// vector produces Inf or NaN components.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	v[X] /= length
	v[Y] /= length
	v[Z] /= length
	return v
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.LengthSqr())
}

func (v Vec3) LengthSqr() float32 {
	return v.Dot(v)
}

// At returns the component with the given index. The index must be one of
// X, Y or Z, everything else panics.
func (v Vec3) At(index int) float32 {
	assert.Index("component", index, 3)
	return v[index]
}

// Set updates the component with the given index in place.
func (v *Vec3) Set(index int, value float32) {
	assert.Index("component", index, 3)
	v[index] = value
}

// Data returns a view of the three components in x, y, z order. The slice
// aliases the vector, it stays valid only while the vector is alive.
func (v *Vec3) Data() []float32 {
	return v[:]
}

func (v Vec3) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v[X], v[Y], v[Z])
}
