package gm3

import (
	"fmt"

	"github.com/avendal/gm3/internal/assert"
)

var (
	Vec4Zero = Vec4{0, 0, 0, 0}

	// Vec4Origin is the point at the origin. The w component of one marks
	// the vector as a point rather than a direction under affine transforms.
	Vec4Origin = Vec4{0, 0, 0, 1}
)

// Vec4 is a four component vector for homogeneous coordinates. The
// components are laid out contiguously as x, y, z, w.
type Vec4 [4]float32

func Vec4Of(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// Vec4From embeds a Vec3 with an explicit w component.
func Vec4From(v Vec3, w float32) Vec4 {
	return Vec4{v[X], v[Y], v[Z], w}
}

func (v Vec4) Add(other Vec4) Vec4 {
	v[X] += other[X]
	v[Y] += other[Y]
	v[Z] += other[Z]
	v[W] += other[W]
	return v
}

func (v Vec4) Sub(other Vec4) Vec4 {
	v[X] -= other[X]
	v[Y] -= other[Y]
	v[Z] -= other[Z]
	v[W] -= other[W]
	return v
}

// Mul scales the vector by a scalar.
func (v Vec4) Mul(scalar float32) Vec4 {
	v[X] *= scalar
	v[Y] *= scalar
	v[Z] *= scalar
	v[W] *= scalar
	return v
}

func (v Vec4) Neg() Vec4 {
	v[X] = -v[X]
	v[Y] = -v[Y]
	v[Z] = -v[Z]
	v[W] = -v[W]
	return v
}

func (v Vec4) Dot(other Vec4) float32 {
	return v[X]*other[X] + v[Y]*other[Y] + v[Z]*other[Z] + v[W]*other[W]
}

// Vec3 drops the w component.
func (v Vec4) Vec3() Vec3 {
	return Vec3{v[X], v[Y], v[Z]}
}

// At returns the component with the given index. The index must be one of
// X, Y, Z or W, everything else panics.
func (v Vec4) At(index int) float32 {
	assert.Index("component", index, 4)
	return v[index]
}

// Set updates the component with the given index in place.
func (v *Vec4) Set(index int, value float32) {
	assert.Index("component", index, 4)
	v[index] = value
}

// Data returns a view of the four components in x, y, z, w order. The
// slice aliases the vector, it stays valid only while the vector is alive.
func (v *Vec4) Data() []float32 {
	return v[:]
}

func (v Vec4) String() string {
	return fmt.Sprintf("vec4(x=%v, y=%v, z=%v, w=%v)", v[X], v[Y], v[Z], v[W])
}
