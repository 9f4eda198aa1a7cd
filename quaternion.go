package gm3

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/avendal/gm3/internal/assert"
)

// Quat is a rotation quaternion. The components are laid out contiguously
// as x, y, z, w where w is the scalar part.
type Quat [4]float32

// IdentityQuat returns the identity rotation.
func IdentityQuat() Quat {
	return Quat{0, 0, 0, 1}
}

func QuatOf(x, y, z, w float32) Quat {
	return Quat{x, y, z, w}
}

// QuatFromAxisAngle builds a quaternion rotating by the given angle around
// the given axis. The axis must already have length one, it is not
// normalized here.
func QuatFromAxisAngle(axis Vec3, angle Rad) Quat {
	sin, cos := math32.Sincos(float32(angle) / 2)

	return Quat{
		axis[X] * sin,
		axis[Y] * sin,
		axis[Z] * sin,
		cos,
	}
}

// Mul returns the Hamilton product of the two quaternions. The product
// describes the rotation by other followed by the rotation by q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		q[W]*other[X] + q[X]*other[W] + q[Y]*other[Z] - q[Z]*other[Y],
		q[W]*other[Y] - q[X]*other[Z] + q[Y]*other[W] + q[Z]*other[X],
		q[W]*other[Z] + q[X]*other[Y] - q[Y]*other[X] + q[Z]*other[W],
		q[W]*other[W] - q[X]*other[X] - q[Y]*other[Y] - q[Z]*other[Z],
	}
}

// Normalized returns the quaternion scaled to length one. A zero length
// quaternion produces Inf or NaN components.
func (q Quat) Normalized() Quat {
	length := q.Length()
	q[X] /= length
	q[Y] /= length
	q[Z] /= length
	q[W] /= length
	return q
}

func (q Quat) Length() float32 {
	return math32.Sqrt(q[X]*q[X] + q[Y]*q[Y] + q[Z]*q[Z] + q[W]*q[W])
}

// Mat4 expands the quaternion into a row major rotation matrix. The
// quaternion is assumed to already have length one.
func (q Quat) Mat4() Mat4 {
	x, y, z, w := q[X], q[Y], q[Z], q[W]

	return Mat4{
		1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y), 0,
		2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x), 0,
		2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}
}

// EulerAngles derives the rotation angles around the x, y and z axes.
// The asin argument of the y angle is clamped to [-1, 1] so that rounding
// near the gimbal lock poles does not turn into NaN.
func (q Quat) EulerAngles() (xAngle, yAngle, zAngle Rad) {
	x, y, z, w := q[X], q[Y], q[Z], q[W]

	xAngle = Rad(math32.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)))

	sinp := 2 * (w*y - z*x)
	if sinp > 1 {
		sinp = 1
	} else if sinp < -1 {
		sinp = -1
	}
	yAngle = Rad(math32.Asin(sinp))

	zAngle = Rad(math32.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z)))

	return xAngle, yAngle, zAngle
}

// At returns the component with the given index. The index must be one of
// X, Y, Z or W, everything else panics.
func (q Quat) At(index int) float32 {
	assert.Index("component", index, 4)
	return q[index]
}

// Set updates the component with the given index in place.
func (q *Quat) Set(index int, value float32) {
	assert.Index("component", index, 4)
	q[index] = value
}

// Data returns a view of the four components in x, y, z, w order. The
// slice aliases the quaternion, it stays valid only while the quaternion
// is alive.
func (q *Quat) Data() []float32 {
	return q[:]
}

func (q Quat) String() string {
	return fmt.Sprintf("quat(x=%v, y=%v, z=%v, w=%v)", q[X], q[Y], q[Z], q[W])
}
