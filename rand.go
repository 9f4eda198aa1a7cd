package gm3

import (
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// RandomIn returns a random value uniformly sampled from the given range,
// excluding max.
func RandomIn(min, max float32) float32 {
	return rand.Float32()*(max-min) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle.
func RandomAngle() Rad {
	return Rad(RandomIn(0, 2*math32.Pi))
}

// RandomVec3 returns a vector uniformly sampled from within the unit ball.
func RandomVec3() Vec3 {
	for {
		v := Vec3{
			RandomIn(-1, 1),
			RandomIn(-1, 1),
			RandomIn(-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomRotation returns a quaternion with a random axis and angle.
func RandomRotation() Quat {
	for {
		axis := RandomVec3()
		if axis.LengthSqr() > 1e-4 {
			return QuatFromAxisAngle(axis.Normalized(), RandomAngle())
		}
	}
}
