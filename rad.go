package gm3

import "github.com/chewxy/math32"

type Rad float32

func (r Rad) Degrees() float32 {
	return float32(r) * (180 / math32.Pi)
}

// Radians returns the value of the angle in radians as float32.
func (r Rad) Radians() float32 {
	return float32(r)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad) Normalized() Rad {
	angle := float32(r)

	angle = math32.Mod(angle+math32.Pi, 2*math32.Pi)
	if angle < 0 {
		angle += 2 * math32.Pi
	}

	return Rad(angle - math32.Pi)
}

// DifferenceTo returns the smallest difference between two angles
// normalized to the range [-π, π)
func (r Rad) DifferenceTo(other Rad) Rad {
	return (r - other).Normalized()
}

// Cos returns the cosine of the angle.
func (r Rad) Cos() float32 {
	return math32.Cos(float32(r))
}

// Sin returns the sine of the angle.
func (r Rad) Sin() float32 {
	return math32.Sin(float32(r))
}

func DegToRad(deg float32) Rad {
	return Rad(math32.Pi / 180 * deg)
}
