// Package gm3 (stands for geometry math 3d) provides fixed-size linear
// algebra primitives for graphics and physics code.
//
// It includes a three component vector type Vec3, a four component vector
// type Vec4 for homogeneous coordinates, matching square matrix types Mat3
// and Mat4 with LU based inversion, and a Quat type to represent rotations.
//
// There is also a type named Rad to represent angle values in radian.
//
// All types are plain comparable arrays of float32 in row major order.
// Comparing two values with == compares every component exactly, with no
// epsilon. Operations that divide by a length or a pivot do not guard
// against zero and produce IEEE-754 Inf or NaN values in that case.
package gm3
