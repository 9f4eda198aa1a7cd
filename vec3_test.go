package gm3

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/require"
)

func TestVec3_AddNeg(t *testing.T) {
	vectors := []Vec3{
		Vec3Of(1, 2, 3),
		Vec3Of(-0.5, 4.25, -8),
		Vec3Zero,
		RandomVec3(),
	}

	for _, v := range vectors {
		require.Equal(t, Vec3Zero, v.Add(v.Neg()))
	}
}

func TestVec3_Sub(t *testing.T) {
	require.Equal(t, Vec3Of(1, 1, 1), Vec3Of(3, 4, 5).Sub(Vec3Of(2, 3, 4)))
	require.Equal(t, Vec3Zero, Vec3Of(1, 2, 3).Sub(Vec3Of(1, 2, 3)))
}

func TestVec3_Mul(t *testing.T) {
	require.Equal(t, Vec3Of(2, -4, 6), Vec3Of(1, -2, 3).Mul(2))
	require.Equal(t, Vec3Zero, Vec3Of(1, 2, 3).Mul(0))
}

func TestVec3_Dot(t *testing.T) {
	v := Vec3Of(1, 2, 3)
	w := Vec3Of(-4, 5, 0.5)

	require.Equal(t, float32(7.5), v.Dot(w))
	require.Equal(t, v.Dot(w), w.Dot(v))

	a, b := RandomVec3(), RandomVec3()
	require.Equal(t, a.Dot(b), b.Dot(a))
}

func TestVec3_Cross(t *testing.T) {
	require.Equal(t, Vec3UnitZ, Vec3UnitX.Cross(Vec3UnitY))
	require.Equal(t, Vec3UnitX, Vec3UnitY.Cross(Vec3UnitZ))
	require.Equal(t, Vec3UnitY, Vec3UnitZ.Cross(Vec3UnitX))

	v := Vec3Of(1, 2, 3)
	w := Vec3Of(-2, 0.5, 4)
	require.Equal(t, w.Cross(v).Neg(), v.Cross(w))
	require.Equal(t, Vec3Zero, v.Cross(v))
}

func TestVec3_Length(t *testing.T) {
	require.Equal(t, float32(5), Vec3Of(3, 4, 0).Length())
	require.Equal(t, float32(25), Vec3Of(3, 4, 0).LengthSqr())
	require.Equal(t, float32(0), Vec3Zero.Length())
}

func TestVec3_Normalized(t *testing.T) {
	n := Vec3Of(1, 2, -2).Normalized()
	require.InDelta(t, 1, n.Length(), 1e-6)
	require.InDelta(t, 1.0/3.0, n[X], 1e-6)

	t.Run("zero vector", func(t *testing.T) {
		n := Vec3Zero.Normalized()
		require.True(t, math32.IsNaN(n[X]))
		require.True(t, math32.IsNaN(n[Y]))
		require.True(t, math32.IsNaN(n[Z]))
	})
}

func TestVec3_AtSet(t *testing.T) {
	v := Vec3Of(1, 2, 3)
	require.Equal(t, float32(1), v.At(X))
	require.Equal(t, float32(2), v.At(Y))
	require.Equal(t, float32(3), v.At(Z))

	v.Set(Y, 5)
	require.Equal(t, Vec3Of(1, 5, 3), v)

	require.Panics(t, func() { v.At(3) })
	require.Panics(t, func() { v.At(-1) })
	require.Panics(t, func() { v.Set(3, 0) })
}

func TestVec3_Data(t *testing.T) {
	v := Vec3Of(1, 2, 3)

	data := v.Data()
	require.Equal(t, []float32{1, 2, 3}, data)

	// the slice is a view into the vector
	data[Z] = 9
	require.Equal(t, Vec3Of(1, 2, 9), v)
}
