package gm3

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomIn(t *testing.T) {
	for range 100 {
		value := RandomIn(-2, 3)
		require.GreaterOrEqual(t, value, float32(-2))
		require.Less(t, value, float32(3))
	}
}

func TestRandomVec3(t *testing.T) {
	for range 100 {
		v := RandomVec3()
		require.LessOrEqual(t, v.LengthSqr(), float32(1))
	}
}

func TestRandomRotation(t *testing.T) {
	for range 100 {
		q := RandomRotation()
		require.InDelta(t, 1, q.Length(), 1e-5)
	}
}
