package glm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireMat3InDelta(t *testing.T, want, got Mat3d, delta float64) {
	t.Helper()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			require.InDelta(t, want[col][row], got[col][row], delta, "entry [%d][%d]", col, row)
		}
	}
}

func requireMat4InDelta[T float](t *testing.T, want, got Mat4[T], delta float64) {
	t.Helper()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			require.InDelta(t, float64(want[col][row]), float64(got[col][row]), delta, "entry [%d][%d]", col, row)
		}
	}
}

func TestMatConstruction(t *testing.T) {
	t.Run("Identity", func(t *testing.T) {
		id := IdentityMat3[float32]()
		require.Equal(t, Mat3f{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)
		require.Equal(t, DiagonalMat3[float32](1), id)
		require.Equal(t, Vec4f{0, 1, 0, 0}, IdentityMat4[float32]()[1])
	})

	t.Run("Diagonal", func(t *testing.T) {
		d := DiagonalMat4[float64](3)
		require.Equal(t, 3.0, d[0][0])
		require.Equal(t, 3.0, d[3][3])
		require.Equal(t, 0.0, d[1][0])
	})

	t.Run("FromColumns", func(t *testing.T) {
		m := Mat3FromColumns(Vec3f{1, 2, 3}, Vec3f{4, 5, 6}, Vec3f{7, 8, 9})
		require.Equal(t, Vec3f{4, 5, 6}, m[1])
		require.Equal(t, Vec3f{3, 6, 9}, m.Row(2))
	})

	t.Run("IsZero", func(t *testing.T) {
		require.True(t, Mat4f{}.IsZero())
		require.False(t, IdentityMat4[float32]().IsZero())
	})
}

func TestMatMul(t *testing.T) {
	t.Run("IdentityIsNeutral", func(t *testing.T) {
		m := Mat3f{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
		require.Equal(t, m, IdentityMat3[float32]().Mul(m))
		require.Equal(t, m, m.Mul(IdentityMat3[float32]()))
	})

	t.Run("TranslationComposition", func(t *testing.T) {
		a := TranslationMat4(Vec3d{1, 2, 3})
		b := TranslationMat4(Vec3d{10, 20, 30})
		requireMat4InDelta(t, TranslationMat4(Vec3d{11, 22, 33}), a.Mul(b), 1e-12)
	})

	t.Run("TransformAppliesColumns", func(t *testing.T) {
		// maps x to 2x, y to 3y
		m := Mat3f{{2, 0, 0}, {0, 3, 0}, {0, 0, 1}}
		require.Equal(t, Vec3f{2, 6, 5}, m.Transform(Vec3f{1, 2, 5}))
	})

	t.Run("Mat4Transform", func(t *testing.T) {
		m := TranslationMat4(Vec3f{1, 2, 3})
		require.Equal(t, Vec4f{11, 22, 33, 1}, m.Transform(Vec4f{10, 20, 30, 1}))
		// direction vectors (w == 0) are unaffected by translation
		require.Equal(t, Vec4f{10, 20, 30, 0}, m.Transform(Vec4f{10, 20, 30, 0}))
	})
}

func TestMatTranspose(t *testing.T) {
	t.Run("Involution", func(t *testing.T) {
		m3 := Mat3f{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
		require.Equal(t, m3, m3.Transpose().Transpose())

		m4 := Mat4d{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
		require.Equal(t, m4, m4.Transpose().Transpose())
	})

	t.Run("SwapsOffDiagonal", func(t *testing.T) {
		m := Mat3f{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
		tr := m.Transpose()
		for col := 0; col < 3; col++ {
			for row := 0; row < 3; row++ {
				require.Equal(t, m[col][row], tr[row][col])
			}
		}
	})
}

func TestMat3Determinant(t *testing.T) {
	require.Equal(t, float32(1), IdentityMat3[float32]().Determinant())
	require.Equal(t, 8.0, DiagonalMat3[float64](2).Determinant())
	require.Equal(t, 0.0, Mat3d{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}.Determinant())
}

func TestMat4Determinant(t *testing.T) {
	require.Equal(t, 1.0, IdentityMat4[float64]().Determinant())
	require.Equal(t, 16.0, DiagonalMat4[float64](2).Determinant())
	require.InDelta(t, 6.0, ScaleMat4(Vec3d{1, 2, 3}).Determinant(), 1e-12)
}

func TestMat3Inverse(t *testing.T) {
	t.Run("Diagonal", func(t *testing.T) {
		inv := Mat3d{{2, 0, 0}, {0, 4, 0}, {0, 0, 8}}.Inverse()
		requireMat3InDelta(t, Mat3d{{0.5, 0, 0}, {0, 0.25, 0}, {0, 0, 0.125}}, inv, 1e-12)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		m := Mat3d{{1, 0, 5}, {2, 1, 6}, {3, 4, 0}}
		requireMat3InDelta(t, IdentityMat3[float64](), m.Mul(m.Inverse()), 1e-12)
		requireMat3InDelta(t, IdentityMat3[float64](), m.Inverse().Mul(m), 1e-12)
	})
}

func TestMat4Inverse(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		m := TranslationMat4(Vec3d{1, -2, 3}).
			Mul(RotationMat4(AxisAngle(Vec3d{0, 1, 0}, 0.7))).
			Mul(ScaleMat4(Vec3d{2, 3, 4}))
		requireMat4InDelta(t, IdentityMat4[float64](), m.Mul(m.Inverse()), 1e-12)
		requireMat4InDelta(t, IdentityMat4[float64](), m.Inverse().Mul(m), 1e-12)
	})

	t.Run("TranslationInverse", func(t *testing.T) {
		inv := TranslationMat4(Vec3d{1, 2, 3}).Inverse()
		requireMat4InDelta(t, TranslationMat4(Vec3d{-1, -2, -3}), inv, 1e-12)
	})
}

func TestSingularInverseInvokesHook(t *testing.T) {
	t.Run("Mat3", func(t *testing.T) {
		calls := 0
		prev := OnBadDeterminant
		OnBadDeterminant = func() { calls++ }
		defer func() { OnBadDeterminant = prev }()

		res := Mat3f{}.Inverse()

		require.Equal(t, 1, calls)
		// no silently wrong finite result
		finite := true
		for col := 0; col < 3; col++ {
			for row := 0; row < 3; row++ {
				v := float64(res[col][row])
				if math.IsNaN(v) || math.IsInf(v, 0) {
					finite = false
				}
			}
		}
		require.False(t, finite)
	})

	t.Run("Mat4", func(t *testing.T) {
		calls := 0
		prev := OnBadDeterminant
		OnBadDeterminant = func() { calls++ }
		defer func() { OnBadDeterminant = prev }()

		res := Mat4d{}.Inverse()

		require.Equal(t, 1, calls)
		require.True(t, math.IsNaN(res[0][0]) || math.IsInf(res[0][0], 0))
	})

	t.Run("RegularMatrixDoesNotFire", func(t *testing.T) {
		calls := 0
		prev := OnBadDeterminant
		OnBadDeterminant = func() { calls++ }
		defer func() { OnBadDeterminant = prev }()

		IdentityMat4[float64]().Inverse()
		require.Equal(t, 0, calls)
	})
}
