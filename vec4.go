package glm

import (
	"math"
	"unsafe"
)

type Vec4[T numeric] [4]T

func (lhs Vec4[T]) Add(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
		lhs[3] + rhs[3],
	}
}

func (lhs Vec4[T]) Sub(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
		lhs[3] - rhs[3],
	}
}

func (lhs Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{-lhs[0], -lhs[1], -lhs[2], -lhs[3]}
}

func (lhs Vec4[T]) Mul(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
		lhs[3] * rhs[3],
	}
}

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
		lhs[3] * s,
	}
}

func (lhs Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{
		lhs[0] / s,
		lhs[1] / s,
		lhs[2] / s,
		lhs[3] / s,
	}
}

// Dot takes the SSE path for the float32 specialization where available.
// Summation order may differ from the scalar path within float rounding.
func (lhs Vec4[T]) Dot(rhs Vec4[T]) T {
	if _, ok := any(T(0)).(float32); ok {
		return T(dot4f32(
			*(*[4]float32)(unsafe.Pointer(&lhs)),
			*(*[4]float32)(unsafe.Pointer(&rhs)),
		))
	}
	return lhs[0]*rhs[0] + lhs[1]*rhs[1] + lhs[2]*rhs[2] + lhs[3]*rhs[3]
}

func (lhs Vec4[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec4[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

func (lhs Vec4[T]) Distance(rhs Vec4[T]) T {
	return lhs.Sub(rhs).Length()
}

// Normalize requires a non-zero length, this is not checked.
func (lhs Vec4[T]) Normalize() Vec4[T] {
	return lhs.DivScalar(lhs.Length())
}

func (lhs Vec4[T]) Min(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
		min(lhs[2], rhs[2]),
		min(lhs[3], rhs[3]),
	}
}

func (lhs Vec4[T]) Max(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
		max(lhs[2], rhs[2]),
		max(lhs[3], rhs[3]),
	}
}

func (lhs Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return lhs.Min(hi).Max(lo)
}

func (lhs Vec4[T]) Lerp(rhs Vec4[T], x T) Vec4[T] {
	return lhs.MulScalar(1 - x).Add(rhs.MulScalar(x))
}

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], lhs[2]}
}

func (lhs Vec4[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	w = lhs[3]
	return
}
