package glm

import "math"

type Vec3[T numeric] [3]T

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
	}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
	}
}

func (lhs Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-lhs[0], -lhs[1], -lhs[2]}
}

// Mul is the component wise (Hadamard) product.
func (lhs Vec3[T]) Mul(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
	}
}

func (lhs Vec3[T]) Div(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
		lhs[2] / rhs[2],
	}
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
	}
}

func (lhs Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] / s,
		lhs[1] / s,
		lhs[2] / s,
	}
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return lhs[0]*rhs[0] + lhs[1]*rhs[1] + lhs[2]*rhs[2]
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[1]*rhs[2] - lhs[2]*rhs[1],
		lhs[2]*rhs[0] - lhs[0]*rhs[2],
		lhs[0]*rhs[1] - lhs[1]*rhs[0],
	}
}

func (lhs Vec3[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec3[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

func (lhs Vec3[T]) Distance(rhs Vec3[T]) T {
	return lhs.Sub(rhs).Length()
}

// Normalize requires a non-zero length, this is not checked.
func (lhs Vec3[T]) Normalize() Vec3[T] {
	return lhs.DivScalar(lhs.Length())
}

func (lhs Vec3[T]) Min(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
		min(lhs[2], rhs[2]),
	}
}

func (lhs Vec3[T]) Max(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
		max(lhs[2], rhs[2]),
	}
}

func (lhs Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return lhs.Min(hi).Max(lo)
}

func (lhs Vec3[T]) Lerp(rhs Vec3[T], x T) Vec3[T] {
	return lhs.MulScalar(1 - x).Add(rhs.MulScalar(x))
}

func (lhs Vec3[T]) LessThan(rhs Vec3[T]) Vec3b {
	return Vec3b{lhs[0] < rhs[0], lhs[1] < rhs[1], lhs[2] < rhs[2]}
}

func (lhs Vec3[T]) LessThanEqual(rhs Vec3[T]) Vec3b {
	return Vec3b{lhs[0] <= rhs[0], lhs[1] <= rhs[1], lhs[2] <= rhs[2]}
}

func (lhs Vec3[T]) GreaterThan(rhs Vec3[T]) Vec3b {
	return Vec3b{lhs[0] > rhs[0], lhs[1] > rhs[1], lhs[2] > rhs[2]}
}

func (lhs Vec3[T]) GreaterThanEqual(rhs Vec3[T]) Vec3b {
	return Vec3b{lhs[0] >= rhs[0], lhs[1] >= rhs[1], lhs[2] >= rhs[2]}
}

func (lhs Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4[T]{lhs[0], lhs[1], lhs[2], w}
}

func (lhs Vec3[T]) Truncate() Vec2[T] {
	return Vec2[T]{lhs[0], lhs[1]}
}

func (lhs Vec3[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

type Vec3b [3]bool

func (lhs Vec3b) Not() Vec3b {
	return Vec3b{!lhs[0], !lhs[1], !lhs[2]}
}

func (lhs Vec3b) Or(rhs Vec3b) Vec3b {
	return Vec3b{lhs[0] || rhs[0], lhs[1] || rhs[1], lhs[2] || rhs[2]}
}

func (lhs Vec3b) And(rhs Vec3b) Vec3b {
	return Vec3b{lhs[0] && rhs[0], lhs[1] && rhs[1], lhs[2] && rhs[2]}
}

func (lhs Vec3b) Any() bool {
	return lhs[0] || lhs[1] || lhs[2]
}

func (lhs Vec3b) All() bool {
	return lhs[0] && lhs[1] && lhs[2]
}
