package glm

import "math"

type Vec2[T numeric] [2]T

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
	}
}

func (lhs Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{-lhs[0], -lhs[1]}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] * s,
		lhs[1] * s,
	}
}

func (lhs Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{
		lhs[0] / s,
		lhs[1] / s,
	}
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return (lhs[0] * rhs[0]) + (lhs[1] * rhs[1])
}

func (lhs Vec2[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Vec2[T]) Length() T {
	return T(math.Sqrt(float64(lhs.Dot(lhs))))
}

func (lhs Vec2[T]) Distance(rhs Vec2[T]) T {
	return lhs.Sub(rhs).Length()
}

// Normalize requires a non-zero length, this is not checked.
func (lhs Vec2[T]) Normalize() Vec2[T] {
	return lhs.DivScalar(lhs.Length())
}

func (lhs Vec2[T]) Min(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
	}
}

func (lhs Vec2[T]) Max(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
	}
}

func (lhs Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return lhs.Min(hi).Max(lo)
}

func (lhs Vec2[T]) Lerp(rhs Vec2[T], x T) Vec2[T] {
	return lhs.MulScalar(1 - x).Add(rhs.MulScalar(x))
}

func (lhs Vec2[T]) LessThan(rhs Vec2[T]) Vec2b {
	return Vec2b{lhs[0] < rhs[0], lhs[1] < rhs[1]}
}

func (lhs Vec2[T]) LessThanEqual(rhs Vec2[T]) Vec2b {
	return Vec2b{lhs[0] <= rhs[0], lhs[1] <= rhs[1]}
}

func (lhs Vec2[T]) GreaterThan(rhs Vec2[T]) Vec2b {
	return Vec2b{lhs[0] > rhs[0], lhs[1] > rhs[1]}
}

func (lhs Vec2[T]) GreaterThanEqual(rhs Vec2[T]) Vec2b {
	return Vec2b{lhs[0] >= rhs[0], lhs[1] >= rhs[1]}
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs[0], lhs[1], z}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

type Vec2b [2]bool

func (lhs Vec2b) Not() Vec2b {
	return Vec2b{!lhs[0], !lhs[1]}
}

func (lhs Vec2b) Or(rhs Vec2b) Vec2b {
	return Vec2b{lhs[0] || rhs[0], lhs[1] || rhs[1]}
}

func (lhs Vec2b) And(rhs Vec2b) Vec2b {
	return Vec2b{lhs[0] && rhs[0], lhs[1] && rhs[1]}
}

func (lhs Vec2b) Any() bool {
	return lhs[0] || lhs[1]
}

func (lhs Vec2b) All() bool {
	return lhs[0] && lhs[1]
}
