package glm

// Mat3 is a 3x3 matrix stored as three column vectors.
type Mat3[T numeric] [3]Vec3[T]

func IdentityMat3[T numeric]() Mat3[T] {
	return DiagonalMat3[T](1)
}

func DiagonalMat3[T numeric](d T) Mat3[T] {
	return Mat3[T]{
		{d, 0, 0},
		{0, d, 0},
		{0, 0, d},
	}
}

func Mat3FromColumns[T numeric](x, y, z Vec3[T]) Mat3[T] {
	return Mat3[T]{x, y, z}
}

// Mul transposes the left operand first so that its rows become plain
// vectors, then composes by dot products against the right operand's columns.
func (lhs Mat3[T]) Mul(rhs Mat3[T]) Mat3[T] {
	t := lhs.Transpose()
	return Mat3[T]{
		{t[0].Dot(rhs[0]), t[1].Dot(rhs[0]), t[2].Dot(rhs[0])},
		{t[0].Dot(rhs[1]), t[1].Dot(rhs[1]), t[2].Dot(rhs[1])},
		{t[0].Dot(rhs[2]), t[1].Dot(rhs[2]), t[2].Dot(rhs[2])},
	}
}

func (lhs Mat3[T]) Transform(rhs Vec3[T]) Vec3[T] {
	t := lhs.Transpose()
	return Vec3[T]{
		t[0].Dot(rhs),
		t[1].Dot(rhs),
		t[2].Dot(rhs),
	}
}

func (lhs Mat3[T]) MulScalar(s T) Mat3[T] {
	return Mat3[T]{
		lhs[0].MulScalar(s),
		lhs[1].MulScalar(s),
		lhs[2].MulScalar(s),
	}
}

func (lhs Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		{lhs[0][0], lhs[1][0], lhs[2][0]},
		{lhs[0][1], lhs[1][1], lhs[2][1]},
		{lhs[0][2], lhs[1][2], lhs[2][2]},
	}
}

func (lhs Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{lhs[0][i], lhs[1][i], lhs[2][i]}
}

func (lhs Mat3[T]) IsZero() bool {
	return lhs == Mat3[T]{}
}

func (lhs Mat3[T]) Determinant() T {
	return lhs[0][0]*(lhs[1][1]*lhs[2][2]-lhs[1][2]*lhs[2][1]) -
		lhs[1][0]*(lhs[0][1]*lhs[2][2]-lhs[2][1]*lhs[0][2]) +
		lhs[2][0]*(lhs[0][1]*lhs[1][2]-lhs[1][1]*lhs[0][2])
}

// Inverse computes the closed form adjugate inverse. A determinant within
// machine epsilon of zero invokes OnBadDeterminant before the division.
func (m Mat3[T]) Inverse() Mat3[T] {
	det := m.Determinant()
	if abs(det) < machineEpsilon[T]() {
		OnBadDeterminant()
	}
	invDet := 1 / det

	var res Mat3[T]

	res[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet
	res[1][0] = (m[2][0]*m[1][2] - m[1][0]*m[2][2]) * invDet
	res[2][0] = (m[1][0]*m[2][1] - m[2][0]*m[1][1]) * invDet

	res[0][1] = (m[2][1]*m[0][2] - m[0][1]*m[2][2]) * invDet
	res[1][1] = (m[0][0]*m[2][2] - m[2][0]*m[0][2]) * invDet
	res[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet

	res[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet
	res[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet
	res[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet

	return res
}
