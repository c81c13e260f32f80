package glm

// Mat4 is a 4x4 matrix stored as four column vectors.
type Mat4[T numeric] [4]Vec4[T]

func IdentityMat4[T numeric]() Mat4[T] {
	return DiagonalMat4[T](1)
}

func DiagonalMat4[T numeric](d T) Mat4[T] {
	return Mat4[T]{
		{d, 0, 0, 0},
		{0, d, 0, 0},
		{0, 0, d, 0},
		{0, 0, 0, d},
	}
}

func Mat4FromColumns[T numeric](x, y, z, w Vec4[T]) Mat4[T] {
	return Mat4[T]{x, y, z, w}
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	t := lhs.Transpose()
	return Mat4[T]{
		{t[0].Dot(rhs[0]), t[1].Dot(rhs[0]), t[2].Dot(rhs[0]), t[3].Dot(rhs[0])},
		{t[0].Dot(rhs[1]), t[1].Dot(rhs[1]), t[2].Dot(rhs[1]), t[3].Dot(rhs[1])},
		{t[0].Dot(rhs[2]), t[1].Dot(rhs[2]), t[2].Dot(rhs[2]), t[3].Dot(rhs[2])},
		{t[0].Dot(rhs[3]), t[1].Dot(rhs[3]), t[2].Dot(rhs[3]), t[3].Dot(rhs[3])},
	}
}

func (lhs Mat4[T]) Transform(rhs Vec4[T]) Vec4[T] {
	t := lhs.Transpose()
	return Vec4[T]{
		t[0].Dot(rhs),
		t[1].Dot(rhs),
		t[2].Dot(rhs),
		t[3].Dot(rhs),
	}
}

func (lhs Mat4[T]) MulScalar(s T) Mat4[T] {
	return Mat4[T]{
		lhs[0].MulScalar(s),
		lhs[1].MulScalar(s),
		lhs[2].MulScalar(s),
		lhs[3].MulScalar(s),
	}
}

func (lhs Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		{lhs[0][0], lhs[1][0], lhs[2][0], lhs[3][0]},
		{lhs[0][1], lhs[1][1], lhs[2][1], lhs[3][1]},
		{lhs[0][2], lhs[1][2], lhs[2][2], lhs[3][2]},
		{lhs[0][3], lhs[1][3], lhs[2][3], lhs[3][3]},
	}
}

func (lhs Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{lhs[0][i], lhs[1][i], lhs[2][i], lhs[3][i]}
}

func (lhs Mat4[T]) IsZero() bool {
	return lhs == Mat4[T]{}
}

// subdeterminants returns the 2x2 sub-determinant products shared by
// Determinant and Inverse.
func (m Mat4[T]) subdeterminants() (s, c [6]T) {
	s[0] = m[0][0]*m[1][1] - m[1][0]*m[0][1]
	s[1] = m[0][0]*m[1][2] - m[1][0]*m[0][2]
	s[2] = m[0][0]*m[1][3] - m[1][0]*m[0][3]
	s[3] = m[0][1]*m[1][2] - m[1][1]*m[0][2]
	s[4] = m[0][1]*m[1][3] - m[1][1]*m[0][3]
	s[5] = m[0][2]*m[1][3] - m[1][2]*m[0][3]

	c[0] = m[2][0]*m[3][1] - m[3][0]*m[2][1]
	c[1] = m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c[2] = m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c[3] = m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c[4] = m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c[5] = m[2][2]*m[3][3] - m[3][2]*m[2][3]

	return s, c
}

func (m Mat4[T]) Determinant() T {
	s, c := m.subdeterminants()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Inverse computes the closed form adjugate inverse. A determinant within
// machine epsilon of zero invokes OnBadDeterminant before the division.
func (m Mat4[T]) Inverse() Mat4[T] {
	s, c := m.subdeterminants()

	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if abs(det) < machineEpsilon[T]() {
		OnBadDeterminant()
	}
	invDet := 1 / det

	var res Mat4[T]

	res[0][0] = (m[1][1]*c[5] - m[1][2]*c[4] + m[1][3]*c[3]) * invDet
	res[0][1] = (-m[0][1]*c[5] + m[0][2]*c[4] - m[0][3]*c[3]) * invDet
	res[0][2] = (m[3][1]*s[5] - m[3][2]*s[4] + m[3][3]*s[3]) * invDet
	res[0][3] = (-m[2][1]*s[5] + m[2][2]*s[4] - m[2][3]*s[3]) * invDet

	res[1][0] = (-m[1][0]*c[5] + m[1][2]*c[2] - m[1][3]*c[1]) * invDet
	res[1][1] = (m[0][0]*c[5] - m[0][2]*c[2] + m[0][3]*c[1]) * invDet
	res[1][2] = (-m[3][0]*s[5] + m[3][2]*s[2] - m[3][3]*s[1]) * invDet
	res[1][3] = (m[2][0]*s[5] - m[2][2]*s[2] + m[2][3]*s[1]) * invDet

	res[2][0] = (m[1][0]*c[4] - m[1][1]*c[2] + m[1][3]*c[0]) * invDet
	res[2][1] = (-m[0][0]*c[4] + m[0][1]*c[2] - m[0][3]*c[0]) * invDet
	res[2][2] = (m[3][0]*s[4] - m[3][1]*s[2] + m[3][3]*s[0]) * invDet
	res[2][3] = (-m[2][0]*s[4] + m[2][1]*s[2] - m[2][3]*s[0]) * invDet

	res[3][0] = (-m[1][0]*c[3] + m[1][1]*c[1] - m[1][2]*c[0]) * invDet
	res[3][1] = (m[0][0]*c[3] - m[0][1]*c[1] + m[0][2]*c[0]) * invDet
	res[3][2] = (-m[3][0]*s[3] + m[3][1]*s[1] - m[3][2]*s[0]) * invDet
	res[3][3] = (m[2][0]*s[3] - m[2][1]*s[1] + m[2][2]*s[0]) * invDet

	return res
}
