package glm

func ScaleMat4[T float](v Vec3[T]) Mat4[T] {
	m := IdentityMat4[T]()
	m[0][0] = v[0]
	m[1][1] = v[1]
	m[2][2] = v[2]
	return m
}

func UniformScaleMat4[T float](s T) Mat4[T] {
	m := DiagonalMat4(s)
	m[3][3] = 1
	return m
}

func TranslationMat4[T float](v Vec3[T]) Mat4[T] {
	m := IdentityMat4[T]()
	m[3] = v.Extend(1)
	return m
}

func RotationMat4[T float](q Quaternion[T]) Mat4[T] {
	return Mat4FromQuaternion(q)
}

// LookAt builds a view matrix from the eye position, the point to look at
// and an approximate up direction, usually GlobalUp. A target colinear with
// up is degenerate and not checked. The basis and the eye translation are
// laid out as rows first, then transposed into the final matrix.
func LookAt[T float](eye, target, up Vec3[T]) Mat4[T] {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up).Normalize()
	upOrtho := right.Cross(forward)

	rows := Mat4[T]{
		right.Extend(-right.Dot(eye)),
		upOrtho.Extend(-upOrtho.Dot(eye)),
		forward.Neg().Extend(forward.Dot(eye)),
		{0, 0, 0, 1},
	}
	return rows.Transpose()
}
