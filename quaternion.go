package glm

// Quaternion is a unit rotation quaternion with vector part V and scalar
// part S. The zero value is not a rotation, use IdentityQuaternion.
type Quaternion[T float] struct {
	V Vec3[T]
	S T
}

func IdentityQuaternion[T float]() Quaternion[T] {
	return Quaternion[T]{S: 1}
}

// AxisAngle builds the rotation of angle radians about axis. The axis must
// be normalized, this is not checked.
func AxisAngle[T float](axis Vec3[T], angle T) Quaternion[T] {
	half := angle / 2
	return Quaternion[T]{
		V: axis.MulScalar(sin(half)),
		S: cos(half),
	}
}

// Mul is the Hamilton product.
func (lhs Quaternion[T]) Mul(rhs Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		V: rhs.V.MulScalar(lhs.S).
			Add(lhs.V.MulScalar(rhs.S)).
			Add(lhs.V.Cross(rhs.V)),
		S: lhs.S*rhs.S - lhs.V.Dot(rhs.V),
	}
}

// Rotate applies the rotation to v using the two cross product form, which
// needs fewer multiplications than the full sandwich product. See
// https://blog.molecular-matters.com/2013/05/24/a-faster-quaternion-vector-multiplication/.
func (lhs Quaternion[T]) Rotate(v Vec3[T]) Vec3[T] {
	t := lhs.V.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(lhs.S)).Add(lhs.V.Cross(t))
}

// Normalize rescales to unit magnitude, repairing drift after repeated
// composition.
func (lhs Quaternion[T]) Normalize() Quaternion[T] {
	n := sqrt(lhs.V.Dot(lhs.V) + lhs.S*lhs.S)
	return Quaternion[T]{V: lhs.V.DivScalar(n), S: lhs.S / n}
}

// Mat4FromQuaternion expands the rotation matrix of a unit quaternion, with
// the translation column left at identity.
func Mat4FromQuaternion[T float](quat Quaternion[T]) Mat4[T] {
	x2 := quat.V[0] + quat.V[0]
	y2 := quat.V[1] + quat.V[1]
	z2 := quat.V[2] + quat.V[2]

	xx2 := x2 * quat.V[0]
	xy2 := x2 * quat.V[1]
	xz2 := x2 * quat.V[2]

	yy2 := y2 * quat.V[1]
	yz2 := y2 * quat.V[2]
	zz2 := z2 * quat.V[2]

	sx2 := x2 * quat.S
	sy2 := y2 * quat.S
	sz2 := z2 * quat.S

	return Mat4[T]{
		{1 - yy2 - zz2, xy2 + sz2, xz2 - sy2, 0},
		{xy2 - sz2, 1 - xx2 - zz2, yz2 + sx2, 0},
		{xz2 + sy2, yz2 - sx2, 1 - xx2 - yy2, 0},
		{0, 0, 0, 1},
	}
}

// QuaternionFromMat4 recovers the quaternion of a rotation matrix. The
// branch on the diagonal terms keeps the reconstruction stable near 180
// degree rotations, see Mike Day, "Converting a Rotation Matrix to a
// Quaternion". Up to the q/-q ambiguity this inverts Mat4FromQuaternion.
func QuaternionFromMat4[T float](m Mat4[T]) Quaternion[T] {
	m00 := m[0][0]
	m11 := m[1][1]
	m22 := m[2][2]

	var q Quaternion[T]
	t := T(1)

	if m22 < 0 {
		if m00 > m11 {
			t += +m00 - m11 - m22
			q = Quaternion[T]{V: Vec3[T]{t, m[0][1] + m[1][0], m[2][0] + m[0][2]}, S: m[1][2] - m[2][1]}
		} else {
			t += -m00 + m11 - m22
			q = Quaternion[T]{V: Vec3[T]{m[0][1] + m[1][0], t, m[1][2] + m[2][1]}, S: m[2][0] - m[0][2]}
		}
	} else {
		if m00 < -m11 {
			t += -m00 - m11 + m22
			q = Quaternion[T]{V: Vec3[T]{m[2][0] + m[0][2], m[1][2] + m[2][1], t}, S: m[0][1] - m[1][0]}
		} else {
			t += +m00 + m11 + m22
			q = Quaternion[T]{V: Vec3[T]{m[1][2] - m[2][1], m[2][0] - m[0][2], m[0][1] - m[1][0]}, S: t}
		}
	}

	scale := T(0.5) / sqrt(t)
	q.V = q.V.MulScalar(scale)
	q.S *= scale

	return q
}
