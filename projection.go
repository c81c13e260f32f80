package glm

// DepthMode selects the clip space depth range a projection matrix maps
// the near..far interval onto.
type DepthMode int

const (
	DepthRangeZeroToOne DepthMode = iota
	DepthRangeNegativeOneToOne
)

func (d DepthMode) String() string {
	switch d {
	case DepthRangeZeroToOne:
		return "ZeroToOne"
	case DepthRangeNegativeOneToOne:
		return "NegativeOneToOne"
	}
	return "Unknown"
}

// PerspectiveProjectionToVulkanClipSpace builds a right-handed perspective
// projection with depth in 0..1 and y pointing down in clip space.
func PerspectiveProjectionToVulkanClipSpace[T float](fovy, aspectRatio, zNear, zFar T) Mat4[T] {
	assert(abs(aspectRatio-machineEpsilon[T]()) > 0, "perspective projection: aspect ratio must be non-zero")
	assert(abs(zFar-zNear) > machineEpsilon[T](), "perspective projection: zFar must differ from zNear")
	assert(fovy > machineEpsilon[T](), "perspective projection: fovy must be positive")

	tanHalfFovy := tan(fovy / 2)

	var m Mat4[T]
	m[0][0] = 1 / (aspectRatio * tanHalfFovy)
	m[1][1] = -1 / tanHalfFovy
	m[2][2] = zFar / (zNear - zFar)
	m[2][3] = -1
	m[3][2] = -(zFar * zNear) / (zFar - zNear)
	return m
}

// PerspectiveProjectionToOpenGLClipSpace builds a right-handed perspective
// projection with depth in -1..1 and y pointing up in clip space.
func PerspectiveProjectionToOpenGLClipSpace[T float](fovy, aspectRatio, zNear, zFar T) Mat4[T] {
	assert(abs(aspectRatio-machineEpsilon[T]()) > 0, "perspective projection: aspect ratio must be non-zero")
	assert(abs(zFar-zNear) > machineEpsilon[T](), "perspective projection: zFar must differ from zNear")
	assert(fovy > machineEpsilon[T](), "perspective projection: fovy must be positive")

	tanHalfFovy := tan(fovy / 2)

	var m Mat4[T]
	m[0][0] = 1 / (aspectRatio * tanHalfFovy)
	m[1][1] = 1 / tanHalfFovy
	m[2][2] = -(zFar + zNear) / (zFar - zNear)
	m[2][3] = -1
	m[3][2] = -(2 * zFar * zNear) / (zFar - zNear)
	return m
}

// OrthographicProjection builds a right-handed orthographic projection onto
// the given box, with the depth range selected by depthMode.
func OrthographicProjection[T float](left, right, bottom, top, zNear, zFar T, depthMode DepthMode) Mat4[T] {
	m := IdentityMat4[T]()

	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)

	switch depthMode {
	case DepthRangeZeroToOne:
		m[2][2] = -1 / (zFar - zNear)
		m[3][2] = -zNear / (zFar - zNear)
	case DepthRangeNegativeOneToOne:
		m[2][2] = -2 / (zFar - zNear)
		m[3][2] = -(zFar + zNear) / (zFar - zNear)
	default:
		assert(false, "orthographic projection: unknown depth mode")
	}

	return m
}

// OrthographicProjectionToVulkanClipSpace is a square orthographic
// projection of the given side length, with Vulkan's 0..1 depth range and
// downward y.
func OrthographicProjectionToVulkanClipSpace[T float](size, zNear, zFar T) Mat4[T] {
	half := size / 2
	return OrthographicProjection(-half, +half, +half, -half, zNear, zFar, DepthRangeZeroToOne)
}

// OrthographicProjectionToOpenGLClipSpace is a square orthographic
// projection of the given side length, with OpenGL's -1..1 depth range and
// upward y.
func OrthographicProjectionToOpenGLClipSpace[T float](size, zNear, zFar T) Mat4[T] {
	half := size / 2
	return OrthographicProjection(-half, +half, -half, +half, zNear, zFar, DepthRangeNegativeOneToOne)
}
