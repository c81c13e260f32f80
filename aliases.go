package glm

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Vec4f = Vec4[float32]

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]
type Vec4d = Vec4[float64]

type Vec2i = Vec2[int32]
type Vec3i = Vec3[int32]
type Vec4i = Vec4[int32]

type Vec2u = Vec2[uint32]
type Vec3u = Vec3[uint32]
type Vec4u = Vec4[uint32]

type Mat3f = Mat3[float32]
type Mat4f = Mat4[float32]

type Mat3d = Mat3[float64]
type Mat4d = Mat4[float64]

type Quaternionf = Quaternion[float32]
type Quaterniond = Quaternion[float64]
