package glm

func GlobalX[T numeric]() Vec3[T] { return Vec3[T]{1, 0, 0} }
func GlobalY[T numeric]() Vec3[T] { return Vec3[T]{0, 1, 0} }
func GlobalZ[T numeric]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// The coordinate system is right-handed with y up.

func GlobalRight[T numeric]() Vec3[T]   { return GlobalX[T]() }
func GlobalUp[T numeric]() Vec3[T]      { return GlobalY[T]() }
func GlobalForward[T numeric]() Vec3[T] { return GlobalZ[T]().Neg() }
