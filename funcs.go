package glm

import (
	"math"

	"golang.org/x/mobile/exp/f32"
)

const (
	E      = 2.718281828459
	Pi     = 3.141592653590
	HalfPi = Pi / 2
	TwoPi  = 2 * Pi
)

func Square[T numeric](x T) T {
	return x * x
}

func Lerp[T float](a, b, x T) T {
	return (1-x)*a + x*b
}

func Clamp[T numeric](x, lo, hi T) T {
	return max(lo, min(x, hi))
}

func Radians[T float](degrees T) T {
	return degrees / 180 * Pi
}

func Degrees[T float](radians T) T {
	return radians / Pi * 180
}

// The float32 cases route through the x/mobile f32 helpers.

func sqrt[T float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(f32.Sqrt(v))
	}
	return T(math.Sqrt(float64(x)))
}

func sin[T float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(f32.Sin(v))
	}
	return T(math.Sin(float64(x)))
}

func cos[T float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(f32.Cos(v))
	}
	return T(math.Cos(float64(x)))
}

func tan[T float](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(f32.Tan(v))
	}
	return T(math.Tan(float64(x)))
}

func abs[T numeric](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// machineEpsilon is the difference between 1 and the next representable
// value of T, or zero for integer element types. Written with a pointer
// switch since an untyped float constant does not convert to every T.
func machineEpsilon[T numeric]() T {
	var eps T
	switch p := any(&eps).(type) {
	case *float32:
		*p = 0x1p-23
	case *float64:
		*p = 0x1p-52
	}
	return eps
}
