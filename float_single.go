//go:build !glm_double

package glm

// Float is the default element precision. Build with the glm_double tag to
// switch the whole library to 64 bit floats.
type Float = float32
