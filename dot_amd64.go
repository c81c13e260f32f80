//go:build amd64 && !purego

package glm

// dot4f32 is implemented in dot_amd64.s as a single SSE multiply followed
// by a horizontal add.
func dot4f32(a, b [4]float32) float32
