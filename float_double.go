//go:build glm_double

package glm

type Float = float64
