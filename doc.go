// Package glm provides fixed size vector, matrix and quaternion value types
// for real time rendering and simulation code, generic over their element
// type, together with the usual camera and projection matrix builders.
package glm
