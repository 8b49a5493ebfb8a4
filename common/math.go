package common

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl64"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// clipDepthRemap maps OpenGL clip depth [-w, w] onto the WebGPU range [0, w].
var clipDepthRemap = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// Perspective creates a perspective projection matrix for WebGPU clip space [0, 1].
// The zoom factor narrows the frustum the same way an orbit camera's zoom does.
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - zoom: frustum zoom factor (1 = unzoomed)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - Mat4: the projection matrix
func Perspective(fovY, aspect, zoom, near, far float64) Mat4 {
	m := clipDepthRemap.Mul4(mgl64.Perspective(fovY, aspect, near, far))
	m[0] *= zoom
	m[5] *= zoom
	return m
}

// Orthographic creates an orthographic projection matrix for WebGPU clip space [0, 1].
//
// Parameters:
//   - left, right, top, bottom: view bounds at zoom 1
//   - zoom: zoom factor dividing the view bounds
//   - near, far: clipping plane distances
//
// Returns:
//   - Mat4: the projection matrix
func Orthographic(left, right, top, bottom, zoom, near, far float64) Mat4 {
	dx := (right - left) / (2 * zoom)
	dy := (top - bottom) / (2 * zoom)
	cx := (right + left) / 2
	cy := (top + bottom) / 2

	return clipDepthRemap.Mul4(mgl64.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, near, far))
}
