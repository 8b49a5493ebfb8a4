package model

// Format identifies the container and humanoid schema a model was loaded from.
type Format int

const (
	// FormatGLTF is a plain glTF JSON document.
	FormatGLTF Format = iota

	// FormatGLB is a binary glTF container without a VRM extension.
	FormatGLB

	// FormatVRM0 carries the VRM 0.x "VRM" extension.
	FormatVRM0

	// FormatVRM1 carries the VRM 1.0 "VRMC_vrm" extension.
	FormatVRM1
)

// String returns the format's display name.
func (f Format) String() string {
	switch f {
	case FormatGLTF:
		return "glTF"
	case FormatGLB:
		return "GLB"
	case FormatVRM0:
		return "VRM 0.x"
	case FormatVRM1:
		return "VRM 1.0"
	default:
		return "unknown"
	}
}

// IsVRM reports whether the format carries a humanoid extension.
func (f Format) IsVRM() bool {
	return f == FormatVRM0 || f == FormatVRM1
}
