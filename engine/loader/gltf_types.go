// gltf_types.go contains the subset of the glTF 2.0 and VRM JSON schemas the loader walks.
// Only the node hierarchy, skins and the humanoid extensions are decoded; geometry,
// materials and animations are left untouched.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html
package loader

import "encoding/json"

// --- glTF Root Structure ---

// gltfDocument represents the root of a glTF JSON document.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#reference-gltf
type gltfDocument struct {
	// Asset contains metadata about the glTF asset.
	Asset gltfAsset `json:"asset"`

	// Scene is the index of the default scene.
	Scene *int `json:"scene,omitempty"`

	// Scenes is an array of scenes.
	Scenes []gltfScene `json:"scenes,omitempty"`

	// Nodes is an array of nodes (transform hierarchy).
	Nodes []gltfNode `json:"nodes,omitempty"`

	// Meshes is an array of meshes. Only names are decoded.
	Meshes []gltfMesh `json:"meshes,omitempty"`

	// Skins is an array of skins (skeletal animation binding).
	Skins []gltfSkin `json:"skins,omitempty"`

	// ExtensionsUsed lists extensions used by this asset.
	ExtensionsUsed []string `json:"extensionsUsed,omitempty"`

	// Extensions holds the raw root-level extension objects keyed by name.
	Extensions map[string]json.RawMessage `json:"extensions,omitempty"`
}

// --- Asset Metadata ---

// gltfAsset contains metadata about the glTF asset.
type gltfAsset struct {
	// Version is the glTF version this asset targets (must be "2.0").
	Version string `json:"version"`

	// Generator is the tool that generated this asset.
	Generator string `json:"generator,omitempty"`
}

// --- Scene Hierarchy ---

// gltfScene is a set of root nodes.
type gltfScene struct {
	Name  string `json:"name,omitempty"`
	Nodes []int  `json:"nodes,omitempty"`
}

// gltfNode is a node in the transform hierarchy. A node carries either a
// column-major matrix or translation/rotation/scale, never both.
type gltfNode struct {
	Name        string       `json:"name,omitempty"`
	Children    []int        `json:"children,omitempty"`
	Mesh        *int         `json:"mesh,omitempty"`
	Skin        *int         `json:"skin,omitempty"`
	Matrix      *[16]float64 `json:"matrix,omitempty"`
	Translation *[3]float64  `json:"translation,omitempty"`
	Rotation    *[4]float64  `json:"rotation,omitempty"`
	Scale       *[3]float64  `json:"scale,omitempty"`
}

type gltfMesh struct {
	Name string `json:"name,omitempty"`
}

// gltfSkin binds a set of joint nodes to a skinned mesh.
type gltfSkin struct {
	Name     string `json:"name,omitempty"`
	Skeleton *int   `json:"skeleton,omitempty"`
	Joints   []int  `json:"joints"`
}

// --- VRM Extensions ---

const (
	// vrm0ExtensionName is the root extension written by VRM 0.x exporters.
	vrm0ExtensionName = "VRM"

	// vrm1ExtensionName is the root extension written by VRM 1.0 exporters.
	vrm1ExtensionName = "VRMC_vrm"
)

// vrm0Extension is the VRM 0.x root extension. Human bones are a list.
// Reference: https://github.com/vrm-c/vrm-specification/tree/master/specification/0.0
type vrm0Extension struct {
	Meta struct {
		Title string `json:"title,omitempty"`
	} `json:"meta"`
	Humanoid struct {
		HumanBones []vrm0HumanBone `json:"humanBones"`
	} `json:"humanoid"`
}

type vrm0HumanBone struct {
	Bone string `json:"bone"`
	Node int    `json:"node"`
}

// vrm1Extension is the VRMC_vrm 1.0 root extension. Human bones are an
// object keyed by bone name.
// Reference: https://github.com/vrm-c/vrm-specification/tree/master/specification/VRMC_vrm-1.0
type vrm1Extension struct {
	SpecVersion string `json:"specVersion,omitempty"`
	Meta        struct {
		Name string `json:"name,omitempty"`
	} `json:"meta"`
	Humanoid struct {
		HumanBones map[string]vrm1HumanBone `json:"humanBones"`
	} `json:"humanoid"`
}

type vrm1HumanBone struct {
	Node int `json:"node"`
}

// --- GLB Binary Format ---

// gltfGLBHeader is the 12-byte header at the start of a GLB file.
// Reference: https://registry.khronos.org/glTF/specs/2.0/glTF-2.0.html#binary-header
type gltfGLBHeader struct {
	Magic   uint32 // Must be 0x46546C67 ("glTF" in ASCII)
	Version uint32 // Must be 2
	Length  uint32 // Total file length
}

// gltfGLBChunkHeader precedes each chunk in a GLB file.
type gltfGLBChunkHeader struct {
	ChunkLength uint32
	ChunkType   uint32 // 0x4E4F534A for JSON, 0x004E4942 for BIN
}

const (
	gltfGLBMagic     = 0x46546C67 // "glTF" in little-endian ASCII
	gltfGLBVersion   = 2
	gltfGLBChunkJSON = 0x4E4F534A // "JSON" in little-endian ASCII
	gltfGLBChunkBIN  = 0x004E4942 // "BIN\0" in little-endian ASCII
)
