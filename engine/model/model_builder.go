package model

import (
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithSource is an option builder that records where the Model was loaded from.
//
// Parameters:
//   - source: the file path or cache key
//
// Returns:
//   - ModelBuilderOption: a function that applies the source option to a model
func WithSource(source string) ModelBuilderOption {
	return func(m *model) {
		m.source = source
	}
}

// WithFormat is an option builder that sets the source format of the Model.
//
// Parameters:
//   - format: the container and humanoid schema
//
// Returns:
//   - ModelBuilderOption: a function that applies the format option to a model
func WithFormat(format Format) ModelBuilderOption {
	return func(m *model) {
		m.format = format
	}
}

// WithRoot is an option builder that sets the node the scene roots hang from.
//
// Parameters:
//   - root: the model root
//
// Returns:
//   - ModelBuilderOption: a function that applies the root option to a model
func WithRoot(root game_object.GameObject) ModelBuilderOption {
	return func(m *model) {
		m.root = root
	}
}

// WithNodes is an option builder that sets the node list, indexed like the source file.
//
// Parameters:
//   - nodes: the nodes
//
// Returns:
//   - ModelBuilderOption: a function that applies the nodes option to a model
func WithNodes(nodes []game_object.GameObject) ModelBuilderOption {
	return func(m *model) {
		m.nodes = nodes
	}
}

// WithHumanBone is an option builder that registers one humanoid bone. Nil
// bones are ignored.
//
// Parameters:
//   - name: the humanoid bone name
//   - bone: the node carrying the bone
//
// Returns:
//   - ModelBuilderOption: a function that applies the bone option to a model
func WithHumanBone(name string, bone game_object.GameObject) ModelBuilderOption {
	return func(m *model) {
		if bone != nil {
			m.humanBones[name] = bone
		}
	}
}

// WithMeshCount is an option builder that records how many meshes the source file holds.
//
// Parameters:
//   - count: the mesh count
//
// Returns:
//   - ModelBuilderOption: a function that applies the mesh count option to a model
func WithMeshCount(count int) ModelBuilderOption {
	return func(m *model) {
		m.meshCount = count
	}
}
