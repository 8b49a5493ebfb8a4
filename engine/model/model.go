package model

import (
	"sort"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
)

// model is the implementation of the Model interface.
type model struct {
	name       string
	source     string
	format     Format
	root       game_object.GameObject
	nodes      []game_object.GameObject
	humanBones map[string]game_object.GameObject
	meshCount  int

	// boneParents maps each humanoid bone to its nearest humanoid ancestor.
	boneParents map[game_object.GameObject]game_object.GameObject
}

// Model defines the interface for a loaded avatar.
// A Model owns the node hierarchy of the source file as GameObjects and the
// humanoid bone map the joint rig is built from. It is produced by the Loader.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Source returns the path or cache key the model was loaded from.
	//
	// Returns:
	//   - string: the source
	Source() string

	// Format reports the container and humanoid schema of the source file.
	//
	// Returns:
	//   - Format: the format
	Format() Format

	// Root returns the node every scene root is parented to.
	//
	// Returns:
	//   - game_object.GameObject: the model root
	Root() game_object.GameObject

	// Nodes returns the GameObject of every glTF node, indexed like the source file.
	//
	// Returns:
	//   - []game_object.GameObject: the nodes
	Nodes() []game_object.GameObject

	// HumanBones returns the humanoid bones keyed by bone name (hips, spine, ...).
	//
	// Returns:
	//   - map[string]game_object.GameObject: the bones
	HumanBones() map[string]game_object.GameObject

	// HumanBone returns one humanoid bone, or nil.
	//
	// Parameters:
	//   - name: the humanoid bone name
	//
	// Returns:
	//   - game_object.GameObject: the bone or nil
	HumanBone(name string) game_object.GameObject

	// HumanBoneNames returns the humanoid bone names in sorted order.
	//
	// Returns:
	//   - []string: the bone names
	HumanBoneNames() []string

	// MeshCount returns the number of meshes in the source file.
	//
	// Returns:
	//   - int: the mesh count
	MeshCount() int

	// SkeletonLines connects every humanoid bone to its nearest humanoid
	// ancestor in world space. Call after bones move to get the current pose.
	//
	// Parameters:
	//   - color: the line color
	//
	// Returns:
	//   - game_object.Lines: the bone segments
	SkeletonLines(color common.Color) game_object.Lines
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{
		humanBones: make(map[string]game_object.GameObject),
	}
	for _, opt := range options {
		opt(m)
	}
	if m.root == nil {
		m.root = game_object.NewGameObject(game_object.WithName(m.name))
	}
	m.linkBones()
	return m
}

func (m *model) Name() string                                  { return m.name }
func (m *model) Source() string                                { return m.source }
func (m *model) Format() Format                                { return m.format }
func (m *model) Root() game_object.GameObject                  { return m.root }
func (m *model) Nodes() []game_object.GameObject               { return m.nodes }
func (m *model) HumanBones() map[string]game_object.GameObject { return m.humanBones }
func (m *model) HumanBone(name string) game_object.GameObject  { return m.humanBones[name] }
func (m *model) MeshCount() int                                { return m.meshCount }

func (m *model) HumanBoneNames() []string {
	names := make([]string, 0, len(m.humanBones))
	for name := range m.humanBones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *model) SkeletonLines(color common.Color) game_object.Lines {
	lines := game_object.Lines{Color: color}
	for _, name := range m.HumanBoneNames() {
		bone := m.humanBones[name]
		parent, ok := m.boneParents[bone]
		if !ok {
			continue
		}
		lines.Segments = append(lines.Segments, parent.WorldPosition(), bone.WorldPosition())
	}
	return lines
}

// linkBones records the nearest humanoid ancestor of every humanoid bone.
func (m *model) linkBones() {
	isBone := make(map[game_object.GameObject]bool, len(m.humanBones))
	for _, bone := range m.humanBones {
		isBone[bone] = true
	}

	m.boneParents = make(map[game_object.GameObject]game_object.GameObject, len(m.humanBones))
	for _, bone := range m.humanBones {
		for p := bone.Parent(); p != nil; p = p.Parent() {
			if isBone[p] {
				m.boneParents[bone] = p
				break
			}
		}
	}
}
