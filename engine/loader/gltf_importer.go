package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
	"github.com/Carmen-Shannon/vrm-viewer/engine/model"
	"github.com/go-gl/mathgl/mgl64"
)

// gltfImporterImpl is the implementation of the gltfImporter interface.
type gltfImporterImpl struct{}

// gltfImporter defines the interface for orchestrating a glTF/GLB/VRM import.
// It combines the parser and the humanoid extractor to produce a Model.
type gltfImporter interface {
	// Import loads a file and builds its node hierarchy and humanoid bone map.
	//
	// Parameters:
	//   - path: the file path to the glTF, GLB or VRM file
	//
	// Returns:
	//   - model.Model: the imported model
	//   - error: error if import fails
	Import(path string) (model.Model, error)

	// ImportReader loads a document from a reader.
	//
	// Parameters:
	//   - name: the name recorded as the model source
	//   - r: the reader providing glTF/GLB data
	//   - isGLB: true if the reader provides GLB binary data, false for glTF JSON
	//
	// Returns:
	//   - model.Model: the imported model
	//   - error: error if import fails
	ImportReader(name string, r io.Reader, isGLB bool) (model.Model, error)
}

var _ gltfImporter = &gltfImporterImpl{}

// newGLTFImporter creates a new glTF importer.
//
// Returns:
//   - gltfImporter: the importer
func newGLTFImporter() gltfImporter {
	return &gltfImporterImpl{}
}

func (imp *gltfImporterImpl) Import(path string) (model.Model, error) {
	parser := newGLTFParser()
	if err := parser.Parse(path); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return imp.importFromParser(parser, path, isBinaryExt(path))
}

func (imp *gltfImporterImpl) ImportReader(name string, r io.Reader, isGLB bool) (model.Model, error) {
	parser := newGLTFParser()
	if err := parser.ParseReader(r, isGLB); err != nil {
		return nil, fmt.Errorf("failed to parse from reader: %w", err)
	}

	return imp.importFromParser(parser, name, isGLB)
}

// importFromParser builds a Model from a parser that has already loaded a document.
//
// Parameters:
//   - parser: the glTF parser that has already loaded a document
//   - source: the file path or cache key, also the naming fallback
//   - isGLB: whether the document came from a binary container
func (imp *gltfImporterImpl) importFromParser(parser gltfParser, source string, isGLB bool) (model.Model, error) {
	doc := parser.Document()
	if doc == nil {
		return nil, fmt.Errorf("no document after parsing")
	}

	humanoid := newGLTFHumanoidExtractor(parser)
	boneNodes, format, err := humanoid.ExtractHumanBones()
	if err != nil {
		return nil, fmt.Errorf("humanoid extraction failed: %w", err)
	}
	if format == model.FormatGLTF && isGLB {
		format = model.FormatGLB
	}

	nodes := make([]game_object.GameObject, len(doc.Nodes))
	for i := range doc.Nodes {
		nodes[i] = gltfNewNodeObject(&doc.Nodes[i], i)
	}

	name := gltfExtractModelName(doc, humanoid.ExtractTitle(), source)
	root := game_object.NewGameObject(game_object.WithName(name))

	// A node listed as a child twice keeps its first parent. Links that
	// would close a cycle are dropped.
	parented := make([]bool, len(nodes))
	for i, node := range doc.Nodes {
		for _, c := range node.Children {
			if parented[c] || gltfIsAncestor(nodes[c], nodes[i]) {
				continue
			}
			parented[c] = true
			nodes[i].Add(nodes[c])
		}
	}
	for _, r := range gltfSceneRoots(doc, parented) {
		if nodes[r].Parent() == nil {
			root.Add(nodes[r])
		}
	}

	options := []model.ModelBuilderOption{
		model.WithName(name),
		model.WithSource(source),
		model.WithFormat(format),
		model.WithRoot(root),
		model.WithNodes(nodes),
		model.WithMeshCount(len(doc.Meshes)),
	}
	for bone, nodeIdx := range boneNodes {
		options = append(options, model.WithHumanBone(bone, nodes[nodeIdx]))
	}

	return model.NewModel(options...), nil
}

// --- Helper Functions ---

// gltfNewNodeObject creates the GameObject for a glTF node with its local transform.
func gltfNewNodeObject(node *gltfNode, index int) game_object.GameObject {
	name := node.Name
	if name == "" {
		name = fmt.Sprintf("node_%d", index)
	}

	position, rotation, scale := gltfExtractNodeTransform(node)
	return game_object.NewGameObject(
		game_object.WithName(name),
		game_object.WithPosition(position),
		game_object.WithQuaternion(rotation),
		game_object.WithScale(scale),
	)
}

// gltfExtractNodeTransform extracts the TRS transform of a glTF node,
// decomposing the matrix form when present.
func gltfExtractNodeTransform(node *gltfNode) (common.Vec3, common.Quat, common.Vec3) {
	if node.Matrix != nil {
		return common.Decompose(common.Mat4(*node.Matrix))
	}

	position := common.Vec3{}
	rotation := mgl64.QuatIdent()
	scale := common.Splat(1)

	if t := node.Translation; t != nil {
		position = common.V3(t[0], t[1], t[2])
	}
	if r := node.Rotation; r != nil {
		rotation = common.Quat{W: r[3], V: common.V3(r[0], r[1], r[2])}.Normalize()
	}
	if s := node.Scale; s != nil {
		scale = common.V3(s[0], s[1], s[2])
	}

	return position, rotation, scale
}

// gltfIsAncestor reports whether a is n or one of its ancestors.
func gltfIsAncestor(a, n game_object.GameObject) bool {
	for p := n; p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

// gltfSceneRoots returns the root nodes of the default scene. Documents
// without scenes use every node that is nobody's child.
func gltfSceneRoots(doc *gltfDocument, parented []bool) []int {
	if len(doc.Scenes) > 0 {
		scene := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			scene = *doc.Scene
		}
		return doc.Scenes[scene].Nodes
	}

	var roots []int
	for i, p := range parented {
		if !p {
			roots = append(roots, i)
		}
	}
	return roots
}

// gltfExtractModelName derives a model name from the scene name, the VRM
// title or the source path, in that order.
func gltfExtractModelName(doc *gltfDocument, title, source string) string {
	if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
		if name := doc.Scenes[*doc.Scene].Name; name != "" {
			return name
		}
	}

	if title != "" {
		return title
	}

	if source != "" {
		base := filepath.Base(source)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}

	return "unnamed_model"
}
