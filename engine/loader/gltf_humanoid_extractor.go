package loader

import (
	"encoding/json"
	"fmt"

	"github.com/Carmen-Shannon/vrm-viewer/engine/model"
)

// gltfHumanoidExtractorImpl is the implementation of the gltfHumanoidExtractor interface.
type gltfHumanoidExtractorImpl struct {
	parser gltfParser
}

// gltfHumanoidExtractor resolves humanoid bone names to glTF node indices.
// VRM 1.0 is preferred over VRM 0.x when a file carries both; files without
// either extension fall back to the joints of their first skin.
type gltfHumanoidExtractor interface {
	// ExtractHumanBones maps each humanoid bone name to a node index.
	//
	// Returns:
	//   - map[string]int: bone name to node index
	//   - model.Format: the schema the bones were read from
	//   - error: error if an extension is malformed
	ExtractHumanBones() (map[string]int, model.Format, error)

	// ExtractTitle returns the avatar title from the VRM meta block, or "".
	//
	// Returns:
	//   - string: the title
	ExtractTitle() string
}

var _ gltfHumanoidExtractor = &gltfHumanoidExtractorImpl{}

// newGLTFHumanoidExtractor creates a new humanoid extractor for a parsed document.
//
// Parameters:
//   - parser: the parser containing a loaded document
//
// Returns:
//   - gltfHumanoidExtractor: the humanoid extractor
func newGLTFHumanoidExtractor(parser gltfParser) gltfHumanoidExtractor {
	return &gltfHumanoidExtractorImpl{parser: parser}
}

func (e *gltfHumanoidExtractorImpl) ExtractHumanBones() (map[string]int, model.Format, error) {
	doc := e.parser.Document()
	if doc == nil {
		return nil, model.FormatGLTF, fmt.Errorf("no document loaded")
	}

	if raw, ok := doc.Extensions[vrm1ExtensionName]; ok {
		var ext vrm1Extension
		if err := json.Unmarshal(raw, &ext); err != nil {
			return nil, model.FormatVRM1, fmt.Errorf("failed to parse %s extension: %w", vrm1ExtensionName, err)
		}
		bones := make(map[string]int, len(ext.Humanoid.HumanBones))
		for name, hb := range ext.Humanoid.HumanBones {
			if err := e.checkNode(name, hb.Node); err != nil {
				return nil, model.FormatVRM1, err
			}
			bones[name] = hb.Node
		}
		return bones, model.FormatVRM1, nil
	}

	if raw, ok := doc.Extensions[vrm0ExtensionName]; ok {
		var ext vrm0Extension
		if err := json.Unmarshal(raw, &ext); err != nil {
			return nil, model.FormatVRM0, fmt.Errorf("failed to parse %s extension: %w", vrm0ExtensionName, err)
		}
		bones := make(map[string]int, len(ext.Humanoid.HumanBones))
		for _, hb := range ext.Humanoid.HumanBones {
			// VRM 0.x exporters write -1 for unassigned optional bones.
			if hb.Bone == "" || hb.Node < 0 {
				continue
			}
			if err := e.checkNode(hb.Bone, hb.Node); err != nil {
				return nil, model.FormatVRM0, err
			}
			bones[hb.Bone] = hb.Node
		}
		return bones, model.FormatVRM0, nil
	}

	return e.skinJoints(), model.FormatGLTF, nil
}

func (e *gltfHumanoidExtractorImpl) ExtractTitle() string {
	doc := e.parser.Document()
	if doc == nil {
		return ""
	}
	if raw, ok := doc.Extensions[vrm1ExtensionName]; ok {
		var ext vrm1Extension
		if json.Unmarshal(raw, &ext) == nil {
			return ext.Meta.Name
		}
	}
	if raw, ok := doc.Extensions[vrm0ExtensionName]; ok {
		var ext vrm0Extension
		if json.Unmarshal(raw, &ext) == nil {
			return ext.Meta.Title
		}
	}
	return ""
}

// skinJoints names the joints of the first skin after their nodes. Unnamed
// joints are called bone_<i>.
func (e *gltfHumanoidExtractorImpl) skinJoints() map[string]int {
	doc := e.parser.Document()
	bones := make(map[string]int)
	if len(doc.Skins) == 0 {
		return bones
	}

	for i, nodeIdx := range doc.Skins[0].Joints {
		name := doc.Nodes[nodeIdx].Name
		if name == "" {
			name = fmt.Sprintf("bone_%d", i)
		}
		if _, dup := bones[name]; dup {
			name = fmt.Sprintf("%s_%d", name, i)
		}
		bones[name] = nodeIdx
	}
	return bones
}

func (e *gltfHumanoidExtractorImpl) checkNode(bone string, node int) error {
	if node < 0 || node >= len(e.parser.Document().Nodes) {
		return fmt.Errorf("human bone %q node %d: %w", bone, node, errNodeOutOfRange)
	}
	return nil
}
