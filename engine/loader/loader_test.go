package loader

import (
	"bytes"
	"encoding/binary"
	"errors"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hierarchyGLTF = `{
  "asset": {"version": "2.0"},
  "scene": 0,
  "scenes": [{"name": "", "nodes": [0]}],
  "nodes": [
    {"name": "Armature", "children": [1]},
    {"name": "Hips", "translation": [0, 1, 0], "children": [2, 3]},
    {"name": "Spine", "translation": [0, 0.5, 0], "rotation": [0, 0, 0.7071068, 0.7071068]},
    {"name": "", "matrix": [2,0,0,0, 0,2,0,0, 0,0,2,0, 1,2,3,1]}
  ],
  "meshes": [{"name": "Body"}]
}`

const vrm0GLTF = `{
  "asset": {"version": "2.0"},
  "nodes": [
    {"name": "root", "children": [1]},
    {"name": "J_Bip_C_Hips", "translation": [0, 1, 0], "children": [2]},
    {"name": "J_Bip_C_Head", "translation": [0, 0.6, 0]}
  ],
  "extensions": {
    "VRM": {
      "meta": {"title": "Alicia"},
      "humanoid": {"humanBones": [
        {"bone": "hips", "node": 1},
        {"bone": "head", "node": 2},
        {"bone": "jaw", "node": -1}
      ]}
    }
  }
}`

const vrm1GLTF = `{
  "asset": {"version": "2.0"},
  "scenes": [{"nodes": [0]}],
  "nodes": [
    {"name": "Hips", "children": [1]},
    {"name": "Neck", "translation": [0, 1.4, 0]}
  ],
  "extensions": {
    "VRMC_vrm": {
      "specVersion": "1.0",
      "meta": {"name": "Seed-san"},
      "humanoid": {"humanBones": {"hips": {"node": 0}, "neck": {"node": 1}}}
    },
    "VRM": {"humanoid": {"humanBones": [{"bone": "hips", "node": 1}]}}
  }
}`

const skinnedGLTF = `{
  "asset": {"version": "2.0"},
  "nodes": [
    {"name": "mesh", "skin": 0},
    {"name": "Root", "children": [2]},
    {"name": "", "translation": [0, 1, 0]}
  ],
  "skins": [{"joints": [1, 2]}]
}`

// glb wraps doc into a binary container with a trailing BIN chunk.
func glb(t *testing.T, doc string) []byte {
	t.Helper()
	jsonChunk := []byte(doc)
	for len(jsonChunk)%4 != 0 {
		jsonChunk = append(jsonChunk, ' ')
	}
	bin := []byte{1, 2, 3, 4}

	var buf bytes.Buffer
	total := 12 + 8 + len(jsonChunk) + 8 + len(bin)
	write := func(v any) { require.NoError(t, binary.Write(&buf, binary.LittleEndian, v)) }
	write(gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: uint32(total)})
	write(gltfGLBChunkHeader{ChunkLength: uint32(len(jsonChunk)), ChunkType: gltfGLBChunkJSON})
	buf.Write(jsonChunk)
	write(gltfGLBChunkHeader{ChunkLength: uint32(len(bin)), ChunkType: gltfGLBChunkBIN})
	buf.Write(bin)
	return buf.Bytes()
}

func quietLoader(options ...LoaderBuilderOption) Loader {
	options = append([]LoaderBuilderOption{WithLogger(log.New(&bytes.Buffer{}, "", 0))}, options...)
	return NewLoader(BackendTypeGLTF, options...)
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadReaderBuildsHierarchy(t *testing.T) {
	l := quietLoader()

	m, err := l.LoadReader("hierarchy.gltf", strings.NewReader(hierarchyGLTF), false)
	require.NoError(t, err)

	assert.Equal(t, "hierarchy", m.Name())
	assert.Equal(t, model.FormatGLTF, m.Format())
	assert.Equal(t, 1, m.MeshCount())
	require.Len(t, m.Nodes(), 4)

	nodes := m.Nodes()
	require.Len(t, m.Root().Children(), 1)
	assert.Equal(t, nodes[0], m.Root().Children()[0])
	assert.Equal(t, nodes[1], nodes[2].Parent())
	assert.Equal(t, nodes[1], nodes[3].Parent())
	assert.Equal(t, "node_3", nodes[3].Name())

	assert.InDelta(t, 0, nodes[2].WorldPosition().Sub(common.V3(0, 1.5, 0)).Len(), 1e-6)
	assert.InDelta(t, math.Pi/2, nodes[2].Rotation().Z, 1e-6)

	assert.InDelta(t, 0, nodes[3].Position().Sub(common.V3(1, 2, 3)).Len(), 1e-9)
	assert.InDelta(t, 0, nodes[3].Scale().Sub(common.Splat(2)).Len(), 1e-9)
	assert.InDelta(t, 0, nodes[3].WorldPosition().Sub(common.V3(1, 3, 3)).Len(), 1e-9)

	assert.Same(t, m, l.Get("hierarchy.gltf"))
}

func TestVRM0HumanBones(t *testing.T) {
	m, err := quietLoader().LoadReader("alicia.vrm", strings.NewReader(vrm0GLTF), false)
	require.NoError(t, err)

	assert.Equal(t, model.FormatVRM0, m.Format())
	assert.Equal(t, "Alicia", m.Name())
	assert.Equal(t, []string{"head", "hips"}, m.HumanBoneNames())
	assert.Equal(t, "J_Bip_C_Hips", m.HumanBone("hips").Name())
	assert.Nil(t, m.HumanBone("jaw"), "unassigned bones are skipped")

	lines := m.SkeletonLines(common.Gray)
	require.Len(t, lines.Segments, 2)
	assert.InDelta(t, 0, lines.Segments[1].Sub(common.V3(0, 1.6, 0)).Len(), 1e-9)
}

func TestVRM1TakesPrecedence(t *testing.T) {
	m, err := quietLoader().LoadReader("seed.vrm", strings.NewReader(vrm1GLTF), false)
	require.NoError(t, err)

	assert.Equal(t, model.FormatVRM1, m.Format())
	assert.Equal(t, "Seed-san", m.Name())
	assert.Equal(t, "Hips", m.HumanBone("hips").Name())
	assert.Equal(t, "Neck", m.HumanBone("neck").Name())
}

func TestSkinJointFallback(t *testing.T) {
	m, err := quietLoader().LoadReader("rig", strings.NewReader(skinnedGLTF), false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Root", "bone_1"}, m.HumanBoneNames())
	// mesh and Root are both scene roots when no scene is declared
	assert.Len(t, m.Root().Children(), 2)
}

func TestLoadGLBFromReader(t *testing.T) {
	m, err := quietLoader().LoadReader("avatar.vrm", bytes.NewReader(glb(t, vrm1GLTF)), true)
	require.NoError(t, err)
	assert.Equal(t, model.FormatVRM1, m.Format())

	m, err = quietLoader().LoadReader("plain.glb", bytes.NewReader(glb(t, hierarchyGLTF)), true)
	require.NoError(t, err)
	assert.Equal(t, model.FormatGLB, m.Format())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		isGLB bool
		want  error
	}{
		{"version", []byte(`{"asset": {"version": "1.0"}}`), false, errInvalidGLTFVersion},
		{"child out of range", []byte(`{"asset": {"version": "2.0"}, "nodes": [{"children": [5]}]}`), false, errNodeOutOfRange},
		{"scene root out of range", []byte(`{"asset": {"version": "2.0"}, "scenes": [{"nodes": [1]}]}`), false, errNodeOutOfRange},
		{"human bone out of range", []byte(`{"asset": {"version": "2.0"}, "extensions": {"VRMC_vrm": {"humanoid": {"humanBones": {"hips": {"node": 3}}}}}}`), false, errNodeOutOfRange},
		{"glb too small", []byte{1, 2, 3}, true, errGLBTooSmall},
		{"glb magic", make([]byte, 20), true, errInvalidGLBMagic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := quietLoader().LoadReader(tt.name, bytes.NewReader(tt.data), tt.isGLB)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}
}

func TestGLBWithoutJSONChunk(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, gltfGLBHeader{Magic: gltfGLBMagic, Version: gltfGLBVersion, Length: 20}))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, gltfGLBChunkHeader{ChunkLength: 0, ChunkType: gltfGLBChunkBIN}))

	_, err := quietLoader().LoadReader("empty.glb", &buf, true)
	assert.ErrorIs(t, err, errMissingJSONChunk)
}

func TestCycleIsBroken(t *testing.T) {
	doc := `{"asset": {"version": "2.0"}, "nodes": [{"name": "a", "children": [1]}, {"name": "b", "children": [0]}]}`
	m, err := quietLoader().LoadReader("cycle", strings.NewReader(doc), false)
	require.NoError(t, err)

	nodes := m.Nodes()
	assert.Equal(t, nodes[0], nodes[1].Parent())
	assert.Nil(t, nodes[0].Parent())
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	gltfPath := writeFile(t, dir, "scene.gltf", []byte(hierarchyGLTF))
	vrmPath := writeFile(t, dir, "avatar.vrm", glb(t, vrm0GLTF))
	l := quietLoader()

	m, err := l.Load(gltfPath)
	require.NoError(t, err)
	assert.Equal(t, gltfPath, m.Source())

	again, err := l.Load(gltfPath)
	require.NoError(t, err)
	assert.Same(t, m, again, "cached")

	reloaded, err := l.Reload(gltfPath)
	require.NoError(t, err)
	assert.NotSame(t, m, reloaded)
	assert.Same(t, reloaded, l.Get(gltfPath))

	vrm, err := l.Load(vrmPath)
	require.NoError(t, err)
	assert.Equal(t, model.FormatVRM0, vrm.Format())

	assert.Len(t, l.Models(), 2)
	l.Evict(vrmPath)
	assert.Nil(t, l.Get(vrmPath))
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := quietLoader().Load("avatar.fbx")
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestReloadKeepsCacheOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.gltf", []byte(hierarchyGLTF))
	l := quietLoader()
	m, err := l.Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = l.Reload(path)
	require.Error(t, err)
	assert.Same(t, m, l.Get(path))
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.gltf", []byte(hierarchyGLTF)),
		filepath.Join(dir, "missing.glb"),
		writeFile(t, dir, "c.vrm", glb(t, vrm1GLTF)),
		writeFile(t, dir, "d.gltf", []byte(vrm0GLTF)),
	}

	models, err := quietLoader(WithWorkers(2)).LoadAll(paths)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.glb")

	require.Len(t, models, 4)
	assert.Equal(t, "a", models[0].Name())
	assert.Nil(t, models[1])
	assert.Equal(t, model.FormatVRM1, models[2].Format())
	assert.Equal(t, model.FormatVRM0, models[3].Format())
}

func TestLoadAllEmpty(t *testing.T) {
	models, err := quietLoader().LoadAll(nil)
	assert.NoError(t, err)
	assert.Empty(t, models)
}

func TestWithModelPrepopulatesCache(t *testing.T) {
	m := model.NewModel(model.WithName("stub"))
	l := quietLoader(WithModel("stub.vrm", m))

	got, err := l.Load("stub.vrm")
	require.NoError(t, err)
	assert.Same(t, m, got)
}
