package renderer

import (
	"github.com/Carmen-Shannon/vrm-viewer/common"
	"github.com/Carmen-Shannon/vrm-viewer/engine/game_object"
	"github.com/go-gl/mathgl/mgl64"
)

// LineVertex is one vertex of the line list as laid out in the vertex buffer.
type LineVertex struct {
	Position [3]float32 // offset  0: world-space position
	Color    [4]float32 // offset 12: straight RGBA
}

// lineVertexSize is the stride of LineVertex in bytes.
const lineVertexSize = 28

// Layer selects the pipeline a batch of lines is drawn with.
type Layer int

const (
	// LayerScene lines are depth tested against each other.
	LayerScene Layer = iota

	// LayerOverlay lines are drawn after the scene and ignore depth, the way
	// gizmo handles stay visible through the model.
	LayerOverlay

	layerCount
)

// LineBatch collects world-space line segments for one frame.
type LineBatch struct {
	layers  [layerCount][]LineVertex
	frustum *common.Frustum
}

// NewLineBatch creates an empty batch.
func NewLineBatch() *LineBatch {
	return &LineBatch{}
}

// Reset empties the batch, keeping its storage, and drops the cull frustum.
func (b *LineBatch) Reset() {
	for i := range b.layers {
		b.layers[i] = b.layers[i][:0]
	}
	b.frustum = nil
}

// SetFrustum enables culling of objects whose lines lie entirely outside f.
// Nil disables culling.
func (b *LineBatch) SetFrustum(f *common.Frustum) {
	b.frustum = f
}

// Add appends lines transformed by world. An odd trailing vertex is dropped.
//
// Parameters:
//   - layer: the layer to draw in
//   - lines: the object-space segments
//   - world: the object's world matrix
func (b *LineBatch) Add(layer Layer, lines *game_object.Lines, world common.Mat4) {
	if lines == nil || layer < 0 || layer >= layerCount {
		return
	}
	n := len(lines.Segments) &^ 1
	if n == 0 {
		return
	}

	if b.frustum != nil {
		center, radius := bounds(lines.Segments[:n], world)
		if !b.frustum.IntersectsSphere(center, radius) {
			return
		}
	}

	color := lines.Color.Float32()
	for _, p := range lines.Segments[:n] {
		w := mgl64.TransformCoordinate(p, world)
		b.layers[layer] = append(b.layers[layer], LineVertex{
			Position: [3]float32{float32(w.X()), float32(w.Y()), float32(w.Z())},
			Color:    color,
		})
	}
}

// AddObject appends the lines of root and its descendants. Invisible objects
// are skipped together with their subtree.
//
// Parameters:
//   - layer: the layer to draw in
//   - root: the subtree to draw
func (b *LineBatch) AddObject(layer Layer, root game_object.GameObject) {
	if root == nil || !root.Visible() {
		return
	}
	if lines := root.Lines(); lines != nil {
		b.Add(layer, lines, root.MatrixWorld())
	}
	for _, child := range root.Children() {
		b.AddObject(layer, child)
	}
}

// Count returns the number of vertices in layer.
func (b *LineBatch) Count(layer Layer) int {
	if layer < 0 || layer >= layerCount {
		return 0
	}
	return len(b.layers[layer])
}

// Vertices returns the vertices of layer. The slice is reused by Reset.
func (b *LineBatch) Vertices(layer Layer) []LineVertex {
	if layer < 0 || layer >= layerCount {
		return nil
	}
	return b.layers[layer]
}

// Marshal packs every layer in order into one vertex buffer image. Layer i
// starts at the vertex index First(i).
//
// Returns:
//   - []byte: the vertex data
func (b *LineBatch) Marshal() []byte {
	total := 0
	for _, l := range b.layers {
		total += len(l)
	}
	out := make([]byte, 0, total*lineVertexSize)
	for _, l := range b.layers {
		out = append(out, common.SliceToBytes(l)...)
	}
	return out
}

// First returns the index of the first vertex of layer in Marshal's output.
func (b *LineBatch) First(layer Layer) int {
	first := 0
	for i := Layer(0); i < layer && i < layerCount; i++ {
		first += len(b.layers[i])
	}
	return first
}

// bounds returns a world-space sphere enclosing points.
func bounds(points []common.Vec3, world common.Mat4) (common.Vec3, float64) {
	lo := mgl64.TransformCoordinate(points[0], world)
	hi := lo
	for _, p := range points[1:] {
		w := mgl64.TransformCoordinate(p, world)
		for i := range 3 {
			lo[i] = min(lo[i], w[i])
			hi[i] = max(hi[i], w[i])
		}
	}
	center := common.Lerp(lo, hi, 0.5)
	return center, center.Sub(hi).Len()
}
