package transform

import "github.com/Carmen-Shannon/vrm-viewer/common"

// Material is the flat color and opacity a handle is drawn with.
type Material struct {
	Color   common.Color
	Opacity float64
}

func solid(c common.Color) Material                  { return Material{Color: c, Opacity: 1} }
func translucent(c common.Color, o float64) Material { return Material{Color: c, Opacity: o} }

// RGBA returns the color with the opacity folded into alpha.
func (m Material) RGBA() common.Color {
	return m.Color.WithAlpha(m.Opacity)
}

// dimmed is the appearance of a handle when the whole gizmo is disabled.
func (m Material) dimmed() Material {
	return Material{Color: m.Color.Lerp(common.White, 0.5), Opacity: m.Opacity * 0.5}
}

// highlighted is the appearance of the hovered or dragged handle.
func (m Material) highlighted() Material {
	return Material{Color: m.Color.Lerp(common.White, 0.5), Opacity: 1}
}

// faded is the appearance of handles unrelated to the active axis.
func (m Material) faded() Material {
	return Material{Color: m.Color.Lerp(common.White, 0.5), Opacity: m.Opacity * 0.25}
}

var (
	matInvisible = translucent(common.White, 0.15)
	matHelper    = translucent(common.White, 0.33)

	matRed   = solid(common.Red)
	matGreen = solid(common.Green)
	matBlue  = solid(common.Blue)

	matWhiteTransparent   = translucent(common.White, 0.25)
	matYellowTransparent  = translucent(common.Yellow, 0.25)
	matCyanTransparent    = translucent(common.Cyan, 0.25)
	matMagentaTransparent = translucent(common.Magenta, 0.25)

	matLineRed               = solid(common.Red)
	matLineGreen             = solid(common.Green)
	matLineBlue              = solid(common.Blue)
	matLineCyan              = solid(common.Cyan)
	matLineMagenta           = solid(common.Magenta)
	matLineYellow            = solid(common.Yellow)
	matLineGray              = solid(common.Gray)
	matLineYellowTransparent = translucent(common.Yellow, 0.25)
)
