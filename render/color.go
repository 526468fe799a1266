package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-missile/component"
)

// RGB is a truecolor triple
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack     = RGB{0, 0, 0}
	RGBFloor     = RGB{90, 80, 70}
	RGBWall      = RGB{150, 140, 125}
	RGBStairs    = RGB{230, 210, 120}
	RGBObject    = RGB{170, 120, 60}
	RGBPlayer    = RGB{240, 240, 240}
	RGBMonster   = RGB{210, 60, 60}
	RGBGolem     = RGB{120, 200, 120}
	RGBPetrified = RGB{130, 130, 140}
	RGBHUD       = RGB{160, 200, 255}
)

// resistColors tints missiles by element
var resistColors = [...]RGB{
	component.ResistNone:      {220, 220, 200},
	component.ResistFire:      {255, 140, 40},
	component.ResistLightning: {120, 220, 255},
	component.ResistMagic:     {170, 120, 255},
	component.ResistAcid:      {120, 230, 60},
}

// colorOfResist returns the missile tint of an element, unknown elements are neutral
func colorOfResist(r component.Resist) RGB {
	if int(r) >= len(resistColors) {
		return resistColors[component.ResistNone]
	}
	return resistColors[r]
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Scale multiplies every channel by f
func (c RGB) Scale(f float64) RGB {
	return RGB{clamp(float64(c.R) * f), clamp(float64(c.G) * f), clamp(float64(c.B) * f)}
}

// Lerp blends toward o by t in 0..1
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		clamp(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		clamp(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		clamp(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// Tcell converts to a terminal color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
