package render

import (
	"github.com/lixenwraith/vi-missile/component"
)

// graphicGlyphs overrides the element glyph for shapes that read better as their own symbol
var graphicGlyphs = map[component.Graphic]rune{
	component.GraphicGuardian:           'G',
	component.GraphicFirewall:           '^',
	component.GraphicPortal:             'O',
	component.GraphicRedPortal:          'O',
	component.GraphicManaShield:         '(',
	component.GraphicReflect:            ')',
	component.GraphicBlood:              ',',
	component.GraphicBone:               '%',
	component.GraphicMetalHit:           '+',
	component.GraphicShatter:            ':',
	component.GraphicBigExplosion:       '#',
	component.GraphicNewExplosion:       '#',
	component.GraphicInferno:            'w',
	component.GraphicFireRune:           '=',
	component.GraphicRuneGlow:           '=',
	component.GraphicResurrect:          '|',
	component.GraphicAcidPuddle:         '_',
	component.GraphicSpawns:             's',
	component.GraphicEthereal:           '&',
	component.GraphicFlareExplosion:     '#',
	component.GraphicHolyExplosion:      '#',
	component.GraphicFireArrowExplosion: '#',
}

// elementGlyphs is the fallback by element
var elementGlyphs = [...]rune{
	component.ResistNone:      '*',
	component.ResistFire:      '*',
	component.ResistLightning: '~',
	component.ResistMagic:     'o',
	component.ResistAcid:      '`',
}

// glyphOf picks the character drawn for a missile
func glyphOf(m *component.Missile) rune {
	g := m.Anim.Graphic
	switch g {
	case component.GraphicArrows, component.GraphicFireArrow, component.GraphicLightningArrow:
		return shaftGlyph(m.Position.Tile.X-m.Position.Start.X, m.Position.Tile.Y-m.Position.Start.Y)
	}
	if r, ok := graphicGlyphs[g]; ok {
		return r
	}
	res := m.Info().Resist
	if int(res) < len(elementGlyphs) {
		return elementGlyphs[res]
	}
	return '*'
}

// shaftGlyph draws an arrow along its flight from the launch tile
func shaftGlyph(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '*'
	case dx == 0:
		return '|'
	case dy == 0:
		return '-'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}
