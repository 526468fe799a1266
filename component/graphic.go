package component

// Graphic identifies a missile sprite sheet
type Graphic uint8

const (
	GraphicArrows Graphic = iota
	GraphicFireball
	GraphicGuardian
	GraphicLightning
	GraphicFirewall
	GraphicMagicBlast
	GraphicPortal
	GraphicBlueFlash
	GraphicBlueFlashBack
	GraphicManaShield
	GraphicBlood
	GraphicBone
	GraphicMetalHit
	GraphicFireArrow
	GraphicDoom
	GraphicNewExplosion
	GraphicShatter
	GraphicBigExplosion
	GraphicInferno
	GraphicThinLightning
	GraphicFlare
	GraphicFlareExplosion
	GraphicMagmaBall
	GraphicKrull
	GraphicMiniLightning
	GraphicHolyBolt
	GraphicHolyExplosion
	GraphicLightningArrow
	GraphicFireArrowExplosion
	GraphicAcid
	GraphicAcidSplash
	GraphicAcidPuddle
	GraphicEthereal
	GraphicFireRune
	GraphicResurrect
	GraphicSkullBall
	GraphicRedPortal
	GraphicFireSpout
	GraphicSnowWitchBolt
	GraphicSnowWitchExplosion
	GraphicSoulBurnerBolt
	GraphicSoulBurnerExplosion
	GraphicHellSpawnBolt
	GraphicHellSpawnExplosion
	GraphicSpawns
	GraphicReflect
	GraphicOrangeOrb
	GraphicBlackOrb
	GraphicRedOrb
	GraphicYellowOrb
	GraphicBlueOrb
	GraphicRuneGlow
	GraphicExplosionYellow
	GraphicExplosionBlue
	GraphicExplosionRed
	GraphicExplosionBlueLarge
	GraphicExplosionOrange
	GraphicNone
	GraphicCount
)

// GraphicInfo describes the frame layout of a sprite sheet
// Len and Delay hold one entry per facing, or a single entry shared by all facings
type GraphicInfo struct {
	Name        string
	Facings     int
	Len         []int
	Delay       []int
	NotAnimated bool // Frame is chosen by the caller, never advanced
}

var graphicInfo = [GraphicCount]GraphicInfo{
	GraphicArrows:              {"arrows", 1, []int{16}, []int{0}, true},
	GraphicFireball:            {"fireball", 16, []int{14}, []int{0}, false},
	GraphicGuardian:            {"guardian", 3, []int{15, 14, 3}, []int{1}, false},
	GraphicLightning:           {"lightning", 1, []int{8}, []int{1}, false},
	GraphicFirewall:            {"firewall", 2, []int{13, 11}, []int{1}, false},
	GraphicMagicBlast:          {"magic_blast", 1, []int{10}, []int{1}, false},
	GraphicPortal:              {"portal", 2, []int{16}, []int{1}, false},
	GraphicBlueFlash:           {"blue_flash", 1, []int{19}, []int{0}, false},
	GraphicBlueFlashBack:       {"blue_flash_back", 1, []int{19}, []int{0}, false},
	GraphicManaShield:          {"mana_shield", 1, []int{1}, []int{0}, true},
	GraphicBlood:               {"blood", 4, []int{15}, []int{0}, false},
	GraphicBone:                {"bone", 3, []int{8}, []int{1}, false},
	GraphicMetalHit:            {"metal_hit", 3, []int{10}, []int{0}, false},
	GraphicFireArrow:           {"fire_arrow", 16, []int{4}, []int{0}, false},
	GraphicDoom:                {"doom", 9, []int{15}, []int{1}, false},
	GraphicNewExplosion:        {"new_explosion", 1, []int{15}, []int{1}, false},
	GraphicShatter:             {"shatter", 1, []int{12}, []int{0}, false},
	GraphicBigExplosion:        {"big_explosion", 1, []int{15}, []int{0}, false},
	GraphicInferno:             {"inferno", 1, []int{20}, []int{0}, false},
	GraphicThinLightning:       {"thin_lightning", 1, []int{8}, []int{1}, false},
	GraphicFlare:               {"flare", 16, []int{16}, []int{0}, false},
	GraphicFlareExplosion:      {"flare_explosion", 1, []int{7}, []int{0}, false},
	GraphicMagmaBall:           {"magma_ball", 8, []int{16}, []int{1}, false},
	GraphicKrull:               {"krull", 1, []int{14}, []int{0}, false},
	GraphicMiniLightning:       {"mini_lightning", 1, []int{8}, []int{1}, false},
	GraphicHolyBolt:            {"holy_bolt", 16, []int{14}, []int{1}, false},
	GraphicHolyExplosion:       {"holy_explosion", 1, []int{8}, []int{1}, false},
	GraphicLightningArrow:      {"lightning_arrow", 16, []int{8}, []int{1}, false},
	GraphicFireArrowExplosion:  {"fire_arrow_explosion", 1, []int{6}, []int{1}, false},
	GraphicAcid:                {"acid", 16, []int{8}, []int{1}, false},
	GraphicAcidSplash:          {"acid_splash", 1, []int{8}, []int{1}, false},
	GraphicAcidPuddle:          {"acid_puddle", 2, []int{9, 4}, []int{1}, false},
	GraphicEthereal:            {"ethereal", 1, []int{1}, []int{0}, true},
	GraphicFireRune:            {"fire_rune", 8, []int{8}, []int{1}, false},
	GraphicResurrect:           {"resurrect", 1, []int{16}, []int{0}, false},
	GraphicSkullBall:           {"skull_ball", 9, []int{16, 16, 16, 16, 16, 16, 16, 16, 8}, []int{1}, false},
	GraphicRedPortal:           {"red_portal", 2, []int{16}, []int{1}, false},
	GraphicFireSpout:           {"fire_spout", 1, []int{17}, []int{1}, false},
	GraphicSnowWitchBolt:       {"snow_witch_bolt", 16, []int{16}, []int{0}, false},
	GraphicSnowWitchExplosion:  {"snow_witch_explosion", 1, []int{7}, []int{0}, false},
	GraphicSoulBurnerBolt:      {"soul_burner_bolt", 16, []int{16}, []int{0}, false},
	GraphicSoulBurnerExplosion: {"soul_burner_explosion", 1, []int{7}, []int{0}, false},
	GraphicHellSpawnBolt:       {"hell_spawn_bolt", 16, []int{16}, []int{0}, false},
	GraphicHellSpawnExplosion:  {"hell_spawn_explosion", 1, []int{7}, []int{0}, false},
	GraphicSpawns:              {"spawns", 8, []int{9}, []int{1}, false},
	GraphicReflect:             {"reflect", 1, []int{1}, []int{0}, true},
	GraphicOrangeOrb:           {"orange_orb", 16, []int{15}, []int{0}, false},
	GraphicBlackOrb:            {"black_orb", 16, []int{15}, []int{0}, false},
	GraphicRedOrb:              {"red_orb", 16, []int{15}, []int{0}, false},
	GraphicYellowOrb:           {"yellow_orb", 16, []int{15}, []int{0}, false},
	GraphicBlueOrb:             {"blue_orb", 16, []int{15}, []int{0}, false},
	GraphicRuneGlow:            {"rune_glow", 1, []int{10}, []int{1}, false},
	GraphicExplosionYellow:     {"explosion_yellow", 1, []int{10}, []int{0}, false},
	GraphicExplosionBlue:       {"explosion_blue", 1, []int{10}, []int{0}, false},
	GraphicExplosionRed:        {"explosion_red", 1, []int{7}, []int{0}, false},
	GraphicExplosionBlueLarge:  {"explosion_blue_large", 1, []int{16}, []int{0}, false},
	GraphicExplosionOrange:     {"explosion_orange", 1, []int{13}, []int{0}, false},
	GraphicNone:                {"none", 1, []int{1}, []int{0}, false},
}

// GraphicOf returns the layout for g, clamping unknown values to GraphicNone
func GraphicOf(g Graphic) *GraphicInfo {
	if g >= GraphicCount {
		return &graphicInfo[GraphicNone]
	}
	return &graphicInfo[g]
}

func (g Graphic) String() string {
	return GraphicOf(g).Name
}

func pick(values []int, facing int) int {
	if len(values) == 0 {
		return 0
	}
	if facing < 0 || facing >= len(values) {
		return values[0]
	}
	return values[facing]
}

// LenOf returns the frame count of the given facing
func (g *GraphicInfo) LenOf(facing int) int { return pick(g.Len, facing) }

// DelayOf returns the ticks between frames of the given facing
func (g *GraphicInfo) DelayOf(facing int) int { return pick(g.Delay, facing) }

// SetGraphic switches the animation to graphic g keeping the facing, restarting at frame 1
func (a *Animation) SetGraphic(g Graphic) {
	if g >= GraphicCount {
		g = GraphicNone
	}
	info := GraphicOf(g)
	a.Graphic = g
	a.NotAnimated = info.NotAnimated
	a.Delay = info.DelayOf(a.Facing)
	a.Len = info.LenOf(a.Facing)
	a.Count = 0
	a.Frame = 1
}

// SetFacing selects a sprite group and restarts the current graphic
func (a *Animation) SetFacing(facing int) {
	a.Facing = facing
	a.SetGraphic(a.Graphic)
}

// Advance steps the frame counter, wrapping in both directions
func (a *Animation) Advance() {
	if a.NotAnimated {
		return
	}
	a.Count++
	if a.Count < a.Delay {
		return
	}
	a.Count = 0
	a.Frame += a.Add
	if a.Frame > a.Len {
		a.Frame = 1
	} else if a.Frame < 1 {
		a.Frame = a.Len
	}
}
