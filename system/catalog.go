package system

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// handler is the per-kind behaviour pair, either half may be nil
type handler struct {
	init   func(s *MissileSystem, m *component.Missile, args spawnArgs)
	update func(s *MissileSystem, m *component.Missile)
}

// catalog dispatches by kind, filled in init to break the Spawn reference cycle
var catalog [component.KindCount]handler

func init() {
	catalog = [component.KindCount]handler{
		component.KindArrow:                {initArrow, updateArrow},
		component.KindFirebolt:             {initFirebolt, updateBolt},
		component.KindGuardian:             {initGuardian, updateGuardian},
		component.KindRandomTeleport:       {initRandomTeleport, updateTeleport},
		component.KindLightball:            {initLightball, updateLightball},
		component.KindFirewall:             {initFirewall, updateFirewall},
		component.KindFireball:             {initFireball, updateFireball},
		component.KindLightningControl:     {initLightningControl, updateLightningControl},
		component.KindLightning:            {initLightning, updateLightning},
		component.KindExplosion:            {initExplosion, updateExplosion},
		component.KindTownPortal:           {initTownPortal, updatePortal},
		component.KindFlash:                {initFlash, updateFlash},
		component.KindFlashBack:            {initFlashBack, updateFlash},
		component.KindManaShield:           {initManaShield, nil},
		component.KindFireMove:             {initFireMove, updateFireMove},
		component.KindChainLightning:       {initChainLightning, updateChainLightning},
		component.KindRhino:                {initRhino, updateRhino},
		component.KindMagmaBall:            {initMagmaBall, updateBolt},
		component.KindLightningControlThin: {initLightningControl, updateLightningControl},
		component.KindLightningThin:        {initLightning, updateLightning},
		component.KindFlare:                {initFlare, updateBolt},
		component.KindFlareExplosion:       {initExplosion, updateExplosion},
		component.KindTeleport:             {initTeleport, updateTeleport},
		component.KindFireArrow:            {initElementalArrow, updateElementalArrow},
		component.KindStone:                {initStone, updateStone},
		component.KindGolem:                {initGolem, nil},
		component.KindBoom:                 {initBoom, updateBoom},
		component.KindHeal:                 {initHeal, nil},
		component.KindFirewallControl:      {initWallControl, updateFirewallControl},
		component.KindInfravision:          {initInfravision, updateInfravision},
		component.KindIdentify:             {initIdentify, nil},
		component.KindFlameWave:            {initFlameWave, updateFlameWave},
		component.KindNova:                 {initNova, updateNova},
		component.KindBloodBoil:            {initBloodBoil, updateBloodBoil},
		component.KindApocalypse:           {initApocalypse, updateApocalypse},
		component.KindRepair:               {initRepair, nil},
		component.KindRecharge:             {initRecharge, nil},
		component.KindDisarm:               {initDisarm, nil},
		component.KindFlame:                {initFlame, updateFlame},
		component.KindFlameControl:         {initFlameControl, updateFlameControl},
		component.KindChargedBolt:          {initChargedBolt, updateChargedBolt},
		component.KindHolyBolt:             {initHolyBolt, updateHolyBolt},
		component.KindResurrect:            {initResurrect, nil},
		component.KindTelekinesis:          {initTelekinesis, nil},
		component.KindLightningArrow:       {initElementalArrow, updateElementalArrow},
		component.KindAcid:                 {initAcid, updateBolt},
		component.KindAcidSplat:            {initExplosion, updateAcidSplat},
		component.KindAcidPuddle:           {initAcidPuddle, updateAcidPuddle},
		component.KindHealOther:            {initHealOther, nil},
		component.KindElemental:            {initElemental, updateElemental},
		component.KindResurrectBeam:        {initResurrectBeam, updateResurrectBeam},
		component.KindBoneSpirit:           {initBoneSpirit, updateBoneSpirit},
		component.KindWeaponExplosion:      {initWeaponExplosion, updateWeaponExplosion},
		component.KindRedPortal:            {initRedPortal, updatePortal},
		component.KindDiabloBoom:           {initBoom, updateBoom},
		component.KindDiabloApocalypse:     {initDiabloApocalypse, nil},
		component.KindMana:                 {initMana, nil},
		component.KindMagi:                 {initMagi, nil},
		component.KindLightningWall:        {initLightningWall, updateLightningWall},
		component.KindLightningWallControl: {initWallControl, updateLightningWallControl},
		component.KindImmolation:           {initNova, updateImmolation},
		component.KindSpecialArrow:         {initSpecialArrow, updateSpecialArrow},
		component.KindFireNova:             {initFireNova, updateFireball},
		component.KindLightningTrailArrow:  {initLightningTrailArrow, updateLightningTrailArrow},
		component.KindChargedBoltArrow:     {initChargedBoltArrow, updateChargedBolt},
		component.KindHolyBoltArrow:        {initHolyBolt, updateHolyBolt},
		component.KindWarp:                 {initWarp, updateTeleport},
		component.KindReflect:              {initReflect, nil},
		component.KindBerserk:              {initBerserk, nil},
		component.KindFireRing:             {initFireRing, updateFireRing},
		component.KindStealPotions:         {initStealPotions, nil},
		component.KindManaTrap:             {initManaTrap, nil},
		component.KindSearch:               {initSearch, updateSearch},
		component.KindFireRune:             {runeOf(component.KindRuneExplosion), updateRune},
		component.KindLightningRune:        {initLightningRune, updateRune},
		component.KindGreatLightningRune:   {runeOf(component.KindNova), updateRune},
		component.KindImmolationRune:       {runeOf(component.KindImmolation), updateRune},
		component.KindStoneRune:            {runeOf(component.KindStone), updateRune},
		component.KindRuneExplosion:        {initRuneExplosion, updateBurst},
		component.KindHorkSpawn:            {initHorkSpawn, updateHorkSpawn},
		component.KindJester:               {initJester, nil},
		component.KindHiveExplosion:        {initHiveExplosion, nil},
		component.KindLichBolt:             {initFirebolt, updateBolt},
		component.KindPsychOrb:             {initFirebolt, updateBolt},
		component.KindNecromancerOrb:       {initFirebolt, updateBolt},
		component.KindArchLichBolt:         {initFirebolt, updateBolt},
		component.KindBoneDemonBolt:        {initFirebolt, updateBolt},
		component.KindExplosionYellow:      {initExplosion, updateExplosion},
		component.KindExplosionRed:         {initExplosion, updateExplosion},
		component.KindExplosionBlue:        {initExplosion, updateExplosion},
		component.KindExplosionBlueLarge:   {initExplosion, updateExplosion},
		component.KindExplosionOrange:      {initExplosion, updateExplosion},
	}
}

// --- Actor helpers ---

// player returns the casting player, nil for traps and monster casters
func (s *MissileSystem) player(m *component.Missile) *component.Player {
	if m.Source < 0 || m.Target == component.TargetPlayers {
		return nil
	}
	return s.world.Actors.Player(m.Source)
}

// monster returns the casting monster, nil unless the missile targets players
func (s *MissileSystem) monster(m *component.Missile) *component.Monster {
	if m.Source < 0 || m.Target != component.TargetPlayers {
		return nil
	}
	return s.world.Actors.Monster(m.Source)
}

// playerLevel returns the caster's character level, fallback when there is none
func (s *MissileSystem) playerLevel(m *component.Missile, fallback int) int {
	if p := s.player(m); p != nil {
		return p.Level
	}
	return fallback
}

// playerDir is the caster's facing, South for traps and monsters
func (s *MissileSystem) playerDir(m *component.Missile) core.Direction {
	if p := s.player(m); p != nil {
		return p.Dir
	}
	return core.South
}

// spellDuration is the caster's item duration bonus
func (s *MissileSystem) spellDuration(m *component.Missile) int {
	if p := s.player(m); p != nil {
		return p.SpellDuration
	}
	return 0
}

// useMana charges the caster for a player-cast spell, spawned children are free
func (s *MissileSystem) useMana(m *component.Missile, spell component.Spell) {
	if m.Target != component.TargetMonsters || m.ParentID != 0 {
		return
	}
	if p := s.player(m); p != nil {
		s.world.Reactions.UseMana(p, spell)
	}
}

// rollMonster rolls the caster monster's melee damage range
func (s *MissileSystem) rollMonster(mon *component.Monster) int {
	return mon.MinDamage + s.world.Rnd(mon.MaxDamage-mon.MinDamage+1)
}

// --- Light helpers ---

func (s *MissileSystem) addLight(m *component.Missile, radius int) {
	m.Light = s.world.Lights.Add(m.Position.Tile, radius)
	m.LightBorrowed = false
}

func (s *MissileSystem) changeLight(m *component.Missile, radius int) {
	if m.Light != component.NoLight {
		s.world.Lights.Change(m.Light, m.Position.Tile, radius)
	}
}

// trailLight moves the light along when the missile entered a new tile
func (s *MissileSystem) trailLight(m *component.Missile, last *core.Point, radius int) {
	if m.Position.Tile == *last {
		return
	}
	*last = m.Position.Tile
	s.changeLight(m, radius)
}

// --- Animation helpers ---

// setFacing switches sprite group keeping the graphic
func setFacing(m *component.Missile, facing int) {
	m.Anim.SetFacing(facing)
}

// setGraphic switches graphic keeping the facing
func setGraphic(m *component.Missile, g component.Graphic) {
	m.Anim.SetGraphic(g)
}

// destination steps off the origin when the target is the origin itself
func destination(m *component.Missile, args spawnArgs) core.Point {
	if args.dst == m.Position.Start {
		return args.dst.Step(args.dir)
	}
	return args.dst
}

// expire flags the missile when its range ran out
func expire(m *component.Missile) {
	if m.Range == 0 {
		m.Deleted = true
	}
}
