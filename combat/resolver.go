package combat

import (
	"sync/atomic"

	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
	"github.com/lixenwraith/vi-missile/engine"
	"github.com/lixenwraith/vi-missile/parameter"
	"github.com/lixenwraith/vi-missile/status"
)

// Attack is one damage roll request from a missile
// Class and Resist start from the kind metadata and may be overridden per missile
type Attack struct {
	Kind     component.Kind
	Class    component.DamageClass
	Resist   component.Resist
	Source   int
	Min      int
	Max      int
	Distance int
	Shifted  bool // Min and Max are already in 1/64 units
}

// AttackOf builds the attack of missile m for the given damage range
func AttackOf(m *component.Missile, minDam, maxDam int, shifted bool) Attack {
	info := m.Info()
	return Attack{
		Kind:     m.Kind,
		Class:    info.Class,
		Resist:   info.Resist,
		Source:   m.Source,
		Min:      minDam,
		Max:      maxDam,
		Distance: m.Distance,
		Shifted:  shifted,
	}
}

// IsPhysical reports whether the attack uses ranged to-hit
func (a Attack) IsPhysical() bool {
	return a.Class == component.ClassPhysical
}

func (a Attack) roll(w *engine.World) int {
	return a.Min + w.Rnd(a.Max-a.Min+1)
}

// Resolver decides hits and applies damage for every missile collision
type Resolver struct {
	world *engine.World

	statHits     *atomic.Int64
	statBlocks   *atomic.Int64
	statResisted *atomic.Int64
}

// NewResolver creates a resolver bound to the world's collaborators
func NewResolver(w *engine.World) *Resolver {
	return &Resolver{
		world:        w,
		statHits:     w.Status.Ints.Get(status.CombatHits),
		statBlocks:   w.Status.Ints.Get(status.CombatBlocks),
		statResisted: w.Status.Ints.Get(status.CombatResisted),
	}
}

// --- Hit chance ---

func clampHit(v int) int {
	return max(parameter.HitChanceMin, min(v, parameter.HitChanceMax))
}

// MonsterHitChance is the chance in percent of player p striking monster m
func MonsterHitChance(p *component.Player, m *component.Monster, a Attack) int {
	var hper int
	if a.IsPhysical() {
		hper = p.RangedToHit - p.ArmorAfterPierce(m.Armor) - a.Distance*a.Distance/2
	} else {
		hper = p.MagicToHit - m.Level*2 - a.Distance
	}
	return clampHit(hper)
}

// TrapHitChance is the chance in percent of an environment missile striking monster m
func TrapHitChance(m *component.Monster, distance int) int {
	return clampHit(parameter.TrapHitBase - m.Armor - distance)
}

// PvPHitChance is the chance in percent of attacker striking target
func PvPHitChance(attacker, target *component.Player, a Attack) int {
	var hit int
	if a.IsPhysical() {
		hit = attacker.RangedToHit - a.Distance*a.Distance/2 - target.Armor
	} else {
		hit = attacker.MagicToHit - target.Level*2 - a.Distance
	}
	return clampHit(hit)
}

// PlayerHitFloor is the minimum chance of a missile striking a player at depth
func PlayerHitFloor(depth int) int {
	for _, f := range parameter.PlayerHitFloors {
		if f.Depth == depth {
			return f.Floor
		}
	}
	return parameter.PlayerHitFloorDefault
}

// PlayerHitChance is the chance in percent of a missile striking player p
// monster is nil for traps
func PlayerHitChance(p *component.Player, monster *component.Monster, a Attack, depth int) int {
	hper := parameter.PlayerHitBase
	if a.IsPhysical() {
		if monster != nil {
			hper = monster.ToHit + (monster.Level-p.Level)*2 + 30 - a.Distance*2 - p.Armor
		} else {
			hper = 100 - p.Armor/2 - a.Distance*2
		}
	} else if monster != nil {
		hper += monster.Level*2 - p.Level*2 - a.Distance*2
	}
	return min(max(hper, PlayerHitFloor(depth)), parameter.PlayerHitChanceMax)
}

func resistOf(p *component.Player, r component.Resist) int {
	switch r {
	case component.ResistFire:
		return p.FireResist
	case component.ResistLightning:
		return p.LightningResist
	case component.ResistMagic, component.ResistAcid:
		return p.MagicResist
	default:
		return 0
	}
}

// --- Monster targets ---

// MonsterHitByPlayer resolves a player or sourceless missile against monster mid
func (r *Resolver) MonsterHitByPlayer(a Attack, mid int) bool {
	w := r.world
	m := w.Actors.Monster(mid)
	if m == nil || !m.IsPossibleToHit() || m.IsImmune(a.Kind, a.Resist) {
		return false
	}

	var p *component.Player
	if a.Source >= 0 {
		p = w.Actors.Player(a.Source)
	}

	hit := w.Rnd(100)
	var hper int
	if p != nil {
		hper = MonsterHitChance(p, m, a)
	} else {
		hper = clampHit(w.Rnd(75) - m.Level*2)
	}
	if m.Petrified {
		hit = 0
	}
	if m.TryLiftDormant() {
		return true
	}
	if hit >= hper {
		return false
	}

	var dam int
	if a.Kind == component.KindBoneSpirit {
		dam = m.HitPoints / 3 >> parameter.DamageShift
	} else {
		dam = a.roll(w)
	}
	if p != nil && a.IsPhysical() && a.Resist == component.ResistNone {
		dam = p.BonusDamageMod + dam*p.BonusDamage/100 + dam
		if p.Class == component.ClassRogue {
			dam += p.DamageMod
		} else {
			dam += p.DamageMod / 2
		}
		if m.Class == component.ClassDemon && p.HasEffect(component.EffectTripleDemonDamage) {
			dam *= 3
		}
	}

	resist := m.IsResistant(a.Kind, a.Resist)
	if !a.Shifted {
		dam <<= parameter.DamageShift
	}
	if resist {
		dam >>= 2
	}

	// Remote casters report their own hits over the net
	if p == nil || w.IsLocal(a.Source) {
		m.HitPoints -= dam
	}
	if p != nil {
		if (w.Level.Hellfire && p.HasEffect(component.EffectNoHealOnMonsters)) ||
			(!w.Level.Hellfire && p.HasEffect(component.EffectFireArrows)) {
			m.Flags |= component.MonsterNoHeal
		}
	}

	r.statHits.Add(1)
	switch {
	case !m.IsAlive():
		w.Log.Debug().Int("monster", m.ID).Int("killer", a.Source).Str("kind", a.Kind.String()).Msg("monster killed")
		w.Reactions.KillMonster(m, a.Source)
	case resist:
		r.statResisted.Add(1)
		w.Reactions.MonsterResisted(m)
	case !m.Petrified:
		if p != nil && a.IsPhysical() && p.HasEffect(component.EffectKnockback) {
			w.Reactions.KnockbackMonster(m)
		}
		if m.Species != component.SpeciesGolem {
			w.Reactions.HitMonster(m, a.Source, dam)
		}
	}

	if m.Squelch == 0 {
		m.Squelch = 255
		if p != nil {
			m.Last = p.Tile
		}
	}
	return true
}

// MonsterHitByTrap resolves an environment or monster-fired missile against monster mid
func (r *Resolver) MonsterHitByTrap(a Attack, mid int) bool {
	w := r.world
	m := w.Actors.Monster(mid)
	if m == nil || !m.IsPossibleToHit() || m.IsImmune(a.Kind, a.Resist) {
		return false
	}

	hit := w.Rnd(100)
	hper := TrapHitChance(m, a.Distance)
	if m.TryLiftDormant() {
		return true
	}
	if hit >= hper && !m.Petrified {
		return false
	}

	resist := m.IsResistant(a.Kind, a.Resist)
	dam := a.roll(w)
	if !a.Shifted {
		dam <<= parameter.DamageShift
	}
	if resist {
		m.HitPoints -= dam / 4
	} else {
		m.HitPoints -= dam
	}

	r.statHits.Add(1)
	switch {
	case !m.IsAlive():
		w.Reactions.KillMonster(m, component.SourceTrap)
	case resist:
		r.statResisted.Add(1)
		w.Reactions.MonsterResisted(m)
	case m.Species != component.SpeciesGolem:
		w.Reactions.HitMonster(m, component.SourceTrap, dam)
	}
	return true
}

// --- Player targets ---

// PlayerHitByPlayer resolves a player missile against another player
func (r *Resolver) PlayerHitByPlayer(a Attack, target int) (hit, blocked bool) {
	w := r.world
	attacker := w.Actors.Player(a.Source)
	t := w.Actors.Player(target)
	if attacker == nil || t == nil {
		return false, false
	}
	if !w.Level.FriendlyFire && attacker.FriendlyMode {
		return false, false
	}
	if t.Invincible || a.Kind == component.KindHolyBolt {
		return false, false
	}
	if t.SpellFlags&component.FlagEtherealize != 0 && a.IsPhysical() {
		return false, false
	}

	resper := resistOf(t, a.Resist)
	hper := w.Rnd(100)
	if hper >= PvPHitChance(attacker, t, a) {
		return false, false
	}

	blkper := 100
	if !a.Shifted && (t.Mode == component.PlayerStand || t.Mode == component.PlayerAttack) && t.BlockFlag {
		blkper = w.Rnd(100)
	}
	blk := max(0, min(t.BlockChance-attacker.Level*2, 100))

	var dam int
	if a.Kind == component.KindBoneSpirit {
		dam = t.HitPoints / 3
	} else {
		dam = a.roll(w)
		if a.IsPhysical() && a.Resist == component.ResistNone {
			dam += attacker.BonusDamageMod + attacker.DamageMod + dam*attacker.BonusDamage/100
		}
		if !a.Shifted {
			dam <<= parameter.DamageShift
		}
	}
	if !a.IsPhysical() {
		dam /= 2
	}

	local := w.IsLocal(a.Source)
	if resper > 0 {
		dam -= dam * resper / 100
		if local {
			w.Net.Damage(target, dam, a.Resist)
		}
		r.statHits.Add(1)
		r.statResisted.Add(1)
		w.Reactions.PlayerSpeech(t, engine.SpeechArghClang)
		return true, false
	}

	if blkper < blk {
		r.statBlocks.Add(1)
		w.Reactions.BlockPlayer(t, core.GetDirection(t.Tile, attacker.Tile))
		return true, true
	}
	if local {
		w.Net.Damage(target, dam, a.Resist)
	}
	r.statHits.Add(1)
	w.Reactions.HitPlayer(t, dam)
	return true, false
}

// PlayerHitByMonster resolves a monster or trap missile against player pid
// monster is nil for traps, earflag marks deaths that drop an ear
func (r *Resolver) PlayerHitByMonster(a Attack, pid int, monster *component.Monster, earflag bool) (hit, blocked bool) {
	w := r.world
	p := w.Actors.Player(pid)
	if p == nil || !p.IsAlive() || p.Invincible {
		return false, false
	}
	if p.SpellFlags&component.FlagEtherealize != 0 && a.IsPhysical() {
		return false, false
	}

	roll := w.Rnd(100)
	hper := PlayerHitChance(p, monster, a, w.Level.Depth)

	blk := 100
	if (p.Mode == component.PlayerStand || p.Mode == component.PlayerAttack) && p.BlockFlag {
		blk = w.Rnd(100)
	}
	if a.Shifted || a.Kind == component.KindAcidPuddle {
		blk = 100
	}
	blkper := p.BlockChance
	if monster != nil {
		blkper -= (monster.Level - p.Level) * 2
	}
	blkper = max(0, min(blkper, 100))
	resper := resistOf(p, a.Resist)

	if roll >= hper {
		return false, false
	}

	var dam int
	if a.Kind == component.KindBoneSpirit {
		dam = p.HitPoints / 3
	} else {
		getHit := p.GetHit
		if !a.Shifted {
			dam = (a.Min << parameter.DamageShift) + w.Rnd(((a.Max-a.Min)<<parameter.DamageShift)+1)
			getHit <<= parameter.DamageShift
		} else {
			dam = a.roll(w)
		}
		if monster == nil && p.HasEffect(component.EffectHalfTrapDamage) {
			dam /= 2
		}
		dam += getHit
		dam = max(dam, parameter.PlayerMinimumDamage)
	}

	if (resper <= 0 || w.Level.Hellfire) && blk < blkper {
		dir := p.Dir
		if monster != nil {
			dir = core.GetDirection(p.Tile, monster.Tile)
		}
		r.statBlocks.Add(1)
		w.Reactions.BlockPlayer(p, dir)
		return true, true
	}

	r.statHits.Add(1)
	if resper > 0 {
		dam -= dam * resper / 100
		if w.IsLocal(pid) {
			r.ApplyPlayerDamage(p, 0, 0, dam, earflag)
		}
		r.statResisted.Add(1)
		if p.IsAlive() {
			w.Reactions.PlayerSpeech(p, engine.SpeechArghClang)
		}
		return true, false
	}

	if w.IsLocal(pid) {
		r.ApplyPlayerDamage(p, 0, 0, dam, earflag)
	}
	if p.IsAlive() {
		w.Reactions.HitPlayer(p, dam)
	}
	return true, false
}

// ApplyPlayerDamage subtracts dam whole points plus frac 1/64 units from p
// An active mana shield absorbs first, hit points never drop below minHP
func (r *Resolver) ApplyPlayerDamage(p *component.Player, dam, minHP, frac int, earflag bool) {
	w := r.world
	total := dam<<parameter.DamageShift + frac

	if total > 0 && p.ManaShield {
		level := p.SpellLevels[component.SpellManaShield]
		if level > 0 {
			total += total / -p.ManaShieldReduction()
		}
		if p.Mana >= total {
			p.Mana -= total
			p.BaseMana -= total
			total = 0
		} else {
			total -= p.Mana
			if level > 0 {
				total += total / (p.ManaShieldReduction() - 1)
			}
			p.Mana = 0
			p.BaseMana = p.MaxBaseMana - p.MaxMana
			if w.IsLocal(p.ID) {
				w.Net.RemoveShield(p.ID)
			}
		}
	}
	if total == 0 {
		return
	}

	p.HitPoints -= total
	p.BaseHitPoints -= total
	if p.HitPoints > p.MaxHitPoints {
		p.HitPoints = p.MaxHitPoints
		p.BaseHitPoints = p.MaxBaseHitPoints
	}
	if floor := minHP << parameter.DamageShift; p.HitPoints < floor {
		p.BaseHitPoints += floor - p.HitPoints
		p.HitPoints = floor
	}
	if !p.IsAlive() {
		w.Log.Debug().Int("player", p.ID).Bool("ear", earflag).Msg("player killed")
		w.Reactions.KillPlayer(p, earflag)
	}
}
