package level

import (
	"github.com/lixenwraith/vi-missile/component"
	"github.com/lixenwraith/vi-missile/core"
)

// MaxPlayers is the number of player slots, monster slots below it are reserved for golems
const MaxPlayers = 4

// Roster owns the monster and player records of a level
type Roster struct {
	grid     *Grid
	monsters []*component.Monster
	players  []*component.Player
	local    int
}

// NewRoster creates an empty roster placing actors on grid
func NewRoster(grid *Grid, local int) *Roster {
	return &Roster{
		grid:     grid,
		monsters: make([]*component.Monster, MaxPlayers),
		local:    local,
	}
}

// AddMonster assigns the next free id past the golem slots and places m on the grid
func (r *Roster) AddMonster(m *component.Monster) int {
	m.ID = len(r.monsters)
	if m.Light == 0 {
		m.Light = component.NoLight
	}
	r.monsters = append(r.monsters, m)
	r.grid.SetMonsterAt(m.Tile, m.ID+1)
	return m.ID
}

// SetGolem puts m in the golem slot of player, replacing any previous golem
func (r *Roster) SetGolem(player int, m *component.Monster) {
	if player < 0 || player >= MaxPlayers {
		return
	}
	if old := r.monsters[player]; old != nil && r.grid.MonsterAt(old.Tile) == player+1 {
		r.grid.SetMonsterAt(old.Tile, 0)
	}
	m.ID = player
	r.monsters[player] = m
	if r.grid.Bounds().Contains(m.Tile) {
		r.grid.SetMonsterAt(m.Tile, player+1)
	}
}

// AddPlayer assigns the next player id and places p on the grid
func (r *Roster) AddPlayer(p *component.Player) int {
	p.ID = len(r.players)
	p.Active = true
	if p.Light == 0 {
		p.Light = component.NoLight
	}
	r.players = append(r.players, p)
	r.grid.SetPlayerAt(p.Tile, p.ID+1)
	return p.ID
}

func (r *Roster) Monster(id int) *component.Monster {
	if id < 0 || id >= len(r.monsters) {
		return nil
	}
	return r.monsters[id]
}

func (r *Roster) Player(id int) *component.Player {
	if id < 0 || id >= len(r.players) {
		return nil
	}
	return r.players[id]
}

func (r *Roster) Players() []*component.Player {
	return r.players
}

// Monsters returns every record including empty golem slots
func (r *Roster) Monsters() []*component.Monster {
	return r.monsters
}

func (r *Roster) LocalPlayer() int {
	return r.local
}

// moveMonster relocates m on the grid
func (r *Roster) moveMonster(m *component.Monster, to core.Point) {
	if r.grid.MonsterAt(m.Tile) == m.ID+1 {
		r.grid.SetMonsterAt(m.Tile, 0)
	}
	m.Old = m.Tile
	m.Tile = to
	m.Future = to
	r.grid.SetMonsterAt(to, m.ID+1)
}

// movePlayer relocates p on the grid
func (r *Roster) movePlayer(p *component.Player, to core.Point) {
	if r.grid.PlayerAt(p.Tile) == p.ID+1 {
		r.grid.SetPlayerAt(p.Tile, 0)
	}
	p.Old = p.Tile
	p.Tile = to
	p.Future = to
	r.grid.SetPlayerAt(to, p.ID+1)
}
