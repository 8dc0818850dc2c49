package hexwar

// Player is one side of the hot-seat game.
type Player string

const (
	Blue  Player = "BLUE"
	Green Player = "GREEN"
)

// Opponent returns the other side.
func (p Player) Opponent() Player {
	if p == Blue {
		return Green
	}
	return Blue
}

// Valid reports whether p is one of the two sides.
func (p Player) Valid() bool {
	return p == Blue || p == Green
}

// UnitID identifies a unit for the lifetime of a game.
type UnitID int

// Unit is a single soldier on the board.
type Unit struct {
	ID                  UnitID `json:"id"`
	Player              Player `json:"player"`
	Attack              int    `json:"attack"`
	Defence             int    `json:"defence"`
	AttackRollModifier  int    `json:"attack_roll_modifier"`
	DefenceRollModifier int    `json:"defence_roll_modifier"`
	BaseMovement        int    `json:"base_movement"`
	BaseAttackRange     int    `json:"base_attack_range"`
	HasMovedThisTurn    bool   `json:"has_moved_this_turn"`
	HasAttackedThisTurn bool   `json:"has_attacked_this_turn"`
}

// Movement is the budget left this turn.
func (u Unit) Movement() int {
	if u.HasMovedThisTurn {
		return 0
	}
	return u.BaseMovement
}

// AttackRange is the targeting budget left this turn.
func (u Unit) AttackRange() int {
	if u.HasAttackedThisTurn {
		return 0
	}
	return u.BaseAttackRange
}

// AttackStrength is the unit's own contribution to an attack.
func (u Unit) AttackStrength() Strength {
	return Strength{Value: u.Attack, Modifier: u.AttackRollModifier}
}

// DefenceStrength is the unit's own contribution to a defence.
func (u Unit) DefenceStrength() Strength {
	return Strength{Value: u.Defence, Modifier: u.DefenceRollModifier}
}

// Moves lists the coordinates reachable from `from` with the remaining
// movement budget. The result still contains the source and enemy cells;
// the controller filters those.
func (u Unit) Moves(g *Grid, from Coord) CoordSet {
	return Reachable(g, from, u.Movement())
}

// Targets lists the coordinates within the remaining attack range.
func (u Unit) Targets(g *Grid, from Coord) CoordSet {
	return Reachable(g, from, u.AttackRange())
}

// UnitStats is the template new reinforcements are created from.
type UnitStats struct {
	Attack              int `json:"attack"`
	Defence             int `json:"defence"`
	AttackRollModifier  int `json:"attack_roll_modifier"`
	DefenceRollModifier int `json:"defence_roll_modifier"`
	Movement            int `json:"movement"`
	AttackRange         int `json:"attack_range"`
}

// DefaultUnitStats is the standard infantry soldier.
func DefaultUnitStats() UnitStats {
	return UnitStats{
		Attack:      1,
		Defence:     1,
		Movement:    4,
		AttackRange: 1,
	}
}

// NewUnit builds a fresh unit from the template.
func (s UnitStats) NewUnit(id UnitID, p Player) Unit {
	return Unit{
		ID:                  id,
		Player:              p,
		Attack:              s.Attack,
		Defence:             s.Defence,
		AttackRollModifier:  s.AttackRollModifier,
		DefenceRollModifier: s.DefenceRollModifier,
		BaseMovement:        s.Movement,
		BaseAttackRange:     s.AttackRange,
	}
}
