package hexwar

// IDAllocator hands out monotonically increasing ids. Each game owns one so
// independent games never share counters.
type IDAllocator struct {
	NextUnitID     UnitID     `json:"next_unit_id"`
	NextMoveID     MoveID     `json:"next_move_id"`
	NextInvasionID InvasionID `json:"next_invasion_id"`
}

func (a *IDAllocator) Unit() UnitID {
	a.NextUnitID++
	return a.NextUnitID
}

func (a *IDAllocator) Move() MoveID {
	a.NextMoveID++
	return a.NextMoveID
}

func (a *IDAllocator) Invasion() InvasionID {
	a.NextInvasionID++
	return a.NextInvasionID
}
