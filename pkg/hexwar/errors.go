package hexwar

import (
	"errors"
	"fmt"
)

// Reasons a command is rejected. The game state is left untouched.
var (
	ErrWrongPhase          = errors.New("command not allowed in current phase")
	ErrNoReinforcements    = errors.New("no reinforcements remaining")
	ErrOutOfBounds         = errors.New("coordinate is off the board")
	ErrCannotPlace         = errors.New("cell has no city owned by current player")
	ErrEnemyOccupied       = errors.New("cell is occupied by the enemy")
	ErrNotOwnCell          = errors.New("cell is not held by current player")
	ErrUnitNotFound        = errors.New("unit not found in selected cell")
	ErrWrongPlayer         = errors.New("unit belongs to the other player")
	ErrAlreadyMoved        = errors.New("unit already moved this turn")
	ErrAlreadyAttacked     = errors.New("unit already attacked this turn")
	ErrNoMoves             = errors.New("unit has no legal moves")
	ErrNoTargets           = errors.New("unit has no legal targets")
	ErrIllegalDestination  = errors.New("destination is not legal for selected unit")
	ErrSelectionInProgress = errors.New("finish or cancel the current selection first")
	ErrUnknownCommand      = errors.New("unknown command")
)

// Broken internal invariants. These are raised with panic.
var (
	ErrDuplicateMove     = errors.New("a move to this destination already exists")
	ErrDuplicateInvasion = errors.New("an invasion of this destination already exists")
	ErrUnknownOutcome    = errors.New("unknown combat outcome")
	ErrMixedOccupancy    = errors.New("units of both players in one cell")
)

// RejectionError describes why a command was refused.
type RejectionError struct {
	Command Command
	Phase   Phase
	Err     error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("rejected %s during %s: %v", e.Command, e.Phase, e.Err)
}

func (e *RejectionError) Unwrap() error { return e.Err }

// InvariantError is the panic value used when the engine reaches a state
// that should be impossible.
type InvariantError struct {
	Err    error
	Detail string
}

func (e *InvariantError) Error() string {
	if e.Detail == "" {
		return "invariant violated: " + e.Err.Error()
	}
	return fmt.Sprintf("invariant violated: %v (%s)", e.Err, e.Detail)
}

func (e *InvariantError) Unwrap() error { return e.Err }

func violate(err error, format string, args ...any) {
	panic(&InvariantError{Err: err, Detail: fmt.Sprintf(format, args...)})
}
