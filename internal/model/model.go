package model

import (
	"github.com/go-playground/validator/v10"

	"github.com/freeeve/grid-getters/internal/session"
	"github.com/freeeve/grid-getters/pkg/hexwar"
)

var validate = validator.New()

// Validate checks struct tags on a request DTO.
func Validate(v any) error {
	return validate.Struct(v)
}

// CommandRequest is a player input sent over HTTP or WebSocket.
type CommandRequest struct {
	Type   string `json:"type" validate:"required,oneof=place_reinforcement select_cell select_unit advance_phase"`
	Q      *int   `json:"q,omitempty" validate:"required_if=Type place_reinforcement,required_if=Type select_cell"`
	R      *int   `json:"r,omitempty" validate:"required_if=Type place_reinforcement,required_if=Type select_cell"`
	UnitID int    `json:"unit_id,omitempty" validate:"required_if=Type select_unit,gte=0"`
}

// Command converts a validated request into an engine command.
func (c CommandRequest) Command() hexwar.Command {
	cmd := hexwar.Command{Kind: hexwar.CommandKind(c.Type), UnitID: hexwar.UnitID(c.UnitID)}
	if c.Q != nil && c.R != nil {
		cmd.Coord = hexwar.C(*c.Q, *c.R)
	}
	return cmd
}

// GameResponse is returned when a game is created or fetched.
type GameResponse struct {
	ID    string          `json:"id"`
	State hexwar.Snapshot `json:"state"`
}

// CommandResponse is returned after a command is applied.
type CommandResponse = session.Result

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}
