package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/grid-getters/pkg/hexwar"
)

func TestCommandRequest_Validate(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{"place", `{"type":"place_reinforcement","q":0,"r":0}`, true},
		{"place missing r", `{"type":"place_reinforcement","q":0}`, false},
		{"select cell", `{"type":"select_cell","q":-2,"r":5}`, true},
		{"select cell missing coords", `{"type":"select_cell"}`, false},
		{"select unit", `{"type":"select_unit","unit_id":3}`, true},
		{"select unit missing id", `{"type":"select_unit"}`, false},
		{"advance", `{"type":"advance_phase"}`, true},
		{"unknown", `{"type":"teleport"}`, false},
		{"empty", `{}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CommandRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			err := Validate(req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCommandRequest_Command(t *testing.T) {
	q, r := 3, 1
	cmd := CommandRequest{Type: "select_cell", Q: &q, R: &r}.Command()
	assert.Equal(t, hexwar.Command{Kind: hexwar.CmdSelectCell, Coord: hexwar.C(3, 1)}, cmd)

	cmd = CommandRequest{Type: "select_unit", UnitID: 4}.Command()
	assert.Equal(t, hexwar.CmdSelectUnit, cmd.Kind)
	assert.Equal(t, hexwar.UnitID(4), cmd.UnitID)
}
