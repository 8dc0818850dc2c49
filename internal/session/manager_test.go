package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/grid-getters/pkg/hexwar"
)

type recordedEvent struct {
	gameID    string
	eventType string
	data      any
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (r *recordingBroadcaster) BroadcastGameEvent(gameID, eventType string, data any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, recordedEvent{gameID, eventType, data})
}

func (r *recordingBroadcaster) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		out = append(out, e.eventType)
	}
	return out
}

func newTestManager(b Broadcaster) *Manager {
	return NewManager(hexwar.DefaultSetup(9, 6), func() hexwar.Die { return hexwar.FixedDie(6) }, b)
}

func TestManager_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	rec := &recordingBroadcaster{}
	m := newTestManager(rec)

	id, snap, err := m.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, hexwar.PhasePlaceReinforcements, snap.Phase)

	got, err := m.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, snap.Log, got.Log)

	list := m.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, 1, list[0].Turn)

	require.NoError(t, m.Delete(ctx, id))
	assert.ErrorIs(t, m.Delete(ctx, id), ErrSessionNotFound)
	_, err = m.Snapshot(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.Equal(t, []string{EventGameCreated, EventGameDeleted}, rec.types())
}

func TestManager_CreateInvalidSetup(t *testing.T) {
	m := NewManager(hexwar.Setup{Width: 0, Height: 0}, nil, nil)
	_, _, err := m.Create(context.Background())
	assert.ErrorIs(t, err, hexwar.ErrInvalidSetup)
}

func TestManager_ApplyAndReject(t *testing.T) {
	ctx := context.Background()
	rec := &recordingBroadcaster{}
	m := newTestManager(rec)
	id, _, err := m.Create(ctx)
	require.NoError(t, err)

	res, err := m.Apply(ctx, id, hexwar.Command{Kind: hexwar.CmdPlaceReinforcement, Coord: hexwar.C(0, 0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"BLUE placed a soldier at [0, 0]"}, res.Log)
	assert.Equal(t, 1, res.State.RemainingReinforcements)

	_, err = m.Apply(ctx, id, hexwar.Command{Kind: hexwar.CmdPlaceReinforcement, Coord: hexwar.C(6, 5)})
	require.ErrorIs(t, err, hexwar.ErrCannotPlace)

	snap, err := m.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.RemainingReinforcements)

	_, err = m.Apply(ctx, "missing", hexwar.Command{Kind: hexwar.CmdAdvancePhase})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.Equal(t, []string{EventGameCreated, EventStateChanged, EventCommandRejected}, rec.types())
}

func TestManager_InvariantPanicBecomesError(t *testing.T) {
	ctx := context.Background()
	m := newTestManager(nil)
	id, _, err := m.Create(ctx)
	require.NoError(t, err)

	s, err := m.get(id)
	require.NoError(t, err)
	// A pending move into a cell the enemy holds cannot be committed.
	stats := hexwar.DefaultUnitStats()
	gs := s.state
	require.NoError(t, gs.Grid.Cell(hexwar.C(0, 0)).AddUnit(stats.NewUnit(1, hexwar.Blue)))
	require.NoError(t, gs.Grid.Cell(hexwar.C(1, 0)).AddUnit(stats.NewUnit(2, hexwar.Green)))
	gs.Phase = hexwar.PhaseMovementSelectingCell
	gs.Orders.Moves = []*hexwar.Move{{
		ID:     1,
		Target: hexwar.C(1, 0),
		Orders: []hexwar.Order{{Source: hexwar.C(0, 0), UnitID: 1}},
	}}

	_, err = m.Apply(ctx, id, hexwar.Command{Kind: hexwar.CmdAdvancePhase})
	require.ErrorIs(t, err, ErrInvariant)
	var rej *hexwar.RejectionError
	assert.False(t, errors.As(err, &rej))

	snap, err := m.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, hexwar.PhaseMovementSelectingCell, snap.Phase)
	assert.Len(t, snap.Moves, 1)
}

func TestManager_ConcurrentCommandsSerialize(t *testing.T) {
	ctx := context.Background()
	m := NewManager(func() hexwar.Setup {
		s := hexwar.DefaultSetup(9, 6)
		s.ReinforcementsPerTurn = 50
		return s
	}(), nil, nil)
	id, _, err := m.Create(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Apply(ctx, id, hexwar.Command{Kind: hexwar.CmdPlaceReinforcement, Coord: hexwar.C(0, 0)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	snap, err := m.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 30, snap.RemainingReinforcements)
	assert.Len(t, snap.Rows[0][0].Units, 20)
}
