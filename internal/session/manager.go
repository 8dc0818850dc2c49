// Package session keeps hot-seat games in memory and runs player commands
// against them one at a time.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/freeeve/grid-getters/internal/logger"
	"github.com/freeeve/grid-getters/pkg/hexwar"
)

var (
	ErrSessionNotFound = errors.New("game session not found")
	ErrInvariant       = errors.New("game engine invariant violated")
)

// Session is one running game. Commands against it are serialized.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu    sync.Mutex
	state *hexwar.GameState
	die   hexwar.Die
}

// Summary is the listing entry for a session.
type Summary struct {
	ID            string        `json:"id"`
	Phase         hexwar.Phase  `json:"phase"`
	CurrentPlayer hexwar.Player `json:"current_player"`
	Turn          int           `json:"turn"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Result is what a successful command produced.
type Result struct {
	State hexwar.Snapshot `json:"state"`
	Log   []string        `json:"log"`
}

// Manager owns every live session.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	setup       hexwar.Setup
	newDie      func() hexwar.Die
	broadcaster Broadcaster
}

// NewManager creates a Manager that starts every game from setup. newDie is
// called once per session; nil means a clock-seeded die.
func NewManager(setup hexwar.Setup, newDie func() hexwar.Die, b Broadcaster) *Manager {
	if newDie == nil {
		newDie = func() hexwar.Die { return hexwar.NewRandDie(0) }
	}
	if b == nil {
		b = NoopBroadcaster{}
	}
	return &Manager{
		sessions:    make(map[string]*Session),
		setup:       setup,
		newDie:      newDie,
		broadcaster: b,
	}
}

// Create starts a new game and returns its id and initial snapshot.
func (m *Manager) Create(ctx context.Context) (string, hexwar.Snapshot, error) {
	gs, err := hexwar.NewGame(m.setup)
	if err != nil {
		return "", hexwar.Snapshot{}, fmt.Errorf("new game: %w", err)
	}
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		state:     gs,
		die:       m.newDie(),
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	snap := gs.Snapshot()
	logger.ForRequest(logger.WithSessionID(ctx, s.ID)).Info().
		Str("player", string(gs.CurrentPlayer)).
		Int("width", gs.Grid.Width()).
		Int("height", gs.Grid.Height()).
		Msg("Game created")
	m.broadcaster.BroadcastGameEvent(s.ID, EventGameCreated, snap)
	return s.ID, snap, nil
}

func (m *Manager) get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Snapshot returns the current view of a session.
func (m *Manager) Snapshot(ctx context.Context, id string) (hexwar.Snapshot, error) {
	s, err := m.get(id)
	if err != nil {
		return hexwar.Snapshot{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot(), nil
}

// List returns every session, oldest first.
func (m *Manager) List(ctx context.Context) []Summary {
	m.mu.RLock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.RUnlock()

	out := make([]Summary, 0, len(all))
	for _, s := range all {
		s.mu.Lock()
		out = append(out, Summary{
			ID:            s.ID,
			Phase:         s.state.Phase,
			CurrentPlayer: s.state.CurrentPlayer,
			Turn:          s.state.Turn,
			CreatedAt:     s.CreatedAt,
		})
		s.mu.Unlock()
	}
	slices.SortFunc(out, func(a, b Summary) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Delete ends a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	logger.ForRequest(logger.WithSessionID(ctx, id)).Info().Msg("Game deleted")
	m.broadcaster.BroadcastGameEvent(id, EventGameDeleted, map[string]string{"id": id})
	return nil
}

// Apply runs cmd against the session. A rejected command leaves the game
// unchanged and returns an error wrapping *hexwar.RejectionError. A broken
// engine invariant returns ErrInvariant and also leaves the game unchanged.
func (m *Manager) Apply(ctx context.Context, id string, cmd hexwar.Command) (Result, error) {
	s, err := m.get(id)
	if err != nil {
		return Result{}, err
	}
	l := logger.ForRequest(logger.WithSessionID(ctx, id))

	s.mu.Lock()
	defer s.mu.Unlock()

	next, lines, err := applyRecovering(s.state, cmd, s.die)
	if err != nil {
		var rej *hexwar.RejectionError
		if errors.As(err, &rej) {
			l.Debug().Str("command", cmd.String()).Err(err).Msg("Command rejected")
			m.broadcaster.BroadcastGameEvent(id, EventCommandRejected, map[string]string{
				"command": cmd.String(),
				"reason":  rej.Err.Error(),
			})
			return Result{}, err
		}
		l.Error().Str("command", cmd.String()).Err(err).Msg("Command aborted")
		return Result{}, err
	}

	resolved := s.state.Phase == hexwar.PhaseCombatSelectingCell && cmd.Kind == hexwar.CmdAdvancePhase
	s.state = next
	if resolved {
		for _, rep := range next.Combats {
			l.Debug().
				Str("target", rep.Target.String()).
				Str("attack", rep.Attack.String()).
				Str("defence", rep.Defence.String()).
				Int("odds", rep.Odds).
				Int("die", rep.DieRoll).
				Int("roll", rep.FinalRoll).
				Str("outcome", rep.Outcome.String()).
				Msg("Combat resolved")
		}
	}
	l.Info().
		Str("command", cmd.String()).
		Str("phase", string(next.Phase)).
		Str("player", string(next.CurrentPlayer)).
		Strs("log", lines).
		Msg("Command applied")

	res := Result{State: next.Snapshot(), Log: lines}
	m.broadcaster.BroadcastGameEvent(id, EventStateChanged, res)
	return res, nil
}

// applyRecovering turns an engine invariant panic into ErrInvariant. Any
// other panic is re-raised.
func applyRecovering(gs *hexwar.GameState, cmd hexwar.Command, die hexwar.Die) (next *hexwar.GameState, lines []string, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		ie, ok := r.(*hexwar.InvariantError)
		if !ok {
			panic(r)
		}
		next, lines, err = gs, nil, fmt.Errorf("%w: %v", ErrInvariant, ie)
	}()
	return hexwar.Apply(gs, cmd, die)
}
