package statlog

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sidelinestats/scorebook/internal/roster"
)

// Session owns the state of the current game: the Game value, its roster
// and its event log. All mutation goes through session methods; there is
// no ambient state.
type Session struct {
	mu     sync.RWMutex
	game   *Game
	roster []roster.Player
	log    *EventLog
}

// NewSession creates an empty session with no active game.
func NewSession() *Session {
	return &Session{}
}

// Start begins a new game, replacing the roster and discarding any prior
// event log. The caller loads the roster first, so a failed load leaves
// the previous session untouched.
func (s *Session) Start(sport, date, opponent, sourceID string, players []roster.Player) Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := Game{
		ID:       uuid.NewString(),
		Sport:    sport,
		Date:     date,
		Opponent: opponent,
		SourceID: sourceID,
	}
	s.game = &game
	s.roster = players
	s.log = &EventLog{}
	log.Info("Started game", "gameID", game.ID, "sport", sport, "opponent", opponent, "players", len(players))
	return game
}

// Active reports whether a game has been started.
func (s *Session) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.game != nil
}

// Game returns the current game value. The second return is false when no
// game is active.
func (s *Session) Game() (Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.game == nil {
		return Game{}, false
	}
	return *s.game, true
}

// Roster returns the roster loaded for the current game.
func (s *Session) Roster() []roster.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

// SetRoster replaces the roster wholesale, e.g. after a CSV re-import.
func (s *Session) SetRoster(players []roster.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = players
}

// Append commits derived events to the current game's log.
func (s *Session) Append(events ...StatEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.log == nil {
		return
	}
	s.log.Append(events...)
}

// Events returns the committed events of the current game in order.
func (s *Session) Events() []StatEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.log == nil {
		return nil
	}
	return s.log.Events()
}
