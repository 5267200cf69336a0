package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sidelinestats/scorebook/internal/maxpreps"
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/sports"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/sidelinestats/scorebook/internal/totals"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// writeJSON is a helper to encode a response body and log encode failures.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response to JSON", "error", err)
	}
}

// activeGame resolves the current game and its sport rules, or writes a
// 409 when no game has been started yet.
func (s *Server) activeGame(w http.ResponseWriter) (statlog.Game, sports.Sport, bool) {
	game, ok := s.Session.Game()
	if !ok {
		http.Error(w, "No active game. Start one with POST /game.", http.StatusConflict)
		return statlog.Game{}, nil, false
	}
	sport, err := s.Sports.Get(game.Sport)
	if err != nil {
		log.Error("Active game references unknown sport", "sport", game.Sport, "error", err)
		http.Error(w, "Active game references an unknown sport", http.StatusInternalServerError)
		return statlog.Game{}, nil, false
	}
	return game, sport, true
}

// aggregate recomputes totals from the full event log, timing the run.
func (s *Server) aggregate(sport sports.Sport) totals.Table {
	start := time.Now()
	table := sport.Aggregate(s.Session.Events())
	s.Metrics.IncAggregationRuns()
	s.Metrics.ObserveAggregationDuration(time.Since(start).Seconds())
	return table
}

func (s *Server) ListSportsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"sports": s.Sports.Names()})
	}
}

type startGameRequest struct {
	Sport        string `json:"sport"`
	Date         string `json:"date"`
	Opponent     string `json:"opponent"`
	RosterSource string `json:"roster_source"`
}

func (s *Server) StartGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startGameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode start game request", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if req.Sport == "" || req.Date == "" || req.Opponent == "" || req.RosterSource == "" {
			http.Error(w, "sport, date, opponent and roster_source are required", http.StatusBadRequest)
			return
		}
		if _, err := s.Sports.Get(req.Sport); err != nil {
			http.Error(w, fmt.Sprintf("Unknown sport %q", req.Sport), http.StatusBadRequest)
			return
		}

		players, err := s.Roster.Load(r.Context(), req.RosterSource)
		if err != nil {
			var loadErr *roster.LoadError
			if errors.As(err, &loadErr) {
				log.Warn("Roster source rejected", "source", req.RosterSource, "error", err)
				http.Error(w, fmt.Sprintf("Roster could not be loaded: %v", err), http.StatusUnprocessableEntity)
				return
			}
			log.Error("Failed to load roster", "source", req.RosterSource, "error", err)
			http.Error(w, "Failed to load roster", http.StatusInternalServerError)
			return
		}

		game := s.Session.Start(req.Sport, req.Date, req.Opponent, req.RosterSource, players)
		s.Metrics.IncGamesStarted()
		log.Info("Game started", "gameID", game.ID, "sport", game.Sport, "opponent", game.Opponent, "players", len(players))

		if err := s.Notifier.SendGameStarted(game, len(players), isDryRunFromContext(r)); err != nil {
			// The game is already started; a failed announcement is not fatal.
			log.Error("Failed to send game started notification", "error", err)
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"game":         game,
			"player_count": len(players),
		})
	}
}

func (s *Server) GameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, ok := s.Session.Game()
		if !ok {
			writeJSON(w, http.StatusOK, map[string]any{"active": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"active": true,
			"game":   game,
			"label":  game.Label(),
			"events": len(s.Session.Events()),
		})
	}
}

func (s *Server) RosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players := s.Session.Roster()
		if players == nil {
			players = []roster.Player{}
		}
		writeJSON(w, http.StatusOK, players)
	}
}

func (s *Server) ImportRosterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, _, ok := s.activeGame(w)
		if !ok {
			return
		}

		players, err := roster.ParseCSV(r.Body)
		if err != nil {
			log.Warn("Rejected roster CSV", "error", err)
			http.Error(w, fmt.Sprintf("Invalid roster CSV: %v", err), http.StatusBadRequest)
			return
		}

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would replace roster", "source", game.SourceID, "players", len(players))
			writeJSON(w, http.StatusOK, map[string]any{"imported": len(players), "dry_run": true})
			return
		}

		if err := s.Roster.Replace(r.Context(), game.SourceID, players); err != nil {
			log.Error("Failed to persist roster", "source", game.SourceID, "error", err)
			http.Error(w, "Failed to persist roster", http.StatusInternalServerError)
			return
		}
		s.Session.SetRoster(players)
		log.Info("Roster imported", "source", game.SourceID, "players", len(players))

		writeJSON(w, http.StatusOK, map[string]any{"imported": len(players)})
	}
}

func (s *Server) CaptureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, sport, ok := s.activeGame(w)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, sport.Capture(s.Session.Roster()))
	}
}

func (s *Server) SubmitStatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, sport, ok := s.activeGame(w)
		if !ok {
			return
		}

		var sub sports.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			log.Error("Failed to decode submission", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if sub.PlayerKey == "" || sub.StatType == "" {
			http.Error(w, "player_key and stat_type are required", http.StatusBadRequest)
			return
		}
		sub.At = time.Now()

		players := s.Session.Roster()
		if _, found := roster.Find(players, sub.PlayerKey); !found {
			http.Error(w, fmt.Sprintf("Unknown player %q", sub.PlayerKey), http.StatusBadRequest)
			return
		}

		events := sport.Derive(sub, players)
		s.Metrics.IncSubmissions()

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would commit events", "count", len(events), "statType", sub.StatType)
			writeJSON(w, http.StatusOK, map[string]any{"committed": len(events), "events": events, "dry_run": true})
			return
		}

		s.Session.Append(events...)
		s.Metrics.AddEventsCommitted(len(events))
		log.Info("Submission committed", "player", sub.PlayerKey, "statType", sub.StatType, "events", len(events))

		writeJSON(w, http.StatusCreated, map[string]any{"committed": len(events), "events": events})
	}
}

func (s *Server) ListEventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := s.Session.Events()
		if events == nil {
			events = []statlog.StatEvent{}
		}
		writeJSON(w, http.StatusOK, events)
	}
}

func (s *Server) TotalsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.Session.Active() {
			writeJSON(w, http.StatusOK, map[string]any{"available": false})
			return
		}
		_, sport, ok := s.activeGame(w)
		if !ok {
			return
		}

		table := s.aggregate(sport)
		if len(table.Rows) == 0 {
			writeJSON(w, http.StatusOK, map[string]any{"available": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"available": true,
			"columns":   table.Columns,
			"rows":      table.Rows,
		})
	}
}

func (s *Server) SaveGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, sport, ok := s.activeGame(w)
		if !ok {
			return
		}

		table := s.aggregate(sport)
		events := s.Session.Events()
		label := game.Label()

		if isDryRunFromContext(r) {
			log.Info("[Dry Run] Would save game", "label", label, "events", len(events), "players", len(table.Rows))
			writeJSON(w, http.StatusOK, map[string]any{"label": label, "events": len(events), "players": len(table.Rows), "dry_run": true})
			return
		}

		if err := s.Archive.SaveTotals(r.Context(), game.SourceID, label, table); err != nil {
			log.Error("Failed to save totals", "label", label, "error", err)
			http.Error(w, "Failed to save totals", http.StatusInternalServerError)
			return
		}
		if err := s.Archive.SaveLog(r.Context(), game.SourceID, label, events); err != nil {
			log.Error("Failed to save event log", "label", label, "error", err)
			http.Error(w, "Failed to save event log", http.StatusInternalServerError)
			return
		}
		log.Info("Game saved", "label", label, "events", len(events), "players", len(table.Rows))

		if err := s.Notifier.SendTotalsSummary(game, table, len(events), isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send totals summary notification", "error", err)
		}

		writeJSON(w, http.StatusOK, map[string]any{"label": label, "events": len(events), "players": len(table.Rows)})
	}
}

func (s *Server) ExportMaxPrepsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, sport, ok := s.activeGame(w)
		if !ok {
			return
		}

		table := s.aggregate(sport)
		mapping := maxpreps.DefaultMapping(game.Sport)
		declared := maxpreps.SportFields(game.Sport)

		jerseyColumn := r.URL.Query().Get("jersey_column")
		if jerseyColumn == "" {
			jerseyColumn = "number"
		}

		text, err := maxpreps.Build(table, mapping, declared, jerseyColumn)
		if err != nil {
			if errors.Is(err, maxpreps.ErrJerseyColumn) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			log.Error("Failed to build export", "error", err)
			http.Error(w, "Failed to build export", http.StatusInternalServerError)
			return
		}
		s.Metrics.IncExportsBuilt()
		log.Info("Export built", "label", game.Label(), "bytes", len(text))

		filename := maxpreps.Filename(game.Label() + " maxpreps")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, text)
	}
}
