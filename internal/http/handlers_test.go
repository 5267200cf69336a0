package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sidelinestats/scorebook/internal/archive"
	"github.com/sidelinestats/scorebook/internal/config"
	"github.com/sidelinestats/scorebook/internal/metrics"
	"github.com/sidelinestats/scorebook/internal/notifier"
	"github.com/sidelinestats/scorebook/internal/roster"
	"github.com/sidelinestats/scorebook/internal/sports"
	"github.com/sidelinestats/scorebook/internal/statlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func testPlayers() []roster.Player {
	return []roster.Player{
		{Key: "#7 Jordan Blake", FirstName: "Jordan", LastName: "Blake", Number: intPtr(7), Positions: "QB"},
		{Key: "#11 Alex Reed", FirstName: "Alex", LastName: "Reed", Number: intPtr(11), Positions: "WR"},
	}
}

// setupTestServer initializes a new server with mock stores and clients.
func setupTestServer(t *testing.T) (*Server, *roster.MockSource, *archive.MockStore, *notifier.Mock) {
	t.Helper()

	rosterSource := roster.NewMock()
	rosterSource.LoadFunc = func(ctx context.Context, sourceID string) ([]roster.Player, error) {
		return testPlayers(), nil
	}

	archiveStore := archive.NewMock()
	notify := notifier.NewMock()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)

	server := NewServer(
		archiveStore,
		metricsSvc,
		metricsHandler,
		config.Config{},
		rosterSource,
		sports.NewRegistry(),
		statlog.NewSession(),
		notify,
	)
	return server, rosterSource, archiveStore, notify
}

func doJSON(t *testing.T, server *Server, method, target string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, body)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

func startTestGame(t *testing.T, server *Server, sport string) {
	t.Helper()
	rr := doJSON(t, server, "POST", "/game", map[string]string{
		"sport":         sport,
		"date":          "2025-09-12",
		"opponent":      "Central",
		"roster_source": "varsity",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)
	rr := doJSON(t, server, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestStartGameHandler(t *testing.T) {
	t.Run("creates a game and loads the roster", func(t *testing.T) {
		server, rosterSource, _, notify := setupTestServer(t)

		startTestGame(t, server, "Football")

		require.Len(t, rosterSource.LoadCalls, 1)
		assert.Equal(t, "varsity", rosterSource.LoadCalls[0])

		game, ok := server.Session.Game()
		require.True(t, ok)
		assert.Equal(t, "Football", game.Sport)
		assert.Len(t, server.Session.Roster(), 2)

		require.Len(t, notify.SendGameStartedCalls, 1)
		assert.Equal(t, 2, notify.SendGameStartedCalls[0].PlayerCount)
	})

	t.Run("rejects an unknown sport", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		rr := doJSON(t, server, "POST", "/game", map[string]string{
			"sport": "Curling", "date": "2025-09-12", "opponent": "X", "roster_source": "varsity",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("roster load failure is a 422 and leaves no game", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)

		brokenSource := roster.NewMock()
		brokenSource.LoadFunc = func(ctx context.Context, sourceID string) ([]roster.Player, error) {
			return nil, &roster.LoadError{SourceID: sourceID, Err: roster.ErrNotFound}
		}
		server.Roster = brokenSource

		rr := doJSON(t, server, "POST", "/game", map[string]string{
			"sport": "Football", "date": "2025-09-12", "opponent": "X", "roster_source": "missing",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.False(t, server.Session.Active())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		rr := doJSON(t, server, "POST", "/game", map[string]string{"sport": "Football"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSubmitStatHandler(t *testing.T) {
	t.Run("derives and commits events", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		startTestGame(t, server, "Football")

		rr := doJSON(t, server, "POST", "/log", map[string]any{
			"player_key":     "#7 Jordan Blake",
			"side":           "Offense",
			"stat_type":      "Pass",
			"outcome":        "Complete",
			"yards":          18,
			"receiver":       "#11 Alex Reed",
			"pair_reception": true,
		})
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

		var resp struct {
			Committed int `json:"committed"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Committed)

		events := server.Session.Events()
		require.Len(t, events, 2)
		assert.Equal(t, "Pass", events[0].StatType)
		assert.Equal(t, "Reception", events[1].StatType)
	})

	t.Run("requires an active game", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		rr := doJSON(t, server, "POST", "/log", map[string]any{
			"player_key": "#7 Jordan Blake", "stat_type": "Run",
		})
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("rejects an unknown player", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		startTestGame(t, server, "Football")

		rr := doJSON(t, server, "POST", "/log", map[string]any{
			"player_key": "#99 Nobody Here", "side": "Offense", "stat_type": "Run",
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, server.Session.Events())
	})

	t.Run("dry run derives without committing", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)
		startTestGame(t, server, "Football")

		rr := doJSON(t, server, "POST", "/log?dry_run=true", map[string]any{
			"player_key": "#7 Jordan Blake", "side": "Offense", "stat_type": "Run", "yards": 5,
		})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, server.Session.Events())
	})
}

func TestListEventsHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "GET", "/log", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())

	startTestGame(t, server, "Football")
	doJSON(t, server, "POST", "/log", map[string]any{
		"player_key": "#11 Alex Reed", "side": "Offense", "stat_type": "Reception", "yards": 9,
	})

	rr = doJSON(t, server, "GET", "/log", nil)
	var events []statlog.StatEvent
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Reception", events[0].StatType)
}

func TestTotalsHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	t.Run("no game means not available", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/totals", nil)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"available": false}`, rr.Body.String())
	})

	t.Run("empty log means not available", func(t *testing.T) {
		startTestGame(t, server, "Football")
		rr := doJSON(t, server, "GET", "/totals", nil)
		assert.JSONEq(t, `{"available": false}`, rr.Body.String())
	})

	t.Run("totals appear once events commit", func(t *testing.T) {
		doJSON(t, server, "POST", "/log", map[string]any{
			"player_key": "#11 Alex Reed", "side": "Offense", "stat_type": "Reception", "yards": 9,
		})

		rr := doJSON(t, server, "GET", "/totals", nil)
		var resp struct {
			Available bool             `json:"available"`
			Columns   []string         `json:"columns"`
			Rows      []map[string]any `json:"rows"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Available)
		require.Len(t, resp.Rows, 1)
		assert.Equal(t, "#11 Alex Reed", resp.Rows[0]["player_key"])
		assert.Equal(t, float64(1), resp.Rows[0]["Receptions"])
		assert.Equal(t, "player_key", resp.Columns[0])
	})
}

func TestCaptureHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)
	startTestGame(t, server, "Soccer")

	rr := doJSON(t, server, "GET", "/capture", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var spec sports.CaptureSpec
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &spec))
	assert.Equal(t, "Soccer", spec.Sport)
	assert.Equal(t, []string{"All"}, spec.Sides)
	assert.Len(t, spec.PlayerOptions, 2)
}

func TestRosterHandlers(t *testing.T) {
	server, rosterSource, _, _ := setupTestServer(t)

	t.Run("roster reflects the session", func(t *testing.T) {
		rr := doJSON(t, server, "GET", "/roster", nil)
		assert.Equal(t, "[]\n", rr.Body.String())

		startTestGame(t, server, "Football")
		rr = doJSON(t, server, "GET", "/roster", nil)
		var players []roster.Player
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
		assert.Len(t, players, 2)
	})

	t.Run("csv import replaces the roster", func(t *testing.T) {
		csv := strings.Join([]string{
			"Player First Name,Player Last Name,Player Number,Player Position(s)",
			"Casey,Nguyen,3,K",
		}, "\n")
		req := httptest.NewRequest("POST", "/roster/import", strings.NewReader(csv))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		require.Len(t, rosterSource.ReplaceCalls, 1)
		assert.Equal(t, "varsity", rosterSource.ReplaceCalls[0].SourceID)
		require.Len(t, server.Session.Roster(), 1)
		assert.Equal(t, "#3 Casey Nguyen", server.Session.Roster()[0].Key)
	})

	t.Run("bad csv is a 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/roster/import", strings.NewReader("Wrong,Header\n1,2"))
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSaveGameHandler(t *testing.T) {
	server, _, archiveStore, notify := setupTestServer(t)
	startTestGame(t, server, "Football")
	doJSON(t, server, "POST", "/log", map[string]any{
		"player_key": "#11 Alex Reed", "side": "Offense", "stat_type": "Reception", "yards": 9,
	})

	rr := doJSON(t, server, "POST", "/save", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	require.Len(t, archiveStore.SaveTotalsCalls, 1)
	require.Len(t, archiveStore.SaveLogCalls, 1)
	assert.Equal(t, "Football 2025-09-12 vs Central", archiveStore.SaveTotalsCalls[0].Label)
	assert.Equal(t, "varsity", archiveStore.SaveTotalsCalls[0].SourceID)
	assert.Equal(t, "varsity", archiveStore.SaveLogCalls[0].SourceID)
	assert.Len(t, archiveStore.SaveLogCalls[0].Events, 1)

	require.Len(t, notify.SendTotalsSummaryCalls, 1)
	assert.Equal(t, 1, notify.SendTotalsSummaryCalls[0].EventCount)
}

func TestSaveGameHandlerKeyStableAcrossSessions(t *testing.T) {
	server, _, archiveStore, _ := setupTestServer(t)

	startTestGame(t, server, "Football")
	game1, _ := server.Session.Game()
	rr := doJSON(t, server, "POST", "/save", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Re-creating the same game mints a fresh session id, but the archive
	// key must stay the roster source so the second save replaces the first.
	startTestGame(t, server, "Football")
	game2, _ := server.Session.Game()
	require.NotEqual(t, game1.ID, game2.ID)
	rr = doJSON(t, server, "POST", "/save", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	require.Len(t, archiveStore.SaveTotalsCalls, 2)
	assert.Equal(t, archiveStore.SaveTotalsCalls[0].SourceID, archiveStore.SaveTotalsCalls[1].SourceID)
	assert.Equal(t, archiveStore.SaveTotalsCalls[0].Label, archiveStore.SaveTotalsCalls[1].Label)
	assert.Equal(t, "varsity", archiveStore.SaveTotalsCalls[1].SourceID)
}

func TestSaveGameHandlerDryRun(t *testing.T) {
	server, _, archiveStore, _ := setupTestServer(t)
	startTestGame(t, server, "Football")

	rr := doJSON(t, server, "POST", "/save?dry_run=true", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, archiveStore.SaveTotalsCalls)
	assert.Empty(t, archiveStore.SaveLogCalls)
}

func TestExportMaxPrepsHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)
	startTestGame(t, server, "Football")
	doJSON(t, server, "POST", "/log", map[string]any{
		"player_key": "#11 Alex Reed", "side": "Offense", "stat_type": "Reception", "yards": 9,
	})

	rr := doJSON(t, server, "GET", "/export/maxpreps", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	assert.Contains(t, rr.Header().Get("Content-Disposition"), ".txt")
	lines := strings.Split(rr.Body.String(), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "669ae75f-4563-494a-8c17-370aaa8539d4", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Jersey|"))
	assert.True(t, strings.HasPrefix(lines[2], "11|"))
}

func TestListSportsHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)
	rr := doJSON(t, server, "GET", "/sports", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"sports": ["Football", "Soccer", "Baseball", "Basketball", "Lacrosse"]}`, rr.Body.String())
}

func TestGameHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	rr := doJSON(t, server, "GET", "/game", nil)
	assert.JSONEq(t, `{"active": false}`, rr.Body.String())

	startTestGame(t, server, "Lacrosse")
	rr = doJSON(t, server, "GET", "/game", nil)

	var resp struct {
		Active bool   `json:"active"`
		Label  string `json:"label"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
	assert.Equal(t, "Lacrosse 2025-09-12 vs Central", resp.Label)
}
