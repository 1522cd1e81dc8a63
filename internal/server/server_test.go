package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vgm/internal/config"
	"vgm/internal/database"
	"vgm/internal/domain"
	"vgm/internal/domain/events"
)

type testSuite struct {
	router *gin.Engine
	hub    *events.Hub
	db     *gorm.DB
}

func setupTestSuite(t *testing.T) *testSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.ConnectWithOptions(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()), database.Options{LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.EnsureSchema(context.Background(), db))

	cfg := &config.Config{
		Port:               "5000",
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
	r, hub, err := New(cfg, db)
	require.NoError(t, err)

	return &testSuite{router: r, hub: hub, db: db}
}

func (s *testSuite) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testSuite) createPlatform(t *testing.T, name string, year int) int64 {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/platforms", map[string]any{"name": name, "year": year})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct{ ID int64 }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func (s *testSuite) createGame(t *testing.T, body map[string]any) int64 {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/games", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct{ ID int64 }
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

func (s *testSuite) listGames(t *testing.T, params url.Values) []map[string]any {
	t.Helper()
	w := s.do(t, http.MethodGet, "/api/games?"+params.Encode(), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Games []map[string]any `json:"games"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Games
}

func TestHealthz(t *testing.T) {
	s := setupTestSuite(t)

	w := s.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGameLifecycle(t *testing.T) {
	s := setupTestSuite(t)

	ps := s.createPlatform(t, "PlayStation", 1994)
	n64 := s.createPlatform(t, "Nintendo 64", 1996)

	ff := s.createGame(t, map[string]any{"name": "Final Fantasy VII", "year": 1997, "platform": ps, "genre": "RPG", "status": "Completed", "rating": 5})
	s.createGame(t, map[string]any{"name": "Super Mario 64", "year": 1996, "platform": n64, "genre": "Aventure"})
	s.createGame(t, map[string]any{"name": "Tekken 3", "year": 1998, "platform": ps, "genre": "Action", "status": "Playing"})

	// expansion only changes the shape of the platform field
	raw := s.listGames(t, nil)
	expanded := s.listGames(t, url.Values{"$expand": {"platform"}})
	require.Len(t, raw, 3)
	require.Len(t, expanded, 3)
	for i := range raw {
		assert.Equal(t, raw[i]["id"], expanded[i]["id"])
		assert.Equal(t, raw[i]["platform"], expanded[i]["platform"].(map[string]any)["id"])
		assert.NotContains(t, expanded[i], "platform_name")
	}

	// an equality filter on platform returns exactly the matching games
	filtered := s.listGames(t, url.Values{"$filter": {fmt.Sprintf("platform eq %d", ps)}})
	require.Len(t, filtered, 2)
	for _, g := range filtered {
		assert.Equal(t, float64(ps), g["platform"])
	}

	// search composes with the filter
	both := s.listGames(t, url.Values{
		"$filter": {fmt.Sprintf("platform eq %d", ps)},
		"$search": {"TEKKEN"},
	})
	require.Len(t, both, 1)
	assert.Equal(t, "Tekken 3", both[0]["name"])

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/games/%d?$expand=platform", ff), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var one struct {
		Game domain.Game `json:"game"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	assert.Equal(t, "PlayStation", one.Game.Platform.Name)
	assert.Equal(t, fmt.Sprintf("http://example.com:5000/api/games/%d", ff), one.Game.Href)

	// deleting twice is still a success
	for i := 0; i < 2; i++ {
		w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/games/%d", ff), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/games/%d", ff), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Game not found"}`, w.Body.String())
}

func TestDanglingPlatformStillListed(t *testing.T) {
	s := setupTestSuite(t)

	s.createGame(t, map[string]any{"name": "Orphan", "year": 2005, "platform": 42, "genre": "Sport"})

	games := s.listGames(t, url.Values{"$expand": {"platform"}})
	require.Len(t, games, 1)
	assert.Equal(t, map[string]any{"id": float64(42), "name": "", "year": float64(0)}, games[0]["platform"])
}

func TestPlatformDeleteRefusedWhileReferenced(t *testing.T) {
	s := setupTestSuite(t)

	ps := s.createPlatform(t, "PlayStation", 1994)
	gid := s.createGame(t, map[string]any{"name": "Crash Bandicoot", "year": 1996, "platform": ps, "genre": "Aventure"})

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/platforms/%d/games/count", ps), nil)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/platforms/%d", ps), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	s.do(t, http.MethodDelete, fmt.Sprintf("/api/games/%d", gid), nil)

	w = s.do(t, http.MethodDelete, fmt.Sprintf("/api/platforms/%d", ps), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Platform deleted successfully!"}`, w.Body.String())
}

func TestStatementFailureSurfacesAs400(t *testing.T) {
	s := setupTestSuite(t)
	require.NoError(t, s.db.Exec(`DROP TABLE games`).Error)

	w := s.do(t, http.MethodGet, "/api/games", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no such table")
}

func TestUnknownRoute(t *testing.T) {
	s := setupTestSuite(t)

	w := s.do(t, http.MethodGet, "/api/consoles", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEventsFeed(t *testing.T) {
	s := setupTestSuite(t)
	srv := httptest.NewServer(s.router)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/events", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return s.hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Post(srv.URL+"/api/platforms", "application/json", strings.NewReader(`{"name":"Saturn","year":1994}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev events.Event
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, events.Event{Type: events.TypeCreated, Resource: events.ResourcePlatforms, ID: 1}, ev)
}
