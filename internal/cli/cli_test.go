package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgm/internal/config"
	"vgm/internal/database"
	"vgm/internal/seed"
	"vgm/internal/server"
)

func setupTestAPI(t *testing.T) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.ConnectWithOptions(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()), database.Options{LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	_, err = seed.Run(context.Background(), db)
	require.NoError(t, err)

	r, _, err := server.New(&config.Config{Port: "5000"}, db)
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, url, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := New(strings.NewReader(stdin), &out)
	cmd.SetArgs(append([]string{"--api-url", url}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGamesList(t *testing.T) {
	url := setupTestAPI(t)

	out, err := run(t, url, "", "games", "list", "--search", "zelda", "--sort", "year", "--desc")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "PLATFORM")
	assert.Contains(t, lines[1], "Tears of the Kingdom")
	assert.Contains(t, lines[3], "Ocarina of Time")
	assert.Equal(t, "page 1/1, 3 game(s)", lines[4])
}

func TestGamesList_FiltersAndPages(t *testing.T) {
	url := setupTestAPI(t)

	out, err := run(t, url, "", "games", "list", "--genre", "Stratégie", "--status", "Not Started", "--size", "1", "--page", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "StarCraft II")
	assert.Contains(t, out, "page 2/2, 2 game(s)")

	_, err = run(t, url, "", "games", "list", "--genre", "Puzzle")
	assert.Error(t, err)
}

func TestGamesDelete_Prompt(t *testing.T) {
	url := setupTestAPI(t)

	out, err := run(t, url, "n\n", "games", "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")

	out, err = run(t, url, "y\n", "games", "delete", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 2 game(s)")

	out, err = run(t, url, "", "games", "list", "--search", "super mario bros")
	require.NoError(t, err)
	assert.Contains(t, out, "0 game(s)")
}

func TestPlatformsDelete_RefusedWhileReferenced(t *testing.T) {
	url := setupTestAPI(t)

	out, err := run(t, url, "", "platforms", "list", "--search", "playstation 3")
	require.NoError(t, err)
	assert.Contains(t, out, "PlayStation 3")

	_, err = run(t, url, "", "platforms", "delete", "--yes", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "referenced")

	// PlayStation 3 has no games in the sample data
	out, err = run(t, url, "", "platforms", "delete", "--yes", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 platform(s)")
}
