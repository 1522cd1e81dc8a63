package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vgm/internal/database"
	"vgm/internal/domain"
	"vgm/internal/domain/game"
)

func TestSampleData_IsValid(t *testing.T) {
	names := map[string]bool{}
	for _, p := range platforms {
		names[p.Name] = true
	}
	for _, g := range games {
		assert.True(t, names[g.Platform], "%s: unknown platform %q", g.Name, g.Platform)
		assert.True(t, g.Genre.Valid(), g.Name)
		assert.True(t, g.Status.Valid(), g.Name)
		assert.True(t, g.Rating == 0 || (g.Rating >= domain.MinRating && g.Rating <= domain.MaxRating), g.Name)
	}
}

func TestRun_IsRepeatable(t *testing.T) {
	db, err := database.ConnectWithOptions(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()), database.Options{LogLevel: "silent"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := Run(ctx, db)
		require.NoError(t, err)
		assert.Equal(t, Result{Platforms: 16, Games: 36}, res)
	}

	x, err := database.SQLX(db)
	require.NoError(t, err)
	repo := game.NewRepository(x)

	// ids restart at 1 after a reset
	g, err := repo.GetExpandedByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "Super Mario Bros.", g.Name)
	assert.Equal(t, "NES", g.Platform.Name)

	pc, err := repo.CountByPlatform(ctx, 16)
	require.NoError(t, err)
	assert.Equal(t, int64(8), pc)
}
