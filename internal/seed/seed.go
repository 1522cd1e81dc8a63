// Package seed fills an empty catalog with sample platforms and games.
package seed

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vgm/internal/database"
	"vgm/internal/domain"
	"vgm/internal/domain/game"
	"vgm/internal/repository"
)

type Result struct {
	Platforms int
	Games     int
}

// Run wipes both tables, restarts their ids and inserts the sample data.
func Run(ctx context.Context, db *gorm.DB) (Result, error) {
	var res Result

	if err := database.EnsureSchema(ctx, db); err != nil {
		return res, err
	}
	if err := database.Reset(ctx, db); err != nil {
		return res, fmt.Errorf("reset: %w", err)
	}

	sqlxDB, err := database.SQLX(db)
	if err != nil {
		return res, err
	}
	platformRepo := repository.NewPlatformRepository(db)
	gameRepo := game.NewRepository(sqlxDB)

	ids := make(map[string]int64, len(platforms))
	for _, p := range platforms {
		row := &domain.Platform{Name: p.Name, Year: p.Year}
		if err := platformRepo.Create(ctx, row); err != nil {
			return res, fmt.Errorf("insert platform %q: %w", p.Name, err)
		}
		ids[p.Name] = row.ID
		res.Platforms++
	}

	for _, g := range games {
		row := &domain.GameRaw{
			Name:     g.Name,
			Year:     g.Year,
			Platform: ids[g.Platform],
			Genre:    g.Genre,
			Status:   g.Status,
		}
		if g.Rating > 0 {
			rating := g.Rating
			row.Rating = &rating
		}
		if err := gameRepo.Create(ctx, row); err != nil {
			return res, fmt.Errorf("insert game %q: %w", g.Name, err)
		}
		res.Games++
	}

	return res, nil
}
