package game

import (
	"context"

	"vgm/internal/domain"
)

// GameRepository is the storage the service runs against.
type GameRepository interface {
	List(ctx context.Context, q ListQuery) ([]domain.GameRaw, error)
	ListExpanded(ctx context.Context, q ListQuery) ([]domain.Game, error)
	GetByID(ctx context.Context, id int64) (*domain.GameRaw, error)
	GetExpandedByID(ctx context.Context, id int64) (*domain.Game, error)
	Create(ctx context.Context, g *domain.GameRaw) error
	Update(ctx context.Context, g *domain.GameRaw) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	CountByPlatform(ctx context.Context, platformID int64) (int64, error)
}
