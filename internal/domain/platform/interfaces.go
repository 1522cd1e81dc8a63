package platform

import (
	"context"

	"vgm/internal/domain"
)

type PlatformRepository interface {
	List(ctx context.Context) ([]domain.Platform, error)
	GetByID(ctx context.Context, id int64) (*domain.Platform, error)
	Create(ctx context.Context, p *domain.Platform) error
	Update(ctx context.Context, p *domain.Platform) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// GameCounter counts games pointing at a platform.
type GameCounter interface {
	CountByPlatform(ctx context.Context, platformID int64) (int64, error)
}
