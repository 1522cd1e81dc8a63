package platform

import (
	"context"
	"fmt"

	"vgm/internal/domain"
	"vgm/internal/pkg/href"
)

type Service struct {
	repo  PlatformRepository
	games GameCounter
}

func NewService(repo PlatformRepository, games GameCounter) *Service {
	return &Service{
		repo:  repo,
		games: games,
	}
}

func (s *Service) List(ctx context.Context, origin href.Origin) ([]domain.Platform, error) {
	platforms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range platforms {
		platforms[i].Href = href.Format(origin, "platforms", platforms[i].ID)
	}
	return platforms, nil
}

func (s *Service) Get(ctx context.Context, id int64, origin href.Origin) (*domain.Platform, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPlatformNotFound
	}
	p.Href = href.Format(origin, "platforms", p.ID)
	return p, nil
}

func (s *Service) Create(ctx context.Context, req *PlatformRequest) (int64, error) {
	p := &domain.Platform{Name: req.Name, Year: req.Year}
	if err := s.repo.Create(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *PlatformRequest) error {
	found, err := s.repo.Update(ctx, &domain.Platform{ID: id, Name: req.Name, Year: req.Year})
	if err != nil {
		return err
	}
	if !found {
		return ErrPlatformNotFound
	}
	return nil
}

// GameCount returns how many games reference the platform. The platform
// itself need not exist.
func (s *Service) GameCount(ctx context.Context, id int64) (int64, error) {
	return s.games.CountByPlatform(ctx, id)
}

// Delete refuses while any game still references the platform. The check and
// the delete are separate statements, so a game created in between can still
// end up dangling; readers tolerate that.
func (s *Service) Delete(ctx context.Context, id int64) error {
	n, err := s.games.CountByPlatform(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: %d game(s)", ErrPlatformInUse, n)
	}
	_, err = s.repo.Delete(ctx, id)
	return err
}
