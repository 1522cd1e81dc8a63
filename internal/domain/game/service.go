package game

import (
	"context"
	"log"

	"vgm/internal/domain"
	"vgm/internal/pkg/href"
)

type Service struct {
	repo GameRepository
}

func NewService(repo GameRepository) *Service {
	return &Service{repo: repo}
}

// List returns raw rows, each with an href built from origin.
func (s *Service) List(ctx context.Context, q ListQuery, origin href.Origin) ([]domain.GameRaw, error) {
	games, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	for i := range games {
		games[i].Href = href.Format(origin, "games", games[i].ID)
	}
	return games, nil
}

// ListExpanded returns rows with the platform embedded.
func (s *Service) ListExpanded(ctx context.Context, q ListQuery, origin href.Origin) ([]domain.Game, error) {
	games, err := s.repo.ListExpanded(ctx, q)
	if err != nil {
		return nil, err
	}
	for i := range games {
		games[i].Href = href.Format(origin, "games", games[i].ID)
	}
	return games, nil
}

func (s *Service) Get(ctx context.Context, id int64, origin href.Origin) (*domain.GameRaw, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	g.Href = href.Format(origin, "games", g.ID)
	return g, nil
}

func (s *Service) GetExpanded(ctx context.Context, id int64, origin href.Origin) (*domain.Game, error) {
	g, err := s.repo.GetExpandedByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	g.Href = href.Format(origin, "games", g.ID)
	return g, nil
}

// Create inserts a game and returns its id.
func (s *Service) Create(ctx context.Context, req *GameRequest) (int64, error) {
	g := req.toRow(0)
	if err := s.repo.Create(ctx, g); err != nil {
		return 0, err
	}
	return g.ID, nil
}

// Update replaces the whole row; concurrent writers race and the last wins.
func (s *Service) Update(ctx context.Context, id int64, req *GameRequest) error {
	found, err := s.repo.Update(ctx, req.toRow(id))
	if err != nil {
		return err
	}
	if !found {
		return ErrGameNotFound
	}
	return nil
}

// Delete removes the row if present. Deleting a missing id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		log.Printf("game delete: id=%d not found", id)
	}
	return nil
}

func (s *Service) CountByPlatform(ctx context.Context, platformID int64) (int64, error) {
	return s.repo.CountByPlatform(ctx, platformID)
}
