package listview

import (
	"context"
	"fmt"
	"log"

	"vgm/internal/client"
	"vgm/internal/domain"
)

// API is the part of the HTTP client a Session needs.
type API interface {
	ListExpandedGames(ctx context.Context, p client.ListGamesParams) ([]domain.Game, error)
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	DeleteGame(ctx context.Context, id int64) error
	DeletePlatform(ctx context.Context, id int64) error
}

// Session binds both views to the API. Deletes confirmed in either view
// reload both.
type Session struct {
	api       API
	Games     *GamesView
	Platforms *PlatformsView
}

func NewSession(api API) *Session {
	s := &Session{api: api}
	s.Games = NewGamesView(DeleterFunc(api.DeleteGame), s)
	s.Platforms = NewPlatformsView(DeleterFunc(api.DeletePlatform), s)
	return s
}

// Reload fetches expanded games and platforms and loads them into both
// views. On any fetch error the views keep their previous state.
func (s *Session) Reload(ctx context.Context) error {
	games, err := s.api.ListExpandedGames(ctx, client.ListGamesParams{})
	if err != nil {
		log.Printf("listview: load games failed: %v", err)
		return fmt.Errorf("load games: %w", err)
	}
	platforms, err := s.api.ListPlatforms(ctx)
	if err != nil {
		log.Printf("listview: load platforms failed: %v", err)
		return fmt.Errorf("load platforms: %w", err)
	}

	s.Games.Load(games, platforms)
	s.Platforms.Load(platforms, games)
	return nil
}
