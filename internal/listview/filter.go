// Package listview derives what a catalog table shows from the loaded
// collections: filtering, sorting, pagination, selection and the
// confirm-before-delete flow. Nothing here talks to the network except
// through the Deleter and Loader a view is given.
package listview

import (
	"slices"
	"strings"

	"vgm/internal/domain"
)

// GameFilter combines categories with AND and values inside a category with
// OR. An empty category matches everything.
type GameFilter struct {
	Search    string
	Platforms []int64
	Genres    []domain.Genre
	Statuses  []domain.Status
}

func (f GameFilter) Match(g domain.Game) bool {
	if !containsFold(g.Name, f.Search) {
		return false
	}
	if len(f.Platforms) > 0 && !slices.Contains(f.Platforms, g.Platform.ID) {
		return false
	}
	if len(f.Genres) > 0 && !slices.Contains(f.Genres, g.Genre) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, g.Status) {
		return false
	}
	return true
}

type PlatformFilter struct {
	Search string
}

func (f PlatformFilter) Match(p domain.Platform) bool {
	return containsFold(p.Name, f.Search)
}

// FilterGames keeps the input order.
func FilterGames(games []domain.Game, f GameFilter) []domain.Game {
	out := make([]domain.Game, 0, len(games))
	for _, g := range games {
		if f.Match(g) {
			out = append(out, g)
		}
	}
	return out
}

func FilterPlatforms(platforms []domain.Platform, f PlatformFilter) []domain.Platform {
	out := make([]domain.Platform, 0, len(platforms))
	for _, p := range platforms {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	if sub == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
