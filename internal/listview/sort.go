package listview

import (
	"cmp"
	"slices"
	"strings"

	"vgm/internal/domain"
)

type SortField string

const (
	SortByName     SortField = "name"
	SortByYear     SortField = "year"
	SortByPlatform SortField = "platform"
)

// ParseSortField accepts name, year or platform.
func ParseSortField(s string) (SortField, bool) {
	switch f := SortField(strings.ToLower(s)); f {
	case SortByName, SortByYear, SortByPlatform:
		return f, true
	}
	return "", false
}

type Sort struct {
	Field SortField
	Desc  bool
}

// Toggle flips the direction when field is already the sort key and
// otherwise sorts ascending by field.
func (s Sort) Toggle(field SortField) Sort {
	if s.Field == field {
		return Sort{Field: field, Desc: !s.Desc}
	}
	return Sort{Field: field}
}

func (s Sort) apply(c int) int {
	if s.Desc {
		return -c
	}
	return c
}

// SortGames returns a sorted copy. Equal keys keep their input order.
// Platform sorts by the embedded platform name.
func SortGames(games []domain.Game, s Sort) []domain.Game {
	out := slices.Clone(games)
	slices.SortStableFunc(out, func(a, b domain.Game) int {
		var c int
		switch s.Field {
		case SortByYear:
			c = cmp.Compare(a.Year, b.Year)
		case SortByPlatform:
			c = compareFold(a.Platform.Name, b.Platform.Name)
		default:
			c = compareFold(a.Name, b.Name)
		}
		return s.apply(c)
	})
	return out
}

// SortPlatforms sorts by name or year; any other field sorts by name.
func SortPlatforms(platforms []domain.Platform, s Sort) []domain.Platform {
	out := slices.Clone(platforms)
	slices.SortStableFunc(out, func(a, b domain.Platform) int {
		if s.Field == SortByYear {
			return s.apply(cmp.Compare(a.Year, b.Year))
		}
		return s.apply(compareFold(a.Name, b.Name))
	})
	return out
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
