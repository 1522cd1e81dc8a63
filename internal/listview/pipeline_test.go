package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vgm/internal/domain"
)

var (
	nes = domain.Platform{ID: 1, Name: "NES", Year: 1983}
	nsw = domain.Platform{ID: 6, Name: "Nintendo Switch", Year: 2017}
	pc  = domain.Platform{ID: 16, Name: "PC", Year: 1981}
)

func sampleGames() []domain.Game {
	return []domain.Game{
		{ID: 1, Name: "Super Mario Bros.", Year: 1985, Platform: nes, Genre: domain.GenreAction, Status: domain.StatusCompleted},
		{ID: 2, Name: "stardew Valley", Year: 2016, Platform: pc, Genre: domain.GenreSimulation, Status: domain.StatusCompleted},
		{ID: 3, Name: "Zelda: Breath of the Wild", Year: 2017, Platform: nsw, Genre: domain.GenreAventure, Status: domain.StatusPlaying},
		{ID: 4, Name: "Civilization VI", Year: 2016, Platform: pc, Genre: domain.GenreStrategie, Status: domain.StatusPlaying},
		{ID: 5, Name: "Super Mario Odyssey", Year: 2017, Platform: nsw, Genre: domain.GenreAction, Status: domain.StatusNotStarted},
	}
}

func ids(games []domain.Game) []int64 {
	return gameIDs(games)
}

func TestGameFilter(t *testing.T) {
	games := sampleGames()

	tests := []struct {
		name   string
		filter GameFilter
		want   []int64
	}{
		{"empty matches all", GameFilter{}, []int64{1, 2, 3, 4, 5}},
		{"search is case-insensitive", GameFilter{Search: "MARIO"}, []int64{1, 5}},
		{"or within platforms", GameFilter{Platforms: []int64{1, 16}}, []int64{1, 2, 4}},
		{"and across categories", GameFilter{Platforms: []int64{6}, Genres: []domain.Genre{domain.GenreAction}}, []int64{5}},
		{"statuses", GameFilter{Statuses: []domain.Status{domain.StatusPlaying, domain.StatusNotStarted}}, []int64{3, 4, 5}},
		{"everything combined", GameFilter{Search: "s", Platforms: []int64{16}, Statuses: []domain.Status{domain.StatusCompleted}}, []int64{2}},
		{"no match", GameFilter{Search: "halo"}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterGames(games, tt.filter)))
		})
	}
}

func TestPlatformFilter(t *testing.T) {
	got := FilterPlatforms([]domain.Platform{nes, nsw, pc}, PlatformFilter{Search: "nin"})
	assert.Equal(t, []domain.Platform{nsw}, got)
}

func TestSortGames(t *testing.T) {
	games := sampleGames()

	assert.Equal(t, []int64{4, 2, 1, 5, 3}, ids(SortGames(games, Sort{Field: SortByName})))
	assert.Equal(t, []int64{3, 5, 1, 2, 4}, ids(SortGames(games, Sort{Field: SortByName, Desc: true})))

	// equal years keep input order in both directions
	assert.Equal(t, []int64{1, 2, 4, 3, 5}, ids(SortGames(games, Sort{Field: SortByYear})))
	assert.Equal(t, []int64{3, 5, 2, 4, 1}, ids(SortGames(games, Sort{Field: SortByYear, Desc: true})))

	assert.Equal(t, []int64{1, 3, 5, 2, 4}, ids(SortGames(games, Sort{Field: SortByPlatform})))

	// input is not modified
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(games))
}

func TestSortPlatforms(t *testing.T) {
	ps := []domain.Platform{pc, nes, nsw}
	assert.Equal(t, []domain.Platform{nes, nsw, pc}, SortPlatforms(ps, Sort{Field: SortByName}))
	assert.Equal(t, []domain.Platform{nsw, nes, pc}, SortPlatforms(ps, Sort{Field: SortByYear, Desc: true}))
}

func TestSortToggle(t *testing.T) {
	s := Sort{Field: SortByName}

	s = s.Toggle(SortByName)
	assert.Equal(t, Sort{Field: SortByName, Desc: true}, s)

	s = s.Toggle(SortByYear)
	assert.Equal(t, Sort{Field: SortByYear}, s)
}

func TestPaginate(t *testing.T) {
	rows := []int{0, 1, 2, 3, 4, 5, 6}

	assert.Equal(t, []int{0, 1, 2}, Paginate(rows, Page{Index: 0, Size: 3}))
	assert.Equal(t, []int{6}, Paginate(rows, Page{Index: 2, Size: 3}))
	assert.Empty(t, Paginate(rows, Page{Index: 3, Size: 3}))
	assert.Empty(t, Paginate(rows, Page{Index: 0, Size: 0}))
	assert.Equal(t, rows, Paginate(rows, Page{Size: 50}))

	// pages partition the rows
	var all []int
	for i := 0; i < PageCount(len(rows), 3); i++ {
		all = append(all, Paginate(rows, Page{Index: i, Size: 3})...)
	}
	assert.Equal(t, rows, all)

	assert.Equal(t, 3, PageCount(7, 3))
	assert.Equal(t, 1, PageCount(0, 10))
}

func TestParseSortField(t *testing.T) {
	f, ok := ParseSortField("Year")
	assert.True(t, ok)
	assert.Equal(t, SortByYear, f)

	_, ok = ParseSortField("rating")
	assert.False(t, ok)
}
