package listview

import (
	"context"
	"slices"
	"sync"

	"vgm/internal/domain"
)

// GamesView is the state behind the games table. Load replaces the
// collections; every other mutation is a user interaction and fails with
// ErrConfirmationPending while a delete confirmation is open.
type GamesView struct {
	mu        sync.Mutex
	games     []domain.Game
	platforms []domain.Platform
	filter    GameFilter
	sort      Sort
	page      Page
	selected  selection
	confirm   *Confirmation
}

// NewGamesView sorts by name ascending with DefaultPageSize rows per page.
func NewGamesView(d Deleter, l Loader) *GamesView {
	v := &GamesView{
		sort:    Sort{Field: SortByName},
		page:    Page{Size: DefaultPageSize},
		confirm: NewConfirmation(d, l),
	}
	v.confirm.onDone = v.deselect
	return v
}

// Load replaces both collections. Selected ids that no longer exist are
// dropped and the page is clamped to the last one.
func (v *GamesView) Load(games []domain.Game, platforms []domain.Platform) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.games = slices.Clone(games)
	v.platforms = slices.Clone(platforms)

	ids := make(map[int64]bool, len(games))
	for _, g := range games {
		ids[g.ID] = true
	}
	v.selected.retain(func(id int64) bool { return ids[id] })

	if last := PageCount(len(v.filtered()), v.page.Size) - 1; v.page.Index > last {
		v.page.Index = last
	}
}

func (v *GamesView) Games() []domain.Game {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.games)
}

// Platforms are the filter options.
func (v *GamesView) Platforms() []domain.Platform {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.platforms)
}

func (v *GamesView) Filter() GameFilter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func (v *GamesView) Sort() Sort {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sort
}

func (v *GamesView) Page() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

// interact runs fn under the lock unless a confirmation is open.
func (v *GamesView) interact(fn func()) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.confirm.IsOpen() {
		return ErrConfirmationPending
	}
	fn()
	return nil
}

func (v *GamesView) SetSearch(s string) error {
	return v.interact(func() {
		v.filter.Search = s
		v.page.Index = 0
	})
}

func (v *GamesView) SetPlatforms(ids []int64) error {
	return v.interact(func() {
		v.filter.Platforms = slices.Clone(ids)
		v.page.Index = 0
	})
}

func (v *GamesView) SetGenres(genres []domain.Genre) error {
	return v.interact(func() {
		v.filter.Genres = slices.Clone(genres)
		v.page.Index = 0
	})
}

func (v *GamesView) SetStatuses(statuses []domain.Status) error {
	return v.interact(func() {
		v.filter.Statuses = slices.Clone(statuses)
		v.page.Index = 0
	})
}

func (v *GamesView) SetPageSize(n int) error {
	if n <= 0 {
		return ErrInvalidPageSize
	}
	return v.interact(func() {
		v.page = Page{Size: n}
	})
}

func (v *GamesView) SetPage(i int) error {
	return v.interact(func() {
		v.page.Index = max(i, 0)
	})
}

func (v *GamesView) ToggleSort(field SortField) error {
	return v.interact(func() {
		v.sort = v.sort.Toggle(field)
	})
}

func (v *GamesView) filtered() []domain.Game {
	return SortGames(FilterGames(v.games, v.filter), v.sort)
}

// Filtered is every game passing the filter, sorted.
func (v *GamesView) Filtered() []domain.Game {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filtered()
}

// Visible is the current page of Filtered.
func (v *GamesView) Visible() []domain.Game {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Paginate(v.filtered(), v.page)
}

// Total is the filtered count, which drives the pagination controls.
func (v *GamesView) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(FilterGames(v.games, v.filter))
}

func (v *GamesView) ToggleSelected(id int64) error {
	return v.interact(func() { v.selected.toggle(id) })
}

// SelectAll selects every filtered game, or clears the selection.
func (v *GamesView) SelectAll(on bool) error {
	return v.interact(func() {
		if !on {
			v.selected.set(nil)
			return
		}
		v.selected.set(gameIDs(FilterGames(v.games, v.filter)))
	})
}

// AllSelected is true when the filtered set is non-empty and fully selected.
func (v *GamesView) AllSelected() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected.allOf(gameIDs(FilterGames(v.games, v.filter)))
}

// SomeSelected is the indeterminate state of the select-all control.
func (v *GamesView) SomeSelected() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected.len() > 0 && !v.selected.allOf(gameIDs(FilterGames(v.games, v.filter)))
}

func (v *GamesView) IsSelected(id int64) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected.has(id)
}

func (v *GamesView) Selected() []int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected.list()
}

// RequestDelete opens the confirmation for ids.
func (v *GamesView) RequestDelete(ids ...int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.confirm.RequestDelete(ids)
}

// RequestDeleteSelected opens the confirmation for the current selection.
func (v *GamesView) RequestDeleteSelected() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.confirm.RequestDelete(v.selected.list())
}

func (v *GamesView) PendingDelete() []int64 {
	return v.confirm.Pending()
}

func (v *GamesView) CancelDelete() {
	v.confirm.Cancel()
}

// ConfirmDelete runs the pending deletes and reloads through the Loader.
func (v *GamesView) ConfirmDelete(ctx context.Context) (DeleteResult, error) {
	return v.confirm.Confirm(ctx)
}

func (v *GamesView) deselect(ids []int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected.remove(ids)
}

func gameIDs(games []domain.Game) []int64 {
	ids := make([]int64, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}
