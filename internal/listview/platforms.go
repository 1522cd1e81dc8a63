package listview

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"vgm/internal/domain"
)

// PlatformsView is the state behind the platforms table. It also holds the
// games so it can tell which platforms are still referenced.
type PlatformsView struct {
	mu        sync.Mutex
	platforms []domain.Platform
	counts    map[int64]int
	filter    PlatformFilter
	sort      Sort
	page      Page
	selected  selection
	confirm   *Confirmation
}

func NewPlatformsView(d Deleter, l Loader) *PlatformsView {
	v := &PlatformsView{
		counts:  map[int64]int{},
		sort:    Sort{Field: SortByName},
		page:    Page{Size: DefaultPageSize},
		confirm: NewConfirmation(d, l),
	}
	v.confirm.onDone = v.deselect
	return v
}

func (v *PlatformsView) Load(platforms []domain.Platform, games []domain.Game) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.platforms = slices.Clone(platforms)
	v.counts = make(map[int64]int, len(platforms))
	for _, g := range games {
		v.counts[g.Platform.ID]++
	}

	ids := make(map[int64]bool, len(platforms))
	for _, p := range platforms {
		ids[p.ID] = true
	}
	v.selected.retain(func(id int64) bool { return ids[id] })

	if last := PageCount(len(v.filtered()), v.page.Size) - 1; v.page.Index > last {
		v.page.Index = last
	}
}

// GameCount is how many loaded games reference the platform.
func (v *PlatformsView) GameCount(id int64) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.counts[id]
}

func (v *PlatformsView) InUse(id int64) bool {
	return v.GameCount(id) > 0
}

// CanDelete drives the enabled state of a row's delete control.
func (v *PlatformsView) CanDelete(id int64) bool {
	return !v.InUse(id)
}

func (v *PlatformsView) Filter() PlatformFilter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter
}

func (v *PlatformsView) Sort() Sort {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sort
}

func (v *PlatformsView) Page() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}

func (v *PlatformsView) interact(fn func()) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.confirm.IsOpen() {
		return ErrConfirmationPending
	}
	fn()
	return nil
}

func (v *PlatformsView) SetSearch(s string) error {
	return v.interact(func() {
		v.filter.Search = s
		v.page.Index = 0
	})
}

func (v *PlatformsView) SetPageSize(n int) error {
	if n <= 0 {
		return ErrInvalidPageSize
	}
	return v.interact(func() {
		v.page = Page{Size: n}
	})
}

func (v *PlatformsView) SetPage(i int) error {
	return v.interact(func() {
		v.page.Index = max(i, 0)
	})
}

func (v *PlatformsView) ToggleSort(field SortField) error {
	return v.interact(func() {
		v.sort = v.sort.Toggle(field)
	})
}

func (v *PlatformsView) filtered() []domain.Platform {
	return SortPlatforms(FilterPlatforms(v.platforms, v.filter), v.sort)
}

func (v *PlatformsView) Filtered() []domain.Platform {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filtered()
}

func (v *PlatformsView) Visible() []domain.Platform {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Paginate(v.filtered(), v.page)
}

func (v *PlatformsView) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(FilterPlatforms(v.platforms, v.filter))
}

func (v *PlatformsView) ToggleSelected(id int64) error {
	return v.interact(func() { v.selected.toggle(id) })
}

func (v *PlatformsView) SelectAll(on bool) error {
	return v.interact(func() {
		if !on {
			v.selected.set(nil)
			return
		}
		v.selected.set(platformIDs(FilterPlatforms(v.platforms, v.filter)))
	})
}

func (v *PlatformsView) AllSelected() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected.allOf(platformIDs(FilterPlatforms(v.platforms, v.filter)))
}

func (v *PlatformsView) SomeSelected() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected.len() > 0 && !v.selected.allOf(platformIDs(FilterPlatforms(v.platforms, v.filter)))
}

func (v *PlatformsView) Selected() []int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selected.list()
}

// RequestDelete refuses referenced platforms before anything reaches the
// server.
func (v *PlatformsView) RequestDelete(ids ...int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.confirm.IsOpen() {
		return ErrConfirmationPending
	}
	for _, id := range ids {
		if n := v.counts[id]; n > 0 {
			return fmt.Errorf("%w: platform %d has %d game(s)", ErrPlatformInUse, id, n)
		}
	}
	return v.confirm.RequestDelete(ids)
}

func (v *PlatformsView) PendingDelete() []int64 {
	return v.confirm.Pending()
}

func (v *PlatformsView) CancelDelete() {
	v.confirm.Cancel()
}

func (v *PlatformsView) ConfirmDelete(ctx context.Context) (DeleteResult, error) {
	return v.confirm.Confirm(ctx)
}

func (v *PlatformsView) deselect(ids []int64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selected.remove(ids)
}

func platformIDs(platforms []domain.Platform) []int64 {
	ids := make([]int64, len(platforms))
	for i, p := range platforms {
		ids[i] = p.ID
	}
	return ids
}
