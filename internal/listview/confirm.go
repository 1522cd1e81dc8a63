package listview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"
)

var (
	ErrConfirmationPending = errors.New("a delete confirmation is pending")
	ErrNoConfirmation      = errors.New("no delete confirmation is pending")
	ErrNothingToDelete     = errors.New("nothing to delete")
	ErrPlatformInUse       = errors.New("platform is referenced by games")
	ErrInvalidPageSize     = errors.New("page size must be positive")
)

// Deleter removes one row on the server.
type Deleter interface {
	Delete(ctx context.Context, id int64) error
}

type DeleterFunc func(ctx context.Context, id int64) error

func (f DeleterFunc) Delete(ctx context.Context, id int64) error { return f(ctx, id) }

// Loader refetches the collections after a mutation.
type Loader interface {
	Reload(ctx context.Context) error
}

type DeleteResult struct {
	Deleted []int64
	Failed  map[int64]error
}

// Err joins the per-id failures, or returns nil.
func (r DeleteResult) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(r.Failed))
	for id := range r.Failed {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	errs := make([]error, 0, len(ids))
	for _, id := range ids {
		errs = append(errs, fmt.Errorf("delete %d: %w", id, r.Failed[id]))
	}
	return errors.Join(errs...)
}

// Confirmation is the modal step between asking to delete rows and deleting
// them. While it is open the owning view refuses every other interaction.
type Confirmation struct {
	mu      sync.Mutex
	pending []int64

	deleter Deleter
	loader  Loader
	onDone  func(deleted []int64)
}

func NewConfirmation(d Deleter, l Loader) *Confirmation {
	return &Confirmation{deleter: d, loader: l}
}

// Pending returns the ids awaiting confirmation, or nil when closed.
func (c *Confirmation) Pending() []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.pending)
}

func (c *Confirmation) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil
}

// RequestDelete opens the confirmation for ids.
func (c *Confirmation) RequestDelete(ids []int64) error {
	if len(ids) == 0 {
		return ErrNothingToDelete
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		return ErrConfirmationPending
	}
	c.pending = slices.Clone(ids)
	return nil
}

// Cancel closes the confirmation without deleting anything.
func (c *Confirmation) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil
}

// Confirm deletes every pending id. Each delete stands alone: a failure is
// recorded and the rest still run. The collections are then reloaded from the
// server rather than patched locally. The returned error is the reload error;
// per-id failures are in the result.
func (c *Confirmation) Confirm(ctx context.Context) (DeleteResult, error) {
	ids := c.Pending()
	if ids == nil {
		return DeleteResult{}, ErrNoConfirmation
	}

	res := DeleteResult{Failed: map[int64]error{}}
	for _, id := range ids {
		if err := c.deleter.Delete(ctx, id); err != nil {
			log.Printf("listview: delete id=%d failed: %v", id, err)
			res.Failed[id] = err
			continue
		}
		res.Deleted = append(res.Deleted, id)
	}

	c.Cancel()
	if c.onDone != nil {
		c.onDone(res.Deleted)
	}

	if c.loader == nil {
		return res, nil
	}
	return res, c.loader.Reload(ctx)
}
