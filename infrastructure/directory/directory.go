// Package directory holds the paginated, refetchable cache of user records
// shown in the list view.
package directory

import (
	"context"
	"sync"

	"github.com/MannavaSravanthi/user-management-ui/infrastructure/apiclient"
	"github.com/MannavaSravanthi/user-management-ui/models"
)

// State tracks where the directory is in its fetch cycle.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

// Lister is the slice of the API client the directory needs.
type Lister interface {
	ListUsers(ctx context.Context, pageNumber, pageSize int) (apiclient.UserPage, error)
}

// Snapshot is an immutable view of the directory for rendering.
type Snapshot struct {
	State        State
	Users        []models.UserRecord
	TotalCount   int
	Window       models.PageWindow
	ErrorMessage string
}

// Directory caches one page of user records. Every successful fetch replaces
// the whole list; a failed fetch keeps the previous rows and surfaces the
// error instead, so a transient failure never blanks the table. Overlapping
// fetches are resolved by sequence number: only the latest one may apply.
type Directory struct {
	api Lister

	mu     sync.Mutex
	state  State
	window models.PageWindow
	users  []models.UserRecord
	total  int
	errMsg string
	seq    uint64
}

func New(api Lister) *Directory {
	return &Directory{
		api:    api,
		state:  StateIdle,
		window: models.PageWindow{Page: 0, Size: 10},
	}
}

// Window returns the current page window.
func (d *Directory) Window() models.PageWindow {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.window
}

// Fetch loads the given window. The zero-based window page becomes a
// one-based pageNumber on the wire.
func (d *Directory) Fetch(ctx context.Context, window models.PageWindow) {
	d.mu.Lock()
	d.window = window
	d.state = StateLoading
	d.seq++
	seq := d.seq
	d.mu.Unlock()

	page, err := d.api.ListUsers(ctx, window.Page+1, window.Size)

	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		// A newer fetch started while this one was in flight; drop it.
		return
	}
	if err != nil {
		d.state = StateErrored
		d.errMsg = err.Error()
		return
	}
	d.state = StateLoaded
	d.errMsg = ""
	d.users = page.Data
	d.total = page.TotalCount
}

// Refetch reloads the current window. Mutation flows call this as a direct
// continuation after their write completes.
func (d *Directory) Refetch(ctx context.Context) {
	d.Fetch(ctx, d.Window())
}

// Snapshot copies the current rows and state for rendering.
func (d *Directory) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	users := make([]models.UserRecord, len(d.users))
	copy(users, d.users)
	return Snapshot{
		State:        d.state,
		Users:        users,
		TotalCount:   d.total,
		Window:       d.window,
		ErrorMessage: d.errMsg,
	}
}

// Find returns the cached record with the given id, if present on the
// current page.
func (d *Directory) Find(id int64) (models.UserRecord, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.UserRecord{}, false
}
