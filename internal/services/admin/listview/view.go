package listview

import (
	"context"
	"errors"
	"sync"

	"github.com/louisbranch/farmhouse.admin/internal/services/admin/marketplace"
)

// ErrStale reports that a fetch finished after a newer one was issued and its
// result was discarded.
var ErrStale = errors.New("listview: stale fetch discarded")

// Phase is the fetch state of a view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

// String returns the phase name used in templates and logs.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Fetcher loads one page of records.
type Fetcher[T any] func(ctx context.Context, page, limit int) (marketplace.Page[T], error)

// Snapshot is a consistent copy of a view's state.
type Snapshot[T any] struct {
	Phase      Phase
	Items      []T
	Page       int
	TotalPages int
	Total      int
	Busy       bool
	// Notice is the pending notice, handed out once.
	Notice *Notice
}

// Empty reports whether a loaded view has no records.
func (s Snapshot[T]) Empty() bool {
	return s.Phase == PhaseLoaded && len(s.Items) == 0
}

// View is the list state of one entity for one console session.
type View[T any] struct {
	fetch    Fetcher[T]
	idOf     func(T) string
	pageSize int

	mu         sync.Mutex
	phase      Phase
	items      []T
	page       int
	total      int
	totalPages int
	busy       int
	notice     *Notice
	// seq is the sequence number of the latest issued fetch.
	seq uint64
}

// Option customizes a View.
type Option[T any] func(*View[T])

// WithPageSize overrides marketplace.PageSize.
func WithPageSize[T any](size int) Option[T] {
	return func(v *View[T]) {
		if size > 0 {
			v.pageSize = size
		}
	}
}

// New returns an idle view that loads pages through fetch and identifies
// records with idOf.
func New[T any](fetch Fetcher[T], idOf func(T) string, opts ...Option[T]) *View[T] {
	v := &View[T]{
		fetch:      fetch,
		idOf:       idOf,
		pageSize:   marketplace.PageSize,
		page:       1,
		totalPages: 1,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// PageSize returns the page size the view requests.
func (v *View[T]) PageSize() int {
	return v.pageSize
}

// Snapshot returns the current state and consumes the pending notice.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// FetchPage loads page and, when it is still the latest fetch on completion,
// replaces the held records. A failed fetch keeps the previous records and
// leaves a fetch-failed notice. A superseded fetch returns ErrStale.
func (v *View[T]) FetchPage(ctx context.Context, page int) (Snapshot[T], error) {
	if page < 1 {
		page = 1
	}
	v.mu.Lock()
	v.seq++
	seq := v.seq
	v.phase = PhaseLoading
	v.mu.Unlock()

	result, err := v.fetch(ctx, page, v.pageSize)

	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return v.snapshotLocked(), ErrStale
	}
	if err != nil {
		v.phase = PhaseError
		v.notice = fetchFailed(err)
		return v.snapshotLocked(), err
	}
	v.items = result.Items
	v.total = result.Total
	v.totalPages = marketplace.TotalPages(result.Total, v.pageSize)
	v.page = page
	v.phase = PhaseLoaded
	return v.snapshotLocked(), nil
}

// Refresh re-fetches the current page.
func (v *View[T]) Refresh(ctx context.Context) (Snapshot[T], error) {
	v.mu.Lock()
	page := v.page
	v.mu.Unlock()
	return v.FetchPage(ctx, page)
}

// Select returns the held summary record with the given id.
func (v *View[T]) Select(id string) (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, item := range v.items {
		if v.idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Update replaces the held record with the given id by fn's result.
func (v *View[T]) Update(id string, fn func(T) T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, item := range v.items {
		if v.idOf(item) == id {
			v.items[i] = fn(item)
			return true
		}
	}
	return false
}

// Action is one mutating call issued from a view.
type Action struct {
	// Call performs the mutation.
	Call func(ctx context.Context) error
	// SuccessKey is the catalog key of the success notice.
	SuccessKey string
	// FailureKey is the catalog key of the failure notice. Empty uses
	// NoticeActionFailed.
	FailureKey string
}

// Run marks the view busy, performs the action, records its notice and then
// re-fetches the current page whatever the outcome. The returned error is the
// action's own.
func (v *View[T]) Run(ctx context.Context, action Action) (Snapshot[T], error) {
	v.mu.Lock()
	v.busy++
	page := v.page
	v.mu.Unlock()

	var err error
	if action.Call != nil {
		err = action.Call(ctx)
	}

	// The action's notice wins over a refetch failure.
	refetched, _ := v.FetchPage(ctx, page)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy--
	switch {
	case err != nil:
		v.notice = actionFailed(action.FailureKey, err)
	case refetched.Notice != nil:
		v.notice = refetched.Notice
	default:
		v.notice = &Notice{Kind: NoticeSuccess, Key: action.SuccessKey}
	}
	return v.snapshotLocked(), err
}

func (v *View[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(v.items))
	copy(items, v.items)
	snap := Snapshot[T]{
		Phase:      v.phase,
		Items:      items,
		Page:       v.page,
		TotalPages: v.totalPages,
		Total:      v.total,
		Busy:       v.busy > 0,
		Notice:     v.notice,
	}
	v.notice = nil
	return snap
}
