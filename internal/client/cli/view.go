package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"text/tabwriter"

	"github.com/pushkard/userconsole/internal/client/api"
)

// UserListView owns the directory listing: the current page, an optional
// active search, and the in-flight request. Page numbers shown to the
// operator are 1-based; the API index is zero-based.
//
// Only the newest request may update the view: starting a request cancels
// the previous one, and a response is dropped unless it still carries the
// latest sequence number. A slow stale response can never overwrite a newer
// one.
type UserListView struct {
	client   api.Client
	out      io.Writer
	pageSize int

	mu         sync.Mutex
	page       int
	totalPages int
	users      []api.UserRecord
	search     *api.SearchQuery
	noResults  bool
	cancel     context.CancelFunc
	seq        uint64
}

func NewUserListView(client api.Client, pageSize int, out io.Writer) *UserListView {
	return &UserListView{client: client, out: out, pageSize: pageSize, page: 1}
}

// ShowPage loads and renders the given 1-based page, scoped to the active
// search when one is set.
func (v *UserListView) ShowPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	reqCtx, seq, search := v.begin(ctx)

	var (
		result *api.Page
		err    error
	)
	if search != nil {
		result, err = v.client.QueryUsers(reqCtx, *search, page-1, v.pageSize)
	} else {
		result, err = v.client.ListUsers(reqCtx, page-1, v.pageSize)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// superseded by a newer request
			return nil
		}
		return err
	}

	if v.apply(seq, func() {
		v.page = page
		v.totalPages = result.TotalPages
		v.users = result.Content
		v.noResults = search != nil && len(result.Content) == 0
	}) {
		v.Render()
	}
	return nil
}

// Refresh re-requests the page currently shown.
func (v *UserListView) Refresh(ctx context.Context) error {
	v.mu.Lock()
	page := v.page
	v.mu.Unlock()
	return v.ShowPage(ctx, page)
}

// Search switches the view into search-result mode and loads the first page
// of matches.
func (v *UserListView) Search(ctx context.Context, query api.SearchQuery) error {
	v.mu.Lock()
	v.search = &query
	v.mu.Unlock()
	return v.ShowPage(ctx, 1)
}

// ResetSearch abandons search mode and restores the unfiltered listing on
// page 1. It is an explicit state transition; nothing outside the view,
// session state included, is touched.
func (v *UserListView) ResetSearch(ctx context.Context) error {
	v.mu.Lock()
	v.search = nil
	v.noResults = false
	v.mu.Unlock()
	return v.ShowPage(ctx, 1)
}

// Next advances to the following page, bounded by the last known total.
func (v *UserListView) Next(ctx context.Context) error {
	v.mu.Lock()
	page, total := v.page+1, v.totalPages
	v.mu.Unlock()

	if total > 0 && page > total {
		fmt.Fprintln(v.out, "Already on the last page.")
		return nil
	}
	return v.ShowPage(ctx, page)
}

// Prev steps back one page.
func (v *UserListView) Prev(ctx context.Context) error {
	v.mu.Lock()
	page := v.page - 1
	v.mu.Unlock()

	if page < 1 {
		fmt.Fprintln(v.out, "Already on the first page.")
		return nil
	}
	return v.ShowPage(ctx, page)
}

// Clear drops the view's data and cancels any in-flight request. Called
// when the session ends.
func (v *UserListView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.seq++ // responses already in flight are stale now
	v.page = 1
	v.totalPages = 0
	v.users = nil
	v.search = nil
	v.noResults = false
}

// Render writes the current table, or the no-results placeholder when an
// active search matched nothing.
func (v *UserListView) Render() {
	v.mu.Lock()
	users := v.users
	page, total := v.page, v.totalPages
	noResults := v.noResults
	v.mu.Unlock()

	if noResults {
		fmt.Fprintln(v.out, "NO RESULTS FOR SEARCH")
		return
	}

	w := tabwriter.NewWriter(v.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tFIRST NAME\tLAST NAME\tEMAIL\tROLES")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.UserName, u.FirstName, u.LastName, u.Email, u.Roles)
	}
	_ = w.Flush()
	fmt.Fprintf(v.out, "Page %d of %d\n", page, total)
}

// begin registers a new request: the previous in-flight one is canceled and
// the sequence number advances. The active search is snapshotted so a
// concurrent reset cannot change the query mid-request.
func (v *UserListView) begin(ctx context.Context) (context.Context, uint64, *api.SearchQuery) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.seq++

	var search *api.SearchQuery
	if v.search != nil {
		q := *v.search
		search = &q
	}
	return reqCtx, v.seq, search
}

// apply runs fn only when seq still identifies the newest request.
func (v *UserListView) apply(seq uint64, fn func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.seq {
		return false
	}
	fn()
	return true
}
