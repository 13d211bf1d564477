package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pushkard/userconsole/internal/client/api"
	"github.com/pushkard/userconsole/internal/client/config"
	"github.com/pushkard/userconsole/internal/client/repositories/tokens"
	"github.com/pushkard/userconsole/internal/client/session"
	"github.com/pushkard/userconsole/internal/client/storage"
	"github.com/pushkard/userconsole/internal/logging"
)

// App wires the console together: config, API client, session store and the
// listing view, plus the reader used by interactive prompts.
type App struct {
	config  *config.Config
	client  api.Client
	session *session.Store
	view    *UserListView
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	store := session.NewStore(tokens.NewSQLiteRepository(db), cfg.IdleTimeout, log)
	client := api.NewHTTPClient(cfg.ServerBaseURL, store, log)
	view := NewUserListView(client, cfg.PageSize, os.Stdout)

	app := &App{
		config:  cfg,
		client:  client,
		session: store,
		view:    view,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	// The view follows the session: entering the authenticated state loads
	// the first page, leaving it drops the data.
	store.Subscribe(func(authenticated bool) {
		if !authenticated {
			view.Clear()
			fmt.Fprintln(app.out, "Session ended.")
			return
		}
		if err := view.ShowPage(ctx, 1); err != nil {
			app.showListError(ctx, err)
		}
	})

	// A token that survived the previous run re-enters the authenticated
	// state right away.
	if err := store.Restore(ctx); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the user directory console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.session.IsAuthenticated() {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) touch() {
	a.session.Touch()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(authenticated)"
	}
	return "(anonymous)"
}

// showListError turns a listing failure into a notification. A session or
// authorization failure additionally tears the local session down, since the
// token is evidently unusable.
func (a *App) showListError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, api.ErrSession), errors.Is(err, api.ErrAuth):
		fmt.Fprintln(a.out, "Session is no longer valid. Please log in again.")
		a.session.Clear(ctx)
	default:
		fmt.Fprintln(a.out, "Error fetching users:", err)
	}
}

// printFieldErrors renders validation messages next to their field names in
// a stable order.
func (a *App) printFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(a.out, "  %s: %s\n", f, errs[f])
	}
}
