package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/moviemaster/mvx/internal/api"
	"github.com/moviemaster/mvx/internal/identity"
	"github.com/moviemaster/mvx/internal/session"
	"github.com/moviemaster/mvx/internal/shared"
	"github.com/moviemaster/mvx/internal/signals"
	"github.com/moviemaster/mvx/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	db         *sql.DB
	auth       identity.Adapter
	session    *session.Context
	api        *api.Client
	bus        *signals.Bus
	prefs      *store.PrefsRepository
	order      *store.OrderRepository
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	DB         *sql.DB
	Auth       identity.Adapter
	Session    *session.Context
	API        *api.Client
	Bus        *signals.Bus
	Prefs      *store.PrefsRepository
	Order      *store.OrderRepository
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Bus == nil {
		opts.Bus = signals.Default()
	}

	return &Runner{
		config:     opts.Config,
		db:         opts.DB,
		auth:       opts.Auth,
		session:    opts.Session,
		api:        opts.API,
		bus:        opts.Bus,
		prefs:      opts.Prefs,
		order:      opts.Order,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, moviesCommand, watchlistCommand, themeCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// awaitSession blocks until the asynchronous session restoration has finished,
// returning the settled snapshot. Commands that read the identity call this
// first so a persisted session is visible to them.
func (r *Runner) awaitSession(ctx context.Context) session.Session {
	if snap := r.session.Snapshot(); !snap.IsLoading {
		return snap
	}

	ch := make(chan session.Session, 1)
	unsub := r.session.Subscribe(func(s session.Session) {
		select {
		case ch <- s:
		default:
		}
	})
	defer unsub()

	if snap := r.session.Snapshot(); !snap.IsLoading {
		return snap
	}

	select {
	case s := <-ch:
		return s
	case <-time.After(5 * time.Second):
		return r.session.Snapshot()
	case <-ctx.Done():
		return r.session.Snapshot()
	}
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
