package ui

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/moviemaster/mvx/internal/api"
	"github.com/moviemaster/mvx/internal/guard"
	"github.com/moviemaster/mvx/internal/identity"
	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/session"
	"github.com/moviemaster/mvx/internal/signals"
	"github.com/moviemaster/mvx/internal/store"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CatalogView ViewState = iota
	DetailView
	WatchlistView
	SignInView
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	api     *api.Client
	auth    identity.Adapter
	session *session.Context
	guard   *guard.Guard
	bus     *signals.Bus
	prefs   *store.PrefsRepository
	order   *store.OrderRepository

	width  int
	height int

	movieList list.Model
	movies    []models.Movie
	selected  *models.Movie

	watchList      list.Model
	entries        []models.WatchlistEntry
	watchlistCount int

	email    textinput.Model
	password textinput.Model
	focusPwd bool
	returnTo ViewState

	// gen is the token of the most recent fetch; results carrying an older
	// token are stale and discarded.
	gen int

	sessionCh chan session.Session
	signalCh  chan string
	unsubs    []func()

	theme   string
	palette *Palette
	status  string
	err     error
	help    help.Model
	keys    keyMap
}

// ModelOpts contains the dependencies for creating a TUI model.
type ModelOpts struct {
	API     *api.Client
	Auth    identity.Adapter
	Session *session.Context
	Bus     *signals.Bus
	Prefs   *store.PrefsRepository
	Order   *store.OrderRepository
	Theme   string
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, opts ModelOpts) *Model {
	theme := opts.Theme
	if opts.Prefs != nil {
		if saved, err := opts.Prefs.Get(store.PrefTheme, theme); err == nil {
			theme = saved
		}
	}

	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	m := &Model{
		ctx:       ctx,
		view:      CatalogView,
		api:       opts.API,
		auth:      opts.Auth,
		session:   opts.Session,
		guard:     guard.New(opts.Session),
		bus:       opts.Bus,
		prefs:     opts.Prefs,
		order:     opts.Order,
		email:     email,
		password:  password,
		sessionCh: make(chan session.Session, 8),
		signalCh:  make(chan string, 16),
		theme:     theme,
		palette:   PaletteFor(theme),
		help:      help.New(),
		keys:      newKeyMap(),
	}

	m.unsubs = append(m.unsubs,
		opts.Session.Subscribe(func(s session.Session) { m.sessionCh <- s }),
		opts.Bus.Subscribe(signals.WatchlistChanged, func() { m.signalCh <- signals.WatchlistChanged }),
		opts.Bus.Subscribe(signals.ThemeChanged, func() { m.signalCh <- signals.ThemeChanged }),
	)

	return m
}

// Init starts the session and signal pumps and fetches the catalog.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.waitForSession(), m.waitForSignal(), m.fetchMovies())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.movieList.Width() == 0 {
			m.movieList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.watchList.Width() == 0 {
			m.watchList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case sessionChangedMsg:
		return m.handleSessionChange(msg.session)

	case signalMsg:
		return m.handleSignal(msg.event)

	case tea.KeyMsg:
		switch m.view {
		case CatalogView:
			return m.handleCatalogKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case WatchlistView:
			return m.handleWatchlistKeys(msg)
		case SignInView:
			return m.handleSignInKeys(msg)
		}

	case moviesFetchedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.movies = msg.movies
		items := make([]list.Item, len(msg.movies))
		for i, movie := range msg.movies {
			items[i] = movieItem{movie: movie}
		}
		m.movieList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.movieList.Title = "Movie Catalog"
		m.movieList.SetSize(m.width-4, m.height-8)
		return m, nil

	case movieFetchedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			m.view = CatalogView
			return m, nil
		}
		m.err = nil
		m.selected = msg.movie
		m.view = DetailView
		return m, nil

	case watchlistFetchedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.entries = msg.entries
		m.watchlistCount = len(msg.entries)
		items := make([]list.Item, len(msg.entries))
		for i, entry := range msg.entries {
			items[i] = watchlistItem{entry: entry}
		}
		m.watchList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.watchList.Title = "Watchlist"
		m.watchList.SetSize(m.width-4, m.height-8)
		return m, nil

	case watchlistMutatedMsg:
		if msg.err != nil {
			m.err = msg.err
		}
		return m, nil

	case movieDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.selected = nil
		m.view = CatalogView
		return m, m.fetchMovies()

	case signInResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.email.SetValue("")
		m.password.SetValue("")
		m.view = m.returnTo
		if m.view == WatchlistView {
			return m, m.fetchWatchlist()
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	header := m.renderHeader()

	var body string
	switch m.view {
	case CatalogView:
		body = m.renderCatalog()
	case DetailView:
		body = m.renderDetail()
	case WatchlistView:
		body = m.renderWatchlist()
	case SignInView:
		body = m.renderSignIn()
	}

	var footer string
	if m.err != nil {
		footer = "\n" + m.palette.err.Render(fmt.Sprintf("Error: %v", m.err))
	} else if m.status != "" {
		footer = "\n" + m.palette.warn.Render(m.status)
	}

	return fmt.Sprintf("%s\n%s%s", header, body, footer)
}

func (m *Model) handleSessionChange(s session.Session) (tea.Model, tea.Cmd) {
	m.status = ""
	cmds := []tea.Cmd{m.waitForSession()}

	if s.Authenticated() {
		cmds = append(cmds, m.fetchWatchlist())
	} else if !s.IsLoading {
		m.entries = nil
		m.watchlistCount = 0
		if m.view == WatchlistView {
			m.returnTo = WatchlistView
			m.view = SignInView
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleSignal(event string) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.waitForSignal()}

	switch event {
	case signals.WatchlistChanged:
		if m.session.Snapshot().Authenticated() {
			cmds = append(cmds, m.fetchWatchlist())
		}
	case signals.ThemeChanged:
		if m.prefs != nil {
			if saved, err := m.prefs.Get(store.PrefTheme, m.theme); err == nil {
				m.theme = saved
			}
		}
		m.palette = PaletteFor(m.theme)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleCatalogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.movieList.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quit()
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.movieList.SelectedItem().(movieItem); ok {
			return m, m.fetchMovie(item.movie.ID)
		}
	case key.Matches(msg, m.keys.watchlist):
		return m.gotoWatchlist()
	case key.Matches(msg, m.keys.theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.refresh):
		return m, m.fetchMovies()
	}

	return m.updateLists(msg)
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.session.Snapshot()

	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quit()
	case key.Matches(msg, m.keys.back):
		m.selected = nil
		m.err = nil
		m.view = CatalogView
		return m, nil
	case key.Matches(msg, m.keys.queue):
		if !snap.Authenticated() {
			m.returnTo = DetailView
			m.view = SignInView
			return m, nil
		}
		if m.selected != nil {
			return m, m.addToWatchlist(m.selected.ID)
		}
	case key.Matches(msg, m.keys.delete):
		// Deletion is only offered to the owner; the backend enforces it too.
		if m.selected != nil && m.selected.OwnedBy(snap.Identity) {
			return m, m.deleteMovie(m.selected.ID)
		}
	case key.Matches(msg, m.keys.theme):
		return m, m.toggleTheme()
	}

	return m, nil
}

func (m *Model) handleWatchlistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m.quit()
	case key.Matches(msg, m.keys.back):
		m.err = nil
		m.view = CatalogView
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.watchList.SelectedItem().(watchlistItem); ok {
			return m, m.removeFromWatchlist(item.entry.ID)
		}
	case key.Matches(msg, m.keys.moveUp):
		return m, m.moveEntry(-1)
	case key.Matches(msg, m.keys.moveDown):
		return m, m.moveEntry(1)
	case key.Matches(msg, m.keys.refresh):
		return m, m.fetchWatchlist()
	}

	return m.updateLists(msg)
}

func (m *Model) handleSignInKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.err = nil
		m.view = CatalogView
		return m, nil
	case "tab", "shift+tab":
		m.focusPwd = !m.focusPwd
		if m.focusPwd {
			m.email.Blur()
			return m, m.password.Focus()
		}
		m.password.Blur()
		return m, m.email.Focus()
	case "enter":
		if !m.focusPwd {
			m.focusPwd = true
			m.email.Blur()
			return m, m.password.Focus()
		}
		return m, m.signIn(m.email.Value(), m.password.Value())
	}

	var cmd tea.Cmd
	if m.focusPwd {
		m.password, cmd = m.password.Update(msg)
	} else {
		m.email, cmd = m.email.Update(msg)
	}
	return m, cmd
}

func (m *Model) gotoWatchlist() (tea.Model, tea.Cmd) {
	outcome := m.guard.Resolve("/watchlist")
	switch outcome.State {
	case guard.StatePending:
		m.status = "Restoring session..."
		return m, nil
	case guard.StateDenied:
		m.returnTo = WatchlistView
		m.view = SignInView
		return m, nil
	default:
		m.view = WatchlistView
		return m, m.fetchWatchlist()
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	for _, unsub := range m.unsubs {
		unsub()
	}
	return m, tea.Quit
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CatalogView:
		m.movieList, cmd = m.movieList.Update(msg)
	case WatchlistView:
		m.watchList, cmd = m.watchList.Update(msg)
	}
	return m, cmd
}

func (m *Model) waitForSession() tea.Cmd {
	return func() tea.Msg {
		return sessionChangedMsg{session: <-m.sessionCh}
	}
}

func (m *Model) waitForSignal() tea.Cmd {
	return func() tea.Msg {
		return signalMsg{event: <-m.signalCh}
	}
}

func (m *Model) fetchMovies() tea.Cmd {
	m.gen++
	gen := m.gen
	return func() tea.Msg {
		movies, err := m.api.Movies(m.ctx)
		return moviesFetchedMsg{gen: gen, movies: movies, err: err}
	}
}

func (m *Model) fetchMovie(id string) tea.Cmd {
	m.gen++
	gen := m.gen
	return func() tea.Msg {
		movie, err := m.api.Movie(m.ctx, id)
		return movieFetchedMsg{gen: gen, movie: movie, err: err}
	}
}

func (m *Model) fetchWatchlist() tea.Cmd {
	m.gen++
	gen := m.gen
	ownerID := ""
	if snap := m.session.Snapshot(); snap.Identity != nil {
		ownerID = snap.Identity.ID
	}
	return func() tea.Msg {
		entries, err := m.api.Watchlist(m.ctx)
		if err != nil {
			return watchlistFetchedMsg{gen: gen, err: err}
		}
		m.applyOrder(ownerID, entries)
		return watchlistFetchedMsg{gen: gen, entries: entries}
	}
}

// applyOrder overlays the persisted display order onto fetched entries.
// Entries without a persisted position keep backend arrival order at the end.
func (m *Model) applyOrder(ownerID string, entries []models.WatchlistEntry) {
	if m.order == nil || ownerID == "" {
		return
	}
	positions, err := m.order.Positions(ownerID)
	if err != nil {
		return
	}
	for i := range entries {
		if pos, ok := positions[entries[i].ID]; ok {
			entries[i].Position = pos
		} else {
			entries[i].Position = 1<<30 + i
		}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Position < entries[b].Position
	})
}

func (m *Model) addToWatchlist(movieID string) tea.Cmd {
	ownerID := ""
	if snap := m.session.Snapshot(); snap.Identity != nil {
		ownerID = snap.Identity.ID
	}
	return func() tea.Msg {
		entry, err := m.api.AddToWatchlist(m.ctx, movieID)
		if err != nil {
			return watchlistMutatedMsg{err: err}
		}
		if m.order != nil && ownerID != "" {
			if err := m.order.Append(ownerID, entry.ID); err != nil {
				return watchlistMutatedMsg{err: err}
			}
		}
		m.bus.Emit(signals.WatchlistChanged)
		return watchlistMutatedMsg{}
	}
}

func (m *Model) removeFromWatchlist(entryID string) tea.Cmd {
	return func() tea.Msg {
		if err := m.api.RemoveFromWatchlist(m.ctx, entryID); err != nil {
			return watchlistMutatedMsg{err: err}
		}
		if m.order != nil {
			if err := m.order.Remove(entryID); err != nil {
				return watchlistMutatedMsg{err: err}
			}
		}
		m.bus.Emit(signals.WatchlistChanged)
		return watchlistMutatedMsg{}
	}
}

func (m *Model) moveEntry(delta int) tea.Cmd {
	// The visible index diverges from the backing slice while the list is
	// filtered, so the selected entry is resolved by ID.
	selected, ok := m.watchList.SelectedItem().(watchlistItem)
	if !ok {
		return nil
	}

	idx := -1
	for i, entry := range m.entries {
		if entry.ID == selected.entry.ID {
			idx = i
			break
		}
	}

	target := idx + delta
	if idx < 0 || target < 0 || target >= len(m.entries) {
		return nil
	}

	m.entries[idx], m.entries[target] = m.entries[target], m.entries[idx]

	items := make([]list.Item, len(m.entries))
	ids := make([]string, len(m.entries))
	for i, entry := range m.entries {
		items[i] = watchlistItem{entry: entry}
		ids[i] = entry.ID
	}
	m.watchList.SetItems(items)
	m.watchList.Select(target)

	ownerID := ""
	if snap := m.session.Snapshot(); snap.Identity != nil {
		ownerID = snap.Identity.ID
	}
	if m.order == nil || ownerID == "" {
		return nil
	}

	return func() tea.Msg {
		if err := m.order.SetPositions(ownerID, ids); err != nil {
			return watchlistMutatedMsg{err: err}
		}
		return watchlistMutatedMsg{}
	}
}

func (m *Model) deleteMovie(id string) tea.Cmd {
	return func() tea.Msg {
		return movieDeletedMsg{err: m.api.DeleteMovie(m.ctx, id)}
	}
}

func (m *Model) signIn(email, password string) tea.Cmd {
	return func() tea.Msg {
		principal, err := m.auth.SignInWithPassword(m.ctx, email, password)
		return signInResultMsg{principal: principal, err: err}
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	if m.theme == "light" {
		m.theme = "dark"
	} else {
		m.theme = "light"
	}
	m.palette = PaletteFor(m.theme)

	theme := m.theme
	return func() tea.Msg {
		if m.prefs != nil {
			if err := m.prefs.Set(store.PrefTheme, theme); err != nil {
				return watchlistMutatedMsg{err: err}
			}
		}
		m.bus.Emit(signals.ThemeChanged)
		return nil
	}
}

func (m *Model) renderHeader() string {
	snap := m.session.Snapshot()

	var who string
	switch {
	case snap.IsLoading:
		who = m.palette.warn.Render("restoring session...")
	case snap.Identity != nil:
		who = m.palette.ok.Render(snap.Identity.DisplayName)
	default:
		who = m.palette.help.Render("signed out")
	}

	badge := ""
	if m.watchlistCount > 0 {
		badge = "  " + m.palette.badge.Render(fmt.Sprintf("≡ %d queued", m.watchlistCount))
	}

	return fmt.Sprintf("%s  %s%s", m.palette.title.Render("MovieMaster"), who, badge)
}

func (m *Model) renderCatalog() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.watchlist, m.keys.theme, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.movieList.View(), helpView)
}

func (m *Model) renderDetail() string {
	if m.selected == nil {
		return m.palette.err.Render("No movie selected")
	}

	movie := m.selected
	title := m.palette.title.Render(movie.Title)
	info := fmt.Sprintf("Genre: %s\nReleased: %s\nRating: %d/10\n\n%s",
		movie.Genre, movie.ReleaseDate, movie.Rating, movie.Summary)

	helpKeys := []key.Binding{m.keys.queue, m.keys.back, m.keys.quit}
	if movie.OwnedBy(m.session.Snapshot().Identity) {
		helpKeys = []key.Binding{m.keys.queue, m.keys.delete, m.keys.back, m.keys.quit}
	}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}

func (m *Model) renderWatchlist() string {
	helpKeys := []key.Binding{m.keys.remove, m.keys.moveUp, m.keys.moveDown, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.watchList.View(), helpView)
}

func (m *Model) renderSignIn() string {
	title := m.palette.title.Render("Sign In")
	form := fmt.Sprintf("%s\n%s", m.email.View(), m.password.View())
	hint := m.palette.help.Render("tab to switch • enter to submit • esc to browse")
	return fmt.Sprintf("%s\n%s\n\n%s", title, form, hint)
}
