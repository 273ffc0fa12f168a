// package guard decides whether a private route may render based on the
// session state.
//
// The guard holds no state of its own: every decision is a pure function of
// the current session snapshot. Pending is always transient; Authorized and
// Denied are the terminal outcomes of a navigation.
package guard

import (
	"github.com/moviemaster/mvx/internal/session"
)

// State is the guard's decision for a navigation.
type State int

const (
	// StatePending means session restoration hasn't finished; render a
	// neutral loading indicator and decide nothing yet.
	StatePending State = iota
	// StateAuthorized means a principal is present; render the guarded
	// content.
	StateAuthorized
	// StateDenied means restoration finished with no principal; redirect to
	// sign-in.
	StateDenied
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAuthorized:
		return "authorized"
	case StateDenied:
		return "denied"
	default:
		return ""
	}
}

// SignInRoute is the redirect target for denied navigations.
const SignInRoute = "/login"

// Outcome is a guard decision plus the redirect bookkeeping for Denied:
// RedirectTo is where to go now, From is the originally requested route so
// sign-in can return the user there afterward.
type Outcome struct {
	State      State
	RedirectTo string
	From       string
}

// Guard gates access to routes that require an authenticated principal.
type Guard struct {
	session *session.Context
}

// New creates a guard reading from the given session context.
func New(sessionCtx *session.Context) *Guard {
	return &Guard{session: sessionCtx}
}

// Decide maps the current session snapshot to a guard state.
func (g *Guard) Decide() State {
	return Decide(g.session.Snapshot())
}

// Resolve decides a navigation to the given route, carrying the route
// through for post-login return when denied.
func (g *Guard) Resolve(route string) Outcome {
	state := g.Decide()
	outcome := Outcome{State: state}
	if state == StateDenied {
		outcome.RedirectTo = SignInRoute
		outcome.From = route
	}
	return outcome
}

// Decide is the guard's truth table over a session value:
// pending iff loading, authorized iff a principal is present, denied
// otherwise.
func Decide(s session.Session) State {
	if s.IsLoading {
		return StatePending
	}
	if s.Identity != nil {
		return StateAuthorized
	}
	return StateDenied
}
