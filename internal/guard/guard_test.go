package guard

import (
	"testing"
	"time"

	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/session"
	"github.com/moviemaster/mvx/internal/shared"
)

func TestDecide(t *testing.T) {
	tc := []struct {
		name    string
		session session.Session
		want    State
	}{
		{"loading", session.Session{IsLoading: true}, StatePending},
		{"loading with identity", session.Session{Identity: &models.Principal{ID: "u1"}, IsLoading: true}, StatePending},
		{"signed in", session.Session{Identity: &models.Principal{ID: "u1"}}, StateAuthorized},
		{"signed out", session.Session{}, StateDenied},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.session); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGuard(t *testing.T) {
	logger := shared.NewLogger(nil)

	t.Run("Resolve Carries The Requested Route When Denied", func(t *testing.T) {
		ctx := session.NewContext(logger)
		defer ctx.Close()

		stream := make(chan *models.Principal, 1)
		ctx.Start(stream)
		stream <- nil

		deadline := time.Now().Add(2 * time.Second)
		for ctx.Snapshot().IsLoading && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}

		outcome := New(ctx).Resolve("/watchlist")
		if outcome.State != StateDenied {
			t.Fatalf("expected denied, got %v", outcome.State)
		}
		if outcome.RedirectTo != SignInRoute {
			t.Errorf("expected redirect to %s, got %s", SignInRoute, outcome.RedirectTo)
		}
		if outcome.From != "/watchlist" {
			t.Errorf("expected from /watchlist, got %s", outcome.From)
		}
	})

	t.Run("Resolve Leaves Redirect Empty When Authorized", func(t *testing.T) {
		ctx := session.NewContext(logger)
		defer ctx.Close()

		stream := make(chan *models.Principal, 1)
		ctx.Start(stream)
		stream <- &models.Principal{ID: "u1"}

		deadline := time.Now().Add(2 * time.Second)
		for ctx.Snapshot().IsLoading && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}

		outcome := New(ctx).Resolve("/watchlist")
		if outcome.State != StateAuthorized {
			t.Fatalf("expected authorized, got %v", outcome.State)
		}
		if outcome.RedirectTo != "" || outcome.From != "" {
			t.Error("authorized outcome should carry no redirect")
		}
	})

	t.Run("Pending Before The First Emission", func(t *testing.T) {
		ctx := session.NewContext(logger)
		defer ctx.Close()

		if got := New(ctx).Decide(); got != StatePending {
			t.Errorf("expected pending before restoration, got %v", got)
		}
	})

	t.Run("Decision Follows Sign-Out", func(t *testing.T) {
		ctx := session.NewContext(logger)
		defer ctx.Close()

		stream := make(chan *models.Principal, 2)
		ctx.Start(stream)
		g := New(ctx)

		stream <- &models.Principal{ID: "u1"}
		deadline := time.Now().Add(2 * time.Second)
		for g.Decide() != StateAuthorized && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}

		stream <- nil
		deadline = time.Now().Add(2 * time.Second)
		for g.Decide() != StateDenied && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}

		if g.Decide() != StateDenied {
			t.Error("expected denied after sign-out emission")
		}
	})
}

func TestStateString(t *testing.T) {
	tc := map[State]string{
		StatePending:    "pending",
		StateAuthorized: "authorized",
		StateDenied:     "denied",
		State(99):       "",
	}

	for state, want := range tc {
		if got := state.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
