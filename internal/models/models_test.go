package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMovieDraft(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name  string
			draft MovieDraft
			want  error
		}{
			{"valid", MovieDraft{Title: "Alien", Rating: 9}, nil},
			{"empty title", MovieDraft{Rating: 5}, errEmptyTitle},
			{"rating too low", MovieDraft{Title: "Alien", Rating: 0}, errRatingRange},
			{"rating too high", MovieDraft{Title: "Alien", Rating: 11}, errRatingRange},
			{"rating at bounds", MovieDraft{Title: "Alien", Rating: 1}, nil},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.draft.Validate()
				if !errors.Is(err, tt.want) {
					t.Errorf("Validate() = %v, want %v", err, tt.want)
				}
			})
		}
	})
}

func TestMovieOwnership(t *testing.T) {
	owner := &Principal{ID: "u1"}
	other := &Principal{ID: "u2"}

	tc := []struct {
		name      string
		movie     *Movie
		principal *Principal
		want      bool
	}{
		{"owner", &Movie{ID: "m1", OwnerID: "u1"}, owner, true},
		{"other user", &Movie{ID: "m1", OwnerID: "u1"}, other, false},
		{"signed out", &Movie{ID: "m1", OwnerID: "u1"}, nil, false},
		{"no owner recorded", &Movie{ID: "m1"}, owner, false},
		{"nil movie", nil, owner, false},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.movie.OwnedBy(tt.principal); got != tt.want {
				t.Errorf("OwnedBy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPrincipal(t *testing.T) {
	t.Run("Same", func(t *testing.T) {
		a := &Principal{ID: "u1"}
		b := &Principal{ID: "u1", DisplayName: "renamed"}
		c := &Principal{ID: "u2"}

		if !a.Same(b) {
			t.Error("principals with the same ID should match")
		}
		if a.Same(c) {
			t.Error("principals with different IDs should not match")
		}
		if a.Same(nil) {
			t.Error("nil should never match")
		}
	})

	t.Run("Credential Never Serializes", func(t *testing.T) {
		p := Principal{ID: "u1", Credential: "secret-token"}

		out, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}
		if strings.Contains(string(out), "secret-token") {
			t.Error("the bearer token must not appear in serialized output")
		}
	})
}

func TestCredential(t *testing.T) {
	principal := Principal{ID: "u1", Email: "ana@example.com"}

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name    string
			cred    *Credential
			wantErr bool
		}{
			{"valid", NewCredential(SessionRecordName, principal, "tok"), false},
			{"missing name", NewCredential("", principal, "tok"), true},
			{"missing principal", NewCredential(SessionRecordName, Principal{}, "tok"), true},
			{"missing token", NewCredential(SessionRecordName, principal, ""), true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.cred.Validate()
				if (err != nil) != tt.wantErr {
					t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			})
		}
	})

	t.Run("Timestamps Set On Creation", func(t *testing.T) {
		cred := NewCredential(SessionRecordName, principal, "tok")
		if cred.CreatedAt().IsZero() || cred.UpdatedAt().IsZero() {
			t.Error("expected creation timestamps to be set")
		}
		if cred.DeletedAt() != nil {
			t.Error("expected no deletion timestamp on a new record")
		}
	})
}
