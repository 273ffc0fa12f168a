package store

import (
	"database/sql"
	"testing"

	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func testPrincipal() models.Principal {
	return models.Principal{ID: "u1", DisplayName: "Ana", Email: "ana@example.com"}
}

func TestCredentialRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		repo := NewCredentialRepository(setupTestDB(t))
		cred := models.NewCredential(models.SessionRecordName, testPrincipal(), "tok-1")

		if err := repo.Create(cred); err != nil {
			t.Fatalf("failed to create credential: %v", err)
		}
		if cred.ID() == "" {
			t.Error("credential ID should be set after creation")
		}
	})

	t.Run("Get", func(t *testing.T) {
		repo := NewCredentialRepository(setupTestDB(t))
		cred := models.NewCredential(models.SessionRecordName, testPrincipal(), "tok-1")

		if err := repo.Create(cred); err != nil {
			t.Fatalf("failed to create credential: %v", err)
		}

		retrieved, err := repo.Get(cred.ID())
		if err != nil {
			t.Fatalf("failed to get credential: %v", err)
		}
		if retrieved.Token() != "tok-1" {
			t.Errorf("expected token tok-1, got %s", retrieved.Token())
		}
		if retrieved.Principal().Email != "ana@example.com" {
			t.Errorf("expected principal email to round-trip, got %s", retrieved.Principal().Email)
		}
	})

	t.Run("GetByName", func(t *testing.T) {
		t.Run("Returns Nil Without Error When Absent", func(t *testing.T) {
			repo := NewCredentialRepository(setupTestDB(t))

			cred, err := repo.GetByName(models.SessionRecordName)
			if err != nil {
				t.Fatalf("expected no error for a missing record, got %v", err)
			}
			if cred != nil {
				t.Error("expected nil credential")
			}
		})

		t.Run("Finds The Live Record", func(t *testing.T) {
			repo := NewCredentialRepository(setupTestDB(t))
			cred := models.NewCredential(models.SessionRecordName, testPrincipal(), "tok-1")
			if err := repo.Create(cred); err != nil {
				t.Fatalf("failed to create credential: %v", err)
			}

			found, err := repo.GetByName(models.SessionRecordName)
			if err != nil {
				t.Fatalf("failed to get credential by name: %v", err)
			}
			if found == nil || found.ID() != cred.ID() {
				t.Error("expected the stored credential")
			}
		})
	})

	t.Run("Create After DeleteByName Reuses The Name", func(t *testing.T) {
		repo := NewCredentialRepository(setupTestDB(t))

		first := models.NewCredential(models.SessionRecordName, testPrincipal(), "tok-1")
		if err := repo.Create(first); err != nil {
			t.Fatalf("failed to create credential: %v", err)
		}
		if err := repo.DeleteByName(models.SessionRecordName); err != nil {
			t.Fatalf("failed to delete credential: %v", err)
		}

		second := models.NewCredential(models.SessionRecordName, testPrincipal(), "tok-2")
		if err := repo.Create(second); err != nil {
			t.Fatalf("the record name must be reusable after a soft delete: %v", err)
		}

		found, err := repo.GetByName(models.SessionRecordName)
		if err != nil {
			t.Fatalf("failed to get credential by name: %v", err)
		}
		if found == nil || found.Token() != "tok-2" {
			t.Error("expected the new credential under the record name")
		}
	})

	t.Run("Update", func(t *testing.T) {
		repo := NewCredentialRepository(setupTestDB(t))
		cred := models.NewCredential(models.SessionRecordName, testPrincipal(), "tok-1")
		if err := repo.Create(cred); err != nil {
			t.Fatalf("failed to create credential: %v", err)
		}

		cred.SetToken("tok-2")
		if err := repo.Update(cred); err != nil {
			t.Fatalf("failed to update credential: %v", err)
		}

		retrieved, err := repo.Get(cred.ID())
		if err != nil {
			t.Fatalf("failed to get credential: %v", err)
		}
		if retrieved.Token() != "tok-2" {
			t.Errorf("expected rotated token, got %s", retrieved.Token())
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := NewCredentialRepository(setupTestDB(t))
		cred := models.NewCredential(models.SessionRecordName, testPrincipal(), "tok-1")
		if err := repo.Create(cred); err != nil {
			t.Fatalf("failed to create credential: %v", err)
		}

		if err := repo.Delete(cred.ID()); err != nil {
			t.Fatalf("failed to delete credential: %v", err)
		}
		if _, err := repo.Get(cred.ID()); err == nil {
			t.Error("expected error when getting deleted credential")
		}
	})

	t.Run("DeleteByName", func(t *testing.T) {
		t.Run("Is Not An Error When Absent", func(t *testing.T) {
			repo := NewCredentialRepository(setupTestDB(t))
			if err := repo.DeleteByName(models.SessionRecordName); err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})

		t.Run("Soft-Deletes The Live Record", func(t *testing.T) {
			repo := NewCredentialRepository(setupTestDB(t))
			cred := models.NewCredential(models.SessionRecordName, testPrincipal(), "tok-1")
			if err := repo.Create(cred); err != nil {
				t.Fatalf("failed to create credential: %v", err)
			}

			if err := repo.DeleteByName(models.SessionRecordName); err != nil {
				t.Fatalf("failed to delete by name: %v", err)
			}

			found, err := repo.GetByName(models.SessionRecordName)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if found != nil {
				t.Error("expected no live record after delete")
			}
		})
	})

	t.Run("List Filters By Principal", func(t *testing.T) {
		repo := NewCredentialRepository(setupTestDB(t))

		if err := repo.Create(models.NewCredential("session", testPrincipal(), "tok-1")); err != nil {
			t.Fatalf("failed to create credential: %v", err)
		}
		other := models.Principal{ID: "u2", Email: "bo@example.com"}
		if err := repo.Create(models.NewCredential("other", other, "tok-2")); err != nil {
			t.Fatalf("failed to create credential: %v", err)
		}

		creds, err := repo.List(map[string]any{"principal_id": "u1"})
		if err != nil {
			t.Fatalf("failed to list credentials: %v", err)
		}
		if len(creds) != 1 {
			t.Fatalf("expected 1 credential for u1, got %d", len(creds))
		}
		if creds[0].Principal().ID != "u1" {
			t.Errorf("expected principal u1, got %s", creds[0].Principal().ID)
		}
	})
}

func TestOrderRepository(t *testing.T) {
	t.Run("Append Assigns Increasing Positions", func(t *testing.T) {
		repo := NewOrderRepository(setupTestDB(t))

		for _, id := range []string{"e1", "e2", "e3"} {
			if err := repo.Append("u1", id); err != nil {
				t.Fatalf("failed to append %s: %v", id, err)
			}
		}

		positions, err := repo.Positions("u1")
		if err != nil {
			t.Fatalf("failed to load positions: %v", err)
		}
		if len(positions) != 3 {
			t.Fatalf("expected 3 positions, got %d", len(positions))
		}
		if !(positions["e1"] < positions["e2"] && positions["e2"] < positions["e3"]) {
			t.Errorf("expected appended entries in order, got %v", positions)
		}
	})

	t.Run("Positions Are Scoped To The Owner", func(t *testing.T) {
		repo := NewOrderRepository(setupTestDB(t))

		if err := repo.Append("u1", "e1"); err != nil {
			t.Fatalf("failed to append: %v", err)
		}
		if err := repo.Append("u2", "e2"); err != nil {
			t.Fatalf("failed to append: %v", err)
		}

		positions, err := repo.Positions("u1")
		if err != nil {
			t.Fatalf("failed to load positions: %v", err)
		}
		if len(positions) != 1 {
			t.Errorf("expected only u1's entries, got %v", positions)
		}
	})

	t.Run("SetPositions Replaces The Order", func(t *testing.T) {
		repo := NewOrderRepository(setupTestDB(t))

		for _, id := range []string{"e1", "e2", "e3"} {
			if err := repo.Append("u1", id); err != nil {
				t.Fatalf("failed to append: %v", err)
			}
		}

		if err := repo.SetPositions("u1", []string{"e3", "e1", "e2"}); err != nil {
			t.Fatalf("failed to set positions: %v", err)
		}

		positions, err := repo.Positions("u1")
		if err != nil {
			t.Fatalf("failed to load positions: %v", err)
		}
		if !(positions["e3"] < positions["e1"] && positions["e1"] < positions["e2"]) {
			t.Errorf("expected the replacement order, got %v", positions)
		}
	})

	t.Run("Remove Is Not An Error When Absent", func(t *testing.T) {
		repo := NewOrderRepository(setupTestDB(t))
		if err := repo.Remove("missing"); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

func TestPrefsRepository(t *testing.T) {
	t.Run("Get Falls Back When Unset", func(t *testing.T) {
		repo := NewPrefsRepository(setupTestDB(t))

		value, err := repo.Get(PrefTheme, "dark")
		if err != nil {
			t.Fatalf("failed to get preference: %v", err)
		}
		if value != "dark" {
			t.Errorf("expected fallback dark, got %s", value)
		}
	})

	t.Run("Set Then Get", func(t *testing.T) {
		repo := NewPrefsRepository(setupTestDB(t))

		if err := repo.Set(PrefTheme, "light"); err != nil {
			t.Fatalf("failed to set preference: %v", err)
		}

		value, err := repo.Get(PrefTheme, "dark")
		if err != nil {
			t.Fatalf("failed to get preference: %v", err)
		}
		if value != "light" {
			t.Errorf("expected light, got %s", value)
		}
	})

	t.Run("Set Replaces The Previous Value", func(t *testing.T) {
		repo := NewPrefsRepository(setupTestDB(t))

		if err := repo.Set(PrefTheme, "light"); err != nil {
			t.Fatalf("failed to set preference: %v", err)
		}
		if err := repo.Set(PrefTheme, "dark"); err != nil {
			t.Fatalf("failed to set preference: %v", err)
		}

		value, err := repo.Get(PrefTheme, "light")
		if err != nil {
			t.Fatalf("failed to get preference: %v", err)
		}
		if value != "dark" {
			t.Errorf("expected dark, got %s", value)
		}
	})
}
