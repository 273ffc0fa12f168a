// package testing contains shared testing utilities
package testing

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/moviemaster/mvx/internal/identity"
	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/shared"
)

var _ identity.Adapter = (*MockAdapter)(nil)

// MockAdapter is a test double for [identity.Adapter]
type MockAdapter struct {
	Principal *models.Principal
	Err       error
	SignedOut bool
	stream    chan *models.Principal
	closeOnce func()
}

func NewMockAdapter() *MockAdapter {
	m := &MockAdapter{stream: make(chan *models.Principal, 8)}
	var once bool
	m.closeOnce = func() {
		if !once {
			once = true
			close(m.stream)
		}
	}
	return m
}

func (m *MockAdapter) SignInWithPassword(ctx context.Context, email, password string) (*models.Principal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Principal, nil
}

func (m *MockAdapter) SignInWithOAuth(ctx context.Context) (*models.Principal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Principal, nil
}

func (m *MockAdapter) SignUpWithPassword(ctx context.Context, email, password string, profile models.Profile) (*models.Principal, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Principal, nil
}

func (m *MockAdapter) SignOut(ctx context.Context) error {
	m.SignedOut = true
	return nil
}

func (m *MockAdapter) ObserveSession() <-chan *models.Principal { return m.stream }

func (m *MockAdapter) Close() { m.closeOnce() }

// Emit pushes a principal onto the mock emission stream.
func (m *MockAdapter) Emit(p *models.Principal) { m.stream <- p }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// MustOpenDB opens an in-memory database with migrations applied and closes
// it when the test ends.
func MustOpenDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
