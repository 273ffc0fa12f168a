// package identity wraps the external identity provider behind a narrow
// adapter interface.
//
// Nothing else in the application talks to the provider: views and the
// request client depend only on [Adapter] and the session snapshot. The
// bearer token issued at sign-in is persisted client-side in the local store
// under a fixed record name; that is the single credential-propagation
// strategy used everywhere.
package identity

import (
	"context"

	"github.com/moviemaster/mvx/internal/models"
)

// Adapter is the sole boundary to the external identity provider.
type Adapter interface {
	// SignInWithPassword authenticates with email/password credentials.
	// Provider rejections surface as shared.ErrInvalidCredentials with the
	// provider's message passed through verbatim.
	SignInWithPassword(ctx context.Context, email, password string) (*models.Principal, error)

	// SignInWithOAuth runs the interactive authorization-code flow through
	// the system browser. Blocks until the callback fires, the context is
	// done, or the flow times out. Cancellation surfaces as
	// shared.ErrOAuthCancelled, other failures as shared.ErrOAuthFailed.
	SignInWithOAuth(ctx context.Context) (*models.Principal, error)

	// SignUpWithPassword creates a new identity, then applies profile
	// attributes as a second step. If the second step fails the identity
	// still exists: the returned principal is valid and the error wraps
	// shared.ErrProfileSync.
	SignUpWithPassword(ctx context.Context, email, password string, profile models.Profile) (*models.Principal, error)

	// SignOut clears the provider-side session best-effort and always clears
	// the local session. Never fails for network errors alone.
	SignOut(ctx context.Context) error

	// ObserveSession returns the emission stream: one emission at startup
	// after asynchronous restoration of the persisted credential (nil when
	// none), then one per sign-in/sign-out. The stream has exactly one
	// subscriber, the session context.
	ObserveSession() <-chan *models.Principal

	// Close releases the emission stream.
	Close()
}
