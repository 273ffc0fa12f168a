package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/shared"
	"github.com/moviemaster/mvx/internal/store"
	"golang.org/x/oauth2"
)

// ProviderAdapter implements [Adapter] against the hosted identity service's
// REST API, with OAuth2 for the interactive flow.
type ProviderAdapter struct {
	baseURL    string
	oauthCfg   *oauth2.Config
	httpClient *http.Client
	creds      *store.CredentialRepository
	logger     *log.Logger

	callbackHost string
	callbackPort int
	openBrowser  func(string) error

	stream    chan *models.Principal
	restoring sync.WaitGroup
	closeOnce sync.Once
}

// ProviderOpts contains configuration options for creating a ProviderAdapter.
type ProviderOpts struct {
	Credentials  map[string]string
	Store        *store.CredentialRepository
	HTTPClient   *http.Client
	Logger       *log.Logger
	CallbackHost string
	CallbackPort int
}

// NewProviderAdapter creates a provider adapter from identity credentials.
func NewProviderAdapter(opts ProviderOpts) (*ProviderAdapter, error) {
	baseURL, ok := opts.Credentials["base_url"]
	if !ok || baseURL == "" {
		return nil, fmt.Errorf("%w: missing base_url in identity credentials", shared.ErrInvalidConfig)
	}
	baseURL = strings.TrimRight(baseURL, "/")

	redirectURI := opts.Credentials["redirect_uri"]
	if redirectURI == "" {
		redirectURI = "http://localhost:8484/callback"
	}

	oauthCfg := &oauth2.Config{
		ClientID:     opts.Credentials["client_id"],
		ClientSecret: opts.Credentials["client_secret"],
		RedirectURL:  redirectURI,
		Scopes:       []string{"profile", "email"},
		Endpoint: oauth2.Endpoint{
			AuthURL:  baseURL + "/oauth/authorize",
			TokenURL: baseURL + "/oauth/token",
		},
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.CallbackHost == "" {
		opts.CallbackHost = "localhost"
	}
	if opts.CallbackPort == 0 {
		opts.CallbackPort = 8484
	}

	return &ProviderAdapter{
		baseURL:      baseURL,
		oauthCfg:     oauthCfg,
		httpClient:   opts.HTTPClient,
		creds:        opts.Store,
		logger:       opts.Logger,
		callbackHost: opts.CallbackHost,
		callbackPort: opts.CallbackPort,
		openBrowser:  shared.OpenBrowser,
		stream:       make(chan *models.Principal, 8),
	}, nil
}

// accountResponse is the provider's wire shape for a signed-in account.
type accountResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl"`
	Token       string `json:"token"`
}

// errorResponse is the provider's wire shape for a rejection.
type errorResponse struct {
	Message string `json:"message"`
}

func (a *ProviderAdapter) principal(acct accountResponse) *models.Principal {
	return &models.Principal{
		ID:          acct.ID,
		DisplayName: acct.DisplayName,
		Email:       acct.Email,
		AvatarURL:   acct.AvatarURL,
		Credential:  acct.Token,
	}
}

// Start launches the asynchronous restoration of a persisted session. The
// resulting emission (nil when nothing is persisted) is always the stream's
// first: sign-in and sign-out block until restoration has emitted, so a racing
// restoration result can never overwrite a fresh session.
func (a *ProviderAdapter) Start() {
	a.restoring.Add(1)
	go func() {
		defer a.restoring.Done()
		cred, err := a.creds.GetByName(models.SessionRecordName)
		if err != nil {
			a.logger.Warn("session restoration failed", "error", err)
			a.stream <- nil
			return
		}
		if cred == nil {
			a.stream <- nil
			return
		}

		p := cred.Principal()
		p.Credential = cred.Token()
		a.logger.Debug("restored persisted session", "principal", p.ID)
		a.stream <- &p
	}()
}

// SignInWithPassword authenticates with the provider's password endpoint.
func (a *ProviderAdapter) SignInWithPassword(ctx context.Context, email, password string) (*models.Principal, error) {
	payload := map[string]string{"email": email, "password": password}

	var acct accountResponse
	if err := a.call(ctx, http.MethodPost, "/v1/signin", "", payload, &acct); err != nil {
		return nil, err
	}

	principal := a.principal(acct)

	a.restoring.Wait()
	if err := a.persist(principal); err != nil {
		a.logger.Warn("failed to persist credential", "error", err)
	}

	a.stream <- principal
	return principal, nil
}

// SignUpWithPassword creates a new identity, then updates its profile
// attributes as a second step. The identity survives a second-step failure.
func (a *ProviderAdapter) SignUpWithPassword(ctx context.Context, email, password string, profile models.Profile) (*models.Principal, error) {
	payload := map[string]string{"email": email, "password": password}

	var acct accountResponse
	if err := a.call(ctx, http.MethodPost, "/v1/accounts", "", payload, &acct); err != nil {
		return nil, err
	}

	principal := a.principal(acct)

	var syncErr error
	if err := a.call(ctx, http.MethodPatch, "/v1/profile", acct.Token, profile, nil); err != nil {
		// The identity exists already; the caller decides whether the
		// stale profile matters.
		syncErr = fmt.Errorf("%w: %v", shared.ErrProfileSync, err)
		a.logger.Warn("profile update failed after identity creation", "error", err)
	} else {
		principal.DisplayName = profile.DisplayName
		principal.AvatarURL = profile.AvatarURL
	}

	a.restoring.Wait()
	if err := a.persist(principal); err != nil {
		a.logger.Warn("failed to persist credential", "error", err)
	}

	a.stream <- principal
	return principal, syncErr
}

// SignOut clears the provider session best-effort, then always clears the
// local session and emits nil.
func (a *ProviderAdapter) SignOut(ctx context.Context) error {
	a.restoring.Wait()

	token := ""
	if cred, err := a.creds.GetByName(models.SessionRecordName); err == nil && cred != nil {
		token = cred.Token()
	}

	if token != "" {
		if err := a.call(ctx, http.MethodPost, "/v1/signout", token, nil, nil); err != nil {
			a.logger.Warn("provider sign-out failed, clearing local session anyway", "error", err)
		}
	}

	if err := a.creds.DeleteByName(models.SessionRecordName); err != nil {
		a.logger.Warn("failed to clear persisted credential", "error", err)
	}

	a.stream <- nil
	return nil
}

// ObserveSession returns the emission stream.
func (a *ProviderAdapter) ObserveSession() <-chan *models.Principal {
	return a.stream
}

// Close releases the emission stream.
func (a *ProviderAdapter) Close() {
	a.closeOnce.Do(func() {
		close(a.stream)
	})
}

// persist replaces the fixed-name session record with the principal's
// current credential.
func (a *ProviderAdapter) persist(p *models.Principal) error {
	if err := a.creds.DeleteByName(models.SessionRecordName); err != nil {
		return err
	}
	return a.creds.Create(models.NewCredential(models.SessionRecordName, *p, p.Credential))
}

// call performs a JSON request against the provider API. Rejections carry the
// provider's message through verbatim.
func (a *ProviderAdapter) call(ctx context.Context, method, endpoint, token string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", shared.ErrInvalidCredentials, providerMessage(resp.Body))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: identity provider status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// providerMessage extracts the provider's rejection message for verbatim
// passthrough, falling back to the raw body.
func providerMessage(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "provider rejected the request"
	}

	var e errorResponse
	if err := json.Unmarshal(data, &e); err == nil && e.Message != "" {
		return e.Message
	}

	return strings.TrimSpace(string(data))
}
