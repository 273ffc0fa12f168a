package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/server"
	"github.com/moviemaster/mvx/internal/shared"
)

// oauthTimeout bounds the wait for the user to finish the browser flow.
const oauthTimeout = 2 * time.Minute

// SignInWithOAuth executes the authorization-code flow with a loopback
// callback server, then resolves the signed-in account from the provider.
func (a *ProviderAdapter) SignInWithOAuth(ctx context.Context) (*models.Principal, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	authURL := a.oauthCfg.AuthCodeURL(state)
	oauthHandler := server.NewOAuthHandler(a.oauthCfg, state)
	router := server.NewBasicRouter()
	router.Handler(oauthHandler)

	serverAddr := fmt.Sprintf("%s:%d", a.callbackHost, a.callbackPort)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Infof("starting sign-in callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	if err := a.openBrowser(authURL); err != nil {
		a.logger.Warnf("failed to open browser automatically %v", err)
		a.logger.Infof("open this URL to sign in: %v", authURL)
	}

	timeout := time.NewTimer(oauthTimeout)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("%w: callback server: %v", shared.ErrOAuthFailed, err)
	case <-ctx.Done():
		a.shutdown(httpServer)
		return nil, fmt.Errorf("%w: %v", shared.ErrOAuthCancelled, ctx.Err())
	case <-timeout.C:
		a.shutdown(httpServer)
		return nil, fmt.Errorf("%w: authorization timed out after %v", shared.ErrTimeout, oauthTimeout)
	}

	a.shutdown(httpServer)

	if result.Error() != nil {
		if errors.Is(result.Error(), shared.ErrOAuthCancelled) {
			return nil, result.Error()
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrOAuthFailed, result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("%w: no token received", shared.ErrOAuthFailed)
	}

	var acct accountResponse
	if err := a.call(ctx, http.MethodGet, "/v1/userinfo", result.Token.AccessToken, nil, &acct); err != nil {
		return nil, fmt.Errorf("%w: failed to resolve account: %v", shared.ErrOAuthFailed, err)
	}
	acct.Token = result.Token.AccessToken

	principal := a.principal(acct)
	if err := a.persist(principal); err != nil {
		a.logger.Warn("failed to persist credential", "error", err)
	}

	a.stream <- principal
	return principal, nil
}

func (a *ProviderAdapter) shutdown(httpServer *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Warn("error shutting down callback server", "error", err)
	}
}
