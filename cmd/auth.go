package main

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/moviemaster/mvx/internal/models"
	"github.com/moviemaster/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin signs in with email/password, or through the browser with --oauth.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if r.auth == nil {
		return fmt.Errorf("%w: identity provider not configured", shared.ErrServiceUnavailable)
	}

	if cmd.Bool("oauth") {
		r.logger.Info("starting browser sign-in")
		principal, err := r.auth.SignInWithOAuth(ctx)
		if err != nil {
			if errors.Is(err, shared.ErrOAuthCancelled) {
				return r.writePlain("Sign-in cancelled\n")
			}
			return err
		}
		return r.writePlain("✓ Signed in as %s\n", principal.DisplayName)
	}

	email := cmd.String("email")
	password := cmd.String("password")
	if email == "" || password == "" {
		return fmt.Errorf("%w: --email and --password are required without --oauth", shared.ErrMissingArgument)
	}

	principal, err := r.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		// The provider's own message is in the error; show it verbatim.
		return err
	}

	return r.writePlain("✓ Signed in as %s\n", principal.DisplayName)
}

// AuthRegister creates a new account, then applies the profile attributes.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	if r.auth == nil {
		return fmt.Errorf("%w: identity provider not configured", shared.ErrServiceUnavailable)
	}

	email := cmd.String("email")
	password := cmd.String("password")
	profile := models.Profile{
		DisplayName: cmd.String("name"),
		AvatarURL:   cmd.String("avatar"),
	}

	if err := validatePassword(password); err != nil {
		return err
	}

	principal, err := r.auth.SignUpWithPassword(ctx, email, password, profile)
	if err != nil && !errors.Is(err, shared.ErrProfileSync) {
		return err
	}

	if errors.Is(err, shared.ErrProfileSync) {
		// The account exists; only the display name lagged behind.
		r.logger.Warn("profile attributes not applied yet", "error", err)
	}

	if regErr := r.api.RegisterUser(ctx, principal); regErr != nil {
		r.logger.Warn("failed to record user with catalog", "error", regErr)
	}

	return r.writePlain("✓ Account created for %s\n", principal.Email)
}

// AuthLogout clears the provider session and the persisted credential.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if r.auth == nil {
		return fmt.Errorf("%w: identity provider not configured", shared.ErrServiceUnavailable)
	}

	if err := r.auth.SignOut(ctx); err != nil {
		return err
	}

	return r.writePlain("✓ Signed out\n")
}

// AuthWhoami shows the restored session.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	snap := r.awaitSession(ctx)

	if snap.IsLoading {
		return fmt.Errorf("%w: session restoration did not finish", shared.ErrTimeout)
	}

	if snap.Identity == nil {
		return r.writePlain("Not signed in\n")
	}

	if cmd.Bool("json") {
		return r.writeJSON(snap.Identity, true)
	}

	r.writePlainHeader("Session")
	r.writePlain("Name:  %s\n", snap.Identity.DisplayName)
	r.writePlain("Email: %s\n", snap.Identity.Email)
	r.writePlain("ID:    %s\n", snap.Identity.ID)
	return nil
}

// validatePassword enforces the minimum password policy before the round trip
// to the provider: at least 8 characters with a letter and a digit.
func validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: must be at least 8 characters", shared.ErrWeakPassword)
	}

	var hasLetter, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsLetter(c):
			hasLetter = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: must contain a letter and a digit", shared.ErrWeakPassword)
	}

	return nil
}
