package api

import (
	"context"
	"net/http"
	"time"

	"github.com/moviemaster/mvx/internal/models"
)

// userRegistration is the payload for POST /users, recorded after identity
// creation so the catalog knows the principal's profile.
type userRegistration struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"displayName"`
	Email        string    `json:"email"`
	AvatarURL    string    `json:"avatarUrl"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// RegisterUser records a newly created principal with the catalog backend.
//
// This is the third step of sign-up; a failure here is non-fatal for the
// identity, which already exists at the provider.
func (c *Client) RegisterUser(ctx context.Context, p *models.Principal) error {
	payload := userRegistration{
		ID:           p.ID,
		DisplayName:  p.DisplayName,
		Email:        p.Email,
		AvatarURL:    p.AvatarURL,
		RegisteredAt: time.Now().UTC(),
	}

	return c.do(ctx, http.MethodPost, "/users", payload, nil)
}
