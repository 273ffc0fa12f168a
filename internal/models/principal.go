package models

// Principal is the authenticated identity of the current user, including the
// bearer credential used for authorized catalog calls.
//
// Owned exclusively by the session; identity is by ID.
type Principal struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl"`
	Credential  string `json:"-"`
}

// Same reports whether two principals refer to the same identity.
func (p *Principal) Same(other *Principal) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// Profile holds the attributes applied to a newly created identity in the
// second step of sign-up.
type Profile struct {
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
}
