package models

import (
	"fmt"
	"time"
)

// SessionRecordName is the fixed name under which the current session's
// credential is persisted locally. Exactly one record carries it at a time.
const SessionRecordName = "session"

// Credential is the locally persisted session record: the principal's
// attributes plus the bearer token issued by the identity provider.
type Credential struct {
	id        string
	name      string
	principal Principal
	token     string
	createdAt time.Time
	updatedAt time.Time
	deletedAt *time.Time
}

var _ Model = (*Credential)(nil)

// NewCredential creates a credential record for the given principal.
func NewCredential(name string, principal Principal, token string) *Credential {
	now := time.Now()
	return &Credential{
		name:      name,
		principal: principal,
		token:     token,
		createdAt: now,
		updatedAt: now,
	}
}

func (c *Credential) ID() string            { return c.id }
func (c *Credential) Name() string          { return c.name }
func (c *Credential) Principal() Principal  { return c.principal }
func (c *Credential) Token() string         { return c.token }
func (c *Credential) CreatedAt() time.Time  { return c.createdAt }
func (c *Credential) UpdatedAt() time.Time  { return c.updatedAt }
func (c *Credential) DeletedAt() *time.Time { return c.deletedAt }

func (c *Credential) SetID(id string)           { c.id = id }
func (c *Credential) SetToken(token string)     { c.token = token }
func (c *Credential) SetCreatedAt(t time.Time)  { c.createdAt = t }
func (c *Credential) SetUpdatedAt(t time.Time)  { c.updatedAt = t }
func (c *Credential) SetDeletedAt(t *time.Time) { c.deletedAt = t }
func (c *Credential) SetPrincipal(p Principal)  { c.principal = p }

// Validate checks that the record can be persisted.
func (c *Credential) Validate() error {
	if c.name == "" {
		return fmt.Errorf("credential name is required")
	}
	if c.principal.ID == "" {
		return fmt.Errorf("credential principal id is required")
	}
	if c.token == "" {
		return fmt.Errorf("credential token is required")
	}
	return nil
}
