// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/supabase-community/supabase-go"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

type staticIdentity struct {
	userID string
}

// NewStaticIdentity returns a provider for a fixed identity. An explicit
// user id wins; otherwise the subject of the bearer token is used without
// verifying the signature. With neither the client runs as guest.
func NewStaticIdentity(cfg config.ClientIdentity) (IdentityProvider, error) {
	if cfg.UserID != "" {
		return &staticIdentity{userID: cfg.UserID}, nil
	}
	if cfg.Token == "" {
		return &staticIdentity{}, nil
	}

	subject, err := utils.SubjectFromJWT(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("identity from token: %w", err)
	}
	return &staticIdentity{userID: subject}, nil
}

func (i *staticIdentity) UserID(ctx context.Context) (string, error) {
	return i.userID, nil
}

type supabaseIdentity struct {
	client *supabase.Client
	token  string
}

// NewSupabaseIdentity returns a provider that asks Supabase auth who owns
// token. An empty token means guest.
func NewSupabaseIdentity(client *supabase.Client, token string) IdentityProvider {
	return &supabaseIdentity{client: client, token: token}
}

func (i *supabaseIdentity) UserID(ctx context.Context) (string, error) {
	if i.token == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	user, err := i.client.Auth.WithToken(i.token).GetUser()
	if err != nil {
		return "", fmt.Errorf("get supabase user: %w", err)
	}
	if user == nil {
		return "", ErrIdentityNotFound
	}
	return user.ID.String(), nil
}

// CachedIdentity remembers the first successful answer of the wrapped
// provider. Failures are not cached, so the next call asks again. An empty
// answer is remembered as [models.GuestOwner].
type CachedIdentity struct {
	provider IdentityProvider

	mu       sync.RWMutex
	userID   string
	resolved bool

	logger *logger.Logger
}

func NewCachedIdentity(provider IdentityProvider, logger *logger.Logger) *CachedIdentity {
	return &CachedIdentity{provider: provider, logger: logger}
}

func (c *CachedIdentity) UserID(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.resolved {
		defer c.mu.RUnlock()
		return c.userID, nil
	}
	c.mu.RUnlock()

	userID, err := c.provider.UserID(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "CachedIdentity.UserID").Msg("failed to resolve identity")
		return "", err
	}
	if userID == "" {
		userID = models.GuestOwner
	}

	c.mu.Lock()
	c.userID = userID
	c.resolved = true
	c.mu.Unlock()
	return userID, nil
}

// Current returns the cached user id without resolving it. It is empty
// until UserID succeeded once.
func (c *CachedIdentity) Current() string {
	if c == nil {
		return ""
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userID
}
