// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across the client: the resty
// HTTP client wrapper, UUID generation and bearer/JWT token parsing.
package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client with its own connection pool.
// baseURL and timeout are applied when non-zero.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetHeader("Accept", "application/json")
	if baseURL != "" {
		c.SetBaseURL(baseURL)
	}
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}

// WithBearer sets the Authorization header sent with every request. An empty
// token leaves the client unauthenticated.
func (c *HTTPClient) WithBearer(token string) *HTTPClient {
	if token != "" {
		c.SetAuthToken(token)
	}
	return c
}
