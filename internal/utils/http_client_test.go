// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("", 0)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("", 0)
	client2 := NewHTTPClient("", 0)

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestNewHTTPClient_AppliesSettings(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080", 3*time.Second)

	assert.Equal(t, "http://localhost:8080", client.BaseURL)
	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestHTTPClient_WithBearer(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second).WithBearer("tkn")
	_, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tkn", got)
}

func TestHTTPClient_WithEmptyBearer(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second).WithBearer("")
	_, err := client.R().Get("/")
	require.NoError(t, err)
	assert.Empty(t, got)
}
