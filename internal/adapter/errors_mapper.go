// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

func terminal(cause error, detail string) error {
	return fmt.Errorf("%w: %w: %s", ErrTerminal, cause, detail)
}

func unavailable(cause error, detail string) error {
	return fmt.Errorf("%w: %w: %s", ErrUnavailable, cause, detail)
}

// mapHTTPError classifies a REST response. 2xx is success; 408 and 429 are
// the only transient 4xx codes.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusRequestTimeout:
		return unavailable(context.DeadlineExceeded, body)
	case code == http.StatusTooManyRequests:
		return unavailable(ErrTooManyRequests, body)
	case code == http.StatusBadRequest:
		return terminal(ErrBadRequest, body)
	case code == http.StatusUnauthorized:
		return terminal(ErrUnauthorized, body)
	case code == http.StatusForbidden:
		return terminal(ErrForbidden, body)
	case code == http.StatusNotFound:
		return terminal(ErrNotFound, body)
	case code == http.StatusConflict:
		return terminal(ErrConflict, body)
	case code >= 400 && code < 500:
		return terminal(fmt.Errorf("http %d", code), body)
	case code >= 500:
		return unavailable(ErrServerError, fmt.Sprintf("http %d: %s", code, body))
	default:
		return unavailable(fmt.Errorf("unexpected http %d", code), body)
	}
}

// mapTransportError classifies an error returned before any response was
// read. Cancellation is passed through untouched so that callers can tell a
// shutdown from an outage.
func mapTransportError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var urlErr *url.Error
	var netErr net.Error
	var opErr *net.OpError
	if errors.As(err, &opErr) || errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w: %w", ErrUnavailable, ErrUnreachable, err)
	}

	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
