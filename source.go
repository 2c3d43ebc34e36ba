// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vicon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrFetch indicates a failure retrieving a remote icon source.
// Fetch failures are surfaced to the caller and never retried here;
// retries, if desired, are a caller concern.
var ErrFetch = errors.New("vicon: error fetching icon source")

// Resolver turns an icon specification string into SVG markup text.
// A specification is either a remote reference, fetched over HTTP,
// or inline markup, returned unchanged. Classification happens once
// here, so downstream pipeline stages only ever see markup text.
type Resolver struct {

	// Client is the HTTP client used for remote sources.
	// If it is nil, [http.DefaultClient] is used.
	Client *http.Client
}

// IsURL reports whether the given icon specification string is a
// remote reference: it starts with an http(s):// prefix or ends in
// .svg, optionally followed by a query string. Anything else is
// treated as inline markup.
func IsURL(icon string) bool {
	if strings.HasPrefix(icon, "http://") || strings.HasPrefix(icon, "https://") {
		return true
	}
	base, _, _ := strings.Cut(icon, "?")
	return strings.HasSuffix(base, ".svg")
}

// Resolve returns the SVG markup text for the given icon specification,
// fetching it if [IsURL] classifies it as a remote reference. The
// context governs cancellation of the fetch; there is no other
// suspension point in the pipeline.
func (rs *Resolver) Resolve(ctx context.Context, icon string) (string, error) {
	if !IsURL(icon) {
		return icon, nil
	}
	return rs.fetch(ctx, icon)
}

func (rs *Resolver) fetch(ctx context.Context, url string) (string, error) {
	client := rs.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFetch, url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFetch, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w %q: unexpected status %s", ErrFetch, url, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrFetch, url, err)
	}
	return string(b), nil
}
