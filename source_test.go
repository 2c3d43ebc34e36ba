// Copyright (c) 2025, Corvid Labs. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vicon_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/corvid-labs/vicon"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		icon string
		want bool
	}{
		{"https://example.com/icon", true},
		{"http://example.com/a", true},
		{"icons/doc.svg", true},
		{"doc.svg?version=2", true},
		{"<svg viewBox=\"0 0 1 1\"></svg>", false},
		{"just some text", false},
		{"doc.svgz", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, IsURL(test.icon), test.icon)
	}
}

func TestResolveInline(t *testing.T) {
	rs := &Resolver{}
	markup := `<svg viewBox="0 0 24 24"><path d="M0 0h24v24H0z"/></svg>`
	got, err := rs.Resolve(context.Background(), markup)
	require.NoError(t, err)
	assert.Equal(t, markup, got)
}

func TestResolveRemote(t *testing.T) {
	const body = `<svg viewBox="0 0 16 16"></svg>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	rs := &Resolver{Client: srv.Client()}
	got, err := rs.Resolve(context.Background(), srv.URL+"/icon.svg")
	require.NoError(t, err)
	assert.Equal(t, body, got)
}

func TestResolveRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	rs := &Resolver{Client: srv.Client()}
	_, err := rs.Resolve(context.Background(), srv.URL+"/missing.svg")
	assert.ErrorIs(t, err, ErrFetch)
}

func TestResolveCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rs := &Resolver{Client: srv.Client()}
	_, err := rs.Resolve(ctx, srv.URL+"/icon.svg")
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, context.Canceled)
}
