//
// Tencent is pleased to support the open source community by making fxassist available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// fxassist is licensed under the Apache License Version 2.0.
//
//

package worldclock

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// remoteServer returns a test server that answers every timezone request with
// the given ISO-8601 datetime.
func remoteServer(t *testing.T, datetime string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"datetime": %q, "timezone": "test"}`, datetime)
	}))
	t.Cleanup(server.Close)
	return server
}

// downServer returns an already-closed test server so every request fails.
func downServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()
	return server
}

func TestZoneFor_AliasesMatchDirectIdentifiers(t *testing.T) {
	// Resolving an alias must agree with resolving its IANA id directly.
	for alias, want := range cityZones {
		viaAlias, ok := ZoneFor(alias)
		require.True(t, ok, "alias %q should resolve", alias)

		direct, ok := ZoneFor(want)
		require.True(t, ok, "identifier %q should resolve", want)

		assert.Equal(t, direct, viaAlias, "alias %q", alias)
	}
}

func TestZoneFor_CaseAndWhitespace(t *testing.T) {
	zone, ok := ZoneFor("  New York  ")
	require.True(t, ok)
	assert.Equal(t, "America/New_York", zone)
}

func TestZoneFor_SlashTreatedAsIdentifier(t *testing.T) {
	zone, ok := ZoneFor("Australia/Sydney")
	require.True(t, ok)
	assert.Equal(t, "Australia/Sydney", zone)
}

func TestZoneFor_Unknown(t *testing.T) {
	_, ok := ZoneFor("atlantis")
	assert.False(t, ok)
}

func TestResolver_RemoteSuccess(t *testing.T) {
	server := remoteServer(t, "2026-08-27T09:41:30.000000-04:00")
	resolver := NewResolver(WithBaseURL(server.URL))

	got, err := resolver.Resolve("nyc")
	require.NoError(t, err)

	assert.Equal(t, "nyc", got.City)
	assert.Equal(t, "America/New_York", got.Timezone)
	assert.Equal(t, "09:41 AM", got.Time)
}

func TestResolver_EmptyInput(t *testing.T) {
	resolver := NewResolver(WithBaseURL(downServer(t).URL))

	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := resolver.Resolve(input)
		require.Error(t, err, "input %q", input)
		assert.Contains(t, err.Error(), "no city provided")
	}
}

func TestResolver_UnknownCity(t *testing.T) {
	resolver := NewResolver(WithBaseURL(downServer(t).URL))

	_, err := resolver.Resolve("Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown city or timezone "Atlantis"`)
}

func TestResolver_LocalFallbackWhenRemoteDown(t *testing.T) {
	fixed := time.Date(2026, 8, 27, 13, 5, 0, 0, time.UTC)
	resolver := NewResolver(
		WithBaseURL(downServer(t).URL),
		WithNow(func() time.Time { return fixed }),
	)

	got, err := resolver.Resolve("Paris")
	require.NoError(t, err)

	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	assert.Equal(t, fixed.In(loc).Format("03:04 PM"), got.Time)
	assert.Equal(t, "Europe/Paris", got.Timezone)
}

func TestResolver_LocalFallbackTracksWallClock(t *testing.T) {
	resolver := NewResolver(WithBaseURL(downServer(t).URL))

	got, err := resolver.Resolve("tokyo")
	require.NoError(t, err)

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	now := time.Now().In(loc)

	parsed, err := time.Parse("03:04 PM", got.Time)
	require.NoError(t, err)

	// The reading carries no date, so compare minutes since midnight with a
	// one-minute tolerance around the current reading.
	gotMinutes := parsed.Hour()*60 + parsed.Minute()
	wantMinutes := now.Hour()*60 + now.Minute()
	diff := (gotMinutes - wantMinutes + 1440) % 1440
	if diff > 720 {
		diff = 1440 - diff
	}
	assert.LessOrEqual(t, diff, 1)
}

func TestResolver_FallbackOnMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	t.Cleanup(server.Close)

	fixed := time.Date(2026, 8, 27, 2, 30, 0, 0, time.UTC)
	resolver := NewResolver(
		WithBaseURL(server.URL),
		WithNow(func() time.Time { return fixed }),
	)

	got, err := resolver.Resolve("london")
	require.NoError(t, err)

	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	assert.Equal(t, fixed.In(loc).Format("03:04 PM"), got.Time)
}

func TestResolver_FallbackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	fixed := time.Date(2026, 8, 27, 22, 15, 0, 0, time.UTC)
	resolver := NewResolver(
		WithBaseURL(server.URL),
		WithNow(func() time.Time { return fixed }),
	)

	got, err := resolver.Resolve("sf")
	require.NoError(t, err)

	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	assert.Equal(t, fixed.In(loc).Format("03:04 PM"), got.Time)
}

func TestResolver_BadIdentifierFailsBothPaths(t *testing.T) {
	resolver := NewResolver(WithBaseURL(downServer(t).URL))

	_, err := resolver.Resolve("Nowhere/Special")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `could not determine time for "Nowhere/Special"`)
}

func TestTool_Declaration(t *testing.T) {
	decl := NewTool().Declaration()
	assert.Equal(t, "current_time", decl.Name)
	assert.NotEmpty(t, decl.Description)
}

func TestTool_Call_StatusTaggedResults(t *testing.T) {
	server := remoteServer(t, "2026-08-27T18:20:00.000000+09:00")
	clock := NewTool(WithBaseURL(server.URL))

	out, err := clock.Call(context.Background(), []byte(`{"city": "tokyo"}`))
	require.NoError(t, err)
	resp, ok := out.(timeResponse)
	require.True(t, ok)
	assert.Equal(t, statusSuccess, resp.Status)
	assert.Equal(t, "Asia/Tokyo", resp.Timezone)
	assert.Equal(t, "06:20 PM", resp.Time)

	// Failures surface in the status field, never as a Go error.
	out, err = clock.Call(context.Background(), []byte(`{"city": "nowhere at all"}`))
	require.NoError(t, err)
	resp, ok = out.(timeResponse)
	require.True(t, ok)
	assert.Equal(t, statusError, resp.Status)
	assert.Contains(t, resp.Message, "unknown city or timezone")
}
