//
// Tencent is pleased to support the open source community by making fxassist available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// fxassist is licensed under the Apache License Version 2.0.
//
//

// Package worldclock provides a current-time lookup tool for AI agents.
// It accepts casual city names (e.g. "Paris") as well as IANA timezone
// identifiers (e.g. "Europe/Paris"), prefers the World Time API for the
// reading, and degrades to the local timezone database when the remote
// service is unavailable.
package worldclock

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"trpc.group/trpc-go/trpc-agent-go/log"
	"trpc.group/trpc-go/trpc-agent-go/tool"
	"trpc.group/trpc-go/trpc-agent-go/tool/function"

	"trpc.group/trpc-go/fxassist/tool/worldclock/internal/client"
)

const (
	// defaultBaseURL is the default base URL for the World Time API.
	defaultBaseURL = "https://worldtimeapi.org"
	// defaultUserAgent is the default user agent for HTTP requests.
	defaultUserAgent = "fxassist-worldclock/1.0"
	// defaultTimeout bounds the remote lookup; failures fall back to the
	// local timezone database.
	defaultTimeout = 6 * time.Second
	// clockLayout renders a wall-clock reading as "hh:mm AM/PM".
	clockLayout = "03:04 PM"

	statusSuccess = "success"
	statusError   = "error"
)

// cityZones maps casual city names to IANA timezone identifiers.
var cityZones = map[string]string{
	"paris":         "Europe/Paris",
	"kolkata":       "Asia/Kolkata",
	"mumbai":        "Asia/Kolkata",
	"new york":      "America/New_York",
	"nyc":           "America/New_York",
	"london":        "Europe/London",
	"tokyo":         "Asia/Tokyo",
	"los angeles":   "America/Los_Angeles",
	"sf":            "America/Los_Angeles",
	"san francisco": "America/Los_Angeles",
}

// Option is a functional option for configuring the world clock tool.
type Option func(*config)

// config holds the configuration for the world clock tool.
type config struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	now        func() time.Time
}

// WithBaseURL sets the base URL for the World Time API.
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithUserAgent sets the user agent for HTTP requests.
func WithUserAgent(userAgent string) Option {
	return func(c *config) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient sets the HTTP client to use.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout for the remote time lookup.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithNow overrides the clock used for the local fallback. Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// ZoneFor resolves a casual city name or IANA identifier to a timezone
// identifier. Inputs containing a "/" that are absent from the alias table
// are treated as literal IANA identifiers.
func ZoneFor(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if zone, ok := cityZones[strings.ToLower(trimmed)]; ok {
		return zone, true
	}
	if strings.Contains(trimmed, "/") {
		return trimmed, true
	}
	return "", false
}

// LocalTime is a resolved wall-clock reading.
type LocalTime struct {
	City     string
	Timezone string
	Time     string
}

// Resolver resolves city names to local wall-clock readings.
type Resolver struct {
	client *client.Client
	now    func() time.Time
}

// NewResolver creates a Resolver with the provided options.
func NewResolver(opts ...Option) *Resolver {
	cfg := &config{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Resolver{
		client: client.New(cfg.baseURL, cfg.userAgent, cfg.httpClient),
		now:    cfg.now,
	}
}

// Resolve returns the current local time for a city name or IANA timezone
// identifier. The remote service is consulted first; any remote failure is
// logged and the local timezone database is used instead.
func (r *Resolver) Resolve(city string) (LocalTime, error) {
	name := strings.TrimSpace(city)
	if name == "" {
		return LocalTime{}, fmt.Errorf("no city provided")
	}

	zone, ok := ZoneFor(name)
	if !ok {
		return LocalTime{}, fmt.Errorf("unknown city or timezone %q, try 'Paris' or 'Europe/Paris'", name)
	}

	ts, remoteErr := r.client.CurrentTime(zone)
	if remoteErr == nil {
		return LocalTime{City: name, Timezone: zone, Time: ts.Format(clockLayout)}, nil
	}
	log.Debugf("world time API lookup for %q failed, falling back to local timezone data: %v", zone, remoteErr)

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return LocalTime{}, fmt.Errorf("could not determine time for %q: %w", name, err)
	}
	return LocalTime{City: name, Timezone: zone, Time: r.now().In(loc).Format(clockLayout)}, nil
}

// timeRequest represents the input for the current-time tool.
type timeRequest struct {
	City string `json:"city" jsonschema:"description=City name (e.g. 'Paris') or IANA timezone identifier (e.g. 'Europe/Paris')"`
}

// timeResponse represents the output from the current-time tool. Failures are
// reported through the status and message fields so the calling agent can
// branch on them.
type timeResponse struct {
	Status   string `json:"status"`
	City     string `json:"city,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	Time     string `json:"time,omitempty"`
	Message  string `json:"message,omitempty"`
}

// clockTool adapts a Resolver to the function tool interface.
type clockTool struct {
	resolver *Resolver
}

// NewTool creates a current-time lookup tool with the provided options.
func NewTool(opts ...Option) tool.CallableTool {
	t := &clockTool{resolver: NewResolver(opts...)}
	return function.NewFunctionTool(
		t.lookup,
		function.WithName("current_time"),
		function.WithDescription("Get the current local time for a city or timezone. "+
			"Accepts casual city names like 'Paris' or 'new york' as well as IANA "+
			"timezone identifiers like 'Europe/Paris'. Returns the time as 'hh:mm AM/PM'."),
	)
}

// lookup performs the time resolution for a single tool invocation. Failures
// are reported through the status field, never as a Go error.
func (t *clockTool) lookup(_ context.Context, req timeRequest) (timeResponse, error) {
	resolved, err := t.resolver.Resolve(req.City)
	if err != nil {
		return timeResponse{
			Status:  statusError,
			City:    req.City,
			Message: err.Error(),
		}, nil
	}
	return timeResponse{
		Status:   statusSuccess,
		City:     resolved.City,
		Timezone: resolved.Timezone,
		Time:     resolved.Time,
	}, nil
}
