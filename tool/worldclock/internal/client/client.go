//
// Tencent is pleased to support the open source community by making fxassist available.
//
// Copyright (C) 2026 Tencent.  All rights reserved.
//
// fxassist is licensed under the Apache License Version 2.0.
//
//

// Package client provides an HTTP client for the World Time API.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client provides methods to interact with the World Time API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// New creates a new World Time API client with the provided configuration.
func New(baseURL, userAgent string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// Response represents the response from the World Time API timezone endpoint.
type Response struct {
	Datetime     string `json:"datetime"`
	Timezone     string `json:"timezone"`
	UTCOffset    string `json:"utc_offset"`
	Abbreviation string `json:"abbreviation"`
	DayOfWeek    int    `json:"day_of_week"`
	UnixTime     int64  `json:"unixtime"`
}

// CurrentTime fetches the current time for an IANA timezone identifier.
// The returned time carries the offset reported by the service.
func (c *Client) CurrentTime(zone string) (time.Time, error) {
	if strings.TrimSpace(zone) == "" {
		return time.Time{}, fmt.Errorf("timezone cannot be empty")
	}

	// Zone identifiers contain literal slashes (e.g. Europe/Paris), which are
	// path segments on this API.
	reqURL := fmt.Sprintf("%s/api/timezone/%s", c.baseURL, zone)

	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload Response
	if err := json.Unmarshal(body, &payload); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse response: %w", err)
	}

	if payload.Datetime == "" {
		return time.Time{}, fmt.Errorf("response missing datetime field")
	}

	ts, err := time.Parse(time.RFC3339Nano, payload.Datetime)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse datetime %q: %w", payload.Datetime, err)
	}

	return ts, nil
}
