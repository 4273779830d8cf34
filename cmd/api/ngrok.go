package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAttempts = 10
	ngrokInterval = 3 * time.Second
)

var errNoTunnels = errors.New("ngrok has no active tunnels")

type ngrokTunnelsResponse struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// detectNgrokURL polls the ngrok local API until a tunnel shows up, preferring HTTPS.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	return pollNgrok(ctx, &http.Client{Timeout: 5 * time.Second}, ngrokAPIBase, ngrokAttempts, ngrokInterval)
}

func pollNgrok(ctx context.Context, client *http.Client, base string, attempts int, interval time.Duration) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		publicURL, err := fetchNgrokURL(ctx, client, base)
		if err == nil {
			return publicURL, nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
	}
	return "", fmt.Errorf("ngrok not ready after %d attempts: %w", attempts, lastErr)
}

func fetchNgrokURL(ctx context.Context, client *http.Client, base string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/tunnels", nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var body ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode ngrok tunnels: %w", err)
	}
	for _, t := range body.Tunnels {
		if t.Proto == "https" {
			return t.PublicURL, nil
		}
	}
	if len(body.Tunnels) > 0 {
		return body.Tunnels[0].PublicURL, nil
	}
	return "", errNoTunnels
}
