package gcalendar

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// OAuthConfigFromFile reads OAuth desktop credentials for the interactive token flow.
func OAuthConfigFromFile(credentialsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
	}
	cfg, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("credentials %q are not OAuth desktop credentials: %w", credentialsPath, err)
	}
	return cfg, nil
}

// SaveToken writes tok where NewClientFromCredentialsFile expects to find it.
func SaveToken(tokenPath string, tok *oauth2.Token) error {
	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}
	return nil
}
