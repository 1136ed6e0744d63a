package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	goauth "golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// TokenSourceFromFiles builds an OAuth token source from an installed-app
// client credentials file and a previously cached token. It does not run
// the interactive consent flow; the token file must already exist.
func TokenSourceFromFiles(ctx context.Context, credentialsPath, tokenPath string) (oauth2.TokenSource, error) {
	credBytes, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	cfg, err := goauth.ConfigFromJSON(credBytes, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	tokenBytes, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("read token: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenBytes, &token); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	return cfg.TokenSource(ctx, &token), nil
}

// NewDriveService creates a read-only Drive API client.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	svc, err := drive.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return svc, nil
}
