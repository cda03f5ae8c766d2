package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
)

// CloudPlatformScope is requested for the hosting project's service account.
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

var ErrEmptyCredentials = errors.New("credentials file is empty")

// Load reads a service-account key and parses it. An empty path means no
// credentials are configured and returns (nil, nil).
func Load(ctx context.Context, path string) (*google.Credentials, error) {
	if path == "" {
		return nil, nil
	}

	// #nosec G304 -- path comes from the operator's environment.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	return Parse(ctx, data)
}

// Parse builds credentials from a JSON key. Only service-account keys are
// accepted.
func Parse(ctx context.Context, data []byte) (*google.Credentials, error) {
	if len(data) == 0 {
		return nil, ErrEmptyCredentials
	}

	creds, err := google.CredentialsFromJSONWithType(ctx, data, google.ServiceAccount, CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}

	return creds, nil
}
