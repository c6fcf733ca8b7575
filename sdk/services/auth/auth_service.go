// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pride-archive/pride-cli-sdk/sdk/config"
)

// AuthService exchanges archive account credentials for an API token.
type AuthService struct {
	http config.ArchiveHTTP
}

func NewAuthService(_ context.Context, conf config.Config) (*AuthService, error) {
	if conf.Archive.BaseURL == "" || conf.Archive.APIVersion == "" {
		return nil, errors.New("invalid archive config")
	}
	return &AuthService{
		http: config.NewHTTPCore(nil, conf.Archive),
	}, nil
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// GetToken performs POST {base}/getAESToken. The endpoint answers with the
// bare token as text.
func (s *AuthService) GetToken(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", errors.New("username and password are required")
	}

	body, err := json.Marshal(map[string]credentials{
		"credentials": {Username: username, Password: password},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal credentials: %w", err)
	}

	url := s.http.BuildURL("getAESToken", "", nil)
	resp, status, err := s.http.Do(ctx, "POST", url, body)
	if err != nil {
		return "", fmt.Errorf("token request failed (status %d): %w", status, err)
	}

	token := strings.TrimSpace(string(resp))
	if token == "" {
		return "", errors.New("archive returned an empty token")
	}
	return token, nil
}
