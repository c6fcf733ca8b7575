// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type ArchiveHTTP interface {
	BuildURL(resource, id string, params map[string]string) string
	Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error)
}

type httpCore struct {
	httpClient    *http.Client
	archiveConfig ArchiveConfig
}

func NewHTTPCore(httpClient *http.Client, archiveConfig ArchiveConfig) ArchiveHTTP {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &httpCore{httpClient: httpClient, archiveConfig: archiveConfig}
}

// BuildURL assembles the request URL. Values are percent-encoded, then the
// comma and equals characters are restored so the archive's filter grammar
// (e.g. "accession=PXD000001,fileCategory.value==RAW") arrives intact.
// Empty params are skipped.
func (httpCore *httpCore) BuildURL(resource, id string, params map[string]string) string {
	base := fmt.Sprintf("%s/%s", httpCore.archiveConfig.BaseURL, httpCore.archiveConfig.APIVersion)
	base += "/" + resource
	if id != "" {
		base += "/" + id
	}
	first := true
	for k, v := range params {
		if v == "" {
			continue
		}
		if first {
			base += "?"
			first = false
		} else {
			base += "&"
		}
		base += fmt.Sprintf("%s=%s", k, encodeFilterValue(v))
	}
	return base
}

// encodeFilterValue percent-encodes a query value, keeping the ',' and '='
// the archive's filter grammar uses verbatim.
func encodeFilterValue(v string) string {
	escaped := url.QueryEscape(v)
	escaped = strings.ReplaceAll(escaped, "%2C", ",")
	return strings.ReplaceAll(escaped, "%3D", "=")
}

func (httpCore *httpCore) Do(ctx context.Context, method, url string, data []byte) ([]byte, int, error) {
	var body io.Reader
	if data != nil {
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/JSON")
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// If access token is set, add Authorization header
	if tok := httpCore.archiveConfig.AccessToken; tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := httpCore.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	b, rerr := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		var m map[string]any
		if json.Unmarshal(b, &m) == nil {
			if msg, ok := m["message"].(string); ok && msg != "" {
				return b, resp.StatusCode, fmt.Errorf("archive responded with: %s - %s", resp.Status, msg)
			}
		}
		return b, resp.StatusCode, fmt.Errorf("archive responded with: %s", resp.Status)
	}
	return b, resp.StatusCode, rerr
}
