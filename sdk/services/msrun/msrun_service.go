// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package msrun

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"sigs.k8s.io/yaml"

	"github.com/pride-archive/pride-cli-sdk/sdk/config"
)

// MsRunService pushes metadata extracted from raw instrument files back into
// the archive. The only authenticated corner of this SDK.
type MsRunService struct {
	http config.ArchiveHTTP
}

func NewMsRunService(_ context.Context, conf config.Config) (*MsRunService, error) {
	if conf.Archive.BaseURL == "" || conf.Archive.APIVersion == "" {
		return nil, errors.New("invalid archive config")
	}
	if conf.Archive.AccessToken == "" {
		return nil, errors.New("metadata updates require an access token")
	}
	return &MsRunService{
		http: config.NewHTTPCore(nil, conf.Archive),
	}, nil
}

// UpdateMetadata reads a metadata document (JSON, or YAML which is converted
// first), wraps it under the msrun envelope and PUTs it to
// {base}/msruns/{accession}/updateMetadata. The document must carry the file
// accession; a submission reference is generated when absent.
func (s *MsRunService) UpdateMetadata(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read metadata file: %w", err)
	}

	jsonBytes, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to parse metadata: %w", err)
	}

	var metadata map[string]any
	if err := json.Unmarshal(jsonBytes, &metadata); err != nil {
		return fmt.Errorf("failed to parse metadata after JSON conversion: %w", err)
	}

	accession, _ := metadata["accession"].(string)
	if accession == "" {
		return errors.New("metadata file does not carry an accession")
	}

	envelope := map[string]any{
		"accession":     accession,
		"msRunMetadata": metadata,
	}
	if ref, _ := metadata["submissionReference"].(string); ref == "" {
		envelope["submissionReference"] = uuidNoDash()
	} else {
		envelope["submissionReference"] = ref
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal msrun envelope: %w", err)
	}

	url := s.http.BuildURL("msruns", accession, nil) + "/updateMetadata"
	if _, status, err := s.http.Do(ctx, "PUT", url, body); err != nil {
		return fmt.Errorf("metadata update failed (status %d): %w", status, err)
	}
	return nil
}

func uuidNoDash() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
