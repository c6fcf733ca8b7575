// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// GetFileByName performs GET {base}/files/byProject filtered by project
// accession and exact filename. Any transport or parse failure surfaces as
// ErrNotFound carrying the underlying message.
func (s *FileService) GetFileByName(ctx context.Context, accession, fileName string) ([]FileRecord, error) {
	if accession == "" || fileName == "" {
		return nil, errors.New("accession and file name are required")
	}

	url := s.http.BuildURL("files/byProject", "", map[string]string{
		"accession": accession + ",fileName==" + fileName,
	})

	body, _, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, err)
	}

	var records []FileRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, err)
	}
	return records, nil
}
