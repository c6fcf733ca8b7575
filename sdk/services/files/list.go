// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"encoding/json"
	"strconv"
)

// ListFilesPaged performs GET {base}/files with pagination and sorting.
// Filter syntax and sort field names are the archive's business; they are
// passed through verbatim. The body comes back unmodified.
func (s *FileService) ListFilesPaged(ctx context.Context, req ListRequest) ([]byte, error) {
	params := map[string]string{
		"filter":         req.Filter,
		"pageSize":       strconv.Itoa(req.PageSize),
		"page":           strconv.Itoa(req.Page),
		"sortDirection":  req.SortDirection,
		"sortConditions": req.SortConditions,
	}

	url := s.http.BuildURL("files", "", params)
	body, _, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	return body, nil
}

// ListRawFiles performs GET {base}/files/byProject filtered to RAW instrument
// files for the given project accession.
func (s *FileService) ListRawFiles(ctx context.Context, accession string) ([]FileRecord, error) {
	url := s.http.BuildURL("files/byProject", "", map[string]string{
		"accession": accession + ",fileCategory.value==RAW",
	})

	body, _, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var records []FileRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, &ParseError{Err: err}
	}
	return records, nil
}

// ListMatchingFilenames lists basenames in a directory matching a shell glob.
// A directory with no matches yields an empty slice; order is whatever the
// filesystem returns.
func ListMatchingFilenames(location, pattern string) ([]string, error) {
	return listMatchingFilenames(location, pattern)
}
