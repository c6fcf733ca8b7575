// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// ProteinEvidences performs GET {base}/proteinevidences.
func (s *SearchService) ProteinEvidences(ctx context.Context, req ProteinEvidencesRequest) ([]byte, error) {
	if req.PageSize == 0 {
		req.PageSize = DefaultPageSize
	}
	if req.SortDirection == "" {
		req.SortDirection = DefaultSortDirection
	}
	if req.SortConditions == "" {
		req.SortConditions = DefaultEvidenceSort
	}

	params := map[string]string{
		"projectAccession":  req.ProjectAccession,
		"assayAccession":    req.AssayAccession,
		"reportedAccession": req.ReportedAccession,
		"pageSize":          strconv.Itoa(req.PageSize),
		"page":              strconv.Itoa(req.Page),
		"sortDirection":     req.SortDirection,
		"sortConditions":    req.SortConditions,
	}

	url := s.http.BuildURL("proteinevidences", "", params)
	body, status, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("protein evidence search failed (status %d): %w", status, err)
	}
	return body, nil
}

// SpectraEvidences performs GET {base}/spectra. Multiple USIs are joined with
// commas the way the endpoint expects.
func (s *SearchService) SpectraEvidences(ctx context.Context, req SpectraEvidencesRequest) ([]byte, error) {
	if req.PageSize == 0 {
		req.PageSize = DefaultPageSize
	}
	if req.SortDirection == "" {
		req.SortDirection = DefaultSortDirection
	}
	if req.SortConditions == "" {
		req.SortConditions = DefaultEvidenceSort
	}
	if req.ResultType == "" {
		req.ResultType = DefaultSpectraResult
	}

	params := map[string]string{
		"usi":              strings.Join(req.Usi, ","),
		"projectAccession": req.ProjectAccession,
		"assayAccession":   req.AssayAccession,
		"peptideSequence":  req.PeptideSequence,
		"modifiedSequence": req.ModifiedSequence,
		"resultType":       req.ResultType,
		"pageSize":         strconv.Itoa(req.PageSize),
		"page":             strconv.Itoa(req.Page),
		"sortDirection":    req.SortDirection,
		"sortConditions":   req.SortConditions,
	}

	url := s.http.BuildURL("spectra", "", params)
	body, status, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("spectra search failed (status %d): %w", status, err)
	}
	return body, nil
}
