// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"fmt"
	"strconv"
)

// Projects performs GET {base}/search/projects with keywords and filters.
func (s *SearchService) Projects(ctx context.Context, req ProjectsRequest) ([]byte, error) {
	if req.PageSize == 0 {
		req.PageSize = DefaultPageSize
	}
	if req.SortDirection == "" {
		req.SortDirection = DefaultSortDirection
	}
	if req.SortFields == "" {
		req.SortFields = DefaultProjectSort
	}

	params := map[string]string{
		"keyword":       req.Keyword,
		"filter":        req.Filter,
		"pageSize":      strconv.Itoa(req.PageSize),
		"page":          strconv.Itoa(req.Page),
		"dateGap":       req.DateGap,
		"sortDirection": req.SortDirection,
		"sortFields":    req.SortFields,
	}

	url := s.http.BuildURL("search/projects", "", params)
	body, status, err := s.http.Do(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("project search failed (status %d): %w", status, err)
	}
	return body, nil
}
