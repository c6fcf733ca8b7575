// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"context"
	"errors"

	"github.com/pride-archive/pride-cli-sdk/sdk/config"
)

// SearchService queries the archive search endpoints (projects, protein
// evidences, spectra). Bodies are returned unmodified; rendering is the
// caller's business.
type SearchService struct {
	http config.ArchiveHTTP
}

func NewSearchService(_ context.Context, conf config.Config) (*SearchService, error) {
	if conf.Archive.BaseURL == "" || conf.Archive.APIVersion == "" {
		return nil, errors.New("invalid archive config")
	}
	return &SearchService{
		http: config.NewHTTPCore(nil, conf.Archive),
	}, nil
}
