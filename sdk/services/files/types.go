// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"strings"
)

// Tag the archive puts on FTP-reachable locations.
const FTPProtocolTag = "FTP Protocol"

// FileLocation is one declared access URI for a file, tagged by transfer
// protocol (e.g. "FTP Protocol").
type FileLocation struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type FileCategory struct {
	Value string `json:"value"`
}

// FileRecord is an API-shaped record; nothing here is persisted or cached.
type FileRecord struct {
	Accession           string         `json:"accession"`
	FileName            string         `json:"fileName"`
	FileCategory        FileCategory   `json:"fileCategory"`
	PublicFileLocations []FileLocation `json:"publicFileLocations"`
}

// FTPLocation finds the FTP-tagged entry wherever it sits in the sequence.
// The archive usually lists it first or second but that ordering is not a
// contract, so no positional fallback.
func (r FileRecord) FTPLocation() (string, error) {
	for _, loc := range r.PublicFileLocations {
		if loc.Name == FTPProtocolTag {
			return loc.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoFTPLocation, r.Accession)
}

// filenameFromURI derives the local filename as the substring after the last
// path separator of the remote URI.
func filenameFromURI(uri string) string {
	if i := strings.LastIndex(uri, "/"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

// ListRequest carries the paged files query; Filter is passed through
// verbatim (e.g. "fileCategory.value==RAW,projectAccessions==PXD000001").
type ListRequest struct {
	Filter         string
	PageSize       int
	Page           int
	SortDirection  string
	SortConditions string
}
