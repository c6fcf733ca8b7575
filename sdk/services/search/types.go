// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package search

// Defaults mirror the archive's documented ones.
const (
	DefaultPageSize      = 100
	DefaultSortDirection = "DESC"
	DefaultProjectSort   = "submission_date"
	DefaultEvidenceSort  = "projectAccession"
	DefaultSpectraResult = "COMPACT"
)

type PageRequest struct {
	PageSize      int
	Page          int
	SortDirection string
}

// ProjectsRequest searches public projects. Keyword is the free-text search
// (*:* structure); Filter is field1==value1,field2==value2 passed verbatim.
type ProjectsRequest struct {
	PageRequest

	Keyword    string
	Filter     string
	DateGap    string // e.g. +1MONTH, +1YEAR
	SortFields string
}

type ProteinEvidencesRequest struct {
	PageRequest

	ProjectAccession  string
	AssayAccession    string
	ReportedAccession string
	SortConditions    string
}

type SpectraEvidencesRequest struct {
	PageRequest

	Usi              []string
	ProjectAccession string
	AssayAccession   string
	PeptideSequence  string
	ModifiedSequence string
	ResultType       string
	SortConditions   string
}
