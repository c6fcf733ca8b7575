// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import "errors"

var (
	ErrNotFound       = errors.New("file not found")
	ErrNoRecords      = errors.New("no file records for accession")
	ErrNoFTPLocation  = errors.New("no FTP-tagged public file location")
	ErrNoPathFragment = errors.New("file location does not follow the yyyy/mm/accession layout")
)

// TransportError wraps failures talking to the archive API or moving bytes
// over the wire.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "transport error: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ParseError wraps malformed remote data (bad JSON, unexpected shape).
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parse error: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// LocalIOError wraps filesystem failures on this side.
type LocalIOError struct {
	Err error
}

func (e *LocalIOError) Error() string { return "local io error: " + e.Err.Error() }
func (e *LocalIOError) Unwrap() error { return e.Err }
