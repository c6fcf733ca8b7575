// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pride-archive/pride-cli-sdk/sdk/config"
)

func newCopyService(t *testing.T, body string) *FileService {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return &FileService{
		http:  config.NewHTTPCore(nil, config.ArchiveConfig{BaseURL: srv.URL, APIVersion: "v2"}),
		Quiet: true,
	}
}

func TestSubmittedPathFragment(t *testing.T) {
	svc := newCopyService(t, `[{"accession":"PXF00001","fileName":"7550GI_Y.raw",
		"publicFileLocations":[{"name":"FTP Protocol",
			"value":"ftp://ftp.pride.ebi.ac.uk/pride/data/archive/2018/10/PXD008644/7550GI_Y.raw"}]}]`)

	fragment, err := svc.SubmittedPathFragment(context.Background(), "PXD008644")
	if err != nil {
		t.Fatalf("SubmittedPathFragment failed: %v", err)
	}
	if fragment != "2018/10/PXD008644" {
		t.Fatalf("fragment = %q, want 2018/10/PXD008644", fragment)
	}
}

func TestSubmittedPathFragmentNoRecords(t *testing.T) {
	svc := newCopyService(t, `[]`)

	_, err := svc.SubmittedPathFragment(context.Background(), "PXD008644")
	if !errors.Is(err, ErrNoRecords) {
		t.Fatalf("err = %v, want ErrNoRecords", err)
	}
}

func TestSubmittedPathFragmentNoMatch(t *testing.T) {
	svc := newCopyService(t, `[{"accession":"PXF00001",
		"publicFileLocations":[{"name":"FTP Protocol","value":"ftp://host/elsewhere/a.raw"}]}]`)

	_, err := svc.SubmittedPathFragment(context.Background(), "PXD008644")
	if !errors.Is(err, ErrNoPathFragment) {
		t.Fatalf("err = %v, want ErrNoPathFragment", err)
	}
}

func TestCopyRawFilesFromDirIntersectsWithLocalListing(t *testing.T) {
	base := t.TempDir()
	sourceDir := filepath.Join(base, "2018", "10", "PXD008644", "submitted")
	if err := os.MkdirAll(sourceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, n := range []string{"a.raw", "b.raw"} {
		if err := os.WriteFile(filepath.Join(sourceDir, n), []byte(n), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// the archive claims a.raw and c.raw; only a.raw exists on the mount
	svc := newCopyService(t, rawFileListBody("a.raw", "c.raw"))

	t.Chdir(t.TempDir())

	if err := svc.CopyRawFilesFromDir(context.Background(), "PXD008644", base); err != nil {
		t.Fatalf("copy failed: %v", err)
	}

	// a.raw copied under the accession prefix of its record
	copied, err := os.ReadFile("PXF00000-a.raw")
	if err != nil {
		t.Fatalf("expected PXF00000-a.raw in the working directory: %v", err)
	}
	if string(copied) != "a.raw" {
		t.Fatalf("copied content = %q", copied)
	}

	// c.raw absent locally: skipped, never created
	if _, err := os.Stat("PXF00001-c.raw"); !os.IsNotExist(err) {
		t.Fatalf("c.raw should have been skipped, stat err = %v", err)
	}
}

func TestCopyRawFilesFromDirMissingDirIsNotFatal(t *testing.T) {
	svc := newCopyService(t, rawFileListBody("a.raw"))

	t.Chdir(t.TempDir())

	// source base exists but holds no archive layout: warn, list nothing,
	// log a.raw as missing, no error
	if err := svc.CopyRawFilesFromDir(context.Background(), "PXD008644", t.TempDir()); err != nil {
		t.Fatalf("copy should be best-effort, got %v", err)
	}
}

func TestCopyFileByName(t *testing.T) {
	base := t.TempDir()
	sourceDir := filepath.Join(base, "2018", "10", "PXD008644", "submitted")
	if err := os.MkdirAll(sourceDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sourceDir, "b.raw"), []byte("b"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := newCopyService(t, rawFileListBody("b.raw"))

	t.Chdir(t.TempDir())

	if err := svc.CopyFileByName(context.Background(), "PXD008644", "b.raw", base); err != nil {
		t.Fatalf("copy failed: %v", err)
	}
	if _, err := os.Stat("PXF00000-b.raw"); err != nil {
		t.Fatalf("expected PXF00000-b.raw: %v", err)
	}
}

func TestListMatchingFilenames(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.raw", "b.raw", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	names, err := listMatchingFilenames(dir, "*.raw")
	if err != nil {
		t.Fatalf("listMatchingFilenames failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("names = %v, want the two .raw files", names)
	}
	for _, n := range names {
		if n != "a.raw" && n != "b.raw" {
			t.Fatalf("unexpected name %q", n)
		}
	}

	empty, err := listMatchingFilenames(t.TempDir(), "*.raw")
	if err != nil {
		t.Fatalf("listMatchingFilenames on empty dir failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("empty dir yielded %v", empty)
	}
}
