// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/pride-archive/pride-cli-sdk/sdk/config"
)

type fakeFTP struct {
	calls []string // target paths, in order
	fail  map[string]error
}

func (f *fakeFTP) RetrieveURI(ctx context.Context, uri, localPath string, hook *config.ProgressHook) error {
	f.calls = append(f.calls, localPath)
	if err, ok := f.fail[filepath.Base(localPath)]; ok {
		return err
	}
	return os.WriteFile(localPath, []byte("raw"), 0o644)
}

func rawFileListBody(names ...string) string {
	body := "["
	for i, n := range names {
		if i > 0 {
			body += ","
		}
		body += fmt.Sprintf(`{"accession":"PXF%05d","fileName":"%s",
			"publicFileLocations":[
				{"name":"Aspera Protocol","value":"fasp://host/2018/10/PXD008644/%s"},
				{"name":"FTP Protocol","value":"ftp://host/pride/data/archive/2018/10/PXD008644/%s"}
			]}`, i, n, n, n)
	}
	return body + "]"
}

func newDownloadService(t *testing.T, body string) (*FileService, *fakeFTP) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	ftp := &fakeFTP{fail: map[string]error{}}
	svc := &FileService{
		http:  config.NewHTTPCore(nil, config.ArchiveConfig{BaseURL: srv.URL, APIVersion: "v2"}),
		ftp:   ftp,
		Quiet: true,
	}
	return svc, ftp
}

func TestDownloadRawFilesFromFTPAttemptsEveryRecord(t *testing.T) {
	svc, ftp := newDownloadService(t, rawFileListBody("a.raw", "b.raw", "c.raw"))
	out := filepath.Join(t.TempDir(), "out")

	if err := svc.DownloadRawFilesFromFTP(context.Background(), "PXD008644", out); err != nil {
		t.Fatalf("download failed: %v", err)
	}

	want := []string{
		filepath.Join(out, "a.raw"),
		filepath.Join(out, "b.raw"),
		filepath.Join(out, "c.raw"),
	}
	if len(ftp.calls) != len(want) {
		t.Fatalf("attempted %d transfers, want %d", len(ftp.calls), len(want))
	}
	for i, target := range want {
		if ftp.calls[i] != target {
			t.Fatalf("transfer %d went to %q, want %q", i, ftp.calls[i], target)
		}
	}
}

func TestDownloadAbortsBatchOnFailure(t *testing.T) {
	svc, ftp := newDownloadService(t, rawFileListBody("a.raw", "b.raw", "c.raw"))
	ftp.fail["b.raw"] = errors.New("connection reset")
	out := filepath.Join(t.TempDir(), "out")

	err := svc.DownloadRawFilesFromFTP(context.Background(), "PXD008644", out)
	if err == nil {
		t.Fatal("expected the batch to abort")
	}
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %T %v, want *TransportError", err, err)
	}
	// a.raw attempted and written, b.raw attempted and failed, c.raw never tried
	if len(ftp.calls) != 2 {
		t.Fatalf("attempted %d transfers before aborting, want 2", len(ftp.calls))
	}
	if _, err := os.Stat(filepath.Join(out, "a.raw")); err != nil {
		t.Fatalf("a.raw should have been written: %v", err)
	}
}

func TestDownloadFailsWithoutFTPLocation(t *testing.T) {
	body := `[{"accession":"PXF00001","fileName":"a.raw",
		"publicFileLocations":[{"name":"Aspera Protocol","value":"fasp://host/a.raw"}]}]`
	svc, ftp := newDownloadService(t, body)

	err := svc.DownloadRawFilesFromFTP(context.Background(), "PXD008644", t.TempDir())
	if !errors.Is(err, ErrNoFTPLocation) {
		t.Fatalf("err = %v, want ErrNoFTPLocation", err)
	}
	if len(ftp.calls) != 0 {
		t.Fatalf("no transfer should have been attempted, got %d", len(ftp.calls))
	}
}

func TestDownloadFileByName(t *testing.T) {
	svc, ftp := newDownloadService(t, rawFileListBody("b.raw"))
	out := filepath.Join(t.TempDir(), "out")

	if err := svc.DownloadFileByName(context.Background(), "PXD008644", "b.raw", out); err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if len(ftp.calls) != 1 || ftp.calls[0] != filepath.Join(out, "b.raw") {
		t.Fatalf("calls = %v", ftp.calls)
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	if err := ensureDir(dir); err != nil {
		t.Fatalf("first ensureDir failed: %v", err)
	}
	// re-running with the directory pre-existing must not error
	if err := ensureDir(dir); err != nil {
		t.Fatalf("second ensureDir failed: %v", err)
	}

	file := filepath.Join(t.TempDir(), "occupied")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ensureDir(file); err == nil {
		t.Fatal("expected an error when the path is a regular file")
	}
}

type fakeS3 struct {
	objects      []config.S3File
	listedPrefix string
	keys         []string
}

func (f *fakeS3) ListFilesAll(ctx context.Context, bucket, prefix string) ([]config.S3File, error) {
	f.listedPrefix = bucket + "/" + prefix
	return f.objects, nil
}

func (f *fakeS3) DownloadFile(ctx context.Context, bucket, key, localPath string) error {
	f.keys = append(f.keys, bucket+"/"+key)
	return os.WriteFile(localPath, []byte("raw"), 0o644)
}

func (f *fakeS3) DownloadFileWithProgress(ctx context.Context, bucket, key, localPath string, hook *config.ProgressHook) error {
	return f.DownloadFile(ctx, bucket, key, localPath)
}

func s3Objects(prefix string, names ...string) []config.S3File {
	objects := make([]config.S3File, 0, len(names))
	for _, n := range names {
		objects = append(objects, config.S3File{Path: prefix + n, Name: n})
	}
	return objects
}

func TestDownloadRawFilesFromS3ResolvesKeysFromListing(t *testing.T) {
	svc, _ := newDownloadService(t, rawFileListBody("a.raw", "b.raw"))
	s3 := &fakeS3{objects: s3Objects("2018/10/PXD008644/submitted/", "a.raw", "b.raw", "extra.txt")}
	svc.s3 = s3
	svc.s3Bucket = "pride-public"
	out := filepath.Join(t.TempDir(), "out")

	if err := svc.DownloadRawFilesFromS3(context.Background(), "PXD008644", out); err != nil {
		t.Fatalf("s3 download failed: %v", err)
	}

	if s3.listedPrefix != "pride-public/2018/10/PXD008644/submitted/" {
		t.Fatalf("listed prefix = %q", s3.listedPrefix)
	}
	want := []string{
		"pride-public/2018/10/PXD008644/submitted/a.raw",
		"pride-public/2018/10/PXD008644/submitted/b.raw",
	}
	if len(s3.keys) != len(want) {
		t.Fatalf("keys = %v", s3.keys)
	}
	for i := range want {
		if s3.keys[i] != want[i] {
			t.Fatalf("key %d = %q, want %q", i, s3.keys[i], want[i])
		}
	}
}

func TestDownloadRawFilesFromS3MissingObjectAborts(t *testing.T) {
	svc, _ := newDownloadService(t, rawFileListBody("a.raw", "ghost.raw"))
	s3 := &fakeS3{objects: s3Objects("2018/10/PXD008644/submitted/", "a.raw")}
	svc.s3 = s3
	svc.s3Bucket = "pride-public"

	err := svc.DownloadRawFilesFromS3(context.Background(), "PXD008644", filepath.Join(t.TempDir(), "out"))
	if err == nil {
		t.Fatal("expected the batch to abort on an object missing from the store")
	}
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %T %v, want *TransportError", err, err)
	}
	// a.raw was transferred before the batch hit the missing object
	if len(s3.keys) != 1 {
		t.Fatalf("keys = %v, want just a.raw", s3.keys)
	}
}

func TestDownloadRawFilesFromS3Unconfigured(t *testing.T) {
	svc, _ := newDownloadService(t, rawFileListBody("a.raw"))
	if err := svc.DownloadRawFilesFromS3(context.Background(), "PXD008644", t.TempDir()); err == nil {
		t.Fatal("expected an error when s3 transport is not configured")
	}
}
