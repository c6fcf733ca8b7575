// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pride-archive/pride-cli-sdk/sdk/utils"
)

// DownloadRawFilesFromFTP downloads every RAW file of the accession over FTP
// into outputFolder. A failed transfer aborts the batch and leaves whatever
// partially arrived; there is no retry and no existing-file check.
func (s *FileService) DownloadRawFilesFromFTP(ctx context.Context, accession, outputFolder string) error {
	if err := ensureDir(outputFolder); err != nil {
		return &LocalIOError{Err: err}
	}

	records, err := s.ListRawFiles(ctx, accession)
	if err != nil {
		return err
	}

	return s.downloadRecordsFromFTP(ctx, records, outputFolder)
}

// DownloadFileByName downloads a single named file of the accession over FTP.
func (s *FileService) DownloadFileByName(ctx context.Context, accession, fileName, outputFolder string) error {
	if err := ensureDir(outputFolder); err != nil {
		return &LocalIOError{Err: err}
	}

	records, err := s.GetFileByName(ctx, accession, fileName)
	if err != nil {
		return err
	}

	return s.downloadRecordsFromFTP(ctx, records, outputFolder)
}

func (s *FileService) downloadRecordsFromFTP(ctx context.Context, records []FileRecord, outputFolder string) error {
	for _, rec := range records {
		loc, err := rec.FTPLocation()
		if err != nil {
			return err
		}
		utils.Debugf("ftp filepath: %s", loc)

		name := filenameFromURI(loc)
		utils.Debugf("%s -> %s", rec.Accession, name)

		target := filepath.Join(outputFolder, name)
		if err := s.ftp.RetrieveURI(ctx, loc, target, utils.ConsoleProgressHook(s.Quiet)); err != nil {
			return &TransportError{Err: err}
		}
	}
	return nil
}

// DownloadRawFilesFromS3 downloads every RAW file of the accession from the
// FIRE object store, which mirrors the archive layout under
// <yyyy/mm/accession>/submitted/. Object keys are resolved by listing that
// prefix in the bucket, so a record the store does not actually hold fails
// up front instead of mid-transfer. Same batch semantics as the FTP path.
func (s *FileService) DownloadRawFilesFromS3(ctx context.Context, accession, outputFolder string) error {
	if s.s3 == nil {
		return errors.New("s3 transport not configured")
	}

	if err := ensureDir(outputFolder); err != nil {
		return &LocalIOError{Err: err}
	}

	fragment, err := s.SubmittedPathFragment(ctx, accession)
	if err != nil {
		return err
	}
	prefix := fragment + "/" + submittedDirName + "/"

	objects, err := s.s3.ListFilesAll(ctx, s.s3Bucket, prefix)
	if err != nil {
		return &TransportError{Err: err}
	}
	keysByName := make(map[string]string, len(objects))
	for _, obj := range objects {
		keysByName[obj.Name] = obj.Path
	}

	records, err := s.ListRawFiles(ctx, accession)
	if err != nil {
		return err
	}

	for _, rec := range records {
		loc, err := rec.FTPLocation()
		if err != nil {
			return err
		}
		name := filenameFromURI(loc)

		key, ok := keysByName[name]
		if !ok {
			return &TransportError{Err: fmt.Errorf("object %s not found under %s", name, prefix)}
		}
		utils.Debugf("s3 key: %s", key)

		target := filepath.Join(outputFolder, name)
		if s.Quiet {
			err = s.s3.DownloadFile(ctx, s.s3Bucket, key, target)
		} else {
			err = s.s3.DownloadFileWithProgress(ctx, s.s3Bucket, key, target, utils.ConsoleProgressHook(false))
		}
		if err != nil {
			return &TransportError{Err: err}
		}
	}
	return nil
}

// ensureDir creates the output directory only when absent; a pre-existing
// directory is fine, anything else in its place is not.
func ensureDir(dir string) error {
	st, err := os.Stat(dir)
	if err == nil {
		if !st.IsDir() {
			return fmt.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.Mkdir(dir, 0o755)
}
