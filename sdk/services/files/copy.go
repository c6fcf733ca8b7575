// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/pride-archive/pride-cli-sdk/sdk/utils"
)

// Public data is disseminated as base/path/ + yyyy/mm/accession/ + submitted/.
const submittedDirName = "submitted"

var submittedPathPattern = regexp.MustCompile(`\d{4}/\d{2}/PXD\d*`)

// SubmittedPathFragment extracts the yyyy/mm/accession fragment by examining
// the public location of the accession's first RAW file, e.g.
// ftp://ftp.pride.ebi.ac.uk/pride/data/archive/2018/10/PXD008644/7550GI_Y.raw
// yields "2018/10/PXD008644".
func (s *FileService) SubmittedPathFragment(ctx context.Context, accession string) (string, error) {
	records, err := s.ListRawFiles(ctx, accession)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoRecords, accession)
	}

	locs := records[0].PublicFileLocations
	if len(locs) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoFTPLocation, accession)
	}

	fragment := submittedPathPattern.FindString(locs[0].Value)
	if fragment == "" {
		return "", fmt.Errorf("%w: %q", ErrNoPathFragment, locs[0].Value)
	}
	return fragment, nil
}

// CopyRawFilesFromDir copies the accession's RAW files out of a shared mount
// laid out as sourceBaseDir/yyyy/mm/accession/submitted/. Each copy lands in
// the current working directory as <accession>-<filename>. Files the archive
// knows about but the mount does not are logged and skipped.
func (s *FileService) CopyRawFilesFromDir(ctx context.Context, accession, sourceBaseDir string) error {
	fragment, err := s.SubmittedPathFragment(ctx, accession)
	if err != nil {
		return err
	}
	sourceDir := filepath.Join(sourceBaseDir, filepath.FromSlash(fragment), submittedDirName)

	if st, err := os.Stat(sourceDir); err != nil || !st.IsDir() {
		utils.Warnf("folder does not exist! %s", sourceDir)
	}

	localNames, err := listMatchingFilenames(sourceDir, "*.raw")
	if err != nil {
		return &LocalIOError{Err: err}
	}

	records, err := s.ListRawFiles(ctx, accession)
	if err != nil {
		return err
	}

	return copyFromDir(sourceDir, localNames, records)
}

// CopyFileByName is CopyRawFilesFromDir restricted to one file, matched by
// glob rather than exact listing.
func (s *FileService) CopyFileByName(ctx context.Context, accession, fileName, inputFolder string) error {
	fragment, err := s.SubmittedPathFragment(ctx, accession)
	if err != nil {
		return err
	}
	sourceDir := filepath.Join(inputFolder, filepath.FromSlash(fragment), submittedDirName)

	if st, err := os.Stat(sourceDir); err != nil || !st.IsDir() {
		utils.Warnf("folder does not exist! %s", sourceDir)
	}

	localNames, err := listMatchingFilenames(sourceDir, fileName)
	if err != nil {
		return &LocalIOError{Err: err}
	}

	records, err := s.GetFileByName(ctx, accession, fileName)
	if err != nil {
		return err
	}

	return copyFromDir(sourceDir, localNames, records)
}

// copyFromDir intersects the archive's records with what is actually present
// in sourceDir. Records without a local counterpart are logged, not fatal.
func copyFromDir(sourceDir string, localNames []string, records []FileRecord) error {
	for _, rec := range records {
		loc, err := rec.FTPLocation()
		if err != nil {
			utils.Warnf("%v", err)
			continue
		}
		name := filenameFromURI(loc)

		if !slices.Contains(localNames, name) {
			utils.Warnf("%s not found in %s", name, sourceDir)
			continue
		}

		source := filepath.Join(sourceDir, name)
		destination := rec.Accession + "-" + name
		if err := copyFile(source, destination); err != nil {
			return &LocalIOError{Err: err}
		}
	}
	return nil
}

func copyFile(source, destination string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(destination)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func listMatchingFilenames(location, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(location, pattern))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		utils.Debugf("found file: %s", m)
		names = append(names, filepath.Base(m))
	}
	return names, nil
}
