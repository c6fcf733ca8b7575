// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/pride-archive/pride-cli-sdk/sdk/services/auth"
	"github.com/pride-archive/pride-cli-sdk/sdk/services/files"
	"github.com/pride-archive/pride-cli-sdk/sdk/services/msrun"
	"github.com/pride-archive/pride-cli-sdk/sdk/services/search"
	"github.com/pride-archive/pride-cli-sdk/sdk/utils"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: pridecli <command> [flags]

Commands:
  download                  Download raw files over FTP/S3 or copy them from a shared mount
  list-files                List archive files for an accession or a paged filter query
  search-projects           Search public projects with keywords and filters
  search-protein-evidences  Search protein evidences
  search-spectra-evidences  Search spectra
  update-metadata           Push msrun metadata extracted from raw files

Run 'pridecli <command> --help' for the flags of a command.`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := utils.RegisterIniCfgWithViper(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]

	var err error
	switch cmd {
	case "download":
		err = runDownload(args)
	case "list-files":
		err = runListFiles(args)
	case "search-projects":
		err = runSearchProjects(args)
	case "search-protein-evidences":
		err = runSearchProteinEvidences(args)
	case "search-spectra-evidences":
		err = runSearchSpectraEvidences(args)
	case "update-metadata":
		err = runUpdateMetadata(args)
	case "help", "-h", "--help":
		usage()
	default:
		errorColor.Fprintf(os.Stderr, "Unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runDownload(args []string) error {
	fs := flag.NewFlagSet("download", flag.ExitOnError)
	accession := fs.StringP("accession", "a", "", "project accession")
	protocol := fs.String("protocol", "ftp", "transfer protocol: ftp or s3")
	ftpEnabled := fs.BoolP("ftp-download-enabled", "f", true, "download from FTP; otherwise copy from the file system")
	fileName := fs.StringP("file-name", "n", "", "single file to download instead of the whole RAW set")
	inputFolder := fs.StringP("input-folder", "i", "", "shared mount base directory (copy mode)")
	outputFolder := fs.StringP("output-folder", "o", "", "output folder for downloaded files")
	quiet := fs.BoolP("quiet", "q", false, "suppress the progress line")
	_ = fs.Parse(args)

	if *accession == "" {
		return fmt.Errorf("--accession is required")
	}

	ctx := context.Background()
	svc, err := files.NewFileService(ctx, utils.FromViper())
	if err != nil {
		return err
	}
	svc.Quiet = *quiet

	switch {
	case !*ftpEnabled:
		if *inputFolder == "" {
			return fmt.Errorf("--input-folder is required when copying from the file system")
		}
		utils.Infof("Data will be copied from file system %s", *inputFolder)
		if *fileName != "" {
			err = svc.CopyFileByName(ctx, *accession, *fileName, *inputFolder)
		} else {
			err = svc.CopyRawFilesFromDir(ctx, *accession, *inputFolder)
		}
	case *protocol == "s3":
		if *outputFolder == "" {
			return fmt.Errorf("--output-folder is required")
		}
		utils.Infof("Data will be downloaded from S3")
		err = svc.DownloadRawFilesFromS3(ctx, *accession, *outputFolder)
	default:
		if *outputFolder == "" {
			return fmt.Errorf("--output-folder is required")
		}
		utils.Infof("Data will be downloaded from FTP")
		if *fileName != "" {
			err = svc.DownloadFileByName(ctx, *accession, *fileName, *outputFolder)
		} else {
			err = svc.DownloadRawFilesFromFTP(ctx, *accession, *outputFolder)
		}
	}
	if err != nil {
		return err
	}

	successColor.Printf("Done: %s\n", *accession)
	return nil
}

func runListFiles(args []string) error {
	fs := flag.NewFlagSet("list-files", flag.ExitOnError)
	accession := fs.StringP("accession", "a", "", "project accession (RAW file listing)")
	filter := fs.StringP("filter", "f", "", "filter, e.g. fileCategory.value==RAW")
	pageSize := fs.Int("page-size", 100, "number of results per page")
	page := fs.Int("page", 0, "page of results to fetch")
	sortDirection := fs.String("sort-direction", "DESC", "ASC or DESC")
	sortConditions := fs.String("sort-conditions", "submissionDate", "comma-separated sort fields")
	output := fs.StringP("output", "o", "short", "output format: short, json or yaml")
	_ = fs.Parse(args)

	ctx := context.Background()
	svc, err := files.NewFileService(ctx, utils.FromViper())
	if err != nil {
		return err
	}

	if *accession != "" {
		records, err := svc.ListRawFiles(ctx, *accession)
		if err != nil {
			return err
		}
		return renderRecords(records, *output)
	}

	body, err := svc.ListFilesPaged(ctx, files.ListRequest{
		Filter:         *filter,
		PageSize:       *pageSize,
		Page:           *page,
		SortDirection:  *sortDirection,
		SortConditions: *sortConditions,
	})
	if err != nil {
		return err
	}
	return printBody(body, *output)
}

func runSearchProjects(args []string) error {
	fs := flag.NewFlagSet("search-projects", flag.ExitOnError)
	keyword := fs.StringP("keywords", "k", "", "free-text search, *:* structure")
	filter := fs.StringP("filters", "f", "", "field1==value1,field2==value2")
	pageSize := fs.Int("page-size", search.DefaultPageSize, "number of results per page")
	page := fs.Int("page", 0, "page of results to fetch")
	dateGap := fs.String("date-gap", "", "date range gap, e.g. +1MONTH, +1YEAR")
	sortDirection := fs.String("sort-direction", search.DefaultSortDirection, "ASC or DESC")
	sortFields := fs.String("sort-fields", search.DefaultProjectSort, "comma-separated sort fields")
	output := fs.StringP("output", "o", "json", "output format: json or yaml")
	_ = fs.Parse(args)

	ctx := context.Background()
	svc, err := search.NewSearchService(ctx, utils.FromViper())
	if err != nil {
		return err
	}

	body, err := svc.Projects(ctx, search.ProjectsRequest{
		PageRequest: search.PageRequest{
			PageSize:      *pageSize,
			Page:          *page,
			SortDirection: *sortDirection,
		},
		Keyword:    *keyword,
		Filter:     *filter,
		DateGap:    *dateGap,
		SortFields: *sortFields,
	})
	if err != nil {
		return err
	}
	return printBody(body, *output)
}

func runSearchProteinEvidences(args []string) error {
	fs := flag.NewFlagSet("search-protein-evidences", flag.ExitOnError)
	projectAccession := fs.String("project-accession", "", "project accession")
	assayAccession := fs.String("assay-accession", "", "assay accession")
	reportedAccession := fs.String("reported-accession", "", "reported accession")
	pageSize := fs.Int("page-size", search.DefaultPageSize, "number of results per page")
	page := fs.Int("page", 0, "page of results to fetch")
	sortDirection := fs.String("sort-direction", search.DefaultSortDirection, "ASC or DESC")
	sortConditions := fs.String("sort-conditions", search.DefaultEvidenceSort, "comma-separated sort fields")
	output := fs.StringP("output", "o", "json", "output format: json or yaml")
	_ = fs.Parse(args)

	ctx := context.Background()
	svc, err := search.NewSearchService(ctx, utils.FromViper())
	if err != nil {
		return err
	}

	body, err := svc.ProteinEvidences(ctx, search.ProteinEvidencesRequest{
		PageRequest: search.PageRequest{
			PageSize:      *pageSize,
			Page:          *page,
			SortDirection: *sortDirection,
		},
		ProjectAccession:  *projectAccession,
		AssayAccession:    *assayAccession,
		ReportedAccession: *reportedAccession,
		SortConditions:    *sortConditions,
	})
	if err != nil {
		return err
	}
	return printBody(body, *output)
}

func runSearchSpectraEvidences(args []string) error {
	fs := flag.NewFlagSet("search-spectra-evidences", flag.ExitOnError)
	usi := fs.StringSlice("usi", nil, "universal spectrum identifier, repeatable")
	projectAccession := fs.String("project-accession", "", "project accession")
	assayAccession := fs.String("assay-accession", "", "assay accession")
	peptideSequence := fs.String("peptide-sequence", "", "peptide sequence")
	modifiedSequence := fs.String("modified-sequence", "", "modified peptide sequence")
	resultType := fs.String("result-type", search.DefaultSpectraResult, "COMPACT or FULL")
	pageSize := fs.Int("page-size", search.DefaultPageSize, "number of results per page")
	page := fs.Int("page", 0, "page of results to fetch")
	sortDirection := fs.String("sort-direction", search.DefaultSortDirection, "ASC or DESC")
	sortConditions := fs.String("sort-conditions", search.DefaultEvidenceSort, "comma-separated sort fields")
	output := fs.StringP("output", "o", "json", "output format: json or yaml")
	_ = fs.Parse(args)

	ctx := context.Background()
	svc, err := search.NewSearchService(ctx, utils.FromViper())
	if err != nil {
		return err
	}

	body, err := svc.SpectraEvidences(ctx, search.SpectraEvidencesRequest{
		PageRequest: search.PageRequest{
			PageSize:      *pageSize,
			Page:          *page,
			SortDirection: *sortDirection,
		},
		Usi:              *usi,
		ProjectAccession: *projectAccession,
		AssayAccession:   *assayAccession,
		PeptideSequence:  *peptideSequence,
		ModifiedSequence: *modifiedSequence,
		ResultType:       *resultType,
		SortConditions:   *sortConditions,
	})
	if err != nil {
		return err
	}
	return printBody(body, *output)
}

func runUpdateMetadata(args []string) error {
	fs := flag.NewFlagSet("update-metadata", flag.ExitOnError)
	fileName := fs.StringP("filename", "f", "", "metadata file (JSON or YAML)")
	username := fs.StringP("username", "u", "", "archive account username")
	password := fs.StringP("password", "p", "", "archive account password")
	_ = fs.Parse(args)

	if *fileName == "" || *username == "" || *password == "" {
		return fmt.Errorf("--filename, --username and --password are required")
	}

	ctx := context.Background()
	conf := utils.FromViper()

	authSvc, err := auth.NewAuthService(ctx, conf)
	if err != nil {
		return err
	}
	token, err := authSvc.GetToken(ctx, *username, *password)
	if err != nil {
		return err
	}

	conf.Archive.AccessToken = token
	msrunSvc, err := msrun.NewMsRunService(ctx, conf)
	if err != nil {
		return err
	}
	if err := msrunSvc.UpdateMetadata(ctx, *fileName); err != nil {
		return err
	}

	// keep the token around for later runs
	viper.Set(utils.ArchiveToken, token)
	if err := utils.UpdateIniFromStruct(utils.IniPath(), viper.GetString(utils.CurrentEnvironment)); err != nil {
		utils.Warnf("could not persist token: %v", err)
	}

	successColor.Println("Metadata updated")
	return nil
}

func printBody(body []byte, format string) error {
	if utils.TranslateFormat(format) == "yaml" {
		y, err := yaml.JSONToYAML(body)
		if err != nil {
			return err
		}
		fmt.Print(string(y))
		return nil
	}
	fmt.Println(utils.PrettyJSON(body))
	return nil
}
