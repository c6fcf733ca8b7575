// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"

	"github.com/pride-archive/pride-cli-sdk/sdk/services/files"
	"github.com/pride-archive/pride-cli-sdk/sdk/utils"
)

// renderRecords prints file records as a table unless a machine format was
// asked for.
func renderRecords(records []files.FileRecord, format string) error {
	if f := utils.TranslateFormat(format); f != "short" {
		body, err := json.Marshal(records)
		if err != nil {
			return err
		}
		return printBody(body, f)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Accession", "File", "Category", "FTP Location")

	for _, rec := range records {
		loc, err := rec.FTPLocation()
		if err != nil {
			loc = "-"
		}
		table.Append([]string{rec.Accession, rec.FileName, rec.FileCategory.Value, loc})
	}

	if err := table.Render(); err != nil {
		return err
	}
	fmt.Printf("%d file(s)\n", len(records))
	return nil
}
