// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package config

import "time"

// Config passed into the SDK services (no viper/INI at this level)
type Config struct {
	Archive ArchiveConfig
	FTP     FTPConfig
	S3      S3Config
}

type ArchiveConfig struct {
	BaseURL     string // e.g. https://www.ebi.ac.uk/pride/ws/archive
	APIVersion  string // e.g. v2
	AccessToken string // required only for metadata updates
}

type FTPConfig struct {
	Username string // empty means anonymous
	Password string
	Timeout  time.Duration
}

type S3Config struct {
	AccessKey   string
	SecretKey   string
	AccessToken string
	Region      string
	EndpointURL string
	Bucket      string
}
