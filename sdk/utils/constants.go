// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package utils

const (
	IniName            = ".pride.ini"
	IniSource          = "ini_source"
	CurrentEnvironment = "current_environment"
	UpdatedEnvKey      = "updated_environment"

	ArchiveEndpoint   = "pride_archive_endpoint"
	ArchiveApiVersion = "pride_archive_api_version"
	ArchiveUser       = "pride_archive_user"
	ArchivePassword   = "pride_archive_password"
	ArchiveToken      = "pride_archive_access_token"
	DebugKey          = "pride_debug"

	FtpUser           = "pride_ftp_user"
	FtpPassword       = "pride_ftp_password"
	FtpTimeoutSeconds = "pride_ftp_timeout_seconds"

	S3Endpoint      = "pride_s3_endpoint"
	S3Bucket        = "pride_s3_bucket"
	S3Region        = "pride_s3_region"
	AwsAccessKeyId  = "aws_access_key_id"
	AwsSecretKey    = "aws_secret_access_key"
	AwsSessionToken = "aws_session_token"

	// Public archive defaults; every one of them can be overridden through
	// the INI or the matching environment variable.
	DefaultArchiveEndpoint   = "https://www.ebi.ac.uk/pride/ws/archive"
	DefaultArchiveApiVersion = "v2"
	DefaultS3Endpoint        = "https://hh.fire.sdo.ebi.ac.uk"
	DefaultS3Bucket          = "pride-public"
	DefaultS3Region          = "us-east-1"
)
