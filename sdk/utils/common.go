// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pride-archive/pride-cli-sdk/sdk/config"
)

func getIniPath() string {
	iniPath, err := os.UserHomeDir()
	if err != nil {
		iniPath = "."
	}
	return iniPath + string(os.PathSeparator) + IniName
}

// IniPath exposes the environment file location for callers that persist
// values back (e.g. a freshly obtained token).
func IniPath() string {
	return getIniPath()
}

// FromViper assembles the SDK config from whatever RegisterIniCfgWithViper
// loaded (INI section, env overrides, defaults).
func FromViper() config.Config {
	ftpTimeout := time.Duration(viper.GetInt(FtpTimeoutSeconds)) * time.Second

	return config.Config{
		Archive: config.ArchiveConfig{
			BaseURL:     viper.GetString(ArchiveEndpoint),
			APIVersion:  viper.GetString(ArchiveApiVersion),
			AccessToken: viper.GetString(ArchiveToken),
		},
		FTP: config.FTPConfig{
			Username: viper.GetString(FtpUser),
			Password: viper.GetString(FtpPassword),
			Timeout:  ftpTimeout,
		},
		S3: config.S3Config{
			AccessKey:   viper.GetString(AwsAccessKeyId),
			SecretKey:   viper.GetString(AwsSecretKey),
			AccessToken: viper.GetString(AwsSessionToken),
			Region:      viper.GetString(S3Region),
			EndpointURL: viper.GetString(S3Endpoint),
			Bucket:      viper.GetString(S3Bucket),
		},
	}
}

func TranslateFormat(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	default:
		return "short"
	}
}

func PrettyJSON(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b) // fall back to the raw body
	}
	return out.String()
}
