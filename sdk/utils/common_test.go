// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestTranslateFormat(t *testing.T) {
	cases := map[string]string{
		"json":  "json",
		"JSON":  "json",
		"yaml":  "yaml",
		"yml":   "yaml",
		"short": "short",
		"":      "short",
		"csv":   "short",
	}
	for in, want := range cases {
		if got := TranslateFormat(in); got != want {
			t.Errorf("TranslateFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPrettyJSON(t *testing.T) {
	got := PrettyJSON([]byte(`{"a":1}`))
	want := "{\n  \"a\": 1\n}"
	if got != want {
		t.Fatalf("PrettyJSON = %q, want %q", got, want)
	}

	// non-JSON bodies come back untouched
	if got := PrettyJSON([]byte("not json")); got != "not json" {
		t.Fatalf("PrettyJSON fallback = %q", got)
	}
}

func TestFromViper(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set(ArchiveEndpoint, "https://mock.example.org/archive")
	viper.Set(ArchiveApiVersion, "v2")
	viper.Set(ArchiveToken, "tok123")
	viper.Set(FtpUser, "anonymous")
	viper.Set(FtpTimeoutSeconds, "45")
	viper.Set(S3Endpoint, "https://s3.example.org")
	viper.Set(S3Bucket, "pride-public")

	cfg := FromViper()

	if cfg.Archive.BaseURL != "https://mock.example.org/archive" {
		t.Fatalf("archive base = %q", cfg.Archive.BaseURL)
	}
	if cfg.Archive.AccessToken != "tok123" {
		t.Fatalf("token = %q", cfg.Archive.AccessToken)
	}
	if cfg.FTP.Timeout != 45*time.Second {
		t.Fatalf("ftp timeout = %v", cfg.FTP.Timeout)
	}
	if cfg.S3.Bucket != "pride-public" || cfg.S3.EndpointURL != "https://s3.example.org" {
		t.Fatalf("s3 config = %+v", cfg.S3)
	}
}
