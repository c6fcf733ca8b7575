// SPDX-FileCopyrightText: © 2026 PRIDE Archive Team - EMBL-EBI
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bytes"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// Config holds all logical keys. Tags:
// - vkey: Viper key
// - env: canonical env name (UPPER_SNAKE). If empty, derived from vkey
// - persist: "true" to write the key into the INI
// - default: optional default to set if key is unset
// - secret: "true" if sensitive
type Config struct {
	ArchiveEndpoint   string `vkey:"pride_archive_endpoint"    env:"PRIDE_ARCHIVE_ENDPOINT"    persist:"true" default:"https://www.ebi.ac.uk/pride/ws/archive"`
	ArchiveApiVersion string `vkey:"pride_archive_api_version" env:"PRIDE_ARCHIVE_API_VERSION" persist:"true" default:"v2"`
	ArchiveUser       string `vkey:"pride_archive_user"        env:"PRIDE_ARCHIVE_USER"        persist:"true"`
	ArchivePassword   string `vkey:"pride_archive_password"    env:"PRIDE_ARCHIVE_PASSWORD"    persist:"true" secret:"true"`
	ArchiveToken      string `vkey:"pride_archive_access_token" env:"PRIDE_ARCHIVE_ACCESS_TOKEN" persist:"true" secret:"true"`
	Debug             string `vkey:"pride_debug"               env:"PRIDE_DEBUG"               persist:"false"`

	FtpUser           string `vkey:"pride_ftp_user"            env:"PRIDE_FTP_USER"            persist:"true"`
	FtpPassword       string `vkey:"pride_ftp_password"        env:"PRIDE_FTP_PASSWORD"        persist:"true" secret:"true"`
	FtpTimeoutSeconds string `vkey:"pride_ftp_timeout_seconds" env:"PRIDE_FTP_TIMEOUT_SECONDS" persist:"true"`

	S3Endpoint      string `vkey:"pride_s3_endpoint"      env:"PRIDE_S3_ENDPOINT"      persist:"true" default:"https://hh.fire.sdo.ebi.ac.uk"`
	S3Bucket        string `vkey:"pride_s3_bucket"        env:"PRIDE_S3_BUCKET"        persist:"true" default:"pride-public"`
	S3Region        string `vkey:"pride_s3_region"        env:"PRIDE_S3_REGION"        persist:"true" default:"us-east-1"`
	AwsAccessKeyId  string `vkey:"aws_access_key_id"      env:"AWS_ACCESS_KEY_ID"      persist:"true" secret:"true"`
	AwsSecretKey    string `vkey:"aws_secret_access_key"  env:"AWS_SECRET_ACCESS_KEY"  persist:"true" secret:"true"`
	AwsSessionToken string `vkey:"aws_session_token"      env:"AWS_SESSION_TOKEN"      persist:"true" secret:"true"`
}

// resolveEnvName: --env > "default"
func resolveEnvName(optionalEnv ...string) string {
	if len(optionalEnv) > 0 && optionalEnv[0] != "" && strings.ToLower(optionalEnv[0]) != "null" {
		return optionalEnv[0]
	}
	return "default"
}

// Bind env for all fields of Config using struct tags.
func BindEnvFromStruct() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	rt := reflect.TypeOf(Config{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)

		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}

		env := f.Tag.Get("env")
		if env == "" {
			env = strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
		_ = viper.BindEnv(key, env)

		if def := f.Tag.Get("default"); def != "" && !viper.IsSet(key) {
			viper.SetDefault(key, def)
		}
	}
}

// Write a new INI with only fields marked persist:"true".
func WriteIniFromStruct(iniPath, envName string) error {
	cfg := ini.Empty()
	cfg.Section("DEFAULT").Key("current_environment").SetValue(envName)
	sec := cfg.Section(envName)

	rt := reflect.TypeOf(Config{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Tag.Get("persist") != "true" {
			continue
		}
		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}
		val := viper.GetString(key)
		if val == "" {
			continue
		}
		sec.Key(key).SetValue(val)
	}

	return cfg.SaveTo(iniPath)
}

// Update or create INI section from current Viper values (persist:"true" only).
func UpdateIniFromStruct(iniPath, envName string) error {
	cfg, err := ini.Load(iniPath)
	if err != nil {
		return WriteIniFromStruct(iniPath, envName)
	}
	sec := cfg.Section(envName)

	rt := reflect.TypeOf(Config{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Tag.Get("persist") != "true" {
			continue
		}
		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}
		val := viper.GetString(key)
		if val == "" {
			continue
		}
		sec.Key(key).SetValue(val)
	}

	if !cfg.Section("DEFAULT").HasKey("current_environment") {
		cfg.Section("DEFAULT").Key("current_environment").SetValue(envName)
	}
	sec.Key(UpdatedEnvKey).SetValue(time.Now().UTC().Format(time.RFC3339))
	return cfg.SaveTo(iniPath)
}

// Load [DEFAULT] + [env] into Viper (TOML in-memory). ENV can still override on Get().
func loadIniSectionIntoViper(cfg *ini.File, env string) error {
	def := cfg.Section("DEFAULT")
	selected := def
	if env != "" && cfg.HasSection(env) {
		selected = cfg.Section(env)
	}

	merged := make(map[string]string)
	for _, k := range def.Keys() {
		merged[k.Name()] = k.Value()
	}
	if selected != nil && selected != def {
		for _, k := range selected.Keys() {
			merged[k.Name()] = k.Value()
		}
	}

	var buf bytes.Buffer
	for k, v := range merged {
		vSafe := strings.ReplaceAll(strings.ReplaceAll(v, `\`, `\\`), `"`, `\"`)
		_, _ = fmt.Fprintf(&buf, "%s = \"%s\"\n", k, vSafe)
	}
	viper.SetConfigType("toml")
	return viper.ReadConfig(&buf)
}

// RegisterIniCfgWithViper:
// 1) bind ENV from struct (live)
// 2) load INI or bootstrap it from env variables
// 3) load active section into Viper and set current_environment
func RegisterIniCfgWithViper(optionalEnv ...string) error {
	iniPath := getIniPath()

	BindEnvFromStruct()

	cfg, err := ini.Load(iniPath)
	if err != nil {
		envName, bootErr := bootstrapFromEnv(iniPath, optionalEnv...)
		if bootErr != nil {
			// ENV-only mode: defaults and env bindings still apply
			if envName == "" {
				envName = resolveEnvName(optionalEnv...)
			}
			viper.Set(CurrentEnvironment, envName)
			return nil
		}
		cfg, err = ini.Load(iniPath)
		if err != nil {
			viper.Set(CurrentEnvironment, viper.GetString(CurrentEnvironment))
			return nil
		}
	}

	// active env: --env > DEFAULT.current_environment > default
	env := resolveEnvName(optionalEnv...)
	if env == "default" {
		if v := cfg.Section("DEFAULT").Key("current_environment").String(); v != "" {
			env = v
		}
	}

	if err := loadIniSectionIntoViper(cfg, env); err != nil {
		return fmt.Errorf("failed to load INI into viper: %w", err)
	}
	viper.Set(CurrentEnvironment, env)
	return nil
}

// Bootstrap (when the INI is missing): read all variables from OS envs using
// the Config struct tags and persist them.
func bootstrapFromEnv(iniPath string, optionalEnv ...string) (string, error) {
	rt := reflect.TypeOf(Config{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)

		vkey := f.Tag.Get("vkey")
		if vkey == "" {
			continue
		}

		envName := f.Tag.Get("env")
		if envName == "" {
			envName = strings.ToUpper(strings.ReplaceAll(vkey, ".", "_"))
		}

		if val, ok := os.LookupEnv(envName); ok {
			viper.Set(vkey, val)
			continue
		}

		if def := f.Tag.Get("default"); def != "" && !viper.IsSet(vkey) {
			viper.SetDefault(vkey, def)
		}
	}

	envName := resolveEnvName(optionalEnv...)
	viper.Set(CurrentEnvironment, envName)

	// mark the source so later updates know this was env-constructed
	viper.Set(IniSource, "env")

	if err := WriteIniFromStruct(iniPath, envName); err != nil {
		return "", fmt.Errorf("write ini failed: %w", err)
	}

	if _, err := ini.Load(iniPath); err != nil {
		return "", fmt.Errorf("ini written but cannot reload: %w", err)
	}

	return envName, nil
}
