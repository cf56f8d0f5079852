// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/starter-export/internal/httputil"
	"github.com/pdiddy/starter-export/internal/wos"
	"github.com/pdiddy/starter-export/pkg/types"
)

// Config keys. With the STARTER_ env prefix, "apikey" reads STARTER_APIKEY
// and "author_limit" reads STARTER_AUTHOR_LIMIT.
const (
	keyAPIKey        = "apikey"
	keyBaseURL       = "base_url"
	keyDatabase      = "database"
	keyPageSize      = "page_size"
	keyMaxRecords    = "max_records"
	keyTimeout       = "timeout"
	keyRateLimit     = "rate_limit"
	keyMaxAttempts   = "max_attempts"
	keyUserAgent     = "user_agent"
	keyAuthorLimit   = "author_limit"
	keyWriteCSV      = "write_csv"
	keyWriteManifest = "write_manifest"
	keyOutDir        = "outdir"
	keyDefaultQuery  = "default_query"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyBaseURL, wos.DefaultBaseURL)
	v.SetDefault(keyDatabase, wos.DefaultDatabase)
	v.SetDefault(keyPageSize, wos.PageSize)
	v.SetDefault(keyMaxRecords, wos.MaxRecords)
	v.SetDefault(keyTimeout, httputil.DefaultTimeout)
	v.SetDefault(keyRateLimit, httputil.DefaultRateLimit)
	v.SetDefault(keyMaxAttempts, 1)
	v.SetDefault(keyUserAgent, appName+"/"+version)
	v.SetDefault(keyAuthorLimit, "ALL")
	v.SetDefault(keyWriteCSV, false)
	v.SetDefault(keyWriteManifest, false)
	v.SetDefault(keyOutDir, ".")
	v.SetDefault(keyDefaultQuery, "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// switchOn lists the spellings that turn a switch on, in any case.
// Anything else, including ParseBool forms like "t", is off.
var switchOn = []string{"1", "true", "yes", "on"}

// getSwitch reads an on/off key. Flags and YAML booleans arrive as
// "true"/"false"; env values use the switchOn vocabulary.
func getSwitch(v *viper.Viper, key string) bool {
	return slices.Contains(switchOn, strings.ToLower(strings.TrimSpace(v.GetString(key))))
}

// loadConfig materialises v into an ExportConfig and validates it.
func loadConfig(v *viper.Viper) (types.ExportConfig, error) {
	limit, err := types.ParseAuthorLimit(v.GetString(keyAuthorLimit))
	if err != nil {
		return types.ExportConfig{}, err
	}

	cfg := types.ExportConfig{
		API: types.APIConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:     v.GetDuration(keyTimeout),
				UserAgent:   v.GetString(keyUserAgent),
				RateLimit:   v.GetFloat64(keyRateLimit),
				MaxAttempts: v.GetInt(keyMaxAttempts),
			},
			BaseURL:    v.GetString(keyBaseURL),
			Database:   v.GetString(keyDatabase),
			APIKey:     v.GetString(keyAPIKey),
			PageSize:   v.GetInt(keyPageSize),
			MaxRecords: v.GetInt(keyMaxRecords),
		},
		Workbook: types.WorkbookConfig{
			AuthorLimit:   limit,
			WriteCSV:      getSwitch(v, keyWriteCSV),
			WriteManifest: getSwitch(v, keyWriteManifest),
			OutDir:        v.GetString(keyOutDir),
		},
		DefaultQuery: v.GetString(keyDefaultQuery),
	}

	switch {
	case cfg.API.PageSize < 1 || cfg.API.PageSize > wos.PageSize:
		return cfg, fmt.Errorf("%s must be between 1 and %d, got %d", keyPageSize, wos.PageSize, cfg.API.PageSize)
	case cfg.API.MaxRecords < 1:
		return cfg, fmt.Errorf("%s must be positive, got %d", keyMaxRecords, cfg.API.MaxRecords)
	case cfg.API.Timeout < time.Second:
		return cfg, fmt.Errorf("%s must be at least 1s, got %s", keyTimeout, cfg.API.Timeout)
	case cfg.API.MaxAttempts < 1:
		return cfg, fmt.Errorf("%s must be at least 1, got %d", keyMaxAttempts, cfg.API.MaxAttempts)
	}
	return cfg, nil
}
