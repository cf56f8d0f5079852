// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves the Starter API key. The key may come from the
// environment (optionally seeded from a .env file) or from a directory of
// plain-text secret files, where each file name is a key name and the
// trimmed contents are its value.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	// EnvAPIKey is the environment variable holding the Starter API key.
	EnvAPIKey = "STARTER_APIKEY"

	// APIKeyFile is the secret file name read from the secrets directory.
	APIKeyFile = "starter-apikey"

	// DefaultDir is the secrets directory relative to the working directory.
	DefaultDir = ".secrets"
)

// ErrMissingAPIKey is returned when no source supplies a key.
var ErrMissingAPIKey = errors.New("missing API key: set STARTER_APIKEY in .env or pass -k/--key")

// LoadDotEnv seeds the process environment from the given .env files
// (default ".env"). Variables already set are not overridden and missing
// files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads all files in dir and returns a map of file name to trimmed
// contents. A missing directory is not an error. Unreadable files are
// logged and skipped.
func Load(dir string, logger zerolog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logger.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}
	return secrets, nil
}

// APIKey returns configured when it is non-empty, otherwise the
// starter-apikey file from dir.
func APIKey(configured, dir string, logger zerolog.Logger) (string, error) {
	if key := strings.TrimSpace(configured); key != "" {
		return key, nil
	}
	loaded, err := Load(dir, logger)
	if err != nil {
		return "", err
	}
	if key := loaded[APIKeyFile]; key != "" {
		logger.Debug().Str("dir", dir).Msg("using API key from secrets directory")
		return key, nil
	}
	return "", ErrMissingAPIKey
}
