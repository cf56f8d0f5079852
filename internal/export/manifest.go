// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/starter-export/internal/wos"
	"github.com/pdiddy/starter-export/pkg/types"
)

// manifestVersion is bumped when the manifest layout changes.
const manifestVersion = 1

// Manifest is the on-disk record of one export run. It stores the request
// and effective settings so the run can be repeated with --from-manifest.
// The API key is never written.
type Manifest struct {
	Version  int                  `yaml:"version"`
	Request  wos.Request          `yaml:"request"`
	API      types.APIConfig      `yaml:"api"`
	Workbook types.WorkbookConfig `yaml:"workbook"`
	Outputs  ManifestOutputs      `yaml:"outputs"`
	Summary  types.Summary        `yaml:"summary"`
}

// ManifestOutputs lists the files a run produced.
type ManifestOutputs struct {
	Workbook string `yaml:"workbook"`
	CSV      string `yaml:"csv,omitempty"`
}

// WriteManifest saves m to path as YAML.
func WriteManifest(path string, m *Manifest) error {
	if m.Version == 0 {
		m.Version = manifestVersion
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if m.Version > manifestVersion {
		return nil, fmt.Errorf("manifest %s has version %d, newest supported is %d", path, m.Version, manifestVersion)
	}
	return &m, nil
}

// ToRequest returns the stored request, checking that it selects records.
func (m *Manifest) ToRequest() (wos.Request, error) {
	if _, err := m.Request.Text(); err != nil {
		return wos.Request{}, fmt.Errorf("manifest request: %w", err)
	}
	return m.Request, nil
}
