package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HTTPConfig holds shared HTTP settings for requests to the Starter API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "starter-export/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// RateLimit is the sustained request rate per second (default 5).
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`

	// MaxAttempts is the number of attempts per page (default 1, no retry).
	MaxAttempts int `json:"max_attempts" yaml:"max_attempts"`
}

// APIConfig holds settings for the retrieval stage.
type APIConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the Starter API root, without the /documents suffix.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Database is the Starter database code (default "WOS").
	Database string `json:"database" yaml:"database"`

	// APIKey is the Starter credential sent as X-ApiKey.
	APIKey string `json:"-" yaml:"-"`

	// PageSize is the number of records requested per page (default 50).
	PageSize int `json:"page_size" yaml:"page_size"`

	// MaxRecords is the result-count ceiling (default 50000).
	MaxRecords int `json:"max_records" yaml:"max_records"`
}

// WorkbookConfig holds settings for the render stage.
type WorkbookConfig struct {
	// AuthorLimit caps the number of authors written per cell.
	AuthorLimit AuthorLimit `json:"author_limit" yaml:"author_limit"`

	// WriteCSV also writes the Starter subset as <base>_full.csv.
	WriteCSV bool `json:"write_csv" yaml:"write_csv"`

	// WriteManifest also writes a <base>.yaml run manifest.
	WriteManifest bool `json:"write_manifest" yaml:"write_manifest"`

	// OutDir is the directory for auto-named output.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// OutFile, when set, is the exact workbook path.
	OutFile string `json:"out_file,omitempty" yaml:"out_file,omitempty"`
}

// ExportConfig groups all settings for one export run.
type ExportConfig struct {
	API      APIConfig      `json:"api" yaml:"api"`
	Workbook WorkbookConfig `json:"workbook" yaml:"workbook"`

	// DefaultQuery is used when neither a query nor a UT list is given.
	// Empty means one of them is required.
	DefaultQuery string `json:"default_query,omitempty" yaml:"default_query,omitempty"`
}

// AuthorLimit is the number of leading authors kept in author cells; the
// last author is always appended after an ellipsis. AllAuthors disables the
// cap.
type AuthorLimit int

// AllAuthors keeps every author.
const AllAuthors AuthorLimit = 0

// ParseAuthorLimit accepts "ALL" (any case) or a positive integer.
func ParseAuthorLimit(s string) (AuthorLimit, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "ALL") {
		return AllAuthors, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return AllAuthors, fmt.Errorf("invalid author limit %q: want a number or ALL", s)
	}
	if n <= 0 {
		return AllAuthors, nil
	}
	return AuthorLimit(n), nil
}

// String renders the limit the way it is accepted on the command line.
func (l AuthorLimit) String() string {
	if l <= AllAuthors {
		return "ALL"
	}
	return strconv.Itoa(int(l))
}

// MarshalYAML writes the limit as "ALL" or a number.
func (l AuthorLimit) MarshalYAML() (any, error) {
	return l.String(), nil
}

// UnmarshalYAML reads "ALL" or a number.
func (l *AuthorLimit) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseAuthorLimit(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}
