// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"path/filepath"
	"testing"
	"time"
)

func TestAutoFileName(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		query string
		want  string
	}{
		{"TS=(pie)", "WOSExcelStarter_TSpie_20250102_030405.xlsx"},
		{"AU=Smith AND PY=2020", "WOSExcelStarter_AUSmith_AND_PY2020_20250102_030405.xlsx"},
		{"TS=(very long query text that goes on)", "WOSExcelStarter_TSvery_long_query_te_20250102_030405.xlsx"},
		{"UT=(WOS:1 WOS:2)", "WOSExcelStarter_UTWOS1_WOS2_20250102_030405.xlsx"},
		{"TI=Größe", "WOSExcelStarter_TIGröße_20250102_030405.xlsx"},
		{"=()", "WOSExcelStarter_query_20250102_030405.xlsx"},
	}
	for _, tt := range tests {
		if got := AutoFileName(tt.query, "out", at); got != filepath.Join("out", tt.want) {
			t.Errorf("AutoFileName(%q) = %q, want %q", tt.query, got, filepath.Join("out", tt.want))
		}
	}
}

func TestSidecarPaths(t *testing.T) {
	if got := CSVPath("dir/run.xlsx"); got != "dir/run_full.csv" {
		t.Errorf("CSVPath = %q", got)
	}
	if got := ManifestPath("dir/run.xlsx"); got != "dir/run.yaml" {
		t.Errorf("ManifestPath = %q", got)
	}
}
