// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/starter-export/internal/export"
	"github.com/pdiddy/starter-export/internal/secrets"
	"github.com/pdiddy/starter-export/internal/wos"
	"github.com/pdiddy/starter-export/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Retrieve all records for a query and write the workbook",
	Long: `Export fetches every record matching a Starter API query (at most 50,000),
sorts them by Times Cited then Publication Year (both descending), and
writes an .xlsx workbook with a Starter subset sheet, a Core export
compatible sheet, and a Summary sheet.

Select records with -q/--query or with --ut, a space-separated list of UTs.
When both are given the UT list wins and the query is ignored.

Only these field tags can be searched: AI, AU, CS, DO, DOP, DT, FPY, IS,
OG, PG, PMID, PY, SO, TI, TS, UT, VL.`,
	Example: `  starter-export export -q "TS=(graph neural networks) AND PY=2020-2023"
  starter-export export --ut "WOS:000123456700001 WOS:000123456700002" --csv
  starter-export export --from-manifest WOSExcelStarter_TSgraph_20260101_120000.yaml`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringP("query", "q", "", "Starter API query (default: default_query from config)")
	f.String("ut", "", "space-separated UTs; overrides --query")
	f.StringP("key", "k", "", "Starter API key (overrides STARTER_APIKEY)")
	f.String("authors", "", `author limit: a number N (first N + last) or "ALL"`)
	f.Bool("csv", false, "also write <workbook>_full.csv of the Starter subset")
	f.Bool("manifest", false, "also write a <workbook>.yaml run manifest")
	f.String("out", "", "output .xlsx path (default: auto-named from the query)")
	f.String("outdir", ".", "directory for auto-named output")
	f.String("from-manifest", "", "repeat the request stored in a run manifest")
	f.Int("max-attempts", 1, "attempts per page; above 1 retries 429 and 5xx with backoff")
	f.Duration("timeout", 0, "HTTP request timeout (default 60s)")

	for key, flag := range map[string]string{
		keyAPIKey:        "key",
		keyAuthorLimit:   "authors",
		keyWriteCSV:      "csv",
		keyWriteManifest: "manifest",
		keyOutDir:        "outdir",
		keyMaxAttempts:   "max-attempts",
		keyTimeout:       "timeout",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(exportCmd)
}

// requestFlags holds the record-selection flags.
type requestFlags struct {
	query        string
	ut           string
	utSet        bool
	fromManifest string
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return newConfigError(err)
	}

	flags := requestFlags{fromManifest: mustString(cmd, "from-manifest")}
	flags.query = mustString(cmd, "query")
	flags.ut = mustString(cmd, "ut")
	flags.utSet = cmd.Flags().Changed("ut")

	req, err := resolveRequest(flags, &cfg, cmd.Flags().Changed("authors"))
	if err != nil {
		return newConfigError(err)
	}
	cfg.Workbook.OutFile = mustString(cmd, "out")

	key, err := secrets.APIKey(cfg.API.APIKey, secrets.DefaultDir, logger)
	if err != nil {
		return newConfigError(err)
	}
	cfg.API.APIKey = key

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := wos.NewClientFromConfig(cfg.API, logger)
	res, err := export.New(client, logger).Run(ctx, export.Options{Request: req, Config: cfg})
	if wos.IsEmpty(err) {
		fmt.Fprintln(cmd.ErrOrStderr(), "No results were retrieved for this query.")
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", filepath.Base(res.Path))
	if res.CSVPath != "" {
		fmt.Fprintf(out, "Wrote %s\n", filepath.Base(res.CSVPath))
	}
	if res.ManifestPath != "" {
		fmt.Fprintf(out, "Wrote %s\n", filepath.Base(res.ManifestPath))
	}
	return nil
}

// resolveRequest decides which records to export. A manifest supplies the
// request (and its author limit unless --authors was given); otherwise
// --ut wins over --query, which wins over default_query.
func resolveRequest(f requestFlags, cfg *types.ExportConfig, authorsSet bool) (wos.Request, error) {
	if f.fromManifest != "" {
		m, err := export.ReadManifest(f.fromManifest)
		if err != nil {
			return wos.Request{}, err
		}
		if !authorsSet {
			cfg.Workbook.AuthorLimit = m.Workbook.AuthorLimit
		}
		return m.ToRequest()
	}

	if f.utSet {
		uts := wos.ParseUTs(f.ut)
		if len(uts) == 0 {
			return wos.Request{}, errors.New("--ut provided but empty")
		}
		return wos.Request{Query: f.query, UTs: uts}, nil
	}

	q := f.query
	if q == "" {
		q = cfg.DefaultQuery
	}
	req := wos.Request{Query: q}
	if _, err := req.Text(); err != nil {
		return wos.Request{}, errors.New("provide -q/--query, set default_query, or use --ut")
	}
	return req, nil
}

func mustString(cmd *cobra.Command, name string) string {
	s, _ := cmd.Flags().GetString(name)
	return s
}
