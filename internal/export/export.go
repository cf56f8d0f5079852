// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export runs the retrieve, sort, transform and render pipeline
// for one query. Nothing is written until retrieval, sorting and
// transformation have all succeeded.
package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/starter-export/internal/schema"
	"github.com/pdiddy/starter-export/internal/transform"
	"github.com/pdiddy/starter-export/internal/workbook"
	"github.com/pdiddy/starter-export/internal/wos"
	"github.com/pdiddy/starter-export/pkg/types"
)

// Retriever fetches every record for a query. *wos.Client implements it.
type Retriever interface {
	Retrieve(ctx context.Context, query string, progress wos.ProgressFunc) (*wos.Result, error)
}

// Options describes one run.
type Options struct {
	Request wos.Request
	Config  types.ExportConfig
}

// Result reports what a run wrote.
type Result struct {
	Path         string
	CSVPath      string
	ManifestPath string
	Summary      types.Summary
}

// Exporter wires a Retriever to the workbook writer.
type Exporter struct {
	retriever Retriever
	writer    *workbook.Writer
	logger    zerolog.Logger
	now       func() time.Time
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithClock overrides time.Now (for testing).
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// WithWriter overrides the default workbook writer.
func WithWriter(w *workbook.Writer) Option {
	return func(e *Exporter) { e.writer = w }
}

// New creates an Exporter.
func New(r Retriever, logger zerolog.Logger, opts ...Option) *Exporter {
	e := &Exporter{
		retriever: r,
		writer:    workbook.NewWriter(workbook.WithLogger(logger)),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the pipeline. It returns wos.ErrEmptyResultSet when the
// query matched nothing; no file is written in that case, and files from a
// run that fails part way are removed.
func (e *Exporter) Run(ctx context.Context, opts Options) (*Result, error) {
	started := e.now()
	cfg := opts.Config.Workbook

	query, err := opts.Request.Text()
	if err != nil {
		return nil, err
	}
	if len(opts.Request.UTs) == 0 {
		if unknown := wos.UnknownTags(query); len(unknown) > 0 {
			e.logger.Warn().
				Strs("tags", unknown).
				Strs("allowed", wos.AllowedFields).
				Msg("query uses field tags the Starter API may reject")
		}
	}

	res, err := e.retriever.Retrieve(ctx, query, e.logProgress)
	if err != nil {
		return nil, err
	}
	records := res.Records

	transform.SortRecords(records)
	tr := transform.New(transform.Options{AuthorLimit: cfg.AuthorLimit, ExportDate: started})
	subsetRows, coreRows := tr.Rows(records)
	links := workbook.DecideLinks(len(records))

	path := cfg.OutFile
	if path == "" {
		path = AutoFileName(query, cfg.OutDir, started)
	}

	book := &workbook.Book{
		Subset: workbook.Sheet{Name: workbook.SubsetSheet, Headers: schema.SubsetHeaders(), Rows: subsetRows},
		Core:   workbook.Sheet{Name: workbook.CoreSheet, Headers: schema.CoreHeaders(), Rows: coreRows},
		Links:  links,
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}

	out := &Result{Path: path}
	if cfg.WriteCSV {
		out.CSVPath = CSVPath(path)
		if err := workbook.WriteCSV(out.CSVPath, book.Subset.Headers, book.Subset.Rows); err != nil {
			return nil, fmt.Errorf("writing CSV: %w", err)
		}
	}

	truncations := workbook.Clamp(&book.Subset, &book.Core)
	for _, t := range truncations {
		e.logger.Warn().Str("column", t.Column).Int("rows", len(t.UTs)).Msg("cells truncated to the cell text limit")
	}

	out.Summary = types.Summary{
		Query:       query,
		RetrievedAt: started,
		Reported:    res.Total,
		Records:     len(records),
		RecordLinks: links.RecordLinks,
		LinkNote:    links.Note(),
		AuthorLimit: cfg.AuthorLimit,
		CSVPath:     out.CSVPath,
		Truncations: truncations,
	}
	book.Summary = SummaryLines(&out.Summary, cfg.WriteCSV)

	e.logger.Info().
		Int("rows", len(records)).
		Int("links", book.LinkCount()).
		Str("path", path).
		Msg("writing workbook")
	if err := e.writer.Write(path, book); err != nil {
		removeOutputs(out.CSVPath)
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	e.logger.Info().Str("path", path).Int("records", len(records)).Msg("workbook written")

	if cfg.WriteManifest {
		out.ManifestPath = ManifestPath(path)
		m := &Manifest{
			Request:  opts.Request,
			API:      opts.Config.API,
			Workbook: cfg,
			Outputs:  ManifestOutputs{Workbook: path, CSV: out.CSVPath},
			Summary:  out.Summary,
		}
		if err := WriteManifest(out.ManifestPath, m); err != nil {
			removeOutputs(path, out.CSVPath)
			return nil, fmt.Errorf("writing manifest: %w", err)
		}
	}
	return out, nil
}

// removeOutputs deletes files already written by a run that then failed.
func removeOutputs(paths ...string) {
	for _, p := range paths {
		if p != "" {
			os.Remove(p)
		}
	}
}

func (e *Exporter) logProgress(p wos.Progress) {
	e.logger.Info().
		Int("batch", p.Batch).
		Int("batches", p.Batches).
		Msgf("Retrieved %d/%d ...", p.Retrieved, p.Total)
}
