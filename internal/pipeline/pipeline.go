// Package pipeline wires load, extract, format and emit into one run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"teaching-export/internal/domain"
	"teaching-export/internal/export"
	"teaching-export/internal/loader"
	"teaching-export/internal/normalize"
	"teaching-export/internal/report"
	"teaching-export/internal/sftpclient"
	"teaching-export/internal/sync"
)

type Options struct {
	InputPath    string
	OutputPath   string
	Organization string

	// Brotli also writes OutputPath + ".br".
	Brotli bool

	// Changes logs entries added/changed/removed since the previous output.
	Changes bool

	// Publish uploads the output (and the .br copy) when non-nil. The upload
	// is skipped when the previous output already matches, unless Force.
	Publish *sftpclient.Config
	Force   bool
}

type Result struct {
	Doc        domain.TeachingDoc
	Stats      normalize.Stats
	Added      []domain.TeachingEntry
	Changed    []domain.TeachingEntry
	Removed    []domain.TeachingEntry
	Compressed string
	Uploaded   []string
	Unchanged  bool
}

// uploader is swapped in tests.
var uploader = sftpclient.UploadFile

// Run executes the whole export. Nothing is written until every earlier
// stage has succeeded; the output file is then overwritten in one pass.
func Run(ctx context.Context, opts Options, logger *zap.Logger, stdout io.Writer) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	out := report.New(stdout)
	var res Result

	out.Step("Loading teaching data from JSON...")
	records, err := loader.LoadRecords(opts.InputPath)
	if err != nil {
		return res, err
	}
	logger.Info("loaded records", zap.String("path", opts.InputPath), zap.Int("count", len(records)))

	out.Step("Extracting unique courses...")
	courses, stats := normalize.Extract(records, logger)
	res.Stats = stats
	out.Step("Found %d unique courses", courses.Len())

	out.Step("Generating YAML structure...")
	res.Doc = export.BuildTeaching(courses, opts.Organization)

	// The previous output is only read when something uses it.
	if opts.Changes || opts.Publish != nil {
		previous, err := export.ReadTeachingYAML(opts.OutputPath)
		if err != nil {
			logger.Warn("previous output unreadable, treating as empty", zap.Error(err))
			previous = domain.TeachingDoc{}
		}
		res.Added, res.Changed, res.Removed = sync.Diff(previous.Teaching, res.Doc.Teaching)
		res.Unchanged = sync.Unchanged(previous.Teaching, res.Doc.Teaching)
		for _, e := range res.Added {
			logger.Info("entry added", zap.String("course", e.Course), zap.String("role", e.Role))
		}
		for _, e := range res.Changed {
			logger.Info("entry changed", zap.String("course", e.Course), zap.String("role", e.Role), zap.String("duration", e.Duration))
		}
		for _, e := range res.Removed {
			logger.Info("entry removed", zap.String("course", e.Course), zap.String("role", e.Role))
		}
	}

	out.Step("Saving to %s...", filepath.Base(opts.OutputPath))
	if err := export.WriteTeachingYAML(opts.OutputPath, res.Doc); err != nil {
		return res, err
	}
	logger.Info("wrote teaching yaml",
		zap.String("path", opts.OutputPath),
		zap.Int("entries", len(res.Doc.Teaching)))

	if opts.Brotli {
		dst := opts.OutputPath + ".br"
		if err := export.WriteBrotli(opts.OutputPath, dst); err != nil {
			return res, err
		}
		res.Compressed = dst
		logger.Info("wrote compressed copy", zap.String("path", dst))
	}

	switch {
	case opts.Publish == nil:
	case res.Unchanged && !opts.Force:
		logger.Info("output unchanged, skipping publish", zap.String("addr", opts.Publish.Addr()))
	default:
		files := []string{opts.OutputPath}
		if res.Compressed != "" {
			files = append(files, res.Compressed)
		}
		for _, f := range files {
			remote := filepath.Base(f)
			if err := uploader(ctx, *opts.Publish, f, remote); err != nil {
				return res, fmt.Errorf("pipeline: publish %s: %w", remote, err)
			}
			res.Uploaded = append(res.Uploaded, remote)
			logger.Info("uploaded", zap.String("addr", opts.Publish.Addr()), zap.String("dir", opts.Publish.RemoteDir), zap.String("file", remote))
		}
	}

	out.Step("✅ Teaching data successfully extracted and saved!")
	out.Summary(res.Doc)

	return res, nil
}
