package contour

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/pdftext"
	"github.com/tsawler/contour/rank"
)

// BatchConfig holds configuration for batch processing.
type BatchConfig struct {
	// Workers is the number of documents processed concurrently.
	// Default: runtime.NumCPU()
	Workers int

	// Outline configures the outline engine used for every document.
	Outline outline.Config

	// PDF configures the PDF text reader used for every document.
	PDF pdftext.Config
}

// DefaultBatchConfig returns sensible default configuration.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{
		Workers: runtime.NumCPU(),
		Outline: outline.DefaultConfig(),
		PDF:     pdftext.DefaultConfig(),
	}
}

// BatchFailure records one document that could not be processed.
type BatchFailure struct {
	// File is the path of the failed document.
	File string

	// Err is the reason it failed.
	Err error
}

// BatchResult holds the outcome of a batch run. Documents are in input
// order; a failed document appears in Failures instead, never in both.
type BatchResult struct {
	Documents []rank.Document
	Failures  []BatchFailure
}

// BatchProcessor extracts outlines from many PDFs concurrently. Each
// document is processed independently; one malformed file never aborts the
// batch.
type BatchProcessor struct {
	config BatchConfig
	logger *slog.Logger
}

// NewBatchProcessor creates a batch processor with default configuration
// and no logging.
func NewBatchProcessor() *BatchProcessor {
	return NewBatchProcessorWithConfig(DefaultBatchConfig())
}

// NewBatchProcessorWithConfig creates a batch processor with custom
// configuration.
func NewBatchProcessorWithConfig(config BatchConfig) *BatchProcessor {
	return &BatchProcessor{
		config: config,
	}
}

// WithLogger sets a logger for per-document failure reporting. A nil logger
// disables logging.
func (b *BatchProcessor) WithLogger(logger *slog.Logger) *BatchProcessor {
	return &BatchProcessor{
		config: b.config,
		logger: logger,
	}
}

// ProcessDir processes every .pdf file directly inside dir, in name order.
func (b *BatchProcessor) ProcessDir(ctx context.Context, dir string) (*BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return b.ProcessFiles(ctx, paths)
}

// ProcessFiles processes the given PDF files. Successful documents come back
// in input order, named after their base file name and ready for the ranking
// stage. Failures are collected per file with the reason.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) (*BatchResult, error) {
	workers := b.config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	type outcome struct {
		index int
		doc   rank.Document
		err   error
	}

	jobs := make(chan int)
	outcomes := make(chan outcome)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				doc, err := b.processOne(paths[i])
				outcomes <- outcome{index: i, doc: doc, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range paths {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	collected := make([]outcome, 0, len(paths))
	for o := range outcomes {
		collected = append(collected, o)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	result := &BatchResult{}
	for _, o := range collected {
		if o.err != nil {
			if b.logger != nil {
				b.logger.Warn("skipping document",
					slog.String("file", paths[o.index]),
					slog.String("reason", o.err.Error()),
				)
			}
			result.Failures = append(result.Failures, BatchFailure{
				File: paths[o.index],
				Err:  o.err,
			})
			continue
		}
		result.Documents = append(result.Documents, o.doc)
	}

	return result, nil
}

// processOne runs the full pipeline for a single file. Engines are created
// per document so workers share nothing.
func (b *BatchProcessor) processOne(path string) (rank.Document, error) {
	extractor := pdftext.NewExtractorWithConfig(b.config.PDF)
	fragments, err := extractor.ExtractFile(path)
	if err != nil {
		return rank.Document{}, err
	}

	engine := outline.NewEngineWithConfig(b.config.Outline)
	aggregator := outline.NewLineAggregatorWithConfig(b.config.Outline.Aggregator)

	lines, err := aggregator.Aggregate(fragments)
	if err != nil {
		return rank.Document{}, err
	}

	return rank.Document{
		Name:    filepath.Base(path),
		Outline: engine.OutlineFromLines(lines),
		Lines:   lines,
	}, nil
}
