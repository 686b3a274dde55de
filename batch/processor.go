package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/reader"
)

// DefaultWorkers bounds batch concurrency when the caller does not.
// Extraction is CPU-bound; a small fixed pool keeps memory predictable
// for directories of large PDFs.
const DefaultWorkers = 4

// Options configures a Processor. The zero value is usable.
type Options struct {
	// Workers is the number of files processed concurrently. Zero or
	// negative means DefaultWorkers.
	Workers int

	// MaxEntries caps each outline; zero means the builder default.
	MaxEntries int

	// Logger receives per-file progress and failure logs. Nil means no
	// logging.
	Logger *zap.Logger
}

// Processor runs outline extraction over directories of PDFs. Safe for
// concurrent use; all per-run state is local to Run.
type Processor struct {
	workers int
	builder *outline.Builder
	logger  *zap.Logger
}

// NewProcessor creates a processor with the given options.
func NewProcessor(opts Options) *Processor {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		workers: workers,
		builder: outline.NewBuilder(outline.Config{MaxEntries: opts.MaxEntries}),
		logger:  logger,
	}
}

// Run processes every *.pdf file in inputDir, writing a same-named .json
// outline into outputDir. A file that cannot be parsed yields the empty
// outline; only context cancellation or an unusable output directory
// aborts the run.
func (p *Processor) Run(ctx context.Context, inputDir, outputDir string) error {
	files, err := filepath.Glob(filepath.Join(inputDir, "*.pdf"))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	p.logger.Info("batch start",
		zap.String("input", inputDir),
		zap.String("output", outputDir),
		zap.Int("files", len(files)),
		zap.Int("workers", p.workers),
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for _, in := range files {
		in := in
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out := filepath.Join(outputDir, jsonName(in))
			p.processFile(in, out)
			return nil
		})
	}

	return g.Wait()
}

// ExtractFile extracts the outline of a single PDF. Parse failures
// return the empty outline along with the error; the outline is always
// usable.
func (p *Processor) ExtractFile(path string) (model.Outline, error) {
	spans, err := reader.ExtractSpans(path)
	if err != nil {
		return model.EmptyOutline(), err
	}
	return p.builder.Build(spans), nil
}

// processFile extracts one file and writes its result, falling back to
// the empty outline on extraction failure. Write failures are logged;
// there is nowhere else to put the result.
func (p *Processor) processFile(in, out string) {
	start := time.Now()

	o, err := p.ExtractFile(in)
	if err != nil {
		p.logger.Warn("extraction failed, writing empty outline",
			zap.String("file", in),
			zap.Error(err),
		)
	}

	if werr := WriteOutline(out, o); werr != nil {
		p.logger.Error("output write failed",
			zap.String("file", out),
			zap.Error(werr),
		)
		return
	}

	p.logger.Info("processed",
		zap.String("file", in),
		zap.String("title", o.Title),
		zap.Int("entries", len(o.Entries)),
		zap.Duration("took", time.Since(start)),
	)
}

// jsonName maps an input PDF name to its output JSON name.
func jsonName(in string) string {
	base := filepath.Base(in)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".json"
}
