package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonMunkholm/domainreg/internal/config"
	"github.com/JonMunkholm/domainreg/internal/logging"
	"github.com/google/uuid"
)

// ContextCheckInterval is how often (in rows) to check for context cancellation.
var ContextCheckInterval = 100

// Converter runs dataset conversions. It holds no per-run state, so each
// dataset conversion is independent of the others.
type Converter struct {
	cfg *config.Config
}

// NewConverter creates a converter for the given configuration.
func NewConverter(cfg *config.Config) (*Converter, error) {
	if cfg == nil {
		return nil, errors.New("converter: nil config")
	}
	return &Converter{cfg: cfg}, nil
}

// RunAll converts every registered dataset in run order.
// A failed dataset never stops the ones after it.
func (c *Converter) RunAll(ctx context.Context) []ConversionResult {
	defs := All()
	results := make([]ConversionResult, 0, len(defs))
	for _, def := range defs {
		results = append(results, c.Convert(ctx, def))
	}
	return results
}

// Paths returns the absolute input and output paths for a dataset.
func (c *Converter) Paths(def DatasetDefinition) (input, output string) {
	input, output = def.Info.Input, def.Info.Output
	if in, out, ok := c.cfg.Data.Files(def.Info.Key); ok {
		input, output = in, out
	}
	return c.resolve(input), c.resolve(output)
}

func (c *Converter) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.cfg.Data.Dir, name)
}

// Convert reads one dataset's CSV input and writes its JSON document.
// All failures are reported in the result and logged; none are returned.
func (c *Converter) Convert(ctx context.Context, def DatasetDefinition) ConversionResult {
	startTime := time.Now()
	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithFields(ctx, "dataset", def.Info.Key)

	input, output := c.Paths(def)
	result := ConversionResult{
		RunID:      runID,
		DatasetKey: def.Info.Key,
		InputPath:  input,
		OutputPath: output,
	}

	logger.Info("processing dataset", "label", def.Info.Label, "input", input)

	records, err := c.readRecords(ctx, logger, def, &result)
	if err == nil {
		err = writeDocumentFile(output, records)
	}
	result.Duration = time.Since(startTime)

	if err != nil {
		result.Err = err
		logger.Error("dataset conversion failed",
			"code", MapError(err).Code,
			"message", FormatUserError(err),
			"error", err,
		)
		return result
	}

	logger.Info("converted dataset",
		"output", output,
		"rows", result.TotalRows,
		"records", result.Written,
		"skipped", result.Skipped,
		"bytes", result.BytesRead,
		"duration", result.Duration,
	)
	return result
}

// readRecords parses the dataset input and maps each row to a record.
// Records keep input order. The returned slice is never nil.
func (c *Converter) readRecords(ctx context.Context, logger *slog.Logger, def DatasetDefinition, result *ConversionResult) ([]any, error) {
	path := result.InputPath

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidCSV, path)
	}
	if info.Size() > c.cfg.Convert.MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)",
			ErrFileTooLarge, filepath.Base(path), info.Size(), c.cfg.Convert.MaxFileSize)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	src, counter := WrapInput(f)
	defer func() { result.BytesRead = counter.BytesRead }()

	// The sanitizer only counts here; any replaced byte rejects the file.
	checkEncoding := func() error {
		if src.Replaced > 0 {
			return fmt.Errorf("%w: %s is not valid UTF-8 (%d invalid bytes)",
				ErrInvalidCSV, filepath.Base(path), src.Replaced)
		}
		return nil
	}

	r := csv.NewReader(src)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records := make([]any, 0)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		if err := checkEncoding(); err != nil {
			return nil, err
		}
		logger.Warn("input is empty; writing an empty document")
		return records, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidCSV, err)
	}
	if err := checkEncoding(); err != nil {
		return nil, err
	}

	headerIdx := MakeHeaderIndex(header)
	checkHeader(logger, def, headerIdx)

	for i := 0; ; i++ {
		if i%ContextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("cancelled after %d rows: %w", result.TotalRows, err)
			}
		}

		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}
		if err := checkEncoding(); err != nil {
			return nil, err
		}

		line, _ := r.FieldPos(0)
		result.TotalRows++

		rec, err := def.BuildRecord(NewRow(line, cells, headerIdx))
		switch {
		case err == nil:
			records = append(records, rec)
			result.Written++

		case errors.Is(err, ErrBlankKey):
			result.Skipped++

		case c.cfg.Convert.StrictKeys:
			return nil, err

		default:
			result.Skipped++
			result.SkippedRows = append(result.SkippedRows, SkippedRow{
				LineNumber: line,
				Reason:     err.Error(),
				Data:       cells,
			})
			logger.Warn("skipping row",
				"code", MapError(err).Code,
				"line", line,
				"error", err,
				"row", cells,
			)
		}
	}

	return records, nil
}

// checkHeader logs columns the dataset expects but the header lacks.
// A missing key column means every row will be skipped.
func checkHeader(logger *slog.Logger, def DatasetDefinition, idx HeaderIndex) {
	for _, spec := range def.FieldSpecs {
		if _, ok := idx[strings.ToLower(spec.Name)]; ok {
			continue
		}
		if spec.Key() {
			logger.Warn("key column missing from header; no rows will be converted", "column", spec.Name)
		} else {
			logger.Debug("column missing from header", "column", spec.Name)
		}
	}
}
