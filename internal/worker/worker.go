// Package worker orchestrates segmentation runs over one or more
// transcription files.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"segalign/internal/config"
	"segalign/internal/pipeline"
	"segalign/internal/render"
	"segalign/internal/srt"
	"segalign/internal/transcript"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatSRT   = "srt"
	FormatJSON  = "json"
)

// Options configures the worker.
type Options struct {
	Inputs            []string
	OutputPath        string // single input only; "-" writes to stdout
	Format            string
	MaxConcurrent     int
	NormalizeSpeakers bool
	FilterMeaningless bool
	Settings          *config.Settings
}

// Run processes every input file. File-writing formats run concurrently with
// bounded parallelism; stdout-bound output stays sequential so segments from
// different files never interleave.
func Run(ctx context.Context, opts Options) error {
	switch opts.Format {
	case FormatText, FormatTable, FormatSRT, FormatJSON:
	default:
		return fmt.Errorf("unsupported output format: %q", opts.Format)
	}
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("no input files")
	}
	if opts.OutputPath != "" && opts.OutputPath != "-" && len(opts.Inputs) > 1 {
		return fmt.Errorf("--output is only valid with a single input file")
	}

	if toStdout(opts) || opts.MaxConcurrent <= 1 || len(opts.Inputs) == 1 {
		return runSequential(ctx, opts)
	}
	return runConcurrent(ctx, opts)
}

// toStdout reports whether output goes to the console rather than files.
func toStdout(opts Options) bool {
	if opts.OutputPath == "-" {
		return true
	}
	return opts.OutputPath == "" && (opts.Format == FormatText || opts.Format == FormatTable)
}

func runSequential(ctx context.Context, opts Options) error {
	for i, input := range opts.Inputs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		slog.Info("processing file",
			"file", fmt.Sprintf("%d/%d", i+1, len(opts.Inputs)),
			"input", filepath.Base(input))
		if err := processFile(input, opts); err != nil {
			return err
		}
	}
	return nil
}

func runConcurrent(ctx context.Context, opts Options) error {
	slog.Info("starting concurrent processing",
		"files", len(opts.Inputs), "max_concurrent", opts.MaxConcurrent)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxConcurrent)

	for i, input := range opts.Inputs {
		i, input := i, input
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			slog.Info("processing file",
				"file", fmt.Sprintf("%d/%d", i+1, len(opts.Inputs)),
				"input", filepath.Base(input))
			return processFile(input, opts)
		})
	}

	return g.Wait()
}

func processFile(input string, opts Options) error {
	tr, err := transcript.Load(input)
	if err != nil {
		return err
	}

	words := tr.Words
	if opts.NormalizeSpeakers {
		words = transcript.NormalizeSpeakerIDs(words)
	}

	// Per-file settings copy: an explicit language flag wins, otherwise the
	// transcription's own language code is used.
	settings := *opts.Settings
	if settings.LanguageCode == "" {
		settings.LanguageCode = tr.LanguageCode
	}

	output, err := renderOutput(words, &settings, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	if toStdout(opts) {
		_, err := os.Stdout.WriteString(output)
		return err
	}

	outPath := opts.OutputPath
	if outPath == "" {
		outPath = defaultOutputPath(input, opts.Format)
	}
	if err := os.WriteFile(outPath, []byte(output), 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("output saved", "path", outPath)
	return nil
}

func renderOutput(words []pipeline.Word, settings *config.Settings, opts Options) (string, error) {
	// SRT labels cues itself, so it consumes undecorated records.
	if opts.Format == FormatSRT {
		plain := *settings
		plain.SpeakerBrackets = false
		records := finishRecords(pipeline.Process(words, &plain), opts)
		return srt.Render(records, settings.SpeakerBrackets), nil
	}

	records := finishRecords(pipeline.Process(words, settings), opts)

	switch opts.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case FormatTable:
		return render.Table(records) + "\n", nil
	default:
		var sb strings.Builder
		render.Text(&sb, records)
		return sb.String(), nil
	}
}

func finishRecords(records []pipeline.Record, opts Options) []pipeline.Record {
	if !opts.FilterMeaningless {
		return records
	}
	filtered := pipeline.FilterRecords(records)
	if removed := len(records) - len(filtered); removed > 0 {
		slog.Info("filtered segments without meaningful content",
			"removed", removed, "remaining", len(filtered))
	}
	return filtered
}

func defaultOutputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	switch format {
	case FormatJSON:
		return base + ".segments.json"
	case FormatSRT:
		return base + ".srt"
	default:
		return base + ".txt"
	}
}
