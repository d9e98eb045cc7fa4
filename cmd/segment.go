package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"segalign/internal/config"
	"segalign/internal/worker"
)

var segmentCmd = &cobra.Command{
	Use:   "segment <transcription.json>...",
	Short: "Segment transcription JSON files",
	Long: `Segment one or more transcription JSON files into subtitle-ready units.

Each input must contain a "words" list where every word carries text, start,
end, and speaker_id, plus an optional language_code.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSegment,
}

var (
	configPath string
	language   string
	output     string
	format     string

	bigPause  float64
	minWords  int
	maxDur    float64
	brackets  bool
	fixPunct  bool
	normalize bool
	filterOut bool

	maxConcurrent int
)

func init() {
	defaults := config.Default()

	segmentCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML settings file")
	segmentCmd.Flags().StringVarP(&language, "language", "l", "", "language code (ISO 639-1/639-3; default: from transcription, else eng)")
	segmentCmd.Flags().StringVarP(&output, "output", "o", "", "output path for a single input ('-' for stdout)")
	segmentCmd.Flags().StringVarP(&format, "format", "f", worker.FormatText, "output format: text, table, srt, json")

	segmentCmd.Flags().Float64Var(&bigPause, "big-pause-seconds", defaults.BigPauseSeconds, "pause length that starts a new segment")
	segmentCmd.Flags().IntVar(&minWords, "min-words-in-segment", defaults.MinWordsInSegment, "minimum words in the final segment before tail-merge")
	segmentCmd.Flags().Float64Var(&maxDur, "max-duration", defaults.MaxDuration, "segment duration ceiling in seconds")
	segmentCmd.Flags().BoolVar(&brackets, "speaker-brackets", defaults.SpeakerBrackets, "format speaker labels as '- [Speaker]'")
	segmentCmd.Flags().BoolVar(&fixPunct, "fix-orphaned-punctuation", defaults.FixOrphanedPunctuation, "merge punctuation-only segments into a neighbor")
	segmentCmd.Flags().BoolVar(&normalize, "normalize-speakers", false, "canonicalize speaker IDs to 'Speaker N'")
	segmentCmd.Flags().BoolVar(&filterOut, "filter-meaningless", false, "drop segments without meaningful content")

	segmentCmd.Flags().IntVarP(&maxConcurrent, "max-concurrent", "j", 1, "files processed in parallel")

	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	inputs := make([]string, 0, len(args))
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", arg)
		}
		inputs = append(inputs, abs)
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return worker.Run(ctx, worker.Options{
		Inputs:            inputs,
		OutputPath:        output,
		Format:            format,
		MaxConcurrent:     maxConcurrent,
		NormalizeSpeakers: normalize,
		FilterMeaningless: filterOut,
		Settings:          settings,
	})
}

// resolveSettings layers defaults, an optional config file, and any flags the
// user set explicitly, in that order.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	settings := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("big-pause-seconds") {
		settings.BigPauseSeconds = bigPause
	}
	if flags.Changed("min-words-in-segment") {
		settings.MinWordsInSegment = minWords
	}
	if flags.Changed("max-duration") {
		settings.MaxDuration = maxDur
	}
	if flags.Changed("language") {
		settings.LanguageCode = language
	}
	if flags.Changed("speaker-brackets") {
		settings.SpeakerBrackets = brackets
	}
	if flags.Changed("fix-orphaned-punctuation") {
		settings.FixOrphanedPunctuation = fixPunct
	}
	return settings, nil
}
