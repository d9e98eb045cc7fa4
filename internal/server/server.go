// Package server exposes the segmentation pipeline over HTTP.
package server

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"segalign/internal/config"
	"segalign/internal/pipeline"
	"segalign/internal/srt"
	"segalign/internal/transcript"
)

// segmentRequest is the POST /v1/segment body. Pointer option fields
// distinguish "absent" from zero so server defaults apply only when a field
// is omitted.
type segmentRequest struct {
	Transcription json.RawMessage `json:"transcription"`
	Format        string          `json:"format"` // "json" (default) or "srt"

	BigPauseSeconds        *float64 `json:"big_pause_seconds"`
	MinWordsInSegment      *int     `json:"min_words_in_segment"`
	MaxDuration            *float64 `json:"max_duration"`
	LanguageCode           *string  `json:"language_code"`
	SpeakerBrackets        *bool    `json:"speaker_brackets"`
	FixOrphanedPunctuation *bool    `json:"fix_orphaned_punctuation"`
	NormalizeSpeakers      *bool    `json:"normalize_speakers"`
}

// New builds the fiber application with all routes registered. defaults are
// the server-wide settings a request may override per-field.
func New(defaults *config.Settings) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "segalign",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/v1/segment", func(c *fiber.Ctx) error {
		return handleSegment(c, defaults)
	})

	return app
}

func handleSegment(c *fiber.Ctx, defaults *config.Settings) error {
	var req segmentRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return validationFailure(c, "invalid request JSON: "+err.Error())
	}
	if len(req.Transcription) == 0 {
		return validationFailure(c, "missing required 'transcription' object")
	}

	tr, err := transcript.Parse(req.Transcription)
	if err != nil {
		var verr *transcript.ValidationError
		if errors.As(err, &verr) {
			return validationFailure(c, verr.Msg)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
			"type":  "InternalError",
		})
	}

	settings := applyOverrides(defaults, &req)
	if settings.LanguageCode == "" {
		settings.LanguageCode = tr.LanguageCode
	}

	words := tr.Words
	if req.NormalizeSpeakers != nil && *req.NormalizeSpeakers {
		words = transcript.NormalizeSpeakerIDs(words)
	}

	c.Set("X-Job-ID", uuid.New().String())

	if req.Format == "srt" {
		plain := *settings
		plain.SpeakerBrackets = false
		records := pipeline.Process(words, &plain)
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(srt.Render(records, settings.SpeakerBrackets))
	}

	records := pipeline.Process(words, settings)
	return c.JSON(fiber.Map{"segments": records, "count": len(records)})
}

func applyOverrides(defaults *config.Settings, req *segmentRequest) *config.Settings {
	s := *defaults
	if req.BigPauseSeconds != nil {
		s.BigPauseSeconds = *req.BigPauseSeconds
	}
	if req.MinWordsInSegment != nil {
		s.MinWordsInSegment = *req.MinWordsInSegment
	}
	if req.MaxDuration != nil {
		s.MaxDuration = *req.MaxDuration
	}
	if req.LanguageCode != nil {
		s.LanguageCode = *req.LanguageCode
	}
	if req.SpeakerBrackets != nil {
		s.SpeakerBrackets = *req.SpeakerBrackets
	}
	if req.FixOrphanedPunctuation != nil {
		s.FixOrphanedPunctuation = *req.FixOrphanedPunctuation
	}
	return &s
}

func validationFailure(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": msg,
		"type":  "ValidationError",
	})
}
