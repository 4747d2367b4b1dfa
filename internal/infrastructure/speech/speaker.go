package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	htgotts "github.com/hegedustibor/htgo-tts"
	"github.com/hegedustibor/htgo-tts/handlers"

	"desktop-assistant/internal/application/port/output"
)

var _ output.SpeakerPort = (*Speaker)(nil)

// Speaker synthesizes replies via the Google Translate TTS endpoint. Audio
// files land in a per-session temp folder that is removed on Close.
type Speaker struct {
	speech htgotts.Speech
	folder string
	logger output.LoggerPort
}

func NewSpeaker(language string, logger output.LoggerPort) *Speaker {
	if language == "" {
		language = "en"
	}
	folder := filepath.Join(os.TempDir(), "assistant-tts-"+uuid.NewString())
	return &Speaker{
		speech: htgotts.Speech{
			Folder:   folder,
			Language: language,
			Handler:  &handlers.Native{},
		},
		folder: folder,
		logger: logger,
	}
}

func (s *Speaker) Say(ctx context.Context, text string) error {
	clean := Sanitize(text)
	if clean == "" {
		return nil
	}
	if err := s.speech.Speak(clean); err != nil {
		return fmt.Errorf("tts: %w", err)
	}
	return nil
}

func (s *Speaker) Close() error {
	return os.RemoveAll(s.folder)
}

var _ output.SpeakerPort = NopSpeaker{}

// NopSpeaker is used in text mode: replies are printed, never spoken.
type NopSpeaker struct{}

func (NopSpeaker) Say(ctx context.Context, text string) error { return nil }
