package llm

import (
	"context"
	"fmt"

	"FitCoach_AIProject/internal/config"
)

// Synthesizer turns text into MP3 audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
	Configured() bool
	Close() error
}

// NewSynthesizer picks the speech provider named in cfg.Provider.
func NewSynthesizer(ctx context.Context, cfg config.SpeechConfig) (Synthesizer, error) {
	switch cfg.Provider {
	case config.SpeechProviderElevenLabs, "":
		return NewElevenLabsClient(cfg), nil
	case config.SpeechProviderGoogle:
		t, err := NewGoogleTTSClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown speech provider %q", cfg.Provider)
	}
}
