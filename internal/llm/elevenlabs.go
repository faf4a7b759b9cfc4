package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"FitCoach_AIProject/internal/config"
)

type ElevenLabsClient struct {
	apiKey          string
	baseURL         string
	modelID         string
	defaultVoice    string
	stability       float64
	similarityBoost float64
	httpClient      *http.Client
}

type elevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

func NewElevenLabsClient(cfg config.SpeechConfig) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:          cfg.APIKey,
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		modelID:         cfg.ModelID,
		defaultVoice:    cfg.DefaultVoice,
		stability:       cfg.Stability,
		similarityBoost: cfg.SimilarityBoost,
		httpClient:      newHTTPClient(cfg.Timeout, cfg.MaxAudioBytes),
	}
}

func (c *ElevenLabsClient) Configured() bool {
	return c.apiKey != ""
}

// Synthesize converts text to MP3 audio. An empty voiceID selects the default voice.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if c.apiKey == "" {
		return nil, missingCredential("ELEVENLABS_API_KEY")
	}
	if voiceID == "" {
		voiceID = c.defaultVoice
	}

	reqBody, err := json.Marshal(elevenLabsRequest{
		Text:    text,
		ModelID: c.modelID,
		VoiceSettings: voiceSettings{
			Stability:       c.stability,
			SimilarityBoost: c.similarityBoost,
		},
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/v1/text-to-speech/" + url.PathEscape(voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: tts request: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, readErr := io.ReadAll(io.LimitReader(resp.Body, 512))
		if readErr != nil {
			return nil, fmt.Errorf("%w: tts status %s: read error body: %w", ErrUpstream, resp.Status, readErr)
		}
		return nil, fmt.Errorf("%w: tts status %s: %s", ErrUpstream, resp.Status, snippet(detail))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio: %w", ErrUpstream, err)
	}
	if len(audio) == 0 {
		return nil, ErrEmptyOutput
	}

	zerolog.Ctx(ctx).Debug().
		Str("voice_id", voiceID).
		Int("audio_bytes", len(audio)).
		Msg("speech synthesized")
	return audio, nil
}

func (c *ElevenLabsClient) Close() error {
	return nil
}
