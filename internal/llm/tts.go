/**
* Name: 			tts.go
* Description: 		Google Cloud Text-to-Speech 음성 합성
* Workflow: 		클라이언트 생성, 텍스트 전송, MP3 오디오 수신
 */

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"FitCoach_AIProject/internal/config"
)

// Google TTS 연결 정보
type GoogleTTSClient struct {
	client        *texttospeech.Client
	languageCode  string
	defaultVoice  string
	maxAudioBytes int64
}

// 자격 증명 파일이 없으면 client 없이 반환, 요청마다 ErrMissingCredential
func NewGoogleTTSClient(ctx context.Context, cfg config.SpeechConfig) (*GoogleTTSClient, error) {
	t := &GoogleTTSClient{
		languageCode:  cfg.GoogleLanguageCode,
		defaultVoice:  cfg.GoogleVoice,
		maxAudioBytes: cfg.MaxAudioBytes,
	}
	if cfg.GoogleCredentialsFile == "" {
		return t, nil
	}

	client, err := texttospeech.NewClient(ctx, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("NewGoogleTTSClient(): failed to create TTS client: %w", err)
	}
	t.client = client
	return t, nil
}

func (t *GoogleTTSClient) Configured() bool {
	return t.client != nil
}

// 텍스트를 MP3 오디오로 변환
func (t *GoogleTTSClient) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if t.client == nil {
		return nil, missingCredential("GOOGLE_APPLICATION_CREDENTIALS")
	}
	voice := voiceID
	if voice == "" {
		voice = t.defaultVoice
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageFromVoice(voice, t.languageCode),
			Name:         voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := t.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: SynthesizeSpeech: %w", ErrUpstream, err)
	}
	if len(resp.AudioContent) == 0 {
		return nil, ErrEmptyOutput
	}
	if t.maxAudioBytes > 0 && int64(len(resp.AudioContent)) > t.maxAudioBytes {
		return nil, ErrResponseTooLarge
	}

	zerolog.Ctx(ctx).Debug().
		Str("voice", voice).
		Int("audio_bytes", len(resp.AudioContent)).
		Msg("SynthesizeSpeech succeeded")
	return resp.AudioContent, nil
}

// Voice names look like "en-US-Wavenet-F"; the first two segments are the language.
func languageFromVoice(voice, fallback string) string {
	parts := strings.Split(voice, "-")
	if len(parts) >= 3 && len(parts[0]) >= 2 && len(parts[1]) >= 2 {
		return parts[0] + "-" + parts[1]
	}
	return fallback
}

// TTS 클라이언트 종료
func (t *GoogleTTSClient) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
