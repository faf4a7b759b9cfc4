package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FitCoach_AIProject/internal/config"
)

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }
func (failingBody) Close() error { return nil }

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

var fakeMP3 = []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x00, 0x00, 0x00}

func testSpeechConfig(baseURL string) config.SpeechConfig {
	cfg := config.Default().Speech
	cfg.APIKey = "xi-test"
	cfg.BaseURL = baseURL
	cfg.Timeout = 5 * time.Second
	return cfg
}

func TestSynthesizeVoiceSelection(t *testing.T) {
	tests := []struct {
		name     string
		voiceID  string
		wantPath string
	}{
		{"default voice", "", "/v1/text-to-speech/21m00Tcm4TlvDq8ikWAM"},
		{"explicit voice", "pNInz6obpgDQGcFmaJgB", "/v1/text-to-speech/pNInz6obpgDQGcFmaJgB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body elevenLabsRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, "xi-test", r.Header.Get("xi-api-key"))
				assert.Equal(t, "audio/mpeg", r.Header.Get("Accept"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				w.Header().Set("Content-Type", "audio/mpeg")
				_, _ = w.Write(fakeMP3)
			}))
			defer srv.Close()

			audio, err := NewElevenLabsClient(testSpeechConfig(srv.URL)).Synthesize(context.Background(), "Do ten squats.", tt.voiceID)
			require.NoError(t, err)
			assert.Equal(t, fakeMP3, audio)

			assert.Equal(t, "Do ten squats.", body.Text)
			assert.Equal(t, "eleven_monolingual_v1", body.ModelID)
			assert.InDelta(t, 0.5, body.VoiceSettings.Stability, 1e-9)
			assert.InDelta(t, 0.75, body.VoiceSettings.SimilarityBoost, 1e-9)
		})
	}
}

func TestSynthesizeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":{"status":"invalid_api_key"}}`))
	}))
	defer srv.Close()

	_, err := NewElevenLabsClient(testSpeechConfig(srv.URL)).Synthesize(context.Background(), "hi", "")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestSynthesizeAudioTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte{0xff}, 64))
	}))
	defer srv.Close()

	cfg := testSpeechConfig(srv.URL)
	cfg.MaxAudioBytes = 32
	_, err := NewElevenLabsClient(cfg).Synthesize(context.Background(), "hi", "")
	assert.ErrorIs(t, err, ErrResponseTooLarge)
}

func TestSynthesizeAudioAtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte{0xff}, 32))
	}))
	defer srv.Close()

	cfg := testSpeechConfig(srv.URL)
	cfg.MaxAudioBytes = 32
	audio, err := NewElevenLabsClient(cfg).Synthesize(context.Background(), "hi", "")
	require.NoError(t, err)
	assert.Len(t, audio, 32)
}

func TestSynthesizeMissingKey(t *testing.T) {
	cfg := testSpeechConfig("http://127.0.0.1:1")
	cfg.APIKey = ""
	_, err := NewElevenLabsClient(cfg).Synthesize(context.Background(), "hi", "")
	require.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, "Missing ELEVENLABS_API_KEY", err.Error())
}

func TestSynthesizeErrorBodyReadFailure(t *testing.T) {
	client := NewElevenLabsClient(testSpeechConfig("http://elevenlabs.invalid"))
	client.httpClient = &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Status:     "502 Bad Gateway",
			Body:       failingBody{},
			Header:     make(http.Header),
			Request:    r,
		}, nil
	})}

	_, err := client.Synthesize(context.Background(), "hello", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "502 Bad Gateway")
	assert.Contains(t, err.Error(), "connection reset")
}
