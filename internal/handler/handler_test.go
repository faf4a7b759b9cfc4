package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gin-gonic/gin"

	"FitCoach_AIProject/internal/middleware"
	"FitCoach_AIProject/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakePlanner struct {
	plan     models.Plan
	err      error
	calls    int
	profiles []models.Profile
}

func (f *fakePlanner) GeneratePlan(_ context.Context, p models.Profile) (models.Plan, error) {
	f.calls++
	f.profiles = append(f.profiles, p)
	return f.plan, f.err
}

type fakeImages struct {
	url     string
	err     error
	calls   int
	prompts []string
}

func (f *fakeImages) GenerateImage(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.url, f.err
}

type fakeSpeech struct {
	audio  []byte
	err    error
	calls  int
	texts  []string
	voices []string
}

func (f *fakeSpeech) Synthesize(_ context.Context, text, voiceID string) ([]byte, error) {
	f.calls++
	f.texts = append(f.texts, text)
	f.voices = append(f.voices, voiceID)
	return f.audio, f.err
}

type fakeUsage struct {
	mu        sync.Mutex
	events    []models.GenerationEvent
	summary   []models.UsageSummary
	recordErr error
	err       error
	limits    []int
}

func (f *fakeUsage) RecordGeneration(_ context.Context, ev models.GenerationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return f.recordErr
}

func (f *fakeUsage) Summary(context.Context) ([]models.UsageSummary, error) {
	return f.summary, f.err
}

func (f *fakeUsage) RecentEvents(_ context.Context, limit int) ([]models.GenerationEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.limits = append(f.limits, limit)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.GenerationEvent, 0, limit)
	for i := len(f.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.events[i])
	}
	return out, nil
}

var errBoom = errors.New("boom")

// newTestRouter mounts the API routes the same way the server does.
func newTestRouter(deps Dependencies) *gin.Engine {
	h := New(deps)
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.GET("/health", h.Health)
	api := r.Group("/api")
	api.POST("/generate-plan", h.GeneratePlan)
	api.POST("/generate-image", h.GenerateImage)
	api.POST("/tts", h.TextToSpeech)
	api.GET("/usage", h.UsageSummary)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
