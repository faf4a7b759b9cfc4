/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 의존성
* Workflow: 		main에서 생성된 업스트림 클라이언트를 Dependencies로 주입
 */
package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"FitCoach_AIProject/internal/middleware"
	"FitCoach_AIProject/internal/models"
)

type PlanGenerator interface {
	GeneratePlan(ctx context.Context, profile models.Profile) (models.Plan, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

type UsageRecorder interface {
	RecordGeneration(ctx context.Context, ev models.GenerationEvent) error
	Summary(ctx context.Context) ([]models.UsageSummary, error)
	RecentEvents(ctx context.Context, limit int) ([]models.GenerationEvent, error)
}

type Dependencies struct {
	Planner PlanGenerator
	Images  ImageGenerator
	Speech  SpeechSynthesizer
	// Usage is optional; nil disables the ledger.
	Usage UsageRecorder

	SanitizePlanHTML bool
}

type Handler struct {
	deps   Dependencies
	policy *bluemonday.Policy
}

func New(deps Dependencies) *Handler {
	return &Handler{
		deps:   deps,
		policy: bluemonday.UGCPolicy(),
	}
}

// record writes one usage event. Ledger failures are logged, never returned.
func (h *Handler) record(c *gin.Context, kind string, start time.Time, status int, errKind string) {
	if h.deps.Usage == nil {
		return
	}
	ev := models.GenerationEvent{
		RequestID:  middleware.RequestID(c),
		Kind:       kind,
		Status:     status,
		ErrorKind:  errKind,
		DurationMS: time.Since(start).Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if err := h.deps.Usage.RecordGeneration(context.WithoutCancel(c.Request.Context()), ev); err != nil {
		middleware.Logger(c).Warn().Err(err).Str("kind", kind).Msg("failed to record usage")
	}
}

// configured reports whether an upstream client has its credential.
func configured(v any) bool {
	if v == nil {
		return false
	}
	if c, ok := v.(interface{ Configured() bool }); ok {
		return c.Configured()
	}
	return true
}
