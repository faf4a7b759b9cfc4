package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"FitCoach_AIProject/internal/llm"
	"FitCoach_AIProject/internal/models"
)

type TTSRequest struct {
	Text    string `json:"text" example:"Three sets of ten squats."`
	VoiceID string `json:"voiceId,omitempty" example:"21m00Tcm4TlvDq8ikWAM"`
}

// TextToSpeech godoc
// @Summary      텍스트 음성 변환 (TTS)
// @Description  텍스트를 MP3 오디오로 변환합니다. voiceId를 생략하면 기본 음성을 사용합니다.
// @Tags         Speech
// @Accept       json
// @Produce      audio/mpeg
// @Param        request body handler.TTSRequest true "변환할 텍스트와 음성 ID"
// @Success      200 {file} file "MP3 오디오"
// @Failure      400 {object} handler.ErrorResponse "텍스트 누락"
// @Failure      413 {object} handler.ErrorResponse "요청 본문 64KiB 초과"
// @Failure      429 {object} handler.ErrorResponse "요청 한도 초과"
// @Failure      500 {object} handler.ErrorResponse "TTS 요청 실패"
// @Router       /api/tts [post]
func (h *Handler) TextToSpeech(c *gin.Context) {
	start := time.Now()
	status, errKind := http.StatusOK, ""
	defer func() { h.record(c, models.KindSpeech, start, status, errKind) }()

	var req TTSRequest
	if err := decodeJSON(c, &req); err != nil {
		status, errKind = rejectBody(c, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		status, errKind = badRequest(c, "Text is required")
		return
	}

	audio, err := h.deps.Speech.Synthesize(c.Request.Context(), req.Text, req.VoiceID)
	if err != nil {
		message := "Failed to generate audio"
		if errors.Is(err, llm.ErrUpstream) {
			message = "TTS request failed"
		}
		status, errKind = fail(c, "tts", err, message)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
