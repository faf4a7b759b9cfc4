package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"FitCoach_AIProject/internal/models"
)

type ImageRequest struct {
	Prompt string `json:"prompt" example:"grilled chicken salad"`
}

type ImageResponse struct {
	URL string `json:"url" example:"https://replicate.delivery/out-0.webp"`
}

// GenerateImage godoc
// @Summary      이미지 생성
// @Description  프롬프트에 피트니스/음식 스타일을 덧붙여 이미지 1장을 생성하고 URL을 반환합니다.
// @Tags         Image
// @Accept       json
// @Produce      json
// @Param        request body handler.ImageRequest true "이미지 프롬프트"
// @Success      200 {object} handler.ImageResponse
// @Failure      400 {object} handler.ErrorResponse "프롬프트 누락"
// @Failure      413 {object} handler.ErrorResponse "요청 본문 64KiB 초과"
// @Failure      429 {object} handler.ErrorResponse "요청 한도 초과"
// @Failure      500 {object} handler.ErrorResponse "이미지 생성 실패"
// @Router       /api/generate-image [post]
func (h *Handler) GenerateImage(c *gin.Context) {
	start := time.Now()
	status, errKind := http.StatusOK, ""
	defer func() { h.record(c, models.KindImage, start, status, errKind) }()

	var req ImageRequest
	if err := decodeJSON(c, &req); err != nil {
		status, errKind = rejectBody(c, err)
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		status, errKind = badRequest(c, "Prompt is required")
		return
	}

	url, err := h.deps.Images.GenerateImage(c.Request.Context(), prompt)
	if err != nil {
		status, errKind = fail(c, "generate-image", err, "Failed to generate image")
		return
	}
	c.JSON(http.StatusOK, ImageResponse{URL: url})
}
