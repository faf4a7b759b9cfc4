package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"FitCoach_AIProject/internal/catalog"
	"FitCoach_AIProject/internal/middleware"
	"FitCoach_AIProject/internal/models"
)

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Plan   bool   `json:"plan" example:"true"`
	Image  bool   `json:"image" example:"true"`
	Speech bool   `json:"speech" example:"false"`
}

type UsageResponse struct {
	Usage  []models.UsageSummary    `json:"usage"`
	Recent []models.GenerationEvent `json:"recent,omitempty"`
}

// 최근 기록 조회 최대 개수
const maxRecentEvents = 100

// Index renders the profile form.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Fields": catalog.Fields(),
	})
}

// Health godoc
// @Summary      서버 상태 확인
// @Description  업스트림별 자격 증명 설정 여부를 반환합니다.
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Plan:   configured(h.deps.Planner),
		Image:  configured(h.deps.Images),
		Speech: configured(h.deps.Speech),
	})
}

// UsageSummary godoc
// @Summary      생성 요청 통계
// @Description  종류별(plan, image, speech) 요청 수, 성공/실패 수, 평균 처리 시간을 반환합니다.
// @Tags         System
// @Produce      json
// @Param        recent query int false "최근 기록 개수 (최대 100)"
// @Success      200 {object} handler.UsageResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 recent 값"
// @Failure      404 {object} handler.ErrorResponse "사용 기록 비활성화"
// @Failure      500 {object} handler.ErrorResponse "DB 조회 실패"
// @Router       /api/usage [get]
func (h *Handler) UsageSummary(c *gin.Context) {
	if h.deps.Usage == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Usage ledger is disabled"})
		return
	}
	recent := 0
	if v := c.Query("recent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "recent must be a non-negative integer"})
			return
		}
		recent = min(n, maxRecentEvents)
	}

	summaries, err := h.deps.Usage.Summary(c.Request.Context())
	if err != nil {
		middleware.Logger(c).Error().Err(err).Msg("usage summary failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load usage"})
		return
	}
	resp := UsageResponse{Usage: summaries}

	if recent > 0 {
		resp.Recent, err = h.deps.Usage.RecentEvents(c.Request.Context(), recent)
		if err != nil {
			middleware.Logger(c).Error().Err(err).Msg("recent usage failed")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load usage"})
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}
