package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"FitCoach_AIProject/internal/models"
)

// GeneratePlan godoc
// @Summary      운동/식단 플랜 생성
// @Description  사용자 프로필로 HTML 운동 계획, HTML 식단 계획, 팁을 생성합니다.
// @Tags         Plan
// @Accept       json
// @Produce      json
// @Param        request body models.Profile true "사용자 프로필"
// @Success      200 {object} models.Plan
// @Failure      400 {object} handler.ErrorResponse "잘못된 JSON"
// @Failure      413 {object} handler.ErrorResponse "요청 본문 64KiB 초과"
// @Failure      429 {object} handler.ErrorResponse "요청 한도 초과"
// @Failure      500 {object} handler.ErrorResponse "자격 증명 누락, 업스트림 실패, 파싱 실패"
// @Router       /api/generate-plan [post]
func (h *Handler) GeneratePlan(c *gin.Context) {
	start := time.Now()
	status, errKind := http.StatusOK, ""
	defer func() { h.record(c, models.KindPlan, start, status, errKind) }()

	var profile models.Profile
	if err := decodeJSON(c, &profile); err != nil {
		status, errKind = rejectBody(c, err)
		return
	}

	plan, err := h.deps.Planner.GeneratePlan(c.Request.Context(), profile.Normalize())
	if err != nil {
		status, errKind = fail(c, "generate-plan", err, "Failed to generate plan")
		return
	}

	if h.deps.SanitizePlanHTML {
		plan.Workout = h.policy.Sanitize(plan.Workout)
		plan.Diet = h.policy.Sanitize(plan.Diet)
		// 정제 후 빈 필드가 되면 실패 처리
		if err := plan.Validate(); err != nil {
			status, errKind = fail(c, "generate-plan", err, "Failed to generate plan")
			return
		}
	}

	c.JSON(http.StatusOK, plan)
}
