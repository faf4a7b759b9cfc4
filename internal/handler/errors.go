package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"FitCoach_AIProject/internal/llm"
	"FitCoach_AIProject/internal/middleware"
)

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

// 요청 본문 최대 크기
const maxRequestBytes = 64 << 10

const (
	errorKindConfig     = "config"
	errorKindValidation = "validation"
	errorKindUpstream   = "upstream"
	errorKindParse      = "parse"
)

// classify maps an upstream error to its HTTP status and error kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, llm.ErrMissingCredential):
		return http.StatusInternalServerError, errorKindConfig
	case errors.Is(err, llm.ErrUpstream), errors.Is(err, llm.ErrResponseTooLarge):
		return http.StatusInternalServerError, errorKindUpstream
	case errors.Is(err, llm.ErrParse), errors.Is(err, llm.ErrEmptyOutput), errors.Is(err, llm.ErrIncompletePlan):
		return http.StatusInternalServerError, errorKindParse
	default:
		return http.StatusInternalServerError, errorKindUpstream
	}
}

// fail logs err and answers with a generic body. Missing credentials name
// the environment variable instead.
func fail(c *gin.Context, endpoint string, err error, message string) (int, string) {
	status, kind := classify(err)

	var missing *llm.MissingCredentialError
	if errors.As(err, &missing) {
		message = missing.Error()
	}

	middleware.Logger(c).Error().
		Err(err).
		Str("endpoint", endpoint).
		Str("error_kind", kind).
		Msg("generation failed")
	c.JSON(status, ErrorResponse{Error: message})
	return status, kind
}

func badRequest(c *gin.Context, message string) (int, string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
	return http.StatusBadRequest, errorKindValidation
}

// decodeJSON reads at most maxRequestBytes of the request body into dst.
func decodeJSON(c *gin.Context, dst any) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBytes)
	rawData, err := c.GetRawData()
	if err != nil {
		return err
	}
	return json.Unmarshal(rawData, dst)
}

// rejectBody answers a body that decodeJSON could not read.
func rejectBody(c *gin.Context, err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request body too large"})
		return http.StatusRequestEntityTooLarge, errorKindValidation
	}
	return badRequest(c, "Invalid request")
}
