package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"FitCoach_AIProject/internal/config"
)

// BuildImagePrompt wraps the user's description with the fitness/food style hint.
func BuildImagePrompt(prompt string) string {
	return "High quality, realistic image of: " + prompt + ". Fitness / food theme, well lit, professional look."
}

// ImageClient runs synchronous predictions against the Replicate HTTP API.
type ImageClient struct {
	token      string
	baseURL    string
	model      string
	version    string
	httpClient *http.Client
}

type predictionRequest struct {
	Version string          `json:"version,omitempty"`
	Input   predictionInput `json:"input"`
}

type predictionInput struct {
	Prompt string `json:"prompt"`
}

type predictionResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  json.RawMessage `json:"error"`
}

func NewImageClient(cfg config.ImageConfig) *ImageClient {
	return &ImageClient{
		token:      cfg.APIToken,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		version:    cfg.Version,
		httpClient: newHTTPClient(cfg.Timeout, maxJSONBytes),
	}
}

func (c *ImageClient) Configured() bool {
	return c.token != ""
}

// GenerateImage returns the URL of the first generated image.
func (c *ImageClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if c.token == "" {
		return "", missingCredential("REPLICATE_API_TOKEN")
	}

	// 버전이 지정되면 /predictions, 아니면 공식 모델 엔드포인트 사용
	endpoint := c.baseURL + "/models/" + c.model + "/predictions"
	body := predictionRequest{Input: predictionInput{Prompt: BuildImagePrompt(prompt)}}
	if c.version != "" {
		endpoint = c.baseURL + "/predictions"
		body.Version = c.version
	}

	reqBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "wait")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: prediction request: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read prediction: %w", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: prediction status %s: %s", ErrUpstream, resp.Status, snippet(data))
	}

	var pred predictionResponse
	if err := json.Unmarshal(data, &pred); err != nil {
		return "", fmt.Errorf("%w: prediction body: %v", ErrParse, err)
	}
	zerolog.Ctx(ctx).Debug().
		Str("prediction_id", pred.ID).
		Str("status", pred.Status).
		Msg("prediction received")

	switch pred.Status {
	case "failed", "canceled":
		return "", fmt.Errorf("%w: prediction %s %s: %s", ErrUpstream, pred.ID, pred.Status, snippet(pred.Error))
	}
	return firstOutputURL(pred.Output)
}

// firstOutputURL accepts either a list of URLs or a single URL string.
func firstOutputURL(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", ErrEmptyOutput
	}

	var list []string
	if err := json.Unmarshal(trimmed, &list); err == nil {
		if len(list) == 0 || strings.TrimSpace(list[0]) == "" {
			return "", ErrEmptyOutput
		}
		return list[0], nil
	}

	var single string
	if err := json.Unmarshal(trimmed, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return "", ErrEmptyOutput
		}
		return single, nil
	}
	return "", fmt.Errorf("%w: unexpected prediction output %s", ErrParse, snippet(trimmed))
}

func snippet(b []byte) string {
	const max = 200
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
