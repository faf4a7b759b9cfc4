/**
* Name: 			planner.go
* Description: 		사용자 프로필로 운동/식단 플랜 생성
* Workflow: 		프롬프트 구성 -> chat completion 1회 호출 -> JSON 파싱 및 검증
 */

package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"FitCoach_AIProject/internal/catalog"
	"FitCoach_AIProject/internal/config"
	"FitCoach_AIProject/internal/models"
)

const planSystemMessage = "Return ONLY valid JSON. No explanation."

const planPromptTemplate = `You are an expert AI fitness coach.

Create a JSON response only:

{ "workout": "<html template for exercise plan>", "diet": "<html template for diet plan>", "tips": "string tips" }

User Info:
Name: %s
Age: %s
Gender: %s
Height: %s cm
Weight: %s kg
Fitness Goal: %s
Level: %s
Location: %s
Diet Preference: %s`

// BuildPlanPrompt renders the instruction sent to the model for one profile.
// Select values are shown by their form label; unknown values pass through.
func BuildPlanPrompt(p models.Profile) string {
	return fmt.Sprintf(planPromptTemplate,
		p.Name, p.Age, catalog.Label("gender", p.Gender), p.Height, p.Weight,
		catalog.Label("goal", p.Goal), catalog.Label("level", p.Level),
		catalog.Label("location", p.Location), catalog.Label("diet", p.Diet),
	)
}

type PlanClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// NewPlanClient builds the chat completion client. Without an API key the
// client is still returned and every call fails with ErrMissingCredential.
func NewPlanClient(cfg config.PlanConfig) *PlanClient {
	pc := &PlanClient{model: cfg.Model, maxTokens: cfg.MaxTokens}
	if cfg.APIKey == "" {
		return pc
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	oc.HTTPClient = newHTTPClient(cfg.Timeout, maxJSONBytes)
	pc.client = openai.NewClientWithConfig(oc)
	return pc
}

func (c *PlanClient) Configured() bool {
	return c.client != nil
}

// GeneratePlan sends a single completion request. There is no retry.
func (c *PlanClient) GeneratePlan(ctx context.Context, profile models.Profile) (models.Plan, error) {
	if c.client == nil {
		return models.Plan{}, missingCredential("OPENAI_API_KEY")
	}
	logger := zerolog.Ctx(ctx)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: planSystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: BuildPlanPrompt(profile)},
		},
		MaxTokens: c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return models.Plan{}, fmt.Errorf("%w: chat completion: %w", ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return models.Plan{}, ErrEmptyOutput
	}

	raw := resp.Choices[0].Message.Content
	logger.Debug().
		Str("model", resp.Model).
		Int("total_tokens", resp.Usage.TotalTokens).
		Str("raw", raw).
		Msg("plan completion received")

	return ParsePlan(raw)
}
