package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"FitCoach_AIProject/internal/models"
)

// Greedy: first '{' through last '}'.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON returns the span from the first '{' to the last '}' in raw.
func ExtractJSON(raw string) (string, bool) {
	span := jsonObjectPattern.FindString(raw)
	return span, span != ""
}

// ParsePlan decodes model output into a Plan. The whole output is tried as
// JSON first, then the embedded object span. The returned plan always has
// workout, diet and tips set.
func ParsePlan(raw string) (models.Plan, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.Plan{}, ErrEmptyOutput
	}

	var plan models.Plan
	if err := json.Unmarshal([]byte(trimmed), &plan); err != nil {
		span, ok := ExtractJSON(trimmed)
		if !ok {
			return models.Plan{}, fmt.Errorf("%w: no JSON object in output", ErrParse)
		}
		plan = models.Plan{}
		if err := json.Unmarshal([]byte(span), &plan); err != nil {
			return models.Plan{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}

	if err := plan.Validate(); err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}
