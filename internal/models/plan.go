package models

import (
	"errors"
	"strings"
)

var ErrIncompletePlan = errors.New("plan is missing required fields")

// Plan is the model-generated result. Workout and Diet hold HTML fragments.
type Plan struct {
	Workout string `json:"workout" example:"<h3>Day 1</h3><ul><li>Squats 4x8</li></ul>"`
	Diet    string `json:"diet" example:"<h3>Breakfast</h3><p>Oats with berries</p>"`
	Tips    string `json:"tips" example:"Stay strong!"`
}

// Validate reports ErrIncompletePlan unless all three fields carry content.
func (p Plan) Validate() error {
	var missing []string
	if strings.TrimSpace(p.Workout) == "" {
		missing = append(missing, "workout")
	}
	if strings.TrimSpace(p.Diet) == "" {
		missing = append(missing, "diet")
	}
	if strings.TrimSpace(p.Tips) == "" {
		missing = append(missing, "tips")
	}
	if len(missing) > 0 {
		return &IncompletePlanError{Missing: missing}
	}
	return nil
}

type IncompletePlanError struct {
	Missing []string
}

func (e *IncompletePlanError) Error() string {
	return ErrIncompletePlan.Error() + ": " + strings.Join(e.Missing, ", ")
}

func (e *IncompletePlanError) Is(target error) bool {
	return target == ErrIncompletePlan
}
