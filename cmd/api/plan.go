package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"FitCoach_AIProject/internal/llm"
	"FitCoach_AIProject/internal/models"
)

var planProfile models.Profile

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a plan for one profile and print it as JSON",
	Long: `Generate a workout and diet plan from command-line flags.

Uses the same chat completion client as POST /api/generate-plan.`,
	Example: `  fitcoach plan --name Alex --age 30 --gender male --height 180 --weight 80 \
    --goal muscle-gain --level intermediate --location gym --diet non-veg`,
	RunE: runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planProfile.Name, "name", "", "Name")
	f.StringVar(&planProfile.Age, "age", "", "Age")
	f.StringVar(&planProfile.Gender, "gender", "", "Gender (male, female, other)")
	f.StringVar(&planProfile.Height, "height", "", "Height in cm")
	f.StringVar(&planProfile.Weight, "weight", "", "Weight in kg")
	f.StringVar(&planProfile.Goal, "goal", "", "Fitness goal (weight-loss, muscle-gain, general-fitness)")
	f.StringVar(&planProfile.Level, "level", "", "Level (beginner, intermediate, advanced)")
	f.StringVar(&planProfile.Location, "location", "", "Workout location (home, gym, outdoor)")
	f.StringVar(&planProfile.Diet, "diet", "", "Diet preference (veg, non-veg, vegan, keto)")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	plan, err := llm.NewPlanClient(cfg.Plan).GeneratePlan(cmd.Context(), planProfile.Normalize())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}
