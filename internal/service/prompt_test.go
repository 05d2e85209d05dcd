package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pageza/nutriplan/backend/internal/types"
)

func TestBuildPromptIncludesProfile(t *testing.T) {
	profile := types.DefaultProfile()
	prompt := BuildPrompt(profile, "Spanish", "I want to gain muscle")

	for _, want := range []string{
		"- Primary Goal: I want to gain muscle",
		"Translate all content to Spanish.",
		"- Age: 35",
		"- Gender: male",
		"- Country: dominican republic",
		"from the users country of dominican republic",
		"- Cuisine Preference: dominican",
		"- Height: 170 cm",
		"- Weight: 70 kg",
		"- Activity Level: moderate",
		"- Dietary Restrictions: vegetarian",
		"- Goals: weight loss",
		"- Health Conditions: diabetes",
		"- Food Preferences: vegetables, grains",
		"- Daily Calorie Intake: 2000",
		"Protein: 0.3, Fat: 0.3, Carbohydrates: 0.4",
		"Vitamin A: 700 mcg, Vitamin B: 200 mcg, Vitamin C: 90 mg, Iron: 8 mg",
		"From 2023-01-01 to 2023-12-01",
	} {
		assert.Contains(t, prompt, want)
	}
}

func TestBuildPromptKeepsInstructions(t *testing.T) {
	prompt := BuildPrompt(types.DefaultProfile(), "English", "I want to lose weight")

	assert.Contains(t, prompt, "### Example Output Format (Do Not Copy)")
	assert.Contains(t, prompt, "**never** use the same plan for different users.")
	assert.Contains(t, prompt, `"December 31, 2024"`)
	assert.Contains(t, prompt, "**never** use a title, just the headings for each section.")
	assert.True(t, strings.HasSuffix(prompt, closingLine))
}

func TestBuildPromptBlankFields(t *testing.T) {
	prompt := BuildPrompt(types.UserProfile{}, "", "")

	assert.Contains(t, prompt, "- Age: \n")
	assert.Contains(t, prompt, "- Height:  cm\n")
	assert.Contains(t, prompt, "- Goals: \n")
	assert.Contains(t, prompt, "From  to \n")
	assert.NotContains(t, prompt, "<nil>")
}

func TestBuildPromptArbitraryValues(t *testing.T) {
	profile := types.UserProfile{
		From:                types.NewDate(2025, time.March, 9),
		To:                  types.NewDate(2025, time.June, 30),
		Age:                 types.Int(61),
		Gender:              "female",
		Country:             "japan",
		Gastronomy:          "japanese",
		Height:              types.Float(158.5),
		Weight:              types.Float(52.25),
		ActivityLevel:       "light",
		DietaryRestrictions: []string{"gluten free", "no shellfish"},
		Goals:               []string{"bone density", "energy"},
		HealthConditions:    nil,
		FoodPreferences:     []string{"fish"},
		DailyCalorieIntake:  types.Int(1650),
		MacroRatios:         types.MacroRatios{Protein: types.Float(0.25)},
	}

	prompt := BuildPrompt(profile, "Japanese", "")

	assert.Contains(t, prompt, "- Height: 158.5 cm")
	assert.Contains(t, prompt, "- Weight: 52.25 kg")
	assert.Contains(t, prompt, "- Dietary Restrictions: gluten free, no shellfish")
	assert.Contains(t, prompt, "- Goals: bone density, energy")
	assert.Contains(t, prompt, "Protein: 0.25, Fat: , Carbohydrates: ")
	assert.Contains(t, prompt, "From 2025-03-09 to 2025-06-30")
}
