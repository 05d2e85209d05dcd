package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pageza/nutriplan/backend/internal/types"
)

// planInstructions is filled with the user's country and the output language.
const planInstructions = `As a highly skilled nutritionist and wellness coach, create a comprehensive and personalized wellness plan. This plan should be based on the user's unique data, goals, and dietary preferences. Please ensure the following:

### Meal Plan
Design a meal plan that includes:
- **3 breakfasts, 3 lunches, 3 dinners, and 3 snacks**
- Each meal should have:
  - A detailed description, specific calorie count, and macronutrient breakdown (protein, fat, carbohydrates)
- Tailor meals to the user's **daily calorie intake** and **macro ratios**
- Integrate **dietary restrictions** and **food preferences** to ensure the plan is both enjoyable and suitable for the user
- Meals should be aligned with the user's **gastronomy** and **micronutrient requirements** from the users country of %s

### Exercise Recommendations
Provide **3 exercise recommendations** that align with the user's:
- **Activity level**, **goals**, and **health conditions**
- Each recommendation should specify the **type of exercise**, **duration**, and **frequency**

### Recipe Suggestions
Include **1 recipe suggestion per meal** with:
- **Name and description** for easy preparation
- Ensure recipes are simple, health-conscious, and aligned with the user's dietary needs

### Additional Wellness Recommendations
Add **3 personalized wellness tips** to help the user enhance their overall health. These can include lifestyle adjustments, hydration reminders, mindfulness practices, or any other relevant advice.

### Formatting and Language Requirements
- **Output Format**: The plan should be presented in **HTML and CSS** format, following the structure below:
  - Use headings (e.g., '<h4>Breakfast</h4>') and lists ('<ul>', '<li>') for clarity.
  - Ensure the output is well-structured and visually organized for a clean display.
- **Language**: Translate all content to %s.
- **Date Formatting**: Display the "From" and "To" dates in this format: "December 31, 2024".
- **Uniqueness**: Generate a completely unique plan for every user, avoiding repetition and ensuring originality each time.
- **never** use the same plan for different users.
- **never** use a title, just the headings for each section.

`

const exampleOutput = `### Example Output Format (Do Not Copy)
Here is an example structure for the output format. **Do not use this data**; generate original content based on the user's profile.

"<body>
  <h4>Breakfast</h4>
  <ul>
    <li>Scrambled tofu with spinach and tomatoes (300 calories, P: 20g, F: 15g, C: 25g)</li>
    <li>Chia pudding with almond milk and fresh fruits (250 calories, P: 8g, F: 15g, C: 30g)</li>
    <li>Vegetable smoothie with kale, banana, and flaxseeds (400 calories, P: 10g, F: 14g, C: 60g)</li>
  </ul>
  <h4>Lunch</h4>
  <ul>
    <li>Quinoa and black bean salad with diced peppers (450 calories, P: 15g, F: 10g, C: 70g)</li>
  </ul>
  <h4>Exercise Recommendations</h4>
  <ul>
    <li>30 minutes of brisk walking, 5 days a week</li>
  </ul>
  <h4>Additional Recommendations</h4>
  <ul>
    <li>Stay hydrated throughout the day</li>
  </ul>
</body>"

`

const closingLine = "Thank you for creating an impactful, unique, and user-centered wellness plan.\n"

// BuildPrompt renders the wellness plan prompt for a profile, an output
// language and the goal the user picked. It never fails; blank fields are
// rendered as empty strings.
func BuildPrompt(profile types.UserProfile, language, vibe string) string {
	var b strings.Builder
	fmt.Fprintf(&b, planInstructions, profile.Country, language)
	b.WriteString(exampleOutput)

	macros := profile.MacroRatios
	micros := profile.MicroNutrientRequirements

	b.WriteString("### User Data\n")
	b.WriteString("Please use the following personalized information to tailor the wellness plan:\n")
	fmt.Fprintf(&b, "- Primary Goal: %s\n", vibe)
	fmt.Fprintf(&b, "- Age: %s\n", formatInt(profile.Age))
	fmt.Fprintf(&b, "- Gender: %s\n", profile.Gender)
	fmt.Fprintf(&b, "- Country: %s\n", profile.Country)
	fmt.Fprintf(&b, "- Cuisine Preference: %s\n", profile.Gastronomy)
	fmt.Fprintf(&b, "- Height: %s cm\n", formatFloat(profile.Height))
	fmt.Fprintf(&b, "- Weight: %s kg\n", formatFloat(profile.Weight))
	fmt.Fprintf(&b, "- Activity Level: %s\n", profile.ActivityLevel)
	fmt.Fprintf(&b, "- Dietary Restrictions: %s\n", strings.Join(profile.DietaryRestrictions, ", "))
	fmt.Fprintf(&b, "- Goals: %s\n", strings.Join(profile.Goals, ", "))
	fmt.Fprintf(&b, "- Health Conditions: %s\n", strings.Join(profile.HealthConditions, ", "))
	fmt.Fprintf(&b, "- Food Preferences: %s\n", strings.Join(profile.FoodPreferences, ", "))
	fmt.Fprintf(&b, "- Daily Calorie Intake: %s\n", formatInt(profile.DailyCalorieIntake))
	fmt.Fprintf(&b, "- Macro Ratios: Protein: %s, Fat: %s, Carbohydrates: %s\n",
		formatFloat(macros.Protein), formatFloat(macros.Fat), formatFloat(macros.Carbohydrates))
	fmt.Fprintf(&b, "- Micronutrient Requirements: Vitamin A: %s mcg, Vitamin B: %s mcg, Vitamin C: %s mg, Iron: %s mg\n",
		formatFloat(micros.VitaminA), formatFloat(micros.VitaminB), formatFloat(micros.VitaminC), formatFloat(micros.Iron))
	fmt.Fprintf(&b, "- Plan Date Range: From %s to %s\n\n", profile.From, profile.To)

	b.WriteString(closingLine)
	return b.String()
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
