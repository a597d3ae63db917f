// Package nutrition provides rough nutrition and calorie-burn estimates for
// extracted records that state none of their own. Estimates come from a
// small built-in lookup table and are clearly approximate; figures stated in
// the source text always take precedence upstream.
package nutrition

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wellfed/extraction/internal/domain/recipe"
	"github.com/wellfed/extraction/internal/domain/workout"
)

// perServingProfile is an approximate nutrition contribution of one
// ingredient per serving. Values are deliberately coarse.
type perServingProfile struct {
	calories int
	protein  float64
	carbs    float64
	fat      float64
}

// ingredientProfiles maps ingredient name fragments to their approximate
// per-serving contribution. Matching is substring-based on the lowercased
// item name; the first matching entry wins.
var ingredientProfiles = []struct {
	fragment string
	profile  perServingProfile
}{
	{"chicken", perServingProfile{calories: 165, protein: 31, fat: 3.6}},
	{"beef", perServingProfile{calories: 250, protein: 26, fat: 15}},
	{"pork", perServingProfile{calories: 242, protein: 27, fat: 14}},
	{"salmon", perServingProfile{calories: 208, protein: 20, fat: 13}},
	{"tuna", perServingProfile{calories: 132, protein: 28, fat: 1}},
	{"egg", perServingProfile{calories: 78, protein: 6, fat: 5}},
	{"tofu", perServingProfile{calories: 76, protein: 8, carbs: 2, fat: 4.8}},
	{"rice", perServingProfile{calories: 130, protein: 2.7, carbs: 28}},
	{"pasta", perServingProfile{calories: 131, protein: 5, carbs: 25, fat: 1.1}},
	{"noodle", perServingProfile{calories: 138, protein: 4.5, carbs: 25, fat: 2}},
	{"bread", perServingProfile{calories: 79, protein: 2.7, carbs: 15, fat: 1}},
	{"flour", perServingProfile{calories: 110, protein: 3, carbs: 23}},
	{"potato", perServingProfile{calories: 77, protein: 2, carbs: 17}},
	{"oat", perServingProfile{calories: 150, protein: 5, carbs: 27, fat: 3}},
	{"quinoa", perServingProfile{calories: 120, protein: 4.4, carbs: 21, fat: 1.9}},
	{"bean", perServingProfile{calories: 127, protein: 9, carbs: 23}},
	{"lentil", perServingProfile{calories: 116, protein: 9, carbs: 20}},
	{"cheese", perServingProfile{calories: 113, protein: 7, carbs: 1, fat: 9}},
	{"milk", perServingProfile{calories: 42, protein: 3.4, carbs: 5, fat: 1}},
	{"yogurt", perServingProfile{calories: 59, protein: 10, carbs: 3.6, fat: 0.4}},
	{"cream", perServingProfile{calories: 120, carbs: 1, fat: 12}},
	{"butter", perServingProfile{calories: 102, fat: 12}},
	{"oil", perServingProfile{calories: 119, fat: 13.5}},
	{"avocado", perServingProfile{calories: 160, protein: 2, carbs: 9, fat: 15}},
	{"nut", perServingProfile{calories: 170, protein: 5, carbs: 6, fat: 15}},
	{"sugar", perServingProfile{calories: 49, carbs: 12.6}},
	{"honey", perServingProfile{calories: 64, carbs: 17}},
	{"banana", perServingProfile{calories: 105, protein: 1.3, carbs: 27}},
	{"apple", perServingProfile{calories: 95, carbs: 25}},
	{"berr", perServingProfile{calories: 50, carbs: 12}},
	{"tomato", perServingProfile{calories: 22, protein: 1, carbs: 4.8}},
	{"onion", perServingProfile{calories: 44, protein: 1.2, carbs: 10}},
	{"carrot", perServingProfile{calories: 25, carbs: 6}},
	{"spinach", perServingProfile{calories: 7, protein: 0.9, carbs: 1.1}},
	{"broccoli", perServingProfile{calories: 31, protein: 2.5, carbs: 6}},
	{"pepper", perServingProfile{calories: 24, protein: 1, carbs: 6}},
	{"mushroom", perServingProfile{calories: 15, protein: 2.2, carbs: 2.3}},
	{"corn", perServingProfile{calories: 90, protein: 3.2, carbs: 19, fat: 1.4}},
}

// caloriesPerMinute is the rough burn rate for a moderately active adult by
// workout category.
var caloriesPerMinute = map[workout.Category]int{
	workout.CategoryStrength:    6,
	workout.CategoryCardio:      10,
	workout.CategoryHIIT:        12,
	workout.CategoryFlexibility: 3,
	workout.CategoryMixed:       8,
}

// Service computes nutrition estimates for extracted records.
type Service struct {
	logger *zap.Logger
}

// NewService creates a nutrition estimation service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// EstimateRecipeNutrition fills in approximate per-serving nutrition for a
// recipe that states none. Recipes that already carry nutrition figures are
// returned untouched; the text is always authoritative.
func (s *Service) EstimateRecipeNutrition(r *recipe.ExtractedRecipe) *recipe.Nutrition {
	if r == nil || len(r.Ingredients) == 0 {
		return nil
	}
	if r.Nutrition != nil {
		return r.Nutrition
	}

	var total perServingProfile
	matched := 0
	for _, ing := range r.Ingredients {
		p, ok := lookupProfile(ing.Item)
		if !ok {
			continue
		}
		matched++
		total.calories += p.calories
		total.protein += p.protein
		total.carbs += p.carbs
		total.fat += p.fat
	}
	if matched == 0 {
		return nil
	}

	servings := firstServingCount(r.Metadata.Servings)
	s.logger.Debug("estimated recipe nutrition",
		zap.Int("matchedIngredients", matched),
		zap.Int("servings", servings))

	return &recipe.Nutrition{
		Calories: total.calories / servings,
		Protein:  round1(total.protein / float64(servings)),
		Carbs:    round1(total.carbs / float64(servings)),
		Fat:      round1(total.fat / float64(servings)),
	}
}

// EstimateWorkoutCalories returns a rough calorie burn for one session based
// on the plan's category and stated duration. Zero means no estimate was
// possible.
func (s *Service) EstimateWorkoutCalories(w *workout.ExtractedWorkout) int {
	if w == nil {
		return 0
	}
	minutes := durationMinutes(w.Metadata.EstimatedDuration)
	if minutes == 0 {
		return 0
	}
	rate, ok := caloriesPerMinute[w.Category]
	if !ok {
		rate = caloriesPerMinute[workout.CategoryMixed]
	}
	return minutes * rate
}

func lookupProfile(item string) (perServingProfile, bool) {
	lower := strings.ToLower(item)
	for _, entry := range ingredientProfiles {
		if strings.Contains(lower, entry.fragment) {
			return entry.profile, true
		}
	}
	return perServingProfile{}, false
}

// firstServingCount reads the low end of a servings value like "4" or "4-6".
// Anything unreadable counts as a single serving.
func firstServingCount(servings string) int {
	digits := servings
	if i := strings.IndexAny(servings, "-"); i > 0 {
		digits = servings[:i]
	}
	n, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

// durationMinutes reads the leading number out of a duration like
// "45 minutes" or "1 hour". Hours convert to minutes.
func durationMinutes(duration string) int {
	fields := strings.Fields(strings.ToLower(duration))
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 0
	}
	for _, f := range fields[1:] {
		if strings.HasPrefix(f, "hour") || f == "hr" || f == "hrs" {
			return n * 60
		}
	}
	return n
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
