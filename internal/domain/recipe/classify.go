package recipe

import (
	"sort"
	"strings"
)

// Keyword-frequency classifiers. Each bucket counts occurrences of its
// signature keywords across the whole lowercased document; the bucket with
// the most hits wins and zero hits leaves the field empty.

var cuisineKeywords = map[string][]string{
	"italian":       {"pasta", "spaghetti", "parmesan", "mozzarella", "basil", "oregano", "risotto", "marinara"},
	"mexican":       {"tortilla", "salsa", "taco", "cumin", "cilantro", "jalapeno", "jalapeño", "enchilada", "lime"},
	"asian":         {"soy sauce", "ginger", "sesame", "stir-fry", "stir fry", "rice vinegar", "scallion", "wok", "teriyaki"},
	"indian":        {"curry", "garam masala", "turmeric", "cardamom", "masala", "naan", "ghee", "coriander"},
	"french":        {"shallot", "herbs de provence", "baguette", "bechamel", "béchamel", "crème", "dijon", "ratatouille"},
	"mediterranean": {"feta", "olives", "hummus", "tahini", "pita", "tzatziki", "couscous"},
	"american":      {"burger", "barbecue", "bbq", "mac and cheese", "cornbread", "ranch"},
}

var courseKeywords = map[string][]string{
	"breakfast":   {"breakfast", "pancake", "waffle", "omelet", "omelette", "oatmeal", "brunch", "granola"},
	"dessert":     {"dessert", "cake", "cookie", "brownie", "frosting", "pudding", "pie", "ice cream"},
	"appetizer":   {"appetizer", "starter", "dip", "finger food", "hors d'oeuvre"},
	"main course": {"dinner", "main course", "entree", "entrée", "main dish"},
	"side dish":   {"side dish", "side of"},
	"snack":       {"snack", "trail mix", "energy ball"},
	"beverage":    {"smoothie", "cocktail", "juice", "drink", "latte"},
	"salad":       {"salad", "vinaigrette", "dressing"},
	"soup":        {"soup", "broth", "stew", "chowder", "bisque"},
}

// Tag vocabularies: presence of any keyword assigns the tag once.
var dietaryTags = map[string][]string{
	"vegetarian":   {"vegetarian"},
	"vegan":        {"vegan"},
	"gluten-free":  {"gluten-free", "gluten free"},
	"dairy-free":   {"dairy-free", "dairy free"},
	"keto":         {"keto", "ketogenic"},
	"paleo":        {"paleo"},
	"low-carb":     {"low-carb", "low carb"},
	"high-protein": {"high-protein", "high protein"},
}

var methodTags = map[string][]string{
	"baked":       {"bake", "baked", "baking", "oven"},
	"grilled":     {"grill", "grilled", "grilling"},
	"fried":       {"fry", "fried", "frying", "saute", "sauté", "sautéed"},
	"roasted":     {"roast", "roasted", "roasting"},
	"steamed":     {"steam", "steamed", "steaming"},
	"slow-cooked": {"slow cooker", "slow-cooked", "crockpot", "crock pot"},
	"no-cook":     {"no-bake", "no bake", "no-cook", "no cook"},
	"one-pot":     {"one-pot", "one pot", "sheet pan", "one-pan", "one pan"},
}

func classifyCuisine(text string) string {
	return topBucket(text, cuisineKeywords)
}

func classifyCourse(text string) string {
	return topBucket(text, courseKeywords)
}

func isKnownCuisine(name string) bool {
	_, ok := cuisineKeywords[name]
	return ok
}

func isKnownCourse(name string) bool {
	_, ok := courseKeywords[name]
	return ok
}

// extractTags collects dietary and cooking-method tags in vocabulary order
// so the result is deterministic for identical input.
func extractTags(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	for _, name := range []string{"vegetarian", "vegan", "gluten-free", "dairy-free", "keto", "paleo", "low-carb", "high-protein"} {
		if anyKeyword(lower, dietaryTags[name]) {
			tags = append(tags, name)
		}
	}
	for _, name := range []string{"baked", "grilled", "fried", "roasted", "steamed", "slow-cooked", "no-cook", "one-pot"} {
		if anyKeyword(lower, methodTags[name]) {
			tags = append(tags, name)
		}
	}
	return tags
}

func anyKeyword(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// topBucket returns the bucket name with the highest keyword occurrence
// count, or empty when nothing matched. Ties between distinct buckets leave
// the field empty rather than picking arbitrarily.
func topBucket(text string, buckets map[string][]string) string {
	lower := strings.ToLower(text)

	best, bestCount, secondCount := "", 0, 0
	// Iterate names sorted for determinism.
	for _, name := range sortedKeys(buckets) {
		count := 0
		for _, k := range buckets[name] {
			count += strings.Count(lower, k)
		}
		switch {
		case count > bestCount:
			secondCount = bestCount
			best, bestCount = name, count
		case count > secondCount:
			secondCount = count
		}
	}
	if bestCount == 0 || bestCount == secondCount {
		return ""
	}
	return best
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
