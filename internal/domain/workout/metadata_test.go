package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellfed/extraction/internal/textscan"
)

func metadataFor(text string) Metadata {
	return extractMetadata(text, textscan.SplitLines(text))
}

func TestExtractDuration(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Duration: 45 minutes", "45 minutes"},
		{"Workout time: 1 hour 15 minutes", "1 hour 15 minutes"},
		{"Estimated duration: 30 mins", "30 mins"},
		{"A quick 20-minute session", "20 minutes"},
		{"no time mentioned", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractDuration(tt.text), tt.text)
	}
}

func TestExtractDifficulty(t *testing.T) {
	tests := []struct {
		text string
		want Difficulty
	}{
		{"Level: Beginner", DifficultyBeginner},
		{"Difficulty: Advanced", DifficultyAdvanced},
		{"Level: Moderate", DifficultyIntermediate},
		{"Level: hard", DifficultyAdvanced},
		{"suitable for a beginner", DifficultyBeginner},
		{"an intermediate routine", DifficultyIntermediate},
		{"just move a little", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractDifficulty(tt.text), tt.text)
	}
}

func TestMuscleGroupsAndEquipment(t *testing.T) {
	md := metadataFor("Dumbbell bench press for chest and triceps, squats for legs")

	// Vocabulary order, not text order.
	assert.Equal(t, []string{"chest", "arms", "legs"}, md.TargetMuscleGroups)
	assert.Equal(t, []string{"dumbbells", "bench"}, md.Equipment)
}

func TestMuscleGroupVocabularyIsClosed(t *testing.T) {
	md := metadataFor("Work your lats and quads with bodyweight moves")

	assert.Equal(t, []string{"back", "legs"}, md.TargetMuscleGroups)
	assert.Equal(t, []string{"bodyweight"}, md.Equipment)
}

func TestWarmupNotesFromSection(t *testing.T) {
	text := `Warm-up:
5 minutes jumping jacks
Arm circles

Exercises:
- Squats: 3 sets of 10 reps`

	md := metadataFor(text)

	assert.Equal(t, "5 minutes jumping jacks; Arm circles", md.WarmupNotes)
}

func TestCooldownNotesFromKeyValueLine(t *testing.T) {
	md := metadataFor("Cool-down: 5 minutes of easy walking")

	assert.Equal(t, "5 minutes of easy walking", md.CooldownNotes)
}
