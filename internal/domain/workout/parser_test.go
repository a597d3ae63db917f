package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ParserTestSuite struct {
	suite.Suite
}

func TestParserTestSuite(t *testing.T) {
	suite.Run(t, new(ParserTestSuite))
}

const strengthText = `Full Body Blast

Duration: 45 minutes
Level: Intermediate

Exercises:
- Squats: 3 sets of 12 reps
- Push-ups: 3 sets to failure
- Plank - 60 seconds
- Dumbbell rows: 3 sets of 8-10 reps with 25 lbs (rest 90 seconds)

Cool-down:
5 minutes of light stretching`

func (s *ParserTestSuite) TestParseStructuredWorkout() {
	// Act
	w := Parse(strengthText)

	// Assert
	s.Equal("Full Body Blast", w.Title)
	s.Require().Len(w.Exercises, 4)
	s.Equal("45 minutes", w.Metadata.EstimatedDuration)
	s.Equal(DifficultyIntermediate, w.Metadata.Difficulty)
	s.Equal([]string{"full body"}, w.Metadata.TargetMuscleGroups)
	s.Equal([]string{"dumbbells"}, w.Metadata.Equipment)
	s.Equal("5 minutes of light stretching", w.Metadata.CooldownNotes)
	s.Equal(CategoryStrength, w.Category)
	s.True(w.IsComplete)
	s.Empty(w.MissingFields)
}

func (s *ParserTestSuite) TestParsedExerciseDetails() {
	w := Parse(strengthText)
	s.Require().Len(w.Exercises, 4)

	squats := w.Exercises[0]
	s.Equal("Squats", squats.Name)
	s.Equal(3, squats.Sets)
	s.Equal("12", squats.Reps)
	s.Empty(squats.Duration)

	pushups := w.Exercises[1]
	s.Equal("Push-ups", pushups.Name)
	s.Equal(3, pushups.Sets)
	s.Equal("to failure", pushups.Reps)

	plank := w.Exercises[2]
	s.Equal("Plank", plank.Name)
	s.Zero(plank.Sets)
	s.Empty(plank.Reps)
	s.Equal("60 seconds", plank.Duration)

	rows := w.Exercises[3]
	s.Equal("Dumbbell rows", rows.Name)
	s.Equal(3, rows.Sets)
	s.Equal("8-10", rows.Reps)
	s.Equal("25", rows.Weight)
	s.Equal("lbs", rows.WeightUnit)
	s.Equal("90 seconds", rows.Rest)
	// The rest duration must not leak into the exercise duration.
	s.Empty(rows.Duration)
}

func (s *ParserTestSuite) TestExerciseFallbackWithoutHeaders() {
	text := `Quick morning routine!
Jumping jacks 2 sets of 20 reps
Burpees 3 sets of 10 reps`

	w := Parse(text)

	s.Require().Len(w.Exercises, 2)
	s.Equal("Jumping jacks 2 sets of 20 reps", w.Exercises[0].Name)
}

func (s *ParserTestSuite) TestFallbackSkipsMetadataLines() {
	// "Duration: 30 minutes" is plan metadata, not an exercise, even though
	// it carries a minutes figure.
	text := `Morning Blast
Duration: 30 minutes
Squats: 3 sets of 10 reps
Lunges: 2 sets of 12 reps`

	w := Parse(text)

	s.Require().Len(w.Exercises, 2)
	s.Equal("Squats", w.Exercises[0].Name)
	s.Equal("Lunges", w.Exercises[1].Name)
	s.Equal("30 minutes", w.Metadata.EstimatedDuration)
}

func (s *ParserTestSuite) TestParseIsDeterministic() {
	first := Parse(strengthText)
	second := Parse(strengthText)

	second.ExtractedAt = first.ExtractedAt
	s.Equal(first, second)
}

func (s *ParserTestSuite) TestMalformedInputNeverPanics() {
	for _, text := range []string{"", "\n\n", "- x\n- y", ": : :"} {
		w := Parse(text)
		s.NotNil(w)
		s.False(w.IsComplete)
	}
}

func TestParseExerciseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Exercise
	}{
		{
			name: "sets and reps",
			line: "- Squats: 3 sets of 12 reps",
			want: Exercise{Name: "Squats", Sets: 3, Reps: "12"},
		},
		{
			name: "rep range compacted",
			line: "Lunges: 3 sets of 8 - 10 reps",
			want: Exercise{Name: "Lunges", Sets: 3, Reps: "8-10"},
		},
		{
			name: "duration exercise",
			line: "Plank - 60 seconds",
			want: Exercise{Name: "Plank", Duration: "60 seconds"},
		},
		{
			name: "hyphenated name stays intact",
			line: "Push-ups: 2 sets of 15 reps",
			want: Exercise{Name: "Push-ups", Sets: 2, Reps: "15"},
		},
		{
			name: "to failure",
			line: "Pull-ups: 3 sets to failure",
			want: Exercise{Name: "Pull-ups", Sets: 3, Reps: "to failure"},
		},
		{
			name: "weight and unit",
			line: "Bench press: 4 sets of 8 reps at 135 lbs",
			want: Exercise{Name: "Bench press", Sets: 4, Reps: "8", Weight: "135", WeightUnit: "lbs"},
		},
		{
			name: "kilogram weight",
			line: "Deadlift: 5 sets of 5 reps with 100 kg",
			want: Exercise{Name: "Deadlift", Sets: 5, Reps: "5", Weight: "100", WeightUnit: "kg"},
		},
		{
			name: "rest key value",
			line: "Squats: 3 sets of 10 reps, rest: 60 seconds",
			want: Exercise{Name: "Squats", Sets: 3, Reps: "10", Rest: "60 seconds"},
		},
		{
			name: "intensity word",
			line: "Cycling: 20 minutes at moderate pace",
			want: Exercise{Name: "Cycling", Duration: "20 minutes", Intensity: IntensityMedium},
		},
		{
			name: "name only",
			line: "Mountain climbers",
			want: Exercise{Name: "Mountain climbers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseExerciseLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExerciseLineRejectsNoise(t *testing.T) {
	for _, line := range []string{"", "  ", "ab: 3 sets", "-"} {
		_, ok := ParseExerciseLine(line)
		assert.False(t, ok, "line %q should be rejected", line)
	}
}
