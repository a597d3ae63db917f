package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellfed/extraction/internal/ports/inbound"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want inbound.ContentType
	}{
		{
			name: "recipe signals",
			text: "Preheat the oven and whisk 2 cups of flour with the other ingredients.",
			want: inbound.ContentTypeRecipe,
		},
		{
			name: "workout signals",
			text: "Do 3 sets of 10 reps of squats, then rest for a minute.",
			want: inbound.ContentTypeWorkout,
		},
		{
			name: "small talk",
			text: "hello there, how are you doing today?",
			want: inbound.ContentTypeUnknown,
		},
		{
			name: "single signal stays below threshold",
			text: "I ran to the store to buy a cup of milk.",
			want: inbound.ContentTypeUnknown,
		},
		{
			name: "empty",
			text: "",
			want: inbound.ContentTypeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestDetectTieIsUnknown(t *testing.T) {
	// Two recipe signals against two workout signals. The filter refuses to
	// guess on a tie.
	text := "Bake the chicken, then stir. After dinner do squats and a plank."

	assert.Equal(t, inbound.ContentTypeUnknown, Detect(text))
}

func TestDetectCountsDistinctSignalsOnce(t *testing.T) {
	// One signal repeated many times is still one vote.
	text := "bake bake bake bake bake"

	assert.Equal(t, inbound.ContentTypeUnknown, Detect(text))
}
