package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		items []RubricItem
		want  int
	}{
		{
			name: "all met",
			items: []RubricItem{
				{Name: "a", Weight: 2, Met: true},
				{Name: "b", Weight: 1, Met: true},
			},
			want: 100,
		},
		{
			name: "none met",
			items: []RubricItem{
				{Name: "a", Weight: 2},
				{Name: "b", Weight: 1},
			},
			want: 0,
		},
		{
			name: "rounds to nearest percent",
			items: []RubricItem{
				{Name: "a", Weight: 1, Met: true},
				{Name: "b", Weight: 1, Met: true},
				{Name: "c", Weight: 1},
			},
			want: 67,
		},
		{
			name: "weights count",
			items: []RubricItem{
				{Name: "a", Weight: 2, Met: true},
				{Name: "b", Weight: 2},
				{Name: "c", Weight: 1},
			},
			want: 40,
		},
		{
			name:  "empty rubric",
			items: nil,
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.items))
		})
	}
}

func TestNewReportDerivesValidity(t *testing.T) {
	valid := NewReport(nil, []string{"minor gap"}, nil)
	assert.True(t, valid.IsValid)
	assert.Equal(t, []string{"minor gap"}, valid.Warnings)

	invalid := NewReport([]string{"broken"}, nil, nil)
	assert.False(t, invalid.IsValid)
	assert.Equal(t, []string{"broken"}, invalid.Errors)
}
