// Package inbound defines the driving-side ports of the application
// following hexagonal architecture principles.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wellfed/extraction/internal/domain/recipe"
	"github.com/wellfed/extraction/internal/domain/shared"
	"github.com/wellfed/extraction/internal/domain/workout"
)

// ContentType classifies what kind of structured content a chat message
// appears to carry.
type ContentType string

const (
	ContentTypeRecipe  ContentType = "recipe"
	ContentTypeWorkout ContentType = "workout"
	ContentTypeUnknown ContentType = "unknown"
)

// ExtractionResult bundles one extracted record with its validation report.
// Exactly one of Recipe or Workout is set for a known content type.
type ExtractionResult struct {
	Type       ContentType               `json:"type"`
	Recipe     *recipe.ExtractedRecipe   `json:"recipe,omitempty"`
	Workout    *workout.ExtractedWorkout `json:"workout,omitempty"`
	Validation shared.ValidationReport   `json:"validation"`

	// Trace is populated only when tracing is enabled on the service; the
	// extraction engines themselves never log.
	Trace *Trace `json:"trace,omitempty"`
}

// Trace is the opt-in observability record of one extraction run.
type Trace struct {
	DetectedType ContentType   `json:"detectedType"`
	FromCache    bool          `json:"fromCache"`
	Stages       []StageTrace  `json:"stages,omitempty"`
	Elapsed      time.Duration `json:"elapsed"`
}

// StageTrace summarizes one extraction stage.
type StageTrace struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
	Note  string `json:"note,omitempty"`
}

// ExtractionService is the inbound port for turning chat text into typed,
// validated records.
type ExtractionService interface {
	// Detect runs the cheap keyword pre-filter without full extraction.
	Detect(text string) ContentType

	// Extract auto-detects the content type and runs the matching engine.
	Extract(ctx context.Context, text string) (*ExtractionResult, error)

	// ExtractRecipe and ExtractWorkout force a specific domain engine.
	ExtractRecipe(ctx context.Context, text string) (*ExtractionResult, error)
	ExtractWorkout(ctx context.Context, text string) (*ExtractionResult, error)

	// Save persists a valid result for a user and returns the assigned ID.
	Save(ctx context.Context, result *ExtractionResult, userID uuid.UUID) (uuid.UUID, error)
}
