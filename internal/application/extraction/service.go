// Package extraction implements the inbound extraction port. It wires the
// pure domain engines to caching, persistence, and observability; all
// side effects live here, never in the engines.
package extraction

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wellfed/extraction/internal/domain/recipe"
	"github.com/wellfed/extraction/internal/domain/workout"
	"github.com/wellfed/extraction/internal/ports/inbound"
	"github.com/wellfed/extraction/internal/ports/outbound"
	"github.com/wellfed/extraction/pkg/errors"
)

// Metrics is the minimal observability surface the service reports to.
// The prometheus-backed implementation lives under infrastructure.
type Metrics interface {
	RecordExtraction(contentType string, valid bool, completeness int, elapsed time.Duration)
	RecordCacheLookup(hit bool)
	RecordSaved(contentType string)
}

// Config controls service-level behavior. The engines themselves take no
// configuration; determinism depends on that.
type Config struct {
	MaxInputBytes int
	CacheTTL      time.Duration
	TraceEnabled  bool
}

// Service implements inbound.ExtractionService.
type Service struct {
	cfg     Config
	logger  *zap.Logger
	cache   outbound.CacheRepository
	repo    outbound.ExtractionRepository
	metrics Metrics
}

// NewService creates an extraction service. Cache, repo, and metrics may be
// nil; the service degrades to pure in-process extraction without them.
func NewService(
	cfg Config,
	logger *zap.Logger,
	cache outbound.CacheRepository,
	repo outbound.ExtractionRepository,
	metrics Metrics,
) *Service {
	if cfg.MaxInputBytes <= 0 {
		cfg.MaxInputBytes = 64 * 1024
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	return &Service{
		cfg:     cfg,
		logger:  logger,
		cache:   cache,
		repo:    repo,
		metrics: metrics,
	}
}

// Detect runs the keyword pre-filter without full extraction.
func (s *Service) Detect(text string) inbound.ContentType {
	return Detect(text)
}

// Extract auto-detects the content type and runs the matching engine. Text
// the pre-filter cannot classify is rejected rather than guessed at.
func (s *Service) Extract(ctx context.Context, text string) (*inbound.ExtractionResult, error) {
	if err := s.checkSize(text); err != nil {
		return nil, err
	}

	switch Detect(text) {
	case inbound.ContentTypeRecipe:
		return s.run(ctx, inbound.ContentTypeRecipe, text)
	case inbound.ContentTypeWorkout:
		return s.run(ctx, inbound.ContentTypeWorkout, text)
	default:
		return nil, errors.NewAppError(
			errors.CodeUnsupportedType,
			"Text does not look like a recipe or a workout",
			"",
		)
	}
}

// ExtractRecipe forces the recipe engine regardless of detection.
func (s *Service) ExtractRecipe(ctx context.Context, text string) (*inbound.ExtractionResult, error) {
	if err := s.checkSize(text); err != nil {
		return nil, err
	}
	return s.run(ctx, inbound.ContentTypeRecipe, text)
}

// ExtractWorkout forces the workout engine regardless of detection.
func (s *Service) ExtractWorkout(ctx context.Context, text string) (*inbound.ExtractionResult, error) {
	if err := s.checkSize(text); err != nil {
		return nil, err
	}
	return s.run(ctx, inbound.ContentTypeWorkout, text)
}

// Save persists a valid result for a user and returns the assigned ID.
// Invalid results are never written; the validation errors come back to the
// caller inside the returned error.
func (s *Service) Save(ctx context.Context, result *inbound.ExtractionResult, userID uuid.UUID) (uuid.UUID, error) {
	if s.repo == nil {
		return uuid.Nil, errors.NewServiceUnavailableError("extraction repository")
	}
	if result == nil {
		return uuid.Nil, errors.NewBadRequestError("nothing to save")
	}
	if !result.Validation.IsValid {
		return uuid.Nil, errors.NewNotSaveableError(result.Validation.Errors)
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to serialize extraction")
	}

	rec := &outbound.ExtractionRecord{
		ID:           uuid.New(),
		UserID:       userID,
		Type:         string(result.Type),
		Title:        resultTitle(result),
		Payload:      payload,
		IsValid:      result.Validation.IsValid,
		Completeness: result.Validation.Completeness,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("failed to persist extraction",
			zap.String("type", rec.Type),
			zap.Error(err))
		return uuid.Nil, errors.NewDatabaseError("save extraction", err)
	}

	s.logger.Info("extraction saved",
		zap.String("id", rec.ID.String()),
		zap.String("type", rec.Type),
		zap.Int("completeness", rec.Completeness))

	if s.metrics != nil {
		s.metrics.RecordSaved(rec.Type)
	}

	return rec.ID, nil
}

func (s *Service) checkSize(text string) error {
	if len(text) > s.cfg.MaxInputBytes {
		return errors.NewInputTooLargeError(len(text), s.cfg.MaxInputBytes)
	}
	return nil
}

// run executes one engine with cache lookup around it. Cache failures are
// logged and ignored; the engine result is always authoritative.
func (s *Service) run(ctx context.Context, ct inbound.ContentType, text string) (*inbound.ExtractionResult, error) {
	start := time.Now()
	key := cacheKey(ct, text)

	if cached := s.cacheGet(ctx, key); cached != nil {
		if s.cfg.TraceEnabled {
			cached.Trace = &inbound.Trace{
				DetectedType: ct,
				FromCache:    true,
				Elapsed:      time.Since(start),
			}
		}
		return cached, nil
	}

	result := &inbound.ExtractionResult{Type: ct}
	switch ct {
	case inbound.ContentTypeRecipe:
		r := recipe.Parse(text)
		result.Recipe = r
		result.Validation = recipe.Validate(r)
	case inbound.ContentTypeWorkout:
		w := workout.Parse(text)
		result.Workout = w
		result.Validation = workout.Validate(w)
	}

	elapsed := time.Since(start)
	if s.cfg.TraceEnabled {
		result.Trace = &inbound.Trace{
			DetectedType: ct,
			Stages:       stageTraces(result),
			Elapsed:      elapsed,
		}
	}

	s.logger.Debug("extraction complete",
		zap.String("type", string(ct)),
		zap.Bool("valid", result.Validation.IsValid),
		zap.Int("completeness", result.Validation.Completeness),
		zap.Duration("elapsed", elapsed))

	if s.metrics != nil {
		s.metrics.RecordExtraction(string(ct), result.Validation.IsValid, result.Validation.Completeness, elapsed)
	}

	s.cacheSet(ctx, key, result)
	return result, nil
}

func (s *Service) cacheGet(ctx context.Context, key string) *inbound.ExtractionResult {
	if s.cache == nil {
		return nil
	}
	data, err := s.cache.Get(ctx, key)
	if s.metrics != nil {
		s.metrics.RecordCacheLookup(err == nil)
	}
	if err != nil {
		return nil
	}
	var result inbound.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.logger.Warn("discarding malformed cache entry", zap.String("key", key), zap.Error(err))
		if delErr := s.cache.Delete(ctx, key); delErr != nil {
			s.logger.Warn("failed to evict cache entry", zap.String("key", key), zap.Error(delErr))
		}
		return nil
	}
	result.Trace = nil
	return &result
}

func (s *Service) cacheSet(ctx context.Context, key string, result *inbound.ExtractionResult) {
	if s.cache == nil {
		return
	}
	// Traces describe one run, not the content; they never enter the cache.
	clone := *result
	clone.Trace = nil
	data, err := json.Marshal(&clone)
	if err != nil {
		s.logger.Warn("failed to serialize result for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("failed to cache extraction", zap.String("key", key), zap.Error(err))
	}
}

// cacheKey hashes the full input so identical text always maps to the same
// entry regardless of length.
func cacheKey(ct inbound.ContentType, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "extract:" + string(ct) + ":" + hex.EncodeToString(sum[:16])
}

func resultTitle(result *inbound.ExtractionResult) string {
	switch {
	case result.Recipe != nil:
		return result.Recipe.Title
	case result.Workout != nil:
		return result.Workout.Title
	default:
		return ""
	}
}

func stageTraces(result *inbound.ExtractionResult) []inbound.StageTrace {
	switch {
	case result.Recipe != nil:
		return []inbound.StageTrace{
			{Name: "ingredients", Items: len(result.Recipe.Ingredients)},
			{Name: "instructions", Items: len(result.Recipe.Instructions)},
			{Name: "tags", Items: len(result.Recipe.Tags)},
		}
	case result.Workout != nil:
		return []inbound.StageTrace{
			{Name: "exercises", Items: len(result.Workout.Exercises)},
			{Name: "muscleGroups", Items: len(result.Workout.Metadata.TargetMuscleGroups)},
		}
	default:
		return nil
	}
}
