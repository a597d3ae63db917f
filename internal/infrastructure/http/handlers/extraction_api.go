// Package handlers provides the JSON API handlers for the extraction
// service.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wellfed/extraction/internal/application/nutrition"
	"github.com/wellfed/extraction/internal/domain/recipe"
	"github.com/wellfed/extraction/internal/infrastructure/config"
	"github.com/wellfed/extraction/internal/ports/inbound"
	"github.com/wellfed/extraction/internal/ports/outbound"
	apperrors "github.com/wellfed/extraction/pkg/errors"
)

// ExtractionHandlers implements the REST endpoints.
type ExtractionHandlers struct {
	service   inbound.ExtractionService
	nutrition *nutrition.Service
	repo      outbound.ExtractionRepository
	features  config.FeatureFlags
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewExtractionHandlers creates the API handlers.
func NewExtractionHandlers(
	cfg *config.Config,
	service inbound.ExtractionService,
	nutritionService *nutrition.Service,
	repo outbound.ExtractionRepository,
	logger *zap.Logger,
) *ExtractionHandlers {
	return &ExtractionHandlers{
		service:   service,
		nutrition: nutritionService,
		repo:      repo,
		features:  cfg.Features,
		validate:  validator.New(),
		logger:    logger,
	}
}

type extractRequest struct {
	Text     string `json:"text" validate:"required"`
	Estimate bool   `json:"estimate,omitempty"`
}

type saveRequest struct {
	Text   string `json:"text" validate:"required"`
	Type   string `json:"type,omitempty" validate:"omitempty,oneof=recipe workout"`
	UserID string `json:"userId" validate:"required,uuid"`
}

type detectResponse struct {
	Type inbound.ContentType `json:"type"`
}

type extractResponse struct {
	*inbound.ExtractionResult
	CanSave            bool              `json:"canSave"`
	EstimatedNutrition *recipe.Nutrition `json:"estimatedNutrition,omitempty"`
	EstimatedCalories  int               `json:"estimatedCalories,omitempty"`
}

type saveResponse struct {
	ID     uuid.UUID                 `json:"id"`
	Result *inbound.ExtractionResult `json:"result"`
}

type recordResponse struct {
	ID           uuid.UUID       `json:"id"`
	UserID       uuid.UUID       `json:"userId"`
	Type         string          `json:"type"`
	Title        string          `json:"title"`
	Result       json.RawMessage `json:"result"`
	Completeness int             `json:"completeness"`
	CreatedAt    string          `json:"createdAt"`
}

type listResponse struct {
	Items  []recordResponse `json:"items"`
	Total  int              `json:"total"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
}

// Detect reports the content type pre-filter verdict without extracting.
func (h *ExtractionHandlers) Detect(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, http.StatusOK, detectResponse{Type: h.service.Detect(req.Text)})
}

// Extract auto-detects the content type and extracts.
func (h *ExtractionHandlers) Extract(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, h.service.Extract)
}

// ExtractRecipe forces the recipe engine.
func (h *ExtractionHandlers) ExtractRecipe(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, h.service.ExtractRecipe)
}

// ExtractWorkout forces the workout engine.
func (h *ExtractionHandlers) ExtractWorkout(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, h.service.ExtractWorkout)
}

func (h *ExtractionHandlers) extract(
	w http.ResponseWriter,
	r *http.Request,
	run func(ctx context.Context, text string) (*inbound.ExtractionResult, error),
) {
	var req extractRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := run(r.Context(), req.Text)
	if err != nil {
		h.respondError(w, err)
		return
	}

	resp := extractResponse{
		ExtractionResult: result,
		CanSave:          result.Validation.IsValid,
	}

	// Opt-in estimation: nutrition figures stated in the text always win,
	// and estimates ride alongside the record, which is never modified
	// after extraction.
	if req.Estimate && h.nutrition != nil {
		if result.Recipe != nil && result.Recipe.Nutrition == nil && h.features.EnableNutritionEstimates {
			resp.EstimatedNutrition = h.nutrition.EstimateRecipeNutrition(result.Recipe)
		}
		if result.Workout != nil && h.features.EnableCalorieEstimates {
			resp.EstimatedCalories = h.nutrition.EstimateWorkoutCalories(result.Workout)
		}
	}

	h.respond(w, http.StatusOK, resp)
}

// SaveExtraction extracts the submitted text and persists the result when it
// passes validation.
func (h *ExtractionHandlers) SaveExtraction(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if !h.decode(w, r, &req) {
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.respondError(w, apperrors.NewBadRequestError("userId is not a valid UUID"))
		return
	}

	var result *inbound.ExtractionResult
	switch inbound.ContentType(req.Type) {
	case inbound.ContentTypeRecipe:
		result, err = h.service.ExtractRecipe(r.Context(), req.Text)
	case inbound.ContentTypeWorkout:
		result, err = h.service.ExtractWorkout(r.Context(), req.Text)
	default:
		result, err = h.service.Extract(r.Context(), req.Text)
	}
	if err != nil {
		h.respondError(w, err)
		return
	}

	id, err := h.service.Save(r.Context(), result, userID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respond(w, http.StatusCreated, saveResponse{ID: id, Result: result})
}

// GetExtraction loads one saved extraction by ID.
func (h *ExtractionHandlers) GetExtraction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, apperrors.NewBadRequestError("id is not a valid UUID"))
		return
	}

	rec, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respond(w, http.StatusOK, toRecordResponse(rec))
}

// ListExtractions lists a user's saved extractions with pagination.
func (h *ExtractionHandlers) ListExtractions(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		h.respondError(w, apperrors.NewBadRequestError("userId query parameter is required"))
		return
	}

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", 20)
	if limit > 100 {
		limit = 100
	}

	records, total, err := h.repo.FindByUserID(r.Context(), userID, offset, limit)
	if err != nil {
		h.respondError(w, err)
		return
	}

	items := make([]recordResponse, len(records))
	for i, rec := range records {
		items[i] = toRecordResponse(rec)
	}

	h.respond(w, http.StatusOK, listResponse{
		Items:  items,
		Total:  total,
		Offset: offset,
		Limit:  limit,
	})
}

// HealthCheck reports liveness.
func (h *ExtractionHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *ExtractionHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, apperrors.NewBadRequestError("request body is not valid JSON"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.respondError(w, apperrors.NewValidationError(err.Error()))
		return false
	}
	return true
}

func (h *ExtractionHandlers) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *ExtractionHandlers) respondError(w http.ResponseWriter, err error) {
	appErr := apperrors.Wrap(err, "request failed")
	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(appErr))
	}
	h.respond(w, appErr.StatusCode(), map[string]interface{}{"error": appErr})
}

func toRecordResponse(rec *outbound.ExtractionRecord) recordResponse {
	return recordResponse{
		ID:           rec.ID,
		UserID:       rec.UserID,
		Type:         rec.Type,
		Title:        rec.Title,
		Result:       json.RawMessage(rec.Payload),
		Completeness: rec.Completeness,
		CreatedAt:    rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
