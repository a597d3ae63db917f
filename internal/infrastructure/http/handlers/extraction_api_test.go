package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wellfed/extraction/internal/application/nutrition"
	"github.com/wellfed/extraction/internal/domain/recipe"
	"github.com/wellfed/extraction/internal/infrastructure/config"
	"github.com/wellfed/extraction/internal/ports/inbound"
)

// stubService returns a canned result for every extraction call.
type stubService struct {
	result *inbound.ExtractionResult
}

func (s *stubService) Detect(string) inbound.ContentType { return s.result.Type }

func (s *stubService) Extract(context.Context, string) (*inbound.ExtractionResult, error) {
	return s.result, nil
}

func (s *stubService) ExtractRecipe(context.Context, string) (*inbound.ExtractionResult, error) {
	return s.result, nil
}

func (s *stubService) ExtractWorkout(context.Context, string) (*inbound.ExtractionResult, error) {
	return s.result, nil
}

func (s *stubService) Save(context.Context, *inbound.ExtractionResult, uuid.UUID) (uuid.UUID, error) {
	return uuid.New(), nil
}

func newTestHandlers(result *inbound.ExtractionResult) *ExtractionHandlers {
	cfg := &config.Config{Features: config.FeatureFlags{
		EnableNutritionEstimates: true,
		EnableCalorieEstimates:   true,
	}}
	svc := &stubService{result: result}
	return NewExtractionHandlers(cfg, svc, nutrition.NewService(zap.NewNop()), nil, zap.NewNop())
}

func postExtract(t *testing.T, h *ExtractionHandlers, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Extract(rr, req)
	return rr
}

func recipeResult(text string) (*inbound.ExtractionResult, *recipe.ExtractedRecipe) {
	rec := recipe.Parse(text)
	return &inbound.ExtractionResult{
		Type:       inbound.ContentTypeRecipe,
		Recipe:     rec,
		Validation: recipe.Validate(rec),
	}, rec
}

func TestExtractEstimateLeavesRecordUntouched(t *testing.T) {
	result, rec := recipeResult(`Rice Pudding

Ingredients:
- 2 cups rice
- 1 cup milk

Instructions:
1. Simmer the rice in the milk until soft and creamy.`)
	require.Nil(t, rec.Nutrition)

	h := newTestHandlers(result)
	rr := postExtract(t, h, `{"text":"stubbed","estimate":true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Recipe             *recipe.ExtractedRecipe `json:"recipe"`
		EstimatedNutrition *recipe.Nutrition       `json:"estimatedNutrition"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	require.NotNil(t, resp.EstimatedNutrition)
	assert.Positive(t, resp.EstimatedNutrition.Calories)

	// The record still reports the gap; the estimate never fills it in.
	require.NotNil(t, resp.Recipe)
	assert.Nil(t, resp.Recipe.Nutrition)
	assert.Contains(t, resp.Recipe.MissingFields, recipe.FieldNutrition)
	assert.Nil(t, rec.Nutrition)
}

func TestExtractStatedNutritionSkipsEstimate(t *testing.T) {
	result, rec := recipeResult(`Rice Pudding

Ingredients:
- 2 cups rice
- 1 cup milk

Instructions:
1. Simmer the rice in the milk until soft and creamy.

Nutrition: 350 calories`)
	require.NotNil(t, rec.Nutrition)

	h := newTestHandlers(result)
	rr := postExtract(t, h, `{"text":"stubbed","estimate":true}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Recipe             *recipe.ExtractedRecipe `json:"recipe"`
		EstimatedNutrition *recipe.Nutrition       `json:"estimatedNutrition"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Nil(t, resp.EstimatedNutrition)
	require.NotNil(t, resp.Recipe.Nutrition)
	assert.Equal(t, 350, resp.Recipe.Nutrition.Calories)
}

func TestExtractWithoutEstimateOmitsEstimates(t *testing.T) {
	result, _ := recipeResult(`Rice Pudding

Ingredients:
- 2 cups rice

Instructions:
1. Simmer the rice until soft and creamy.`)

	h := newTestHandlers(result)
	rr := postExtract(t, h, `{"text":"stubbed"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "estimatedNutrition")
	assert.NotContains(t, raw, "estimatedCalories")
}
