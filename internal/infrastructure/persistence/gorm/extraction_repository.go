package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellfed/extraction/internal/ports/outbound"
	apperrors "github.com/wellfed/extraction/pkg/errors"
)

// ExtractionRepository implements the extraction repository port using GORM.
type ExtractionRepository struct {
	db *gorm.DB
}

// NewExtractionRepository creates a new extraction repository.
func NewExtractionRepository(db *gorm.DB) outbound.ExtractionRepository {
	return &ExtractionRepository{db: db}
}

// Create inserts a new extraction row.
func (r *ExtractionRepository) Create(ctx context.Context, rec *outbound.ExtractionRecord) error {
	model := recordToModel(rec)

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID loads one extraction by ID.
func (r *ExtractionRepository) FindByID(ctx context.Context, id uuid.UUID) (*outbound.ExtractionRecord, error) {
	var model ExtractionModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewExtractionNotFoundError(id.String())
		}
		return nil, result.Error
	}

	return modelToRecord(&model), nil
}

// FindByUserID lists a user's extractions newest-first with pagination,
// returning the page plus the total count.
func (r *ExtractionRepository) FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*outbound.ExtractionRecord, int, error) {
	var total int64
	countResult := r.db.WithContext(ctx).Model(&ExtractionModel{}).
		Where("user_id = ?", userID).
		Count(&total)
	if countResult.Error != nil {
		return nil, 0, countResult.Error
	}

	var models []ExtractionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	records := make([]*outbound.ExtractionRecord, len(models))
	for i := range models {
		records[i] = modelToRecord(&models[i])
	}
	return records, int(total), nil
}
