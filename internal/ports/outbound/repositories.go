// Package outbound defines the driven-side ports of the application.
// Implementations live under internal/infrastructure.
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ExtractionRecord is the persistence shape of one accepted extraction. The
// engine itself assigns no identity; IDs exist only at this boundary.
type ExtractionRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         string
	Title        string
	Payload      []byte // full extracted record, serialized as JSON
	IsValid      bool
	Completeness int
	CreatedAt    time.Time
}

// ExtractionRepository persists accepted extraction results.
type ExtractionRepository interface {
	Create(ctx context.Context, rec *ExtractionRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (*ExtractionRecord, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*ExtractionRecord, int, error)
}

// CacheRepository caches serialized extraction results keyed by content
// hash. A cache miss is reported as an error by implementations.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
