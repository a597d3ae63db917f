package gorm

import "github.com/wellfed/extraction/internal/ports/outbound"

// recordToModel converts a port-level record to its database row.
func recordToModel(rec *outbound.ExtractionRecord) *ExtractionModel {
	return &ExtractionModel{
		ID:           rec.ID,
		UserID:       rec.UserID,
		Type:         rec.Type,
		Title:        rec.Title,
		Payload:      rec.Payload,
		IsValid:      rec.IsValid,
		Completeness: rec.Completeness,
		CreatedAt:    rec.CreatedAt,
	}
}

// modelToRecord converts a database row back to the port-level record.
func modelToRecord(m *ExtractionModel) *outbound.ExtractionRecord {
	return &outbound.ExtractionRecord{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         m.Type,
		Title:        m.Title,
		Payload:      m.Payload,
		IsValid:      m.IsValid,
		Completeness: m.Completeness,
		CreatedAt:    m.CreatedAt,
	}
}
