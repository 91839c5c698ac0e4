package mapping

import (
	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/aerodoc/backend/internal/models"
)

// ToModelActivityLog converts a domain ActivityLog to its model shape.
func ToModelActivityLog(d domain.ActivityLog) models.ActivityLog {
	return models.ActivityLog{
		LogID:      d.LogID,
		Action:     d.Action,
		Details:    d.Details,
		EntityType: string(d.EntityType),
		EntityID:   d.EntityID,
		UserID:     d.UserID,
		Timestamp:  d.Timestamp,
		IPAddress:  d.IPAddress,
		UserAgent:  d.UserAgent,
	}
}

// ToDomainActivityLog converts a model ActivityLog to its domain shape.
func ToDomainActivityLog(m models.ActivityLog) domain.ActivityLog {
	return domain.ActivityLog{
		LogID:      m.LogID,
		Action:     m.Action,
		Details:    m.Details,
		EntityType: domain.EntityType(m.EntityType),
		EntityID:   m.EntityID,
		UserID:     m.UserID,
		Timestamp:  m.Timestamp,
		IPAddress:  m.IPAddress,
		UserAgent:  m.UserAgent,
	}
}

// ToDomainActivityLogSlice converts model ActivityLogs to domain ones.
func ToDomainActivityLogSlice(ms []models.ActivityLog) []domain.ActivityLog {
	ds := make([]domain.ActivityLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainActivityLog(m)
	}
	return ds
}
