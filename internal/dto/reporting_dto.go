package dto

import "github.com/aerodoc/backend/internal/core/domain"

// SummaryReportResponse aggregates entity counts for dashboards.
type SummaryReportResponse struct {
	DocumentsByStatus map[string]int64 `json:"documentsByStatus"`
	DocumentsByType   map[string]int64 `json:"documentsByType"`
	ActionsByStatus   map[string]int64 `json:"actionsByStatus"`
	Correspondances   int64            `json:"correspondances"`
	ProcesVerbaux     int64            `json:"procesVerbaux"`
	ActiveUsers       int64            `json:"activeUsers"`
}

// ToSummaryReportResponse converts a domain.SummaryReport to its response DTO.
func ToSummaryReportResponse(r *domain.SummaryReport) SummaryReportResponse {
	res := SummaryReportResponse{
		DocumentsByStatus: make(map[string]int64, len(r.DocumentsByStatus)),
		DocumentsByType:   make(map[string]int64, len(r.DocumentsByType)),
		ActionsByStatus:   make(map[string]int64, len(r.ActionsByStatus)),
		Correspondances:   r.Correspondances,
		ProcesVerbaux:     r.ProcesVerbaux,
		ActiveUsers:       r.ActiveUsers,
	}
	for k, v := range r.DocumentsByStatus {
		res.DocumentsByStatus[string(k)] = v
	}
	for k, v := range r.DocumentsByType {
		res.DocumentsByType[string(k)] = v
	}
	for k, v := range r.ActionsByStatus {
		res.ActionsByStatus[string(k)] = v
	}
	return res
}
