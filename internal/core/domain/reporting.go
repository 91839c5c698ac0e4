package domain

// SummaryReport aggregates entity counts for the dashboard.
type SummaryReport struct {
	DocumentsByStatus map[DocumentStatus]int64
	DocumentsByType   map[DocumentType]int64
	ActionsByStatus   map[ActionStatus]int64
	Correspondances   int64
	ProcesVerbaux     int64
	ActiveUsers       int64
}
