package models

// CodeOption is one allowed segment value; stored inside jsonb columns.
type CodeOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// DocumentCodeConfig is the database shape of the codification configuration.
// The option lists are jsonb columns.
type DocumentCodeConfig struct {
	ConfigID       string       `json:"configID" db:"config_id"`
	CompanyCode    string       `json:"companyCode" db:"company_code"`
	Scopes         []CodeOption `json:"scopes" db:"scopes"`
	DocumentTypes  []CodeOption `json:"documentTypes" db:"document_types"`
	Departments    []CodeOption `json:"departments" db:"departments"`
	SubDepartments []CodeOption `json:"subDepartments" db:"sub_departments"`
	Languages      []CodeOption `json:"languages" db:"languages"`
	AuditFields
}
