package models

// Correspondance is the database shape of a correspondence row.
type Correspondance struct {
	CorrespondanceID string `json:"correspondanceID" db:"correspondance_id"`
	QRCode           string `json:"qrCode" db:"qr_code"`
	Direction        string `json:"direction" db:"direction"`
	FromAddress      string `json:"fromAddress" db:"from_address"`
	ToAddress        string `json:"toAddress" db:"to_address"`
	Subject          string `json:"subject" db:"subject"`
	Content          string `json:"content" db:"content"`
	Priority         string `json:"priority" db:"priority"`
	Status           string `json:"status" db:"status"`
	Airport          string `json:"airport" db:"airport"`

	Code              string `json:"code" db:"code"`
	CompanyCode       string `json:"companyCode" db:"company_code"`
	ScopeCode         string `json:"scopeCode" db:"scope_code"`
	DepartmentCode    string `json:"departmentCode" db:"department_code"`
	SubDepartmentCode string `json:"subDepartmentCode" db:"sub_department_code"`
	DocumentTypeCode  string `json:"documentTypeCode" db:"document_type_code"`
	LanguageCode      string `json:"languageCode" db:"language_code"`
	SequenceNumber    int    `json:"sequenceNumber" db:"sequence_number"`

	Attachments    []string `json:"attachments" db:"attachments"`
	Tags           []string `json:"tags" db:"tags"`
	DecidedActions []string `json:"decidedActions" db:"decided_actions"`

	AuthorID string `json:"authorID" db:"author_id"`
	AuditFields
}
