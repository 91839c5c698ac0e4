package domain

// CorrespondanceDirection marks whether a correspondence was received or sent.
type CorrespondanceDirection string

const (
	DirectionIncoming CorrespondanceDirection = "INCOMING"
	DirectionOutgoing CorrespondanceDirection = "OUTGOING"
)

// IsValid reports whether d is a known direction.
func (d CorrespondanceDirection) IsValid() bool {
	return d == DirectionIncoming || d == DirectionOutgoing
}

// Correspondance is a registered piece of mail, standalone from Document but
// codified the same way.
type Correspondance struct {
	CorrespondanceID string                  `json:"correspondanceID"` // Primary Key (UUID)
	QRCode           string                  `json:"qrCode"`
	Direction        CorrespondanceDirection `json:"direction"`
	FromAddress      string                  `json:"fromAddress"`
	ToAddress        string                  `json:"toAddress"`
	Subject          string                  `json:"subject"`
	Content          string                  `json:"content,omitempty"`
	Priority         Priority                `json:"priority"`
	Status           DocumentStatus          `json:"status"`
	Airport          string                  `json:"airport"`

	Code string `json:"code"`
	CodeSegments

	Attachments    []string `json:"attachments,omitempty"` // Paths relative to the uploads root
	Tags           []string `json:"tags,omitempty"`
	DecidedActions []string `json:"decidedActions,omitempty"` // Titles of actions decided from this mail

	AuthorID string `json:"authorID"`
	AuditFields
}

// CorrespondanceFilter narrows correspondence listings. Zero values mean "no filter".
type CorrespondanceFilter struct {
	Direction CorrespondanceDirection
	Status    DocumentStatus
	Priority  Priority
	Airport   string
	Search    string
}
