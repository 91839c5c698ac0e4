package domain_test

import (
	"testing"

	"github.com/aerodoc/backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCodeSegments_CodeWith(t *testing.T) {
	tests := []struct {
		name     string
		segments domain.CodeSegments
		seq      int
		want     string
	}{
		{
			name: "without sub-department",
			segments: domain.CodeSegments{
				CompanyCode:      "ONDA",
				ScopeCode:        "AER",
				DepartmentCode:   "DSP",
				DocumentTypeCode: "FOR",
				LanguageCode:     "FR",
			},
			seq:  7,
			want: "ONDA-AER-DSP-FOR-FR-0007",
		},
		{
			name: "with sub-department",
			segments: domain.CodeSegments{
				CompanyCode:       "ONDA",
				ScopeCode:         "AER",
				DepartmentCode:    "DSP",
				SubDepartmentCode: "SSI",
				DocumentTypeCode:  "FOR",
				LanguageCode:      "FR",
			},
			seq:  42,
			want: "ONDA-AER-DSP-SSI-FOR-FR-0042",
		},
		{
			name: "sequence beyond four digits is not truncated",
			segments: domain.CodeSegments{
				CompanyCode:      "ONDA",
				ScopeCode:        "AER",
				DepartmentCode:   "DSP",
				DocumentTypeCode: "FOR",
				LanguageCode:     "FR",
			},
			seq:  12345,
			want: "ONDA-AER-DSP-FOR-FR-12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.segments.CodeWith(tt.seq))
		})
	}
}

func TestCodeSegments_SequenceTupleIgnoresSubDepartment(t *testing.T) {
	base := domain.CodeSegments{
		CompanyCode:      "ONDA",
		ScopeCode:        "AER",
		DepartmentCode:   "DSP",
		DocumentTypeCode: "FOR",
		LanguageCode:     "FR",
	}
	withSub := base
	withSub.SubDepartmentCode = "SSI"

	assert.Equal(t, base.SequenceTuple(), withSub.SequenceTuple())
}

func TestDocumentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.DocumentStatus
		to   domain.DocumentStatus
		want bool
	}{
		{"draft to active", domain.StatusDraft, domain.StatusActive, true},
		{"draft to archived", domain.StatusDraft, domain.StatusArchived, true},
		{"active to archived", domain.StatusActive, domain.StatusArchived, true},
		{"active to draft", domain.StatusActive, domain.StatusDraft, false},
		{"archived to active", domain.StatusArchived, domain.StatusActive, false},
		{"archived to draft", domain.StatusArchived, domain.StatusDraft, false},
		{"same status is a no-op", domain.StatusActive, domain.StatusActive, true},
		{"unknown target", domain.StatusDraft, domain.DocumentStatus("BOGUS"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
