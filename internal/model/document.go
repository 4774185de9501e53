package model

// Document type identifiers understood by the template registry and the
// package assembler.
const (
	DocExpungementPetition  = "expungement_petition"
	DocSealingMotion        = "sealing_motion"
	DocInnocenceDeclaration = "innocence_declaration"
	DocCompletionAffidavit  = "completion_affidavit"
	DocTraffickingStatement = "trafficking_statement"
	DocCoverLetter          = "cover_letter"
	DocCertificateOfService = "certificate_of_service"
)

// Generated document statuses.
const (
	DocStatusDraft     = "draft"
	DocStatusGenerated = "generated"
	DocStatusReviewed  = "reviewed"
	DocStatusFiled     = "filed"
)

// TemplateField declares one variable a template expects in its context.
type TemplateField struct {
	Path     string `json:"path"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// DocumentTemplate is a named template loaded once at startup. Template
// holds the raw mini-language source ({{path}} and {{#if ...}} blocks).
type DocumentTemplate struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	DocumentType   string          `json:"document_type"`
	Jurisdiction   string          `json:"jurisdiction"`
	RequiredFields []TemplateField `json:"required_fields"`
	Template       string          `json:"-"`
}

// DocumentMetadata rides on every generated document.
type DocumentMetadata struct {
	Jurisdiction           string `json:"jurisdiction"`
	CaseID                 string `json:"case_id"`
	AttorneyReviewRequired bool   `json:"attorney_review_required"`
	AttorneyReviewed       bool   `json:"attorney_reviewed"`
}

// GeneratedDocument is filing-ready text produced by the template
// processor. Only Status and Metadata.AttorneyReviewed may change after
// creation, and only through the external review workflow.
type GeneratedDocument struct {
	ID           string           `json:"id"`
	TemplateID   string           `json:"template_id"`
	DocumentType string           `json:"document_type"`
	Title        string           `json:"title"`
	Content      string           `json:"content"`
	HTMLContent  string           `json:"html_content"`
	Metadata     DocumentMetadata `json:"metadata"`
	Status       string           `json:"status"`
	CreatedAt    string           `json:"created_at"`
}

// FilingFee is one fee-table row, deduplicated by document type.
type FilingFee struct {
	DocumentType   string  `json:"document_type"`
	Description    string  `json:"description"`
	Amount         float64 `json:"amount"`
	WaiverEligible bool    `json:"waiver_eligible"`
}

// ProcessingEstimate is a [min, max] day range around the adjusted base.
type ProcessingEstimate struct {
	MinDays     int    `json:"min_days"`
	MaxDays     int    `json:"max_days"`
	Description string `json:"description"`
}

// DocumentPackage aggregates everything needed to file. Built once per
// generation request, immutable thereafter; assembly is all-or-nothing.
type DocumentPackage struct {
	Documents               []GeneratedDocument `json:"documents"`
	FilingInstructions      []string            `json:"filing_instructions"`
	RequiredFees            []FilingFee         `json:"required_fees"`
	EstimatedProcessingTime ProcessingEstimate  `json:"estimated_processing_time"`
}
