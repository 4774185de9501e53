package model

// AssessmentMetadata wraps timing and outcome bookkeeping around a result.
type AssessmentMetadata struct {
	AssessmentID          string `json:"assessment_id"`
	Jurisdiction          string `json:"jurisdiction"`
	AssessmentStartedAt   string `json:"assessment_started_at"`
	AssessmentCompletedAt string `json:"assessment_completed_at"`
	AssessmentDurationMs  int64  `json:"assessment_duration_ms"`
	AssessmentOutcome     string `json:"assessment_outcome"`
}

const (
	OutcomeSuccess  = "SUCCESS"
	OutcomeDegraded = "DEGRADED"
	OutcomeFailure  = "FAILURE"
)

// AssessmentResponse is the service-boundary output for /v1/assess.
type AssessmentResponse struct {
	Metadata AssessmentMetadata `json:"assessment_metadata"`
	Result   EligibilityResult  `json:"assessment_result"`
}

// PackageResponse is the service-boundary output for /v1/documents/package.
type PackageResponse struct {
	Metadata AssessmentMetadata `json:"generation_metadata"`
	Package  DocumentPackage    `json:"document_package"`
}

// ErrorResponse is the JSON error envelope for the HTTP boundary.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}
