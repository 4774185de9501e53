package model

// Message is a leveled validation or rule message with a stable code.
// Messages are returned as data; the engine never panics on bad input.
type Message struct {
	ID      int    `json:"id"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	LevelCritical = "CRITICAL"
	LevelWarning  = "WARNING"
	LevelInfo     = "INFO"
)

// Stable message codes surfaced to callers.
const (
	CodeWaitingPeriodNotMet     = "WAITING_PERIOD_NOT_MET"
	CodeExcludedOffense         = "EXCLUDED_OFFENSE"
	CodeSentenceIncomplete      = "SENTENCE_INCOMPLETE"
	CodeOffenseDateAfterCutoff  = "OFFENSE_DATE_AFTER_CUTOFF"
	CodeNotDecriminalized       = "NOT_DECRIMINALIZED"
	CodeFelonyNotEligible       = "FELONY_NOT_ELIGIBLE"
	CodeCompletionDateMissing   = "COMPLETION_DATE_MISSING"
	CodeInvalidOffenseDate      = "INVALID_OFFENSE_DATE"
	CodeMissingOffense          = "MISSING_OFFENSE"
	CodeUnknownJurisdiction     = "UNKNOWN_JURISDICTION"
	CodeAgeAboveThreshold       = "AGE_ABOVE_THRESHOLD"
	CodeNotTraffickingVictim    = "NOT_TRAFFICKING_VICTIM"
	CodeTemplateNotFound        = "TEMPLATE_NOT_FOUND"
	CodeMissingRequiredField    = "MISSING_REQUIRED_FIELD"
	CodeBlockedVariable         = "BLOCKED_VARIABLE"
	CodeBlockedPattern          = "BLOCKED_PATTERN"
	CodeDocumentGenerationError = "DOCUMENT_GENERATION_ERROR"
	CodePackageGenerationError  = "PACKAGE_GENERATION_ERROR"
)
