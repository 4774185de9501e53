package model

// AssessmentRequest is the engine's service-boundary input.
type AssessmentRequest struct {
	UserCase          UserCase          `json:"user_case"`
	AdditionalFactors AdditionalFactors `json:"additional_factors"`
}

// PackageRequest asks for a full document package. CustomFields are only
// reachable from templates through whitelisted "custom.*" paths.
type PackageRequest struct {
	UserCase          UserCase          `json:"user_case"`
	AdditionalFactors AdditionalFactors `json:"additional_factors"`
	PersonalInfo      PersonalInfo      `json:"personal_info"`
	CustomFields      map[string]string `json:"custom_fields,omitempty"`
}
