package template

// allowedPaths is the closed set of dotted paths templates may resolve.
// Anything outside this list renders as the blocked placeholder, for any
// template, under any circumstance.
var allowedPaths = map[string]bool{
	"userCase.id":                      true,
	"userCase.offense":                 true,
	"userCase.offenseDate":             true,
	"userCase.outcome":                 true,
	"userCase.ageAtOffense":            true,
	"userCase.jurisdiction":            true,
	"userCase.completionDate":          true,
	"userCase.sentence.completionDate": true,

	"personalInfo.fullName":    true,
	"personalInfo.dateOfBirth": true,
	"personalInfo.address":     true,
	"personalInfo.city":        true,
	"personalInfo.state":       true,
	"personalInfo.zipCode":     true,
	"personalInfo.phone":       true,
	"personalInfo.email":       true,

	"currentDate":  true,
	"jurisdiction": true,
	"courtName":    true,
	"caseNumber":   true,

	"custom.reliefType":           true,
	"custom.reasonForRelief":      true,
	"custom.innocenceStatement":   true,
	"custom.traffickingStatement": true,
	"custom.completionDetails":    true,
	"custom.hearingDate":          true,
}

// Allowed reports whether a path may resolve to real data.
func Allowed(path string) bool {
	return allowedPaths[path]
}
