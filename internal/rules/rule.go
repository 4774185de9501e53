package rules

import (
	"time"

	"relief-engine/internal/model"
	"relief-engine/internal/policy"
)

// Input is the evaluated case plus everything a check needs: screening
// factors, the catalog match (nil on a miss), the jurisdiction policy, and
// the evaluation clock.
type Input struct {
	Case    *model.UserCase
	Factors *model.AdditionalFactors
	Offense *model.OffenseDefinition
	Policy  policy.Policy
	Now     time.Time
}

// Severity returns the offense severity, or SeverityUnknown when the
// catalog did not match.
func (in *Input) Severity() string {
	if in.Offense == nil {
		return model.SeverityUnknown
	}
	return in.Offense.Severity
}

// Excluded reports whether the offense is categorically excluded from the
// given relief type. Unknown offenses are never excluded.
func (in *Input) Excluded(reliefType string) bool {
	return in.Offense != nil && in.Offense.ExcludedFromRelief(reliefType)
}

func feeAmount(v float64) *float64 { return &v }

// Check evaluates one relief path against a case. Every check returns an
// option, eligible or not; the engine keeps all of them for narrative
// bookkeeping and derives the best option from the eligible subset.
type Check interface {
	ReliefType() string
	Evaluate(in *Input) model.ReliefOption
}
