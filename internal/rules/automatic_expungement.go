package rules

import (
	"fmt"

	"relief-engine/internal/model"
)

// AutomaticExpungementCheck covers decriminalized offenses. Eligibility is
// purely offense-class plus offense-date against the decriminalization
// cutoff; there is no waiting period and no filing fee.
type AutomaticExpungementCheck struct{}

func (c *AutomaticExpungementCheck) ReliefType() string {
	return model.ReliefAutomaticExpungement
}

func (c *AutomaticExpungementCheck) Evaluate(in *Input) model.ReliefOption {
	opt := model.ReliefOption{
		ReliefType:  model.ReliefAutomaticExpungement,
		Name:        "Automatic Expungement",
		Description: "Record expungement that requires no court filing for decriminalized offenses.",
		FilingFee:   feeAmount(0),
	}

	if in.Excluded(model.ReliefAutomaticExpungement) {
		opt.Reasons = append(opt.Reasons, "This offense is excluded from automatic expungement.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeExcludedOffense,
			Message: "Offense is excluded from automatic expungement",
		})
		return opt
	}

	class := ""
	if in.Offense != nil {
		class = in.Offense.Class
	}
	dec := in.Policy.DecriminalizedFor(class, in.Case.Offense)
	if dec == nil {
		opt.Reasons = append(opt.Reasons, "This offense has not been decriminalized in your jurisdiction.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeNotDecriminalized,
			Message: "Offense is not in a decriminalized class",
		})
		return opt
	}

	offenseDate, ok := parseDate(in.Case.OffenseDate)
	cutoff, cutoffOK := parseDate(dec.CutoffDate)
	if !ok || !cutoffOK {
		opt.Reasons = append(opt.Reasons, "The offense date could not be verified against the decriminalization cutoff.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelWarning, Code: model.CodeInvalidOffenseDate,
			Message: "Offense date missing or invalid",
		})
		return opt
	}

	if !offenseDate.Before(cutoff) {
		opt.Reasons = append(opt.Reasons, fmt.Sprintf(
			"%s was decriminalized for conduct before %s; this offense occurred on or after that date.",
			dec.Name, dec.CutoffDate))
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeOffenseDateAfterCutoff,
			Message: fmt.Sprintf("Offense date %s is not before the %s cutoff", in.Case.OffenseDate, dec.CutoffDate),
		})
		return opt
	}

	opt.Eligible = true
	opt.Reasons = append(opt.Reasons, fmt.Sprintf(
		"%s committed before %s qualifies for automatic expungement.", dec.Name, dec.CutoffDate))
	opt.Requirements = append(opt.Requirements,
		"No court filing required",
		"Verify the record was expunged by requesting a criminal history report")
	opt.Timeline = "Automatic; processed by the court without a petition"
	opt.Difficulty = model.DifficultyEasy
	opt.SuccessLikelihood = model.LikelihoodHigh
	return opt
}
