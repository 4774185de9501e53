package rules

import (
	"fmt"

	"relief-engine/internal/model"
)

// MotionSealingCheck covers sealing in the interests of justice. Offenses
// excluded from sealing are rejected outright. Non-convictions qualify
// immediately. Misdemeanor convictions carry a shorter waiting period than
// automatic sealing; felonies are ineligible except the failure-to-appear
// carve-out, which has its own waiting period.
type MotionSealingCheck struct{}

func (c *MotionSealingCheck) ReliefType() string {
	return model.ReliefMotionSealing
}

func (c *MotionSealingCheck) Evaluate(in *Input) model.ReliefOption {
	opt := model.ReliefOption{
		ReliefType:          model.ReliefMotionSealing,
		Name:                "Motion to Seal (Interests of Justice)",
		Description:         "A court motion to seal the record where sealing serves the interests of justice.",
		FilingFee:           feeAmount(in.Policy.MotionFilingFee),
		AttorneyRecommended: true,
		Difficulty:          model.DifficultyModerate,
	}

	if in.Excluded(model.ReliefMotionSealing) {
		opt.Reasons = append(opt.Reasons, "This offense is excluded from record sealing by statute.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeExcludedOffense,
			Message: "Offense is excluded from motion-based sealing",
		})
		return opt
	}

	if !in.Case.IsConviction() {
		opt.Eligible = true
		opt.SuccessLikelihood = model.LikelihoodHigh
		opt.Timeline = "Typically 2-4 months after filing"
		opt.Reasons = append(opt.Reasons, fmt.Sprintf(
			"A motion to seal a %s case may be filed immediately.", in.Case.Outcome))
		opt.Requirements = append(opt.Requirements,
			"Certified copy of the case disposition",
			"Motion filed with the court")
		return opt
	}

	severity := in.Severity()
	class := ""
	if in.Offense != nil {
		class = in.Offense.Class
	}

	var years int
	switch {
	case severity == model.SeverityMisdemeanor, severity == model.SeverityInfraction, severity == model.SeverityUnknown:
		years = in.Policy.MotionSealMisdemeanorWaitYears
	case severity == model.SeverityFelony && class == "failure_to_appear":
		years = in.Policy.MotionSealFTAFelonyWaitYears
	default:
		opt.Reasons = append(opt.Reasons, "Felony convictions other than failure to appear cannot be sealed by motion.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeFelonyNotEligible,
			Message: "Felony conviction is not eligible for motion-based sealing",
		})
		return opt
	}

	if in.Case.Sentence == nil || !in.Case.Sentence.AllCompleted {
		opt.Reasons = append(opt.Reasons, "All sentence terms must be completed before the waiting period can run.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeSentenceIncomplete,
			Message: "Sentence is not marked complete",
		})
		return opt
	}

	completion, ok := parseDate(in.Case.EffectiveCompletionDate())
	if !ok {
		opt.Reasons = append(opt.Reasons, "No sentence completion date is on record; the waiting period cannot be computed.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeCompletionDateMissing,
			Message: "Completion date missing; not yet eligible",
		})
		return opt
	}

	met, eligibleAt := waitingPeriodMet(completion, years, in.Now)
	if !met {
		opt.EstimatedEligibilityDate = eligibleAt.Format(dateLayout)
		opt.Reasons = append(opt.Reasons, fmt.Sprintf(
			"The %d-year waiting period has not elapsed; a motion may be filed on %s.",
			years, opt.EstimatedEligibilityDate))
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeWaitingPeriodNotMet,
			Message: fmt.Sprintf("Waiting period of %d years not met until %s", years, opt.EstimatedEligibilityDate),
		})
		return opt
	}

	opt.Eligible = true
	opt.SuccessLikelihood = model.LikelihoodModerate
	opt.Timeline = "Typically 3-6 months after filing"
	opt.Reasons = append(opt.Reasons, fmt.Sprintf(
		"The %d-year waiting period since sentence completion has elapsed.", years))
	opt.Requirements = append(opt.Requirements,
		"Sentence fully completed",
		fmt.Sprintf("%d years elapsed since sentence completion", years),
		"Motion demonstrating that sealing serves the interests of justice")
	return opt
}
