package rules

import (
	"fmt"

	"relief-engine/internal/model"
)

// AutomaticSealingCheck covers time-based sealing. Non-conviction outcomes
// qualify unconditionally; misdemeanor convictions qualify after the
// jurisdiction waiting period elapses from sentence completion; felony
// convictions never qualify on this path.
type AutomaticSealingCheck struct{}

func (c *AutomaticSealingCheck) ReliefType() string {
	return model.ReliefAutomaticSealing
}

func (c *AutomaticSealingCheck) Evaluate(in *Input) model.ReliefOption {
	opt := model.ReliefOption{
		ReliefType:  model.ReliefAutomaticSealing,
		Name:        "Automatic Sealing",
		Description: "Record sealing after the statutory waiting period, with no motion required.",
		FilingFee:   feeAmount(0),
	}

	if in.Excluded(model.ReliefAutomaticSealing) {
		opt.Reasons = append(opt.Reasons, "This offense is excluded from automatic sealing by statute.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeExcludedOffense,
			Message: "Offense is excluded from automatic sealing",
		})
		return opt
	}

	if !in.Case.IsConviction() {
		opt.Eligible = true
		opt.Reasons = append(opt.Reasons, fmt.Sprintf(
			"Cases resolved without a conviction (%s) are sealed automatically.", in.Case.Outcome))
		opt.Requirements = append(opt.Requirements,
			"Confirm the case shows a non-conviction disposition on your record")
		opt.Timeline = "Automatic; no waiting period for non-convictions"
		opt.Difficulty = model.DifficultyEasy
		opt.SuccessLikelihood = model.LikelihoodHigh
		return opt
	}

	if in.Severity() != model.SeverityMisdemeanor {
		opt.Reasons = append(opt.Reasons, "Felony convictions are not eligible for automatic sealing.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeFelonyNotEligible,
			Message: "Only misdemeanor convictions qualify for automatic sealing",
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

	completionStr := in.Case.EffectiveCompletionDate()
	completion, ok := parseDate(completionStr)
	if !ok {
		opt.Reasons = append(opt.Reasons, "No sentence completion date is on record; the waiting period cannot be computed.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeCompletionDateMissing,
			Message: "Completion date missing; not yet eligible",
		})
		return opt
	}

	years := in.Policy.AutoSealWaitYears
	met, eligibleAt := waitingPeriodMet(completion, years, in.Now)
	if !met {
		opt.EstimatedEligibilityDate = eligibleAt.Format(dateLayout)
		opt.Reasons = append(opt.Reasons, fmt.Sprintf(
			"The %d-year waiting period has not elapsed; eligible on %s.", years, opt.EstimatedEligibilityDate))
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeWaitingPeriodNotMet,
			Message: fmt.Sprintf("Waiting period of %d years not met until %s", years, opt.EstimatedEligibilityDate),
		})
		return opt
	}

	opt.Eligible = true
	opt.Reasons = append(opt.Reasons, fmt.Sprintf(
		"Misdemeanor conviction with sentence completed on %s; the %d-year waiting period has elapsed.",
		completionStr, years))
	opt.Requirements = append(opt.Requirements,
		"Sentence fully completed",
		fmt.Sprintf("%d years elapsed since sentence completion", years))
	opt.Timeline = "Automatic once the waiting period elapses"
	opt.Difficulty = model.DifficultyEasy
	opt.SuccessLikelihood = model.LikelihoodHigh
	return opt
}
