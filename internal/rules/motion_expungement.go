package rules

import "relief-engine/internal/model"

// MotionExpungementCheck covers expungement by motion on grounds of actual
// innocence. Filing the motion is a standing legal option, so the check is
// always eligible; success likelihood drops unless the person affirmatively
// asserts innocence, and attorney involvement is always recommended.
type MotionExpungementCheck struct{}

func (c *MotionExpungementCheck) ReliefType() string {
	return model.ReliefMotionExpungement
}

func (c *MotionExpungementCheck) Evaluate(in *Input) model.ReliefOption {
	opt := model.ReliefOption{
		Eligible:            true,
		ReliefType:          model.ReliefMotionExpungement,
		Name:                "Motion for Expungement (Actual Innocence)",
		Description:         "A court motion asserting that you did not commit the offense, decided by a judge.",
		FilingFee:           feeAmount(in.Policy.MotionFilingFee),
		AttorneyRecommended: true,
		Difficulty:          model.DifficultyDifficult,
		Timeline:            "Several months; requires a judicial determination",
	}

	opt.Reasons = append(opt.Reasons,
		"A motion asserting actual innocence may be filed for any offense at any time.")
	opt.Requirements = append(opt.Requirements,
		"Sworn statement asserting actual innocence",
		"Evidence supporting the innocence claim",
		"Court appearance is likely")

	if in.Factors != nil && in.Factors.SeekingActualInnocence {
		opt.SuccessLikelihood = model.LikelihoodModerate
		opt.Reasons = append(opt.Reasons,
			"You indicated you believe you are innocent of this offense, which supports the motion.")
	} else {
		opt.SuccessLikelihood = model.LikelihoodLow
		opt.Reasons = append(opt.Reasons,
			"Success is unlikely without an affirmative claim of innocence and supporting evidence.")
	}

	return opt
}
