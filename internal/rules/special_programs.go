package rules

import (
	"fmt"

	"relief-engine/internal/model"
)

// YouthProgramCheck triggers on age at offense alone, independent of the
// case outcome.
type YouthProgramCheck struct{}

func (c *YouthProgramCheck) ReliefType() string {
	return model.ReliefYouthProgram
}

func (c *YouthProgramCheck) Evaluate(in *Input) model.ReliefOption {
	opt := model.ReliefOption{
		ReliefType:  model.ReliefYouthProgram,
		Name:        "Youth Rehabilitation Program",
		Description: "Set-aside relief for offenses committed at a young age.",
		FilingFee:   feeAmount(in.Policy.MotionFilingFee),
	}

	maxAge := in.Policy.YouthAgeMax
	if in.Case.AgeAtOffense <= 0 || in.Case.AgeAtOffense > maxAge {
		opt.Reasons = append(opt.Reasons, fmt.Sprintf(
			"Youth relief applies to offenses committed at age %d or younger.", maxAge))
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeAgeAboveThreshold,
			Message: fmt.Sprintf("Age at offense exceeds the youth threshold of %d", maxAge),
		})
		return opt
	}

	opt.Eligible = true
	opt.Difficulty = model.DifficultyModerate
	opt.SuccessLikelihood = model.LikelihoodModerate
	opt.Timeline = "Varies; raised by motion or at sentencing review"
	opt.Reasons = append(opt.Reasons, fmt.Sprintf(
		"You were %d at the time of the offense, within the youth threshold of %d.",
		in.Case.AgeAtOffense, maxAge))
	opt.Requirements = append(opt.Requirements,
		"Proof of age at the time of the offense",
		"Evidence of rehabilitation since the offense")
	return opt
}

// TraffickingSurvivorsCheck triggers on the trafficking-victim factor. The
// filing fee is waived and the court handles these on an expedited track.
type TraffickingSurvivorsCheck struct{}

func (c *TraffickingSurvivorsCheck) ReliefType() string {
	return model.ReliefTraffickingSurvivors
}

func (c *TraffickingSurvivorsCheck) Evaluate(in *Input) model.ReliefOption {
	opt := model.ReliefOption{
		ReliefType:          model.ReliefTraffickingSurvivors,
		Name:                "Trafficking Survivors Relief",
		Description:         "Vacatur and expungement for offenses committed as a result of being trafficked.",
		FilingFee:           feeAmount(0),
		AttorneyRecommended: true,
	}

	if in.Factors == nil || !in.Factors.IsTraffickingVictim {
		opt.Reasons = append(opt.Reasons,
			"This relief applies only to survivors of human trafficking.")
		opt.Messages = append(opt.Messages, model.Message{
			Level: model.LevelInfo, Code: model.CodeNotTraffickingVictim,
			Message: "Trafficking-victim factor not asserted",
		})
		return opt
	}

	opt.Eligible = true
	opt.Difficulty = model.DifficultyModerate
	opt.SuccessLikelihood = model.LikelihoodHigh
	opt.Timeline = "Expedited; courts prioritize survivor petitions"
	opt.Reasons = append(opt.Reasons,
		"Survivors of trafficking may petition to vacate and expunge related records.",
		"The filing fee is waived for survivor petitions.")
	opt.Requirements = append(opt.Requirements,
		"Statement describing how the offense relates to being trafficked",
		"Supporting documentation if available (not required)")
	return opt
}
