package engine

import (
	"testing"
	"time"

	"relief-engine/internal/catalog"
	"relief-engine/internal/model"
	"relief-engine/internal/policy"
)

var testNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return NewWithClock(catalog.New(), policy.Defaults(), func() time.Time { return testNow })
}

func findOption(result *model.EligibilityResult, reliefType string) *model.ReliefOption {
	for i := range result.AllOptions {
		if result.AllOptions[i].ReliefType == reliefType {
			return &result.AllOptions[i]
		}
	}
	return nil
}

func TestMarijuanaBeforeCutoffIsAutomaticExpungement(t *testing.T) {
	e := testEngine()

	result := e.Assess(&model.UserCase{
		ID:           "case-1",
		Offense:      "Simple Possession of Marijuana",
		OffenseDate:  "2014-01-15",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 30,
		Jurisdiction: "dc",
	}, &model.AdditionalFactors{})

	if result.BestOption == nil {
		t.Fatal("expected a best option")
	}
	if result.BestOption.ReliefType != model.ReliefAutomaticExpungement {
		t.Fatalf("expected automatic_expungement, got %s", result.BestOption.ReliefType)
	}
	if result.BestOption.FilingFee == nil || *result.BestOption.FilingFee != 0 {
		t.Fatalf("expected zero filing fee, got %v", result.BestOption.FilingFee)
	}
	if len(result.Reasoning) == 0 || len(result.NextSteps) == 0 {
		t.Fatal("expected reasoning and next steps")
	}
	if result.NextSteps[0].Title != "Monitor your record" {
		t.Fatalf("expected monitoring advice for automatic relief, got %q", result.NextSteps[0].Title)
	}
}

func TestMarijuanaAfterCutoffNotAutomaticallyExpunged(t *testing.T) {
	e := testEngine()

	result := e.Assess(&model.UserCase{
		ID:           "case-2",
		Offense:      "Simple Possession of Marijuana",
		OffenseDate:  "2016-01-15",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 30,
		Jurisdiction: "dc",
	}, &model.AdditionalFactors{})

	opt := findOption(result, model.ReliefAutomaticExpungement)
	if opt == nil {
		t.Fatal("expected the automatic expungement option to be surfaced")
	}
	if opt.Eligible {
		t.Fatal("expected automatic expungement to be ineligible after the cutoff")
	}
	found := false
	for _, m := range opt.Messages {
		if m.Code == model.CodeOffenseDateAfterCutoff {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an OFFENSE_DATE_AFTER_CUTOFF message")
	}
}

func TestAutomaticSealingWaitingPeriod(t *testing.T) {
	e := testEngine()

	base := model.UserCase{
		ID:           "case-3",
		Offense:      "Theft in the Second Degree",
		OffenseDate:  "2013-06-01",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 30,
		Jurisdiction: "dc",
		Sentence:     &model.Sentence{Probation: "1 year", AllCompleted: true, CompletionDate: "2014-01-10"},
	}

	// Completed 11 years ago: the 10-year period has elapsed.
	result := e.Assess(&base, &model.AdditionalFactors{})
	if result.BestOption == nil || result.BestOption.ReliefType != model.ReliefAutomaticSealing {
		t.Fatalf("expected automatic_sealing as best option, got %+v", result.BestOption)
	}

	// Completed 3 years ago: not yet eligible, with an estimated date.
	recent := base
	recent.Sentence = &model.Sentence{Probation: "1 year", AllCompleted: true, CompletionDate: "2022-01-15"}
	result = e.Assess(&recent, &model.AdditionalFactors{})

	opt := findOption(result, model.ReliefAutomaticSealing)
	if opt == nil || opt.Eligible {
		t.Fatalf("expected ineligible automatic sealing, got %+v", opt)
	}
	if opt.EstimatedEligibilityDate != "2032-01-15" {
		t.Fatalf("expected eligibility on 2032-01-15, got %q", opt.EstimatedEligibilityDate)
	}
	found := false
	for _, m := range opt.Messages {
		if m.Code == model.CodeWaitingPeriodNotMet {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a WAITING_PERIOD_NOT_MET message")
	}
}

func TestSentenceIncompleteBlocksTimeGatedRelief(t *testing.T) {
	e := testEngine()

	result := e.Assess(&model.UserCase{
		ID:           "case-4",
		Offense:      "Theft in the Second Degree",
		OffenseDate:  "2010-06-01",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 30,
		Jurisdiction: "dc",
		Sentence:     &model.Sentence{Probation: "2 years", AllCompleted: false},
	}, &model.AdditionalFactors{})

	for _, rt := range []string{model.ReliefAutomaticSealing, model.ReliefMotionSealing} {
		opt := findOption(result, rt)
		if opt == nil || opt.Eligible {
			t.Fatalf("expected %s to be ineligible with an incomplete sentence", rt)
		}
		found := false
		for _, m := range opt.Messages {
			if m.Code == model.CodeSentenceIncomplete {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected SENTENCE_INCOMPLETE on %s", rt)
		}
	}
}

func TestExcludedOffenseKeepsMotionExpungement(t *testing.T) {
	e := testEngine()

	result := e.Assess(&model.UserCase{
		ID:           "case-5",
		Offense:      "Murder in the First Degree",
		OffenseDate:  "2000-03-01",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 30,
		Jurisdiction: "dc",
		Sentence:     &model.Sentence{JailTime: "20 years", AllCompleted: true, CompletionDate: "2020-03-01"},
	}, &model.AdditionalFactors{})

	for _, rt := range []string{model.ReliefAutomaticSealing, model.ReliefMotionSealing} {
		opt := findOption(result, rt)
		if opt == nil {
			t.Fatalf("expected %s option to be surfaced", rt)
		}
		if opt.Eligible {
			t.Fatalf("expected %s to be ineligible for an excluded offense", rt)
		}
	}

	opt := findOption(result, model.ReliefMotionExpungement)
	if opt == nil || !opt.Eligible {
		t.Fatal("motion expungement must remain eligible for any offense")
	}
	if !opt.AttorneyRecommended {
		t.Fatal("expected attorney recommendation on motion expungement")
	}
}

func TestNonConvictionSealsAutomatically(t *testing.T) {
	e := testEngine()

	result := e.Assess(&model.UserCase{
		ID:           "case-6",
		Offense:      "Simple Assault",
		OffenseDate:  "2024-05-01",
		Outcome:      model.OutcomeDismissed,
		AgeAtOffense: 40,
		Jurisdiction: "dc",
	}, &model.AdditionalFactors{})

	if result.BestOption == nil || result.BestOption.ReliefType != model.ReliefAutomaticSealing {
		t.Fatalf("expected automatic_sealing for a dismissal, got %+v", result.BestOption)
	}
}

func TestFailureToAppearFelonyCarveOut(t *testing.T) {
	e := testEngine()

	c := model.UserCase{
		ID:           "case-7",
		Offense:      "Felony Failure to Appear",
		OffenseDate:  "2014-01-01",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 33,
		Jurisdiction: "dc",
		Sentence:     &model.Sentence{Fines: "$500", AllCompleted: true, CompletionDate: "2016-01-01"},
	}

	result := e.Assess(&c, &model.AdditionalFactors{})

	if opt := findOption(result, model.ReliefAutomaticSealing); opt == nil || opt.Eligible {
		t.Fatal("felony conviction must not qualify for automatic sealing")
	}
	// Completed 2016-01-01; the 8-year carve-out period elapsed in 2024.
	if opt := findOption(result, model.ReliefMotionSealing); opt == nil || !opt.Eligible {
		t.Fatalf("expected motion sealing under the failure-to-appear carve-out, got %+v", opt)
	}

	// A non-carve-out felony conviction stays ineligible.
	c.Offense = "Possession With Intent to Distribute"
	result = e.Assess(&c, &model.AdditionalFactors{})
	opt := findOption(result, model.ReliefMotionSealing)
	if opt == nil || opt.Eligible {
		t.Fatal("expected non-carve-out felony to be ineligible for motion sealing")
	}
	found := false
	for _, m := range opt.Messages {
		if m.Code == model.CodeFelonyNotEligible {
			found = true
		}
	}
	if !found {
		t.Fatal("expected FELONY_NOT_ELIGIBLE message")
	}
}

func TestYouthProgramTriggersOnAgeAlone(t *testing.T) {
	e := testEngine()

	result := e.Assess(&model.UserCase{
		ID:           "case-8",
		Offense:      "Unlawful Entry",
		OffenseDate:  "2023-02-01",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 19,
		Jurisdiction: "dc",
		Sentence:     &model.Sentence{Probation: "1 year", AllCompleted: false},
	}, &model.AdditionalFactors{})

	if opt := findOption(result, model.ReliefYouthProgram); opt == nil || !opt.Eligible {
		t.Fatal("expected youth program eligibility at age 19")
	}
}

func TestTraffickingSurvivorReliefOutranksMotions(t *testing.T) {
	e := testEngine()

	result := e.Assess(&model.UserCase{
		ID:                   "case-9",
		Offense:              "Possession With Intent to Distribute",
		OffenseDate:          "2021-01-01",
		Outcome:              model.OutcomeConvicted,
		AgeAtOffense:         27,
		IsTraffickingRelated: true,
		Jurisdiction:         "dc",
		Sentence:             &model.Sentence{Probation: "2 years", AllCompleted: true, CompletionDate: "2023-01-01"},
	}, &model.AdditionalFactors{IsTraffickingVictim: true})

	if result.BestOption == nil || result.BestOption.ReliefType != model.ReliefTraffickingSurvivors {
		t.Fatalf("expected trafficking_survivors as best option, got %+v", result.BestOption)
	}
	if result.BestOption.FilingFee == nil || *result.BestOption.FilingFee != 0 {
		t.Fatal("expected the survivor filing fee to be waived")
	}
}

func TestInnocenceClaimRaisesMotionLikelihood(t *testing.T) {
	e := testEngine()
	c := model.UserCase{
		ID:           "case-10",
		Offense:      "Simple Assault",
		OffenseDate:  "2022-01-01",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 35,
		Jurisdiction: "dc",
		Sentence:     &model.Sentence{Fines: "$200", AllCompleted: true, CompletionDate: "2022-06-01"},
	}

	without := e.Assess(&c, &model.AdditionalFactors{})
	with := e.Assess(&c, &model.AdditionalFactors{SeekingActualInnocence: true})

	a := findOption(without, model.ReliefMotionExpungement)
	b := findOption(with, model.ReliefMotionExpungement)
	if a.SuccessLikelihood != model.LikelihoodLow {
		t.Fatalf("expected low likelihood without an innocence claim, got %s", a.SuccessLikelihood)
	}
	if b.SuccessLikelihood != model.LikelihoodModerate {
		t.Fatalf("expected moderate likelihood with an innocence claim, got %s", b.SuccessLikelihood)
	}
}

func TestDegradedResultOnBadInput(t *testing.T) {
	e := testEngine()

	for name, c := range map[string]*model.UserCase{
		"nil case":    nil,
		"no offense":  {ID: "x", OffenseDate: "2020-01-01", Outcome: model.OutcomeConvicted},
		"bad date":    {ID: "x", Offense: "Theft", OffenseDate: "not-a-date", Outcome: model.OutcomeConvicted},
		"future date": {ID: "x", Offense: "Theft", OffenseDate: "2030-01-01", Outcome: model.OutcomeConvicted},
		"empty date":  {ID: "x", Offense: "Theft", Outcome: model.OutcomeConvicted},
	} {
		result := e.Assess(c, &model.AdditionalFactors{})
		if result == nil {
			t.Fatalf("%s: assessment must never return nil", name)
		}
		if result.BestOption != nil {
			t.Fatalf("%s: expected no best option", name)
		}
		if len(result.Reasoning) == 0 || len(result.NextSteps) == 0 {
			t.Fatalf("%s: degraded result must still explain itself", name)
		}
	}
}

func TestUnknownJurisdictionDegradesGracefully(t *testing.T) {
	e := testEngine()

	resp := e.Process(&model.AssessmentRequest{
		UserCase: model.UserCase{
			ID:           "case-11",
			Offense:      "Simple Possession of Marijuana",
			OffenseDate:  "2014-01-15",
			Outcome:      model.OutcomeDismissed,
			AgeAtOffense: 22,
			Jurisdiction: "narnia",
		},
	})

	if resp.Metadata.AssessmentOutcome != model.OutcomeDegraded {
		t.Fatalf("expected DEGRADED outcome, got %s", resp.Metadata.AssessmentOutcome)
	}
	if resp.Result.BestOption == nil {
		t.Fatal("fallback policy should still produce options")
	}
	if resp.Metadata.AssessmentID == "" {
		t.Fatal("expected an assessment id")
	}
}

func TestNextStepsAppendAttorneyAndDocuments(t *testing.T) {
	e := testEngine()

	result := e.Assess(&model.UserCase{
		ID:           "case-12",
		Offense:      "Possession With Intent to Distribute",
		OffenseDate:  "2021-01-01",
		Outcome:      model.OutcomeConvicted,
		AgeAtOffense: 40,
		Jurisdiction: "dc",
		Sentence:     &model.Sentence{Probation: "2 years", AllCompleted: true, CompletionDate: "2023-01-01"},
	}, &model.AdditionalFactors{})

	// Best option is motion expungement, which recommends an attorney.
	var titles []string
	for _, s := range result.NextSteps {
		titles = append(titles, s.Title)
	}
	if titles[0] != "Prepare a motion" {
		t.Fatalf("expected motion advice first, got %q", titles[0])
	}
	hasAttorney := false
	for _, title := range titles {
		if title == "Consult an attorney" {
			hasAttorney = true
		}
	}
	if !hasAttorney {
		t.Fatalf("expected a consult-an-attorney step, got %v", titles)
	}
	if titles[len(titles)-1] != "Gather your documents" {
		t.Fatalf("expected gather-documents last, got %q", titles[len(titles)-1])
	}
}
