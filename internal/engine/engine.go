// Package engine evaluates a case against every relief check and derives
// the best option, reasoning, and next steps. Assessment is a pure function
// of its inputs and never fails outright: bad input degrades to a result
// with explanatory reasoning.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"relief-engine/internal/catalog"
	"relief-engine/internal/model"
	"relief-engine/internal/policy"
	"relief-engine/internal/rules"
)

type Engine struct {
	catalog  *catalog.Catalog
	policies *policy.Set
	now      func() time.Time
}

// New builds an engine over the given catalog and policy set.
func New(cat *catalog.Catalog, policies *policy.Set) *Engine {
	return &Engine{catalog: cat, policies: policies, now: time.Now}
}

// NewWithClock is New with an injected clock, for deterministic tests.
func NewWithClock(cat *catalog.Catalog, policies *policy.Set, now func() time.Time) *Engine {
	return &Engine{catalog: cat, policies: policies, now: now}
}

// Process wraps Assess in the service envelope with id, timing, and
// outcome metadata.
func (e *Engine) Process(req *model.AssessmentRequest) *model.AssessmentResponse {
	start := e.now()

	result, degraded := e.assess(&req.UserCase, &req.AdditionalFactors)

	outcome := model.OutcomeSuccess
	if degraded {
		outcome = model.OutcomeDegraded
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.AssessmentResponse{
		Metadata: model.AssessmentMetadata{
			AssessmentID:          uuid.New().String(),
			Jurisdiction:          req.UserCase.Jurisdiction,
			AssessmentStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			AssessmentCompletedAt: now.Format(time.RFC3339),
			AssessmentDurationMs:  elapsed.Milliseconds(),
			AssessmentOutcome:     outcome,
		},
		Result: *result,
	}
}

// Assess evaluates the case and factors, returning a fully populated
// result. Reasoning and NextSteps are never empty.
func (e *Engine) Assess(c *model.UserCase, f *model.AdditionalFactors) *model.EligibilityResult {
	result, _ := e.assess(c, f)
	return result
}

func (e *Engine) assess(c *model.UserCase, f *model.AdditionalFactors) (*model.EligibilityResult, bool) {
	if msg, ok := validateCase(c, e.now()); !ok {
		return degradedResult(msg), true
	}

	degraded := false
	var reasoning []string

	pol, known := e.policies.Lookup(c.Jurisdiction)
	if !known {
		degraded = true
		reasoning = append(reasoning, fmt.Sprintf(
			"Jurisdiction %q is not recognized; screening used the %s rules. Confirm the filing jurisdiction before relying on this result.",
			c.Jurisdiction, pol.Jurisdiction))
	}

	if f != nil && len(f.AdditionalInfo) > model.MaxAdditionalInfoLen {
		f = cloneFactors(f)
		f.AdditionalInfo = f.AdditionalInfo[:model.MaxAdditionalInfoLen]
	}

	in := &rules.Input{
		Case:    c,
		Factors: f,
		Offense: e.catalog.Find(c.Offense),
		Policy:  pol,
		Now:     e.now(),
	}

	if in.Offense == nil {
		reasoning = append(reasoning, fmt.Sprintf(
			"%q was not matched to a catalogued offense; it was screened with unknown severity and motion-based relief remains available.",
			c.Offense))
	}

	var options []model.ReliefOption
	for _, check := range rules.All() {
		options = append(options, check.Evaluate(in))
	}

	best := bestOption(options)

	reasoning = append(reasoning, summarize(options, best)...)
	result := &model.EligibilityResult{
		BestOption:        best,
		AllOptions:        options,
		Reasoning:         reasoning,
		NextSteps:         nextSteps(options, best),
		EstimatedTimeline: estimatedTimeline(best),
		RequiredDocuments: requiredDocuments(c, f, best),
	}
	return result, degraded
}

// bestOption picks the highest-priority eligible option. The scan keeps
// the first option at the winning priority, so ties break by list order.
func bestOption(options []model.ReliefOption) *model.ReliefOption {
	var best *model.ReliefOption
	bestRank := 0
	for i := range options {
		if !options[i].Eligible {
			continue
		}
		rank := rules.Priority(options[i].ReliefType)
		if best == nil || rank < bestRank {
			best = &options[i]
			bestRank = rank
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

func summarize(options []model.ReliefOption, best *model.ReliefOption) []string {
	var lines []string
	eligible := 0
	for i := range options {
		if options[i].Eligible {
			eligible++
		}
	}

	if best != nil {
		lines = append(lines, fmt.Sprintf(
			"%d of %d relief paths are currently available; %s is the strongest option.",
			eligible, len(options), best.Name))
	} else {
		lines = append(lines, "No relief path is currently available for this case.")
	}

	for i := range options {
		opt := &options[i]
		if opt.Eligible || len(opt.Reasons) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", opt.Name, opt.Reasons[0]))
		if opt.EstimatedEligibilityDate != "" {
			lines = append(lines, fmt.Sprintf(
				"%s becomes available on %s.", opt.Name, opt.EstimatedEligibilityDate))
		}
	}
	return lines
}

// nextSteps derives actionable steps from the eligible option set. The
// output is a deterministic function of the options; there is no
// randomness and no external state.
func nextSteps(options []model.ReliefOption, best *model.ReliefOption) []model.NextStep {
	var steps []model.NextStep
	add := func(title, desc string) {
		steps = append(steps, model.NextStep{Step: len(steps) + 1, Title: title, Description: desc})
	}

	hasAutomatic := false
	hasMotion := false
	for i := range options {
		if !options[i].Eligible {
			continue
		}
		switch options[i].ReliefType {
		case model.ReliefAutomaticExpungement, model.ReliefAutomaticSealing:
			hasAutomatic = true
		default:
			hasMotion = true
		}
	}

	switch {
	case hasAutomatic:
		add("Monitor your record",
			"Automatic relief requires no filing. Request a criminal history report to confirm the record clears.")
	case hasMotion:
		add("Prepare a motion",
			"File the motion for your strongest relief option with the court that handled the case.")
	default:
		add("Calendar your eligibility date",
			"You are not eligible yet. Note the estimated eligibility date and re-screen when it passes.")
	}

	if best != nil && best.AttorneyRecommended {
		add("Consult an attorney",
			"An attorney or legal aid clinic can strengthen the motion and appear with you in court.")
	}

	add("Gather your documents",
		"Collect the certified case disposition, proof of sentence completion, and a government-issued ID.")

	return steps
}

func estimatedTimeline(best *model.ReliefOption) string {
	if best == nil {
		return "Not currently eligible; timeline depends on the waiting period"
	}
	if best.Timeline != "" {
		return best.Timeline
	}
	return "Varies by court"
}

func requiredDocuments(c *model.UserCase, f *model.AdditionalFactors, best *model.ReliefOption) []string {
	docs := []string{
		"Certified copy of the case disposition",
		"Criminal history report",
		"Government-issued photo ID",
	}
	if c.IsConviction() {
		docs = append(docs, "Proof of sentence completion")
	}
	if f != nil && f.SeekingActualInnocence {
		docs = append(docs, "Evidence supporting the innocence claim")
	}
	if f != nil && f.IsTraffickingVictim {
		docs = append(docs, "Statement describing the trafficking circumstances")
	}
	if best != nil && best.ReliefType == model.ReliefYouthProgram {
		docs = append(docs, "Proof of age at the time of the offense")
	}
	return docs
}

func validateCase(c *model.UserCase, now time.Time) (model.Message, bool) {
	if c == nil {
		return model.Message{
			Level: model.LevelCritical, Code: model.CodeMissingOffense,
			Message: "No case was provided",
		}, false
	}
	if c.Offense == "" {
		return model.Message{
			Level: model.LevelCritical, Code: model.CodeMissingOffense,
			Message: "The case has no offense description",
		}, false
	}
	t, err := time.Parse("2006-01-02", c.OffenseDate)
	if err != nil {
		return model.Message{
			Level: model.LevelCritical, Code: model.CodeInvalidOffenseDate,
			Message: fmt.Sprintf("Offense date %q is missing or invalid", c.OffenseDate),
		}, false
	}
	if t.After(now) {
		return model.Message{
			Level: model.LevelCritical, Code: model.CodeInvalidOffenseDate,
			Message: fmt.Sprintf("Offense date %s is in the future", c.OffenseDate),
		}, false
	}
	return model.Message{}, true
}

// degradedResult is the never-throw fallback: empty options with an
// explanation and generic next steps.
func degradedResult(msg model.Message) *model.EligibilityResult {
	return &model.EligibilityResult{
		AllOptions: []model.ReliefOption{},
		Reasoning: []string{
			"The case could not be screened: " + msg.Message + ".",
			"Correct the case information and run the screening again.",
		},
		NextSteps: []model.NextStep{
			{Step: 1, Title: "Complete the case record",
				Description: "Provide the offense, a valid offense date, and the case outcome."},
			{Step: 2, Title: "Consult an attorney",
				Description: "A legal aid clinic can help reconstruct missing case details from court records."},
		},
		EstimatedTimeline: "Unknown until the case record is complete",
		RequiredDocuments: []string{"Certified copy of the case disposition"},
	}
}

func cloneFactors(f *model.AdditionalFactors) *model.AdditionalFactors {
	out := *f
	return &out
}
