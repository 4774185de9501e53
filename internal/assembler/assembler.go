// Package assembler turns an eligibility result and case data into a
// filing-ready document package: the right document set, filing
// instructions, a fee table, and a processing-time estimate. Assembly is
// all-or-nothing; one failed document fails the package.
package assembler

import (
	"fmt"
	"time"

	"relief-engine/internal/model"
	"relief-engine/internal/policy"
	"relief-engine/internal/template"
)

type Assembler struct {
	registry  *template.Registry
	processor *template.Processor
	policies  *policy.Set
	now       func() time.Time
}

// New builds an assembler over the template registry and processor.
func New(registry *template.Registry, processor *template.Processor, policies *policy.Set) *Assembler {
	return &Assembler{registry: registry, processor: processor, policies: policies, now: time.Now}
}

// NewWithClock is New with an injected clock, for deterministic tests.
func NewWithClock(registry *template.Registry, processor *template.Processor, policies *policy.Set, now func() time.Time) *Assembler {
	return &Assembler{registry: registry, processor: processor, policies: policies, now: now}
}

// GeneratePackage assembles the full filing package for a case. Any
// single document failure aborts the package and surfaces that document's
// error; there is no partial package.
func (a *Assembler) GeneratePackage(c *model.UserCase, f *model.AdditionalFactors, p *model.PersonalInfo, custom map[string]string) (*model.DocumentPackage, error) {
	pol, _ := a.policies.Lookup(c.Jurisdiction)
	ctx := template.NewContext(c, p, custom, pol.CourtName, a.now())

	docTypes := requiredDocumentTypes(c, f)

	docs := make([]model.GeneratedDocument, 0, len(docTypes))
	for _, dt := range docTypes {
		tpl, err := a.registry.GetByType(dt)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", model.CodePackageGenerationError, dt, err)
		}
		doc, err := a.processor.Generate(tpl, ctx, c, custom)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", model.CodePackageGenerationError, dt, err)
		}
		docs = append(docs, *doc)
	}

	fees := feeTable(docTypes, &pol, f)

	return &model.DocumentPackage{
		Documents:               docs,
		FilingInstructions:      filingInstructions(&pol, f, fees),
		RequiredFees:            fees,
		EstimatedProcessingTime: processingEstimate(c, f, &pol),
	}, nil
}

// requiredDocumentTypes picks the filing path. Actual-innocence claims
// file an expungement petition with a sworn declaration; everything else
// files a sealing motion. Common and conditional documents ride along.
func requiredDocumentTypes(c *model.UserCase, f *model.AdditionalFactors) []string {
	var types []string

	if f != nil && f.SeekingActualInnocence {
		types = append(types, model.DocExpungementPetition, model.DocInnocenceDeclaration)
	} else {
		types = append(types, model.DocSealingMotion)
	}

	if c.Sentence != nil && c.Sentence.Probation != "" {
		types = append(types, model.DocCompletionAffidavit)
	}
	if f != nil && f.IsTraffickingVictim {
		types = append(types, model.DocTraffickingStatement)
	}

	types = append(types, model.DocCoverLetter, model.DocCertificateOfService)
	return types
}

// feeTable builds the deduplicated fee list from the jurisdiction's fixed
// schedule. Trafficking survivors have all fees waiver-eligible.
func feeTable(docTypes []string, pol *policy.Policy, f *model.AdditionalFactors) []model.FilingFee {
	seen := map[string]bool{}
	var fees []model.FilingFee
	for _, dt := range docTypes {
		if seen[dt] {
			continue
		}
		seen[dt] = true
		entry := pol.FeeFor(dt)
		waiver := entry.WaiverEligible
		if f != nil && f.IsTraffickingVictim && entry.Amount > 0 {
			waiver = true
		}
		fees = append(fees, model.FilingFee{
			DocumentType:   dt,
			Description:    entry.Description,
			Amount:         entry.Amount,
			WaiverEligible: waiver,
		})
	}
	return fees
}

func filingInstructions(pol *policy.Policy, f *model.AdditionalFactors, fees []model.FilingFee) []string {
	var total float64
	for _, fee := range fees {
		total += fee.Amount
	}

	instructions := []string{
		fmt.Sprintf("File all documents with the Criminal Division clerk of the %s.", pol.CourtName),
		"Bring a government-issued photo ID and two copies of each document; the clerk keeps the original.",
	}
	if total > 0 {
		instructions = append(instructions, fmt.Sprintf(
			"Total filing fees are $%.2f. If you cannot afford the fee, file an application to proceed without prepayment of costs.", total))
	} else {
		instructions = append(instructions, "No filing fee is due for this package.")
	}
	instructions = append(instructions,
		"Serve a copy of the filing on the prosecuting office and file the certificate of service.")
	if f != nil && f.IsTraffickingVictim {
		instructions = append(instructions,
			"Ask the clerk to route the filing to the expedited survivor docket; these motions receive priority scheduling.")
	}
	return instructions
}

// processingEstimate computes the adjusted base duration and expresses it
// as a [min, max] day range, clamped to the policy floor.
func processingEstimate(c *model.UserCase, f *model.AdditionalFactors, pol *policy.Policy) model.ProcessingEstimate {
	days := pol.Processing.BaseDays
	if c.IsConviction() {
		days += pol.Processing.ConvictionDays
	}
	if f != nil && f.SeekingActualInnocence {
		days += pol.Processing.InnocenceDays
	}
	if f != nil && f.HasOpenCases {
		days += pol.Processing.OpenCasesDays
	}
	if f != nil && f.IsTraffickingVictim {
		days += pol.Processing.TraffickingDays
	}
	if days < pol.Processing.MinDays {
		days = pol.Processing.MinDays
	}

	min := days - pol.Processing.RangeBelow
	if min < pol.Processing.MinDays {
		min = pol.Processing.MinDays
	}
	max := days + pol.Processing.RangeAbove

	return model.ProcessingEstimate{
		MinDays:     min,
		MaxDays:     max,
		Description: fmt.Sprintf("Approximately %d to %d days from filing to decision", min, max),
	}
}
