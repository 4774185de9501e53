package template

import "relief-engine/internal/model"

// builtinTemplates returns the filing templates registered at startup.
// Template bodies use only whitelisted paths.
func builtinTemplates() []*model.DocumentTemplate {
	return []*model.DocumentTemplate{
		{
			ID:           "dc_expungement_petition",
			Name:         "Petition for Expungement",
			DocumentType: model.DocExpungementPetition,
			Jurisdiction: "dc",
			RequiredFields: []model.TemplateField{
				{Path: "personalInfo.fullName", Label: "Full legal name", Required: true},
				{Path: "userCase.offense", Label: "Offense", Required: true},
				{Path: "userCase.offenseDate", Label: "Offense date", Required: true},
			},
			Template: `{{courtName}}

PETITION FOR EXPUNGEMENT OF CRIMINAL RECORD

Petitioner: {{personalInfo.fullName}}
Date of Birth: {{personalInfo.dateOfBirth}}
Address: {{personalInfo.address}}, {{personalInfo.city}}, {{personalInfo.state}} {{personalInfo.zipCode}}

Case Number: {{caseNumber}}
Offense: {{userCase.offense}}
Date of Offense: {{userCase.offenseDate}}
Disposition: {{userCase.outcome}}

Petitioner respectfully moves this Court to expunge all records relating to the above-captioned case.
{{#if userCase.outcome === 'convicted'}}
Petitioner has completed all terms of the sentence imposed. Sentence completion date: {{userCase.completionDate}}.
{{/if}}
{{#if custom.reasonForRelief != ''}}
In support of this petition, Petitioner states: {{custom.reasonForRelief}}
{{/if}}

Dated: {{currentDate}}

_________________________
{{personalInfo.fullName}}, Petitioner`,
		},
		{
			ID:           "dc_sealing_motion",
			Name:         "Motion to Seal Criminal Record",
			DocumentType: model.DocSealingMotion,
			Jurisdiction: "dc",
			RequiredFields: []model.TemplateField{
				{Path: "personalInfo.fullName", Label: "Full legal name", Required: true},
				{Path: "userCase.offense", Label: "Offense", Required: true},
			},
			Template: `{{courtName}}

MOTION TO SEAL CRIMINAL RECORD

Movant: {{personalInfo.fullName}}
Address: {{personalInfo.address}}, {{personalInfo.city}}, {{personalInfo.state}} {{personalInfo.zipCode}}

Case Number: {{caseNumber}}
Offense: {{userCase.offense}}
Date of Offense: {{userCase.offenseDate}}
Disposition: {{userCase.outcome}}

Movant moves this Court to seal all records of the above-captioned case on the ground that sealing is in the interests of justice.
{{#if userCase.outcome === 'convicted'}}
Movant has completed the sentence in full and the statutory waiting period has elapsed.
{{/if}}
{{#if userCase.outcome != 'convicted'}}
The case terminated without a conviction, and sealing may be granted without a waiting period.
{{/if}}

Dated: {{currentDate}}

_________________________
{{personalInfo.fullName}}, Movant`,
		},
		{
			ID:           "dc_innocence_declaration",
			Name:         "Declaration of Actual Innocence",
			DocumentType: model.DocInnocenceDeclaration,
			Jurisdiction: "dc",
			RequiredFields: []model.TemplateField{
				{Path: "personalInfo.fullName", Label: "Full legal name", Required: true},
				{Path: "custom.innocenceStatement", Label: "Statement of innocence", Required: true},
			},
			Template: `DECLARATION OF ACTUAL INNOCENCE

I, {{personalInfo.fullName}}, declare under penalty of perjury:

1. I am the movant in case number {{caseNumber}}, charging {{userCase.offense}}.
2. I did not commit the offense of which I was accused.
{{#if custom.innocenceStatement != ''}}
3. {{custom.innocenceStatement}}
{{/if}}

Executed on {{currentDate}} at {{personalInfo.city}}, {{personalInfo.state}}.

_________________________
{{personalInfo.fullName}}`,
		},
		{
			ID:           "dc_completion_affidavit",
			Name:         "Affidavit of Sentence Completion",
			DocumentType: model.DocCompletionAffidavit,
			Jurisdiction: "dc",
			RequiredFields: []model.TemplateField{
				{Path: "personalInfo.fullName", Label: "Full legal name", Required: true},
				{Path: "userCase.completionDate", Label: "Completion date", Required: true},
			},
			Template: `AFFIDAVIT OF SENTENCE COMPLETION

I, {{personalInfo.fullName}}, being duly sworn, state:

1. I was sentenced in case number {{caseNumber}} for {{userCase.offense}}.
2. I completed all terms of my sentence, including any probation, on {{userCase.completionDate}}.
{{#if custom.completionDetails != ''}}
3. {{custom.completionDetails}}
{{/if}}

Sworn on {{currentDate}}.

_________________________
{{personalInfo.fullName}}, Affiant`,
		},
		{
			ID:           "dc_trafficking_statement",
			Name:         "Survivor Statement in Support of Vacatur",
			DocumentType: model.DocTraffickingStatement,
			Jurisdiction: "dc",
			RequiredFields: []model.TemplateField{
				{Path: "personalInfo.fullName", Label: "Full legal name", Required: true},
				{Path: "custom.traffickingStatement", Label: "Survivor statement", Required: true},
			},
			Template: `STATEMENT IN SUPPORT OF MOTION TO VACATE AND EXPUNGE

I, {{personalInfo.fullName}}, state in support of my motion in case number {{caseNumber}}:

The offense of {{userCase.offense}} arose from my being a victim of human trafficking.
{{#if custom.traffickingStatement != ''}}
{{custom.traffickingStatement}}
{{/if}}

I request that the Court vacate the conviction and expunge the related records, and that all filing fees be waived.

Dated: {{currentDate}}

_________________________
{{personalInfo.fullName}}`,
		},
		{
			ID:           "dc_cover_letter",
			Name:         "Filing Cover Letter",
			DocumentType: model.DocCoverLetter,
			Jurisdiction: "dc",
			RequiredFields: []model.TemplateField{
				{Path: "personalInfo.fullName", Label: "Full legal name", Required: true},
			},
			Template: `{{currentDate}}

Clerk of the Court
{{courtName}}

Re: Case Number {{caseNumber}} - {{personalInfo.fullName}}

Dear Clerk:

Enclosed for filing please find the attached documents in the above-referenced matter. Please file-stamp the enclosed copy and return it in the envelope provided.

Respectfully,

{{personalInfo.fullName}}
{{personalInfo.address}}
{{personalInfo.city}}, {{personalInfo.state}} {{personalInfo.zipCode}}`,
		},
		{
			ID:           "dc_certificate_of_service",
			Name:         "Certificate of Service",
			DocumentType: model.DocCertificateOfService,
			Jurisdiction: "dc",
			RequiredFields: []model.TemplateField{
				{Path: "personalInfo.fullName", Label: "Full legal name", Required: true},
			},
			Template: `CERTIFICATE OF SERVICE

I, {{personalInfo.fullName}}, certify that on {{currentDate}} I caused a copy of the foregoing filing in case number {{caseNumber}} to be served on the Office of the Attorney General and the United States Attorney's Office by first-class mail.

_________________________
{{personalInfo.fullName}}`,
		},
	}
}
