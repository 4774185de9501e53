// Package policy carries jurisdiction-specific relief constants as data:
// waiting periods, decriminalization cutoffs, fee schedules, and processing
// time modifiers. Rules read policy values instead of hard-coding years.
package policy

import (
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const configPathEnv = "RELIEF_POLICY_CONFIG"

// DecriminalizedClass marks an offense class as decriminalized in a
// jurisdiction. Offenses in the class committed before CutoffDate qualify
// for automatic expungement.
type DecriminalizedClass struct {
	Class      string   `yaml:"class"`
	Name       string   `yaml:"name"`
	CutoffDate string   `yaml:"cutoffDate"`
	Keywords   []string `yaml:"keywords"`
}

// FeeEntry is the fixed filing fee for one document type.
type FeeEntry struct {
	DocumentType   string  `yaml:"documentType"`
	Description    string  `yaml:"description"`
	Amount         float64 `yaml:"amount"`
	WaiverEligible bool    `yaml:"waiverEligible"`
}

// Processing holds the processing-time estimate parameters: a base number
// of days, additive modifiers, a floor, and the width of the final range.
type Processing struct {
	BaseDays        int `yaml:"baseDays"`
	MinDays         int `yaml:"minDays"`
	ConvictionDays  int `yaml:"convictionDays"`
	InnocenceDays   int `yaml:"innocenceDays"`
	OpenCasesDays   int `yaml:"openCasesDays"`
	TraffickingDays int `yaml:"traffickingDays"`
	RangeBelow      int `yaml:"rangeBelow"`
	RangeAbove      int `yaml:"rangeAbove"`
}

// Policy is the rule-constant set for one jurisdiction.
type Policy struct {
	Jurisdiction                   string                `yaml:"jurisdiction"`
	CourtName                      string                `yaml:"courtName"`
	AutoSealWaitYears              int                   `yaml:"autoSealWaitYears"`
	MotionSealMisdemeanorWaitYears int                   `yaml:"motionSealMisdemeanorWaitYears"`
	MotionSealFTAFelonyWaitYears   int                   `yaml:"motionSealFtaFelonyWaitYears"`
	YouthAgeMax                    int                   `yaml:"youthAgeMax"`
	MotionFilingFee                float64               `yaml:"motionFilingFee"`
	Decriminalized                 []DecriminalizedClass `yaml:"decriminalized"`
	Fees                           []FeeEntry            `yaml:"fees"`
	Processing                     Processing            `yaml:"processing"`
}

// DecriminalizedFor returns the decriminalized class matching the offense,
// by class id when the catalog resolved one, else by keyword containment
// over the raw offense text.
func (p *Policy) DecriminalizedFor(class, offenseText string) *DecriminalizedClass {
	for i := range p.Decriminalized {
		if class != "" && p.Decriminalized[i].Class == class {
			return &p.Decriminalized[i]
		}
	}
	if offenseText == "" {
		return nil
	}
	for i := range p.Decriminalized {
		if containsAnyFold(offenseText, p.Decriminalized[i].Keywords) {
			return &p.Decriminalized[i]
		}
	}
	return nil
}

// FeeFor returns the fee entry for a document type, defaulting to a zero
// fee when the schedule has no row.
func (p *Policy) FeeFor(documentType string) FeeEntry {
	for _, f := range p.Fees {
		if f.DocumentType == documentType {
			return f
		}
	}
	return FeeEntry{DocumentType: documentType, Description: "Filing fee", Amount: 0}
}

// Set resolves jurisdiction ids to policies, falling back to the default
// jurisdiction for ids it does not know.
type Set struct {
	byJurisdiction map[string]Policy
	fallback       Policy
}

type configFile struct {
	Default       string   `yaml:"default"`
	Jurisdictions []Policy `yaml:"jurisdictions"`
}

// Load builds the policy set from built-in defaults, applying the YAML
// override file named by RELIEF_POLICY_CONFIG when present. Parse failures
// fall back to defaults with a logged warning, never an error.
func Load() *Set {
	set := Defaults()

	path := os.Getenv(configPathEnv)
	if path == "" {
		return set
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("policy: cannot read %s: %v (using defaults)", path, err)
		return set
	}
	var cfg configFile
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		log.Printf("policy: cannot parse %s: %v (using defaults)", path, err)
		return set
	}
	for _, p := range cfg.Jurisdictions {
		if p.Jurisdiction == "" {
			continue
		}
		set.byJurisdiction[p.Jurisdiction] = p
	}
	if cfg.Default != "" {
		if p, ok := set.byJurisdiction[cfg.Default]; ok {
			set.fallback = p
		}
	}
	return set
}

// Defaults returns the built-in policy set (District of Columbia numbers).
func Defaults() *Set {
	dc := defaultDC()
	return &Set{
		byJurisdiction: map[string]Policy{dc.Jurisdiction: dc},
		fallback:       dc,
	}
}

// Lookup returns the policy for a jurisdiction id. The second return is
// false when the id is unknown and the fallback policy was used.
func (s *Set) Lookup(jurisdiction string) (Policy, bool) {
	if p, ok := s.byJurisdiction[jurisdiction]; ok {
		return p, true
	}
	return s.fallback, false
}

func defaultDC() Policy {
	return Policy{
		Jurisdiction:                   "dc",
		CourtName:                      "Superior Court of the District of Columbia",
		AutoSealWaitYears:              10,
		MotionSealMisdemeanorWaitYears: 5,
		MotionSealFTAFelonyWaitYears:   8,
		YouthAgeMax:                    24,
		MotionFilingFee:                80,
		Decriminalized: []DecriminalizedClass{
			{
				Class:      "marijuana_possession",
				Name:       "Simple possession of marijuana",
				CutoffDate: "2015-02-26",
				Keywords:   []string{"marijuana", "cannabis"},
			},
		},
		Fees: []FeeEntry{
			{DocumentType: "expungement_petition", Description: "Petition filing fee", Amount: 100, WaiverEligible: true},
			{DocumentType: "sealing_motion", Description: "Motion filing fee", Amount: 80, WaiverEligible: true},
			{DocumentType: "innocence_declaration", Description: "Declaration (no fee)", Amount: 0, WaiverEligible: false},
			{DocumentType: "completion_affidavit", Description: "Affidavit (no fee)", Amount: 0, WaiverEligible: false},
			{DocumentType: "trafficking_statement", Description: "Statement (fee waived)", Amount: 0, WaiverEligible: false},
			{DocumentType: "cover_letter", Description: "No fee", Amount: 0, WaiverEligible: false},
			{DocumentType: "certificate_of_service", Description: "No fee", Amount: 0, WaiverEligible: false},
		},
		Processing: Processing{
			BaseDays:        90,
			MinDays:         30,
			ConvictionDays:  30,
			InnocenceDays:   60,
			OpenCasesDays:   30,
			TraffickingDays: -30,
			RangeBelow:      15,
			RangeAbove:      30,
		},
	}
}

func containsAnyFold(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
