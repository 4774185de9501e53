// Package catalog holds the static offense definition table. Lookups are
// read-only; a miss is a normal outcome for free-text offenses and callers
// fall back to unknown-severity handling.
package catalog

import (
	"strings"

	"relief-engine/internal/model"
)

type Catalog struct {
	defs []model.OffenseDefinition
}

// New returns a catalog over the built-in offense table.
func New() *Catalog {
	return &Catalog{defs: builtinOffenses()}
}

// NewWith returns a catalog over the given definitions. Used by tests and
// by deployments that load a jurisdiction-specific table at startup.
func NewWith(defs []model.OffenseDefinition) *Catalog {
	return &Catalog{defs: defs}
}

// Find matches offenseText against the table: exact case-insensitive name
// first, then the first definition with a keyword that is a substring of
// the text. Returns nil on no match.
func (c *Catalog) Find(offenseText string) *model.OffenseDefinition {
	text := strings.ToLower(strings.TrimSpace(offenseText))
	if text == "" {
		return nil
	}

	for i := range c.defs {
		if strings.ToLower(c.defs[i].Name) == text {
			return &c.defs[i]
		}
	}

	for i := range c.defs {
		for _, kw := range c.defs[i].Keywords {
			if strings.Contains(text, strings.ToLower(kw)) {
				return &c.defs[i]
			}
		}
	}

	return nil
}

func builtinOffenses() []model.OffenseDefinition {
	return []model.OffenseDefinition{
		{
			ID:       "marijuana_possession_simple",
			Name:     "Simple Possession of Marijuana",
			Keywords: []string{"marijuana possession", "possession of marijuana", "cannabis possession", "possession of cannabis"},
			Severity: model.SeverityMisdemeanor,
			Class:    "marijuana_possession",
		},
		{
			ID:       "murder_first_degree",
			Name:     "Murder in the First Degree",
			Keywords: []string{"murder", "first degree murder", "homicide"},
			Severity: model.SeverityFelony,
			ExcludedFrom: []string{
				model.ReliefAutomaticSealing,
				model.ReliefMotionSealing,
				model.ReliefAutomaticExpungement,
			},
		},
		{
			ID:       "sexual_abuse_first_degree",
			Name:     "First Degree Sexual Abuse",
			Keywords: []string{"sexual abuse", "sex abuse"},
			Severity: model.SeverityFelony,
			ExcludedFrom: []string{
				model.ReliefAutomaticSealing,
				model.ReliefMotionSealing,
				model.ReliefAutomaticExpungement,
			},
		},
		{
			ID:       "failure_to_appear_felony",
			Name:     "Felony Failure to Appear",
			Keywords: []string{"failure to appear", "bail reform act"},
			Severity: model.SeverityFelony,
			Class:    "failure_to_appear",
		},
		{
			ID:       "theft_second_degree",
			Name:     "Theft in the Second Degree",
			Keywords: []string{"theft", "shoplifting", "larceny"},
			Severity: model.SeverityMisdemeanor,
		},
		{
			ID:       "simple_assault",
			Name:     "Simple Assault",
			Keywords: []string{"simple assault", "assault"},
			Severity: model.SeverityMisdemeanor,
		},
		{
			ID:       "unlawful_entry",
			Name:     "Unlawful Entry",
			Keywords: []string{"unlawful entry", "trespass"},
			Severity: model.SeverityMisdemeanor,
		},
		{
			ID:       "dui_first_offense",
			Name:     "Driving Under the Influence",
			Keywords: []string{"dui", "driving under the influence", "dwi"},
			Severity: model.SeverityMisdemeanor,
		},
		{
			ID:       "possession_with_intent",
			Name:     "Possession With Intent to Distribute",
			Keywords: []string{"possession with intent", "distribution"},
			Severity: model.SeverityFelony,
		},
		{
			ID:       "burglary_first_degree",
			Name:     "Burglary in the First Degree",
			Keywords: []string{"burglary"},
			Severity: model.SeverityFelony,
			ExcludedFrom: []string{
				model.ReliefAutomaticSealing,
			},
		},
	}
}
