package model

// OffenseDefinition is one row of the static offense catalog. Loaded once,
// never mutated at runtime.
type OffenseDefinition struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Severity string   `json:"severity"`
	// Class groups offenses for policy rules (e.g. "marijuana_possession"
	// for decriminalization cutoffs, "failure_to_appear" for the felony
	// sealing carve-out). Empty for offenses with no special class.
	Class string `json:"class,omitempty"`
	// ExcludedFrom lists relief types this offense can never receive.
	ExcludedFrom []string `json:"excluded_from,omitempty"`
}

// ExcludedFromRelief reports whether reliefType appears in ExcludedFrom.
func (o *OffenseDefinition) ExcludedFromRelief(reliefType string) bool {
	for _, r := range o.ExcludedFrom {
		if r == reliefType {
			return true
		}
	}
	return false
}
