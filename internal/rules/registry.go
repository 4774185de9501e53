package rules

import "relief-engine/internal/model"

// All returns the relief checks in evaluation order.
func All() []Check {
	return []Check{
		&AutomaticExpungementCheck{},
		&AutomaticSealingCheck{},
		&MotionExpungementCheck{},
		&MotionSealingCheck{},
		&YouthProgramCheck{},
		&TraffickingSurvivorsCheck{},
	}
}

// priority is the fixed best-option ranking over relief types. Lower wins.
// Ties between options of equal priority break by option list order.
var priority = map[string]int{
	model.ReliefAutomaticExpungement: 1,
	model.ReliefAutomaticSealing:     2,
	model.ReliefTraffickingSurvivors: 3,
	model.ReliefMotionExpungement:    4,
	model.ReliefMotionSealing:        5,
	model.ReliefYouthProgram:         6,
}

// Priority returns the ranking for a relief type; unknown types rank last.
func Priority(reliefType string) int {
	if p, ok := priority[reliefType]; ok {
		return p
	}
	return len(priority) + 1
}
