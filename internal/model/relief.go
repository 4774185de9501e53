package model

// Relief type identifiers. The best-option ranking over these is fixed and
// explicit (see rules.Priority), never inferred from list order.
const (
	ReliefAutomaticExpungement = "automatic_expungement"
	ReliefAutomaticSealing     = "automatic_sealing"
	ReliefTraffickingSurvivors = "trafficking_survivors"
	ReliefMotionExpungement    = "motion_expungement"
	ReliefMotionSealing        = "motion_sealing"
	ReliefYouthProgram         = "youth_program"
)

// Difficulty / success-likelihood scales.
const (
	DifficultyEasy      = "easy"
	DifficultyModerate  = "moderate"
	DifficultyDifficult = "difficult"

	LikelihoodHigh     = "high"
	LikelihoodModerate = "moderate"
	LikelihoodLow      = "low"
)

// ReliefOption is one evaluated relief path. Created fresh per assessment,
// never mutated after return.
type ReliefOption struct {
	Eligible                 bool      `json:"eligible"`
	ReliefType               string    `json:"relief_type"`
	Name                     string    `json:"name"`
	Description              string    `json:"description"`
	Reasons                  []string  `json:"reasons"`
	Requirements             []string  `json:"requirements"`
	Messages                 []Message `json:"messages,omitempty"`
	Timeline                 string    `json:"timeline,omitempty"`
	EstimatedEligibilityDate string    `json:"estimated_eligibility_date,omitempty"`
	Difficulty               string    `json:"difficulty,omitempty"`
	SuccessLikelihood        string    `json:"success_likelihood,omitempty"`
	FilingFee                *float64  `json:"filing_fee,omitempty"`
	AttorneyRecommended      bool      `json:"attorney_recommended"`
}

// NextStep is one actionable item generated from the eligible option set.
type NextStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// EligibilityResult is the engine's sole output contract. BestOption is
// derived from AllOptions (highest-priority eligible member), never set
// independently. Reasoning and NextSteps are always non-empty.
type EligibilityResult struct {
	BestOption        *ReliefOption  `json:"best_option,omitempty"`
	AllOptions        []ReliefOption `json:"all_options"`
	Reasoning         []string       `json:"reasoning"`
	NextSteps         []NextStep     `json:"next_steps"`
	EstimatedTimeline string         `json:"estimated_timeline"`
	RequiredDocuments []string       `json:"required_documents"`
}
