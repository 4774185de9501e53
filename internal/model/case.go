package model

// Case outcomes.
const (
	OutcomeConvicted     = "convicted"
	OutcomeDismissed     = "dismissed"
	OutcomeAcquitted     = "acquitted"
	OutcomeNoPapered     = "no_papered"
	OutcomeNolleProsequi = "nolle_prosequi"
)

// Offense severities.
const (
	SeverityMisdemeanor = "misdemeanor"
	SeverityFelony      = "felony"
	SeverityInfraction  = "infraction"
	SeverityUnknown     = "unknown"
)

// UserCase is a single criminal case to screen for relief.
// Dates are "2006-01-02" strings; the engine parses and validates them
// and degrades gracefully on bad values.
type UserCase struct {
	ID                   string    `json:"id"`
	Offense              string    `json:"offense"`
	OffenseDate          string    `json:"offense_date"`
	Outcome              string    `json:"outcome"`
	AgeAtOffense         int       `json:"age_at_offense"`
	IsTraffickingRelated bool      `json:"is_trafficking_related"`
	Jurisdiction         string    `json:"jurisdiction"`
	Sentence             *Sentence `json:"sentence,omitempty"`
	CompletionDate       string    `json:"completion_date,omitempty"`
}

// Sentence describes the terms imposed on a conviction. A conviction is
// eligible for any time-gated relief only once AllCompleted is true.
type Sentence struct {
	JailTime         string `json:"jail_time,omitempty"`
	Probation        string `json:"probation,omitempty"`
	Fines            string `json:"fines,omitempty"`
	CommunityService string `json:"community_service,omitempty"`
	AllCompleted     bool   `json:"all_completed"`
	CompletionDate   string `json:"completion_date,omitempty"`
}

// EffectiveCompletionDate returns the case-level completion date when set,
// otherwise the sentence completion date, otherwise "".
func (c *UserCase) EffectiveCompletionDate() string {
	if c.CompletionDate != "" {
		return c.CompletionDate
	}
	if c.Sentence != nil {
		return c.Sentence.CompletionDate
	}
	return ""
}

// IsConviction reports whether the case outcome is a conviction.
func (c *UserCase) IsConviction() bool {
	return c.Outcome == OutcomeConvicted
}

// MaxAdditionalInfoLen bounds the free-text field on AdditionalFactors.
const MaxAdditionalInfoLen = 2000

// AdditionalFactors carries screening context outside the case record.
type AdditionalFactors struct {
	HasOpenCases           bool   `json:"has_open_cases"`
	IsTraffickingVictim    bool   `json:"is_trafficking_victim"`
	SeekingActualInnocence bool   `json:"seeking_actual_innocence"`
	AdditionalInfo         string `json:"additional_info,omitempty"`
}

// PersonalInfo is supplied by the surrounding application and used only as
// template context; the core never validates it beyond whitelist/sanitization.
type PersonalInfo struct {
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zip_code"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
}
