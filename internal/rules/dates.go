package rules

import "time"

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// addYears uses calendar-year addition, matching how waiting periods are
// written in statute (completion date plus N years, not N*365 days).
func addYears(t time.Time, years int) time.Time {
	return t.AddDate(years, 0, 0)
}

// waitingPeriodMet reports whether completion+years has passed as of now,
// and returns the date the period elapses.
func waitingPeriodMet(completion time.Time, years int, now time.Time) (bool, time.Time) {
	eligibleAt := addYears(completion, years)
	return !eligibleAt.After(now), eligibleAt
}
