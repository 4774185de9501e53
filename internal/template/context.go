package template

import (
	"strconv"
	"time"

	"relief-engine/internal/model"
)

// Context is the flattened value set a render runs against. Values are
// keyed by whitelisted dotted path; resolution of anything else fails.
type Context struct {
	values map[string]string
}

// NewContext flattens case, personal, and custom data into template
// context. Custom fields are reachable only through "custom.<key>" paths
// that are themselves whitelisted.
func NewContext(c *model.UserCase, p *model.PersonalInfo, custom map[string]string, courtName string, now time.Time) *Context {
	v := make(map[string]string)

	if c != nil {
		v["userCase.id"] = c.ID
		v["userCase.offense"] = c.Offense
		v["userCase.offenseDate"] = c.OffenseDate
		v["userCase.outcome"] = c.Outcome
		v["userCase.ageAtOffense"] = strconv.Itoa(c.AgeAtOffense)
		v["userCase.jurisdiction"] = c.Jurisdiction
		v["userCase.completionDate"] = c.CompletionDate
		if c.Sentence != nil {
			v["userCase.sentence.completionDate"] = c.Sentence.CompletionDate
		}
		v["jurisdiction"] = c.Jurisdiction
		v["caseNumber"] = c.ID
	}

	if p != nil {
		v["personalInfo.fullName"] = p.FullName
		v["personalInfo.dateOfBirth"] = p.DateOfBirth
		v["personalInfo.address"] = p.Address
		v["personalInfo.city"] = p.City
		v["personalInfo.state"] = p.State
		v["personalInfo.zipCode"] = p.ZipCode
		v["personalInfo.phone"] = p.Phone
		v["personalInfo.email"] = p.Email
	}

	for key, val := range custom {
		v["custom."+key] = val
	}

	v["currentDate"] = now.Format("January 2, 2006")
	v["courtName"] = courtName

	return &Context{values: v}
}

// Resolve returns the value for a path. The whitelist is enforced by the
// processor before resolution; Resolve itself only reports presence.
func (c *Context) Resolve(path string) (string, bool) {
	val, ok := c.values[path]
	return val, ok
}
