package vectorstore

import (
	"strings"

	"github.com/poiesic/talentsearch/core"
)

// Metadata field names understood by predicates.
const (
	FieldYearsExperience = "years_experience"
	FieldLocation        = "location"
	FieldEducationLevel  = "education_level"
	FieldJobTitle        = "job_title"
	FieldCurrentCompany  = "current_company"
	FieldPastCompanies   = "past_companies"
	FieldDateApplied     = "date_applied"
)

// Range holds inclusive numeric bounds. Date bounds are epoch seconds.
type Range struct {
	GTE *float64
	LTE *float64
}

// Condition is a single predicate clause. Exactly one of Range, Equals,
// Contains, or Any is set; the others are nil.
type Condition struct {
	Field string

	// Range matches when the numeric field value lies within the bounds.
	Range *Range

	// Equals matches when the string field value is exactly equal.
	Equals *string

	// Contains matches when the string field value contains the given text,
	// case-insensitively. For list-valued fields it matches any element.
	Contains *string

	// Any is an OR-group: the condition matches when at least one member
	// matches. Field is ignored when Any is set.
	Any []Condition
}

// Predicate is a metadata pre-filter: a conjunction of conditions a record
// must satisfy to be considered by a facet query.
type Predicate struct {
	Must []Condition
}

// Matches reports whether the applicant satisfies every condition.
// A nil predicate matches everything.
func (p *Predicate) Matches(app *core.Applicant) bool {
	if p == nil {
		return true
	}
	for _, cond := range p.Must {
		if !cond.matches(app) {
			return false
		}
	}
	return true
}

func (c *Condition) matches(app *core.Applicant) bool {
	if len(c.Any) > 0 {
		for i := range c.Any {
			if c.Any[i].matches(app) {
				return true
			}
		}
		return false
	}

	switch {
	case c.Range != nil:
		value, ok := numberField(app, c.Field)
		if !ok {
			return false
		}
		if c.Range.GTE != nil && value < *c.Range.GTE {
			return false
		}
		if c.Range.LTE != nil && value > *c.Range.LTE {
			return false
		}
		return true

	case c.Equals != nil:
		value, ok := stringField(app, c.Field)
		if !ok {
			return false
		}
		return value == *c.Equals

	case c.Contains != nil:
		needle := strings.ToLower(*c.Contains)
		if c.Field == FieldPastCompanies {
			for _, company := range app.PastCompanies {
				if strings.Contains(strings.ToLower(company), needle) {
					return true
				}
			}
			return false
		}
		value, ok := stringField(app, c.Field)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(value), needle)
	}

	// Empty condition matches nothing
	return false
}

func numberField(app *core.Applicant, field string) (float64, bool) {
	switch field {
	case FieldYearsExperience:
		return app.YearsExperience, true
	case FieldDateApplied:
		return float64(app.DateApplied.Unix()), true
	default:
		return 0, false
	}
}

func stringField(app *core.Applicant, field string) (string, bool) {
	switch field {
	case FieldLocation:
		return app.Location, true
	case FieldEducationLevel:
		return app.EducationLevel, true
	case FieldJobTitle:
		return app.JobTitle, true
	case FieldCurrentCompany:
		return app.CurrentCompany, true
	default:
		return "", false
	}
}
