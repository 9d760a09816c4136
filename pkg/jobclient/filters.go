package jobclient

import (
	"net/url"
	"strconv"
	"strings"
)

// Filters mirrors the listing filter panel of the job board frontend.
type Filters struct {
	ShowOpenOnly     bool
	OpportunityTypes []string
	WorkplaceTypes   []string
	Skills           []string
	Locations        string
	Industry         string
	Search           string
	Experience       string
	SalaryCurrency   string
	SalaryType       string
	SalaryMin        *float64
	SalaryMax        *float64
}

// Query encodes the filters the way GET /jobs expects them: one repeated key
// per selected value and nothing at all for empty inputs.
func (f Filters) Query() url.Values {
	q := url.Values{}
	if f.ShowOpenOnly {
		q.Set("showOpenOnly", "true")
	}
	addAll(q, "opportunityType", f.OpportunityTypes)
	addAll(q, "workplaceType", f.WorkplaceTypes)
	addAll(q, "skills", f.Skills)
	setNonEmpty(q, "locations", f.Locations)
	setNonEmpty(q, "industry", f.Industry)
	setNonEmpty(q, "search", f.Search)
	setNonEmpty(q, "experience", f.Experience)
	setNonEmpty(q, "salaryCurrency", f.SalaryCurrency)
	setNonEmpty(q, "salaryType", f.SalaryType)
	if f.SalaryMin != nil {
		q.Set("salaryMin", strconv.FormatFloat(*f.SalaryMin, 'f', -1, 64))
	}
	if f.SalaryMax != nil {
		q.Set("salaryMax", strconv.FormatFloat(*f.SalaryMax, 'f', -1, 64))
	}
	return q
}

func addAll(q url.Values, key string, values []string) {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			q.Add(key, v)
		}
	}
}

func setNonEmpty(q url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		q.Set(key, value)
	}
}
