package usecase

import (
	"strings"

	"go-jobboard-backend/internal/domain"
)

// BuildJobFilter turns optional listing parameters into a predicate. Every
// absent or blank input means "no restriction"; conditions on different
// inputs are AND-ed and the free-text search is an OR over the text columns.
// params is never modified.
func BuildJobFilter(params domain.JobListParams) domain.Predicate {
	var conds []domain.Predicate

	if params.ShowOpenOnly == "true" {
		conds = append(conds, domain.Eq(domain.FieldIsOpen, true))
	}

	if types := cleanList(params.OpportunityTypes); len(types) > 0 {
		conds = append(conds, domain.In(domain.FieldOpportunityType, types))
	}

	if loc := strings.TrimSpace(params.Locations); loc != "" {
		conds = append(conds, domain.Contains(domain.FieldLocations, loc))
	}

	if ind := strings.TrimSpace(params.Industry); ind != "" {
		conds = append(conds, domain.Contains(domain.FieldIndustry, ind))
	}

	if types := cleanList(params.WorkplaceTypes); len(types) > 0 {
		conds = append(conds, domain.In(domain.FieldWorkplaceType, types))
	}

	if q := strings.TrimSpace(params.Search); q != "" {
		conds = append(conds, domain.Or(
			domain.Contains(domain.FieldTitle, q),
			domain.Contains(domain.FieldCompanyName, q),
			domain.Contains(domain.FieldLocations, q),
			domain.Contains(domain.FieldIndustry, q),
		))
	}

	// Salary bounds select postings whose advertised range overlaps the
	// requested one. An open-ended side of the posting always overlaps.
	if params.SalaryMin != nil {
		conds = append(conds, domain.Or(
			domain.IsNull(domain.FieldSalaryMax),
			domain.Gte(domain.FieldSalaryMax, *params.SalaryMin),
		))
	}
	if params.SalaryMax != nil {
		conds = append(conds, domain.Or(
			domain.IsNull(domain.FieldSalaryMin),
			domain.Lte(domain.FieldSalaryMin, *params.SalaryMax),
		))
	}
	if cur := strings.TrimSpace(params.SalaryCurrency); cur != "" {
		conds = append(conds, domain.Eq(domain.FieldSalaryCurrency, cur))
	}
	if typ := strings.TrimSpace(params.SalaryType); typ != "" {
		conds = append(conds, domain.Eq(domain.FieldSalaryType, typ))
	}

	// skills is free text, so each requested skill must appear somewhere in it
	for _, skill := range cleanList(params.Skills) {
		conds = append(conds, domain.Contains(domain.FieldSkills, skill))
	}

	switch strings.TrimSpace(params.Experience) {
	case domain.ExperienceFresher:
		conds = append(conds, domain.Or(
			domain.IsNull(domain.FieldMinExperience),
			domain.Lte(domain.FieldMinExperience, 0),
		))
	case domain.ExperienceExperienced:
		conds = append(conds, domain.Gte(domain.FieldMinExperience, 1))
	}

	return domain.And(conds...)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
