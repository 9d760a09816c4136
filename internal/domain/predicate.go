package domain

// Field names a filterable attribute of a Job or one of its owned records.
type Field string

const (
	FieldIsOpen          Field = "isOpen"
	FieldTitle           Field = "title"
	FieldCompanyName     Field = "companyName"
	FieldLocations       Field = "locations"
	FieldIndustry        Field = "industry"
	FieldWorkplaceType   Field = "workplaceType"
	FieldOpportunityType Field = "opportunityType"
	FieldSalaryCurrency  Field = "salary.currency"
	FieldSalaryType      Field = "salary.type"
	FieldSalaryMin       Field = "salary.minAmount"
	FieldSalaryMax       Field = "salary.maxAmount"
	FieldSkills          Field = "requirements.skills"
	FieldMinExperience   Field = "requirements.minExperience"
)

type Op string

const (
	OpAnd      Op = "and"
	OpOr       Op = "or"
	OpEq       Op = "eq"
	OpIn       Op = "in"
	OpContains Op = "contains" // case-insensitive substring
	OpGte      Op = "gte"
	OpLte      Op = "lte"
	OpIsNull   Op = "isNull"
)

// Predicate is a condition tree over the Job collection. Leaves compare one
// Field; And/Or nodes combine their Children. An And node without children
// matches everything.
type Predicate struct {
	Op       Op          `json:"op"`
	Field    Field       `json:"field,omitempty"`
	Value    any         `json:"value,omitempty"`
	Values   []string    `json:"values,omitempty"`
	Children []Predicate `json:"children,omitempty"`
}

func And(children ...Predicate) Predicate {
	return Predicate{Op: OpAnd, Children: children}
}

func Or(children ...Predicate) Predicate {
	return Predicate{Op: OpOr, Children: children}
}

func Eq(f Field, v any) Predicate {
	return Predicate{Op: OpEq, Field: f, Value: v}
}

// In copies values so later changes to the caller's slice do not leak in.
func In(f Field, values []string) Predicate {
	vs := make([]string, len(values))
	copy(vs, values)
	return Predicate{Op: OpIn, Field: f, Values: vs}
}

func Contains(f Field, s string) Predicate {
	return Predicate{Op: OpContains, Field: f, Value: s}
}

func Gte(f Field, v any) Predicate {
	return Predicate{Op: OpGte, Field: f, Value: v}
}

func Lte(f Field, v any) Predicate {
	return Predicate{Op: OpLte, Field: f, Value: v}
}

func IsNull(f Field) Predicate {
	return Predicate{Op: OpIsNull, Field: f}
}

// MatchesAll reports whether the predicate imposes no restriction.
func (p Predicate) MatchesAll() bool {
	if p.Op != OpAnd {
		return false
	}
	for _, c := range p.Children {
		if !c.MatchesAll() {
			return false
		}
	}
	return true
}
