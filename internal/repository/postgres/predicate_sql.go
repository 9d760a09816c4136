package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/lib/pq"
)

// jobColumns maps filterable fields to columns of the joined listing query
// (j = jobs, s = salaries, r = requirements). Anything not listed here can
// never reach SQL.
var jobColumns = map[domain.Field]string{
	domain.FieldIsOpen:          "j.is_open",
	domain.FieldTitle:           "j.title",
	domain.FieldCompanyName:     "j.company_name",
	domain.FieldLocations:       "j.locations",
	domain.FieldIndustry:        "j.industry",
	domain.FieldWorkplaceType:   "j.workplace_type",
	domain.FieldOpportunityType: "j.opportunity_type",
	domain.FieldSalaryCurrency:  "s.currency",
	domain.FieldSalaryType:      "s.type",
	domain.FieldSalaryMin:       "s.min_amount",
	domain.FieldSalaryMax:       "s.max_amount",
	domain.FieldSkills:          "r.skills",
	domain.FieldMinExperience:   "r.min_experience",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type whereBuilder struct {
	args []any
}

// buildWhere renders p as a SQL boolean expression with $n placeholders
// numbered from 1.
func buildWhere(p domain.Predicate) (string, []any, error) {
	b := &whereBuilder{}
	sql, err := b.render(p)
	if err != nil {
		return "", nil, err
	}
	return sql, b.args, nil
}

func (b *whereBuilder) placeholder(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *whereBuilder) render(p domain.Predicate) (string, error) {
	switch p.Op {
	case domain.OpAnd:
		return b.join(p.Children, " AND ", "TRUE")
	case domain.OpOr:
		return b.join(p.Children, " OR ", "FALSE")
	}

	col, ok := jobColumns[p.Field]
	if !ok {
		return "", fmt.Errorf("unsupported filter field %q", p.Field)
	}

	switch p.Op {
	case domain.OpEq:
		return col + " = " + b.placeholder(p.Value), nil
	case domain.OpIn:
		if len(p.Values) == 0 {
			return "FALSE", nil
		}
		return col + " = ANY(" + b.placeholder(pq.Array(p.Values)) + ")", nil
	case domain.OpContains:
		s, ok := p.Value.(string)
		if !ok {
			return "", fmt.Errorf("contains on %q needs a string, got %T", p.Field, p.Value)
		}
		return col + ` ILIKE '%' || ` + b.placeholder(likeEscaper.Replace(s)) + ` || '%' ESCAPE '\'`, nil
	case domain.OpGte:
		return col + " >= " + b.placeholder(p.Value), nil
	case domain.OpLte:
		return col + " <= " + b.placeholder(p.Value), nil
	case domain.OpIsNull:
		return col + " IS NULL", nil
	default:
		return "", fmt.Errorf("unsupported filter op %q", p.Op)
	}
}

func (b *whereBuilder) join(children []domain.Predicate, sep, empty string) (string, error) {
	if len(children) == 0 {
		return empty, nil
	}
	parts := make([]string, 0, len(children))
	for _, c := range children {
		s, err := b.render(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}
