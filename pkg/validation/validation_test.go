package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ContactPhone string `validate:"valid_phone"`
	ContactName  string `validate:"valid_name,no_emoji"`
	Deadline     string `validate:"date_or_empty"`
	SalaryType   string `validate:"omitempty,oneof='per year' 'per month' 'per hour'"`
	SalaryMin    string `validate:"omitempty,numeric"`
	Website      string `validate:"http_url_or_empty"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidator()

	t.Run("Should accept a valid sample", func(t *testing.T) {
		err := v.Struct(sample{
			ContactPhone: "+91 98765-43210",
			ContactName:  "Priya O'Neil",
			Deadline:     "2026-12-31",
			SalaryType:   "per month",
			SalaryMin:    "45000.50",
			Website:      "https://acme.io/careers",
		})
		assert.NoError(t, err)
	})

	t.Run("Should accept empty optional values", func(t *testing.T) {
		assert.NoError(t, v.Struct(sample{}))
	})

	t.Run("Should reject bad values", func(t *testing.T) {
		err := v.Struct(sample{
			ContactPhone: "12ab",
			ContactName:  "Bob 🚀",
			Deadline:     "31/12/2026",
			SalaryType:   "per week",
			SalaryMin:    "lots",
			Website:      "ftp://acme.io",
		})
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		tags := map[string]string{}
		for _, e := range verrs {
			tags[e.StructField()] = e.Tag()
		}
		assert.Equal(t, "valid_phone", tags["ContactPhone"])
		assert.Equal(t, "valid_name", tags["ContactName"])
		assert.Equal(t, "date_or_empty", tags["Deadline"])
		assert.Equal(t, "oneof", tags["SalaryType"])
		assert.Equal(t, "numeric", tags["SalaryMin"])
		assert.Equal(t, "http_url_or_empty", tags["Website"])
	})

	t.Run("Should accept websites without a scheme", func(t *testing.T) {
		assert.NoError(t, v.Struct(sample{Website: "acme.io"}))
		assert.Error(t, v.Struct(sample{Website: "not a site"}))
	})

	t.Run("Should allow symbols and CJK text that are not emoji", func(t *testing.T) {
		assert.NoError(t, v.Var("Acme™ Engineer", "no_emoji"))
		assert.NoError(t, v.Var("Café © 2026", "no_emoji"))
		assert.NoError(t, v.Var("𠀋 Studio", "no_emoji"))
		assert.Error(t, v.Var("Hiring now 🚀", "no_emoji"))
		assert.Error(t, v.Var("Great team ☀", "no_emoji"))
	})

	t.Run("Should accept RFC3339 deadlines", func(t *testing.T) {
		_, err := ParseDate("2026-12-31T10:00:00Z")
		assert.NoError(t, err)
	})
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()

	t.Run("Should produce readable messages", func(t *testing.T) {
		err := v.Struct(sample{SalaryType: "weekly", SalaryMin: "x"})
		msgs := FormatValidationErrors(err)
		assert.Contains(t, msgs, "Salary type must be one of: per year, per month, per hour")
		assert.Contains(t, msgs, "Minimum salary must be a number")
	})

	t.Run("Should pass through other errors", func(t *testing.T) {
		msgs := FormatValidationErrors(errors.New("unexpected EOF"))
		assert.Equal(t, []string{"unexpected EOF"}, msgs)
	})

	t.Run("Should fall back to spaced field names", func(t *testing.T) {
		assert.Equal(t, "Some Field", getFieldLabel("SomeField"))
	})
}

func TestParseOneOf(t *testing.T) {
	assert.Equal(t, []string{"website", "email", "in-person"}, ParseOneOf("website email in-person"))
	assert.Equal(t, []string{"per year", "per hour"}, ParseOneOf("'per year' 'per hour'"))
}
