package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Company details
	"CompanyName":        "Company name",
	"CompanyWebsite":     "Company website",
	"CompanyDescription": "Company description",
	"ContactName":        "Contact name",
	"ContactEmail":       "Contact email",
	"ContactPhone":       "Contact phone",

	// Opportunity details
	"Title":           "Title",
	"Description":     "Description",
	"Locations":       "Locations",
	"Industry":        "Industry",
	"WorkplaceType":   "Workplace type",
	"OpportunityType": "Opportunity type",
	"SalaryCurrency":  "Salary currency",
	"SalaryType":      "Salary type",
	"SalaryMin":       "Minimum salary",
	"SalaryMax":       "Maximum salary",

	// Application requirements
	"RequiredSkills":             "Required skills",
	"MinExperience":              "Minimum experience",
	"MaxExperience":              "Maximum experience",
	"Education":                  "Education",
	"Deadline":                   "Application deadline",
	"ApplicationMethod":          "Application method",
	"ApplicationEmail":           "Application email",
	"ApplicationURL":             "Application URL",
	"ApplicationLink":            "Application link",
	"ApplicationInPersonDetails": "In-person application details",

	// Listing filters
	"ShowOpenOnly": "Show open only",
	"Experience":   "Experience",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(ParseOneOf(param), ", "))

	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)

	case "url", "http_url", "http_url_or_empty":
		return fmt.Sprintf("%s must be a valid URL", label)

	case "numeric":
		return fmt.Sprintf("%s must be a number", label)

	case "number":
		return fmt.Sprintf("%s must be a whole number", label)

	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and common punctuation", label)

	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number (7-15 digits, optional +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or special symbols", label)

	case "date_or_empty":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

// ParseOneOf splits a oneof parameter, honouring single-quoted values that
// contain spaces ("'per year' 'per month'").
func ParseOneOf(param string) []string {
	var out []string
	var cur strings.Builder
	quoted := false
	for _, r := range param {
		switch {
		case r == '\'':
			quoted = !quoted
		case r == ' ' && !quoted:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
