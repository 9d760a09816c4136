package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	// Phone: optional +, then digits with optional spaces, dashes or parentheses
	phoneRegex = regexp.MustCompile(`^\+?[0-9 ()-]{7,20}$`)
)

// DateLayouts are the accepted forms of a date-only form field.
var DateLayouts = []string{"2006-01-02", time.RFC3339}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("date_or_empty", DateOrEmpty)
	_ = v.RegisterValidation("http_url_or_empty", HTTPURLOrEmpty)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	digits := 0
	for _, r := range val {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return phoneRegex.MatchString(val) && digits >= 7 && digits <= 15
}

// Emoji code point ranges
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // Misc symbols, dingbats
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // Misc symbols and arrows
		{Lo: 0xFE0F, Hi: 0xFE0F, Stride: 1}, // Emoji presentation selector
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1FAFF, Stride: 1}, // Mahjong through symbols and pictographs extended-A
	},
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if unicode.Is(emojiRanges, r) {
			return false
		}
	}
	return true
}

// DateOrEmpty accepts "", YYYY-MM-DD, or an RFC 3339 timestamp.
func DateOrEmpty(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	_, err := ParseDate(val)
	return err == nil
}

// ParseDate parses a value in any of DateLayouts.
func ParseDate(val string) (time.Time, error) {
	var err error
	for _, layout := range DateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// HTTPURLOrEmpty accepts "" or a web address. The scheme is optional
// ("acme.io/careers") but when present must be http or https.
func HTTPURLOrEmpty(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" {
		return true
	}
	if !strings.Contains(val, "://") {
		val = "https://" + val
	}
	u, err := url.Parse(val)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := u.Hostname()
	return host == "localhost" || strings.Contains(host, ".")
}
