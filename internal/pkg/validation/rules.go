package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Admission number pattern - alphanumeric, 4 to 20 characters
	AdmissionNumberPattern = `^[A-Za-z0-9]{4,20}$`

	// Password min length
	PasswordMinLength = 6
)

// CompiledPatterns caches compiled regex patterns.
var CompiledPatterns = struct {
	Email           *regexp.Regexp
	AdmissionNumber *regexp.Regexp
}{
	Email:           regexp.MustCompile(EmailPattern),
	AdmissionNumber: regexp.MustCompile(AdmissionNumberPattern),
}

// driveHosts are the hosted-document domains accepted as resume links.
var driveHosts = []string{"drive.google.com", "docs.google.com"}

// IsValidResumeLink reports whether a resume link is acceptable: a non-empty
// string that either points at a known drive host or uses the https scheme.
func IsValidResumeLink(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" {
		return false
	}
	for _, host := range driveHosts {
		if strings.Contains(link, host) {
			return true
		}
	}
	return strings.HasPrefix(link, "https://")
}

// StringValidation validates a string against length and pattern rules.
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation, required by default.
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && strings.TrimSpace(v.Value) == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
