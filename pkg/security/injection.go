// Package security screens user-supplied free text before it is persisted
// or interpolated into an LLM prompt.
package security

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult contains the result of an injection check on a field value.
type InjectionCheckResult struct {
	FieldName   string // Name of the field that failed the check
	Fingerprint string // libinjection fingerprint of the detected pattern
}

// CheckFieldForInjection uses libinjection to detect SQL injection patterns
// in a free-text field value.
//
// Returns nil if no injection is detected, or an InjectionCheckResult with
// details about the detected pattern.
func CheckFieldForInjection(fieldName, value string) *InjectionCheckResult {
	if value == "" {
		return nil
	}

	isSQLi, fingerprint := libinjection.IsSQLi(value)
	if isSQLi {
		return &InjectionCheckResult{
			FieldName:   fieldName,
			Fingerprint: string(fingerprint),
		}
	}

	return nil
}

// CheckFields validates a set of named free-text values for SQL injection
// attempts. Returns one result per field that failed the check; an empty
// slice means all fields are clean.
func CheckFields(fields map[string]string) []InjectionCheckResult {
	var results []InjectionCheckResult
	for name, value := range fields {
		if r := CheckFieldForInjection(name, value); r != nil {
			results = append(results, *r)
		}
	}
	return results
}
