package logging

import "strings"

// secretKeyPatterns are attribute key substrings whose values are masked.
// Matched case-insensitively.
var secretKeyPatterns = []string{
	"SECRET",
	"TOKEN",
	"PASSWORD",
	"CREDENTIAL",
	"SESSION",
}

// credentialPrefixes identify AWS access key IDs regardless of key name.
var credentialPrefixes = []string{
	"AKIA", // long-term access key
	"ASIA", // temporary STS access key
}

// shouldMask reports whether an attribute key likely holds a secret.
func shouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, p := range secretKeyPatterns {
		if strings.Contains(upper, p) {
			return true
		}
	}
	return false
}

// containsCredential reports whether s carries an AWS access key ID.
func containsCredential(s string) bool {
	for _, p := range credentialPrefixes {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// maskValue hides all but the last 4 characters.
func maskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}
