package observability

import "regexp"

// Redaction markers substituted for PII in log and verbose output.
const (
	EmailRedacted = "[EMAIL_REDACTED]"
	PhoneRedacted = "[PHONE_REDACTED]"
	NameRedacted  = "[NAME_REDACTED]"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`(\+?1[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	// Matches JSON-style name fields so serialized profiles can be logged.
	nameKeyRe = regexp.MustCompile(`(?i)("(?:full_)?name"\s*:\s*")[^"]*(")`)
)

// Redact replaces email addresses, phone numbers and name field values in s
// with fixed markers. Every Printer box passes through it before reaching
// the sink.
func Redact(s string) string {
	s = emailRe.ReplaceAllString(s, EmailRedacted)
	s = phoneRe.ReplaceAllString(s, PhoneRedacted)
	s = nameKeyRe.ReplaceAllString(s, "${1}"+NameRedacted+"${2}")
	return s
}
