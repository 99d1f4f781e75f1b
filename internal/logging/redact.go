package logging

import "strings"

// RedactToken hides a credential while keeping a short suffix so two log
// lines can still be told apart.
func RedactToken(tok string) string {
	if len(tok) <= 8 {
		return "[REDACTED]"
	}
	return "[REDACTED]…" + tok[len(tok)-4:]
}

// RedactEmail keeps the first two characters of the local part.
func RedactEmail(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || domain == "" {
		return "***"
	}
	if len(local) > 2 {
		local = local[:2] + "***"
	} else {
		local = "***"
	}
	return local + "@" + domain
}
