package validation

import "regexp"

// emailPattern is a deliberately permissive shape check, not an RFC parser:
// non-whitespace local part, "@", non-whitespace domain, ".", non-whitespace TLD.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	return emailPattern.MatchString(s)
}

// IsValidProperty reports whether a free-text field (name, card id) is usable.
func IsValidProperty(s string) bool {
	return len(s) > 2
}

// WorkerCandidate bundles the caller-supplied business fields of a worker.
type WorkerCandidate struct {
	CardID    string
	FirstName string
	LastName  string
	Email     string
}

// IsValidWorker reports whether every business field of the candidate passes
// validation. All four checks are mandatory; there is no partial acceptance.
func IsValidWorker(w WorkerCandidate) bool {
	if !IsValidProperty(w.CardID) {
		return false
	}
	if !IsValidProperty(w.FirstName) {
		return false
	}
	if !IsValidProperty(w.LastName) {
		return false
	}
	return IsValidEmail(w.Email)
}
