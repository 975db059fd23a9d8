package user

import "strings"

// AdminGuard checks a principal against a flat allow-list of admin
// emails. It is an ordinary function call in the request flow, invoked
// by the API layer before dispatching a write operation.
type AdminGuard struct {
	allowedEmails map[string]struct{}
}

// NewAdminGuard builds a guard from configured emails. Matching is
// case-insensitive; blank entries are dropped.
func NewAdminGuard(emails []string) *AdminGuard {
	allowed := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		candidate := strings.ToLower(strings.TrimSpace(email))
		if candidate == "" {
			continue
		}
		allowed[candidate] = struct{}{}
	}

	return &AdminGuard{allowedEmails: allowed}
}

// IsAdmin reports whether the principal's resolved email is on the
// allow-list. A principal with no resolvable email is never an admin.
func (g *AdminGuard) IsAdmin(p Principal) bool {
	email := EmailOf(p)
	if email == "" {
		return false
	}
	_, ok := g.allowedEmails[strings.ToLower(email)]
	return ok
}
