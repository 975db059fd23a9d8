package user

import "strings"

// Principal is the authenticated identity attached to a request after
// bearer-token verification. Depending on the identity provider flow,
// the email may arrive as a verified profile field, as an entry in the
// generic OAuth2 attribute map, or only inside the raw token claims.
type Principal struct {
	Subject    string
	Email      string
	Name       string
	Picture    string
	Attributes map[string]any
	Claims     map[string]any
}

// EmailOf resolves the principal's email through the extraction
// strategies in precedence order: verified profile email, OAuth2
// attribute map, token claims (email, then sub as a last resort).
func EmailOf(p Principal) string {
	if email := strings.TrimSpace(p.Email); email != "" {
		return email
	}
	if email := stringValue(p.Attributes, "email"); email != "" {
		return email
	}
	if email := stringValue(p.Claims, "email"); email != "" {
		return email
	}
	return stringValue(p.Claims, "sub")
}

func stringValue(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
