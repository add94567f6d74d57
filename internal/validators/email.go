// Package validators holds request-level checks that go beyond what
// binding tags can express.
package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid reports whether the domain part of an address
// resolves, trying MX records first and falling back to a plain host
// lookup. It is a liveness probe for registration, not RFC validation;
// the binding layer already checked the shape.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
