package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid confere se o domínio do e-mail do cadastro resolve
// (MX ou, na falta dele, A/AAAA). Corta erros de digitação tipo gmial.com
// antes de criar a conta.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
