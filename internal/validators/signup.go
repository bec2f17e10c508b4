package validators

import "strings"

const MinPasswordLen = 6

// ValidateSignup cobre as checagens que o formulário de criar conta faz:
// nome preenchido, senha mínima e confirmação igual.
func ValidateSignup(name, password, confirm string) (code string, ok bool) {
	if strings.TrimSpace(name) == "" {
		return "nome_obrigatorio", false
	}
	if len(password) < MinPasswordLen {
		return "senha_curta", false
	}
	if password != confirm {
		return "senhas_diferentes", false
	}
	return "", true
}
