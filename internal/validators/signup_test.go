package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		password string
		confirm  string
		wantCode string
		wantOK   bool
	}{
		{"cadastro válido", "Maria Silva", "segredo1", "segredo1", "", true},
		{"nome vazio", "", "segredo1", "segredo1", "nome_obrigatorio", false},
		{"nome só com espaços", "   ", "segredo1", "segredo1", "nome_obrigatorio", false},
		{"senha curta", "Maria Silva", "12345", "12345", "senha_curta", false},
		{"senha no limite mínimo", "Maria Silva", "123456", "123456", "", true},
		{"confirmação diferente", "Maria Silva", "segredo1", "segredo2", "senhas_diferentes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ValidateSignup(tt.fullName, tt.password, tt.confirm)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}
