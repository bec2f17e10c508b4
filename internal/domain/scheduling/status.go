package scheduling

import (
	"strings"

	"github.com/chateaupet/petshop-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pendente"
	StatusConfirmed Status = "confirmado"
	StatusCancelled Status = "cancelado"
	StatusCompleted Status = "finalizado"
)

// ParseStatus aceita exatamente os quatro valores do enum, sem diferenciar
// maiúsculas. Qualquer outra entrada é erro de negócio e nada vai ao banco.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", httperr.ErrBusiness("status_invalido")
}

// IsTerminal indica status que desabilitam o botão de cancelar.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusCompleted
}

// InitialStatus é o status de um agendamento recém-criado pelo cliente.
func InitialStatus() Status {
	return StatusConfirmed
}
