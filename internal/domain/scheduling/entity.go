package scheduling

import "github.com/chateaupet/petshop-api/internal/models"

// ===============================
// Domain Actions
// ===============================

// ChangeStatus valida a entrada e aplica o novo status no agendamento.
func ChangeStatus(ap *models.Appointment, raw string) error {
	status, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	ap.Status = string(status)
	return nil
}
