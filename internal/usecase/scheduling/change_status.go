package scheduling

import (
	"context"

	"github.com/chateaupet/petshop-api/internal/audit"
	domain "github.com/chateaupet/petshop-api/internal/domain/scheduling"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/models"
)

type ChangeStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute valida o status digitado antes de tocar no banco: entrada fora
// do enum devolve erro e não altera nada.
func (uc *ChangeStatus) Execute(
	ctx context.Context,
	adminID string,
	appointmentID uint,
	rawStatus string,
) (*models.Appointment, error) {

	if _, err := domain.ParseStatus(rawStatus); err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}

	if err := domain.ChangeStatus(ap, rawStatus); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "agendamento_status_alterado",
		Entity:   "agendamento",
		EntityID: &ap.ID,
		Metadata: map[string]string{"status": ap.Status},
	})

	return ap, nil
}
