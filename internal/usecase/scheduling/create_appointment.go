package scheduling

import (
	"context"
	"time"

	"github.com/chateaupet/petshop-api/internal/audit"
	domain "github.com/chateaupet/petshop-api/internal/domain/scheduling"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/models"
	"github.com/chateaupet/petshop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID  string
	PetID     *uint
	StoreID   uint
	ServiceID uint

	StartTime    string // RFC 3339 ou "2006-01-02T15:04"
	CustomerNote string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data/hora no fuso da loja
	// --------------------------------------------------
	start, err := parseStart(in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("data_hora_invalida")
	}

	// --------------------------------------------------
	// 2. Loja e serviço
	// --------------------------------------------------
	if _, err := uc.repo.GetStoreByID(ctx, in.StoreID); err != nil {
		return nil, httperr.ErrBusiness("loja_nao_encontrada")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("servico_nao_encontrado")
	}

	duration := svc.DurationMin
	if duration <= 0 {
		duration = domain.SlotIntervalMin
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	// --------------------------------------------------
	// 3. Dia bloqueado
	// --------------------------------------------------
	blocked, err := uc.repo.IsDayBlocked(ctx, in.StoreID, start.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if blocked {
		return nil, httperr.ErrBusiness("dia_bloqueado")
	}

	// --------------------------------------------------
	// 4. Capacidade simultânea
	// --------------------------------------------------
	rule, err := uc.repo.GetCapacityRule(ctx, in.StoreID, in.ServiceID)
	if err != nil || !rule.Active {
		return nil, httperr.ErrBusiness("servico_indisponivel_na_loja")
	}

	overlapping, err := uc.repo.CountOverlapping(ctx, in.StoreID, start, end)
	if err != nil {
		return nil, err
	}
	if overlapping >= int64(rule.Capacity) {
		return nil, httperr.ErrBusiness("horario_indisponivel")
	}

	// --------------------------------------------------
	// 5. Criação (id fica com o banco)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:     in.ClientID,
		PetID:        in.PetID,
		StoreID:      in.StoreID,
		ServiceID:    in.ServiceID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		CustomerNote: in.CustomerNote,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "agendamento_criado",
		Entity:   "agendamento",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func parseStart(raw string) (time.Time, error) {
	loc := timezone.Location(timezone.DefaultTimezone)

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(loc), nil
	}
	return time.ParseInLocation("2006-01-02T15:04", raw, loc)
}
