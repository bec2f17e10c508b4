package scheduling

import (
	"context"
	"time"

	domain "github.com/chateaupet/petshop-api/internal/domain/scheduling"
	"github.com/chateaupet/petshop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type GetAvailabilityInput struct {
	StoreID   uint
	ServiceID uint
	Date      string // YYYY-MM-DD
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute devolve os horários livres do dia. Dia bloqueado, regra ausente
// ou regra inativa resultam em lista vazia, não em erro. É o que a página
// de agendamento espera para esconder a grade.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]string, error) {

	loc := timezone.Location(timezone.DefaultTimezone)
	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, err
	}

	blocked, err := uc.repo.IsDayBlocked(ctx, in.StoreID, in.Date)
	if err != nil {
		return nil, err
	}
	if blocked {
		return []string{}, nil
	}

	rule, err := uc.repo.GetCapacityRule(ctx, in.StoreID, in.ServiceID)
	if err != nil || !rule.Active {
		return []string{}, nil
	}

	duration := domain.SlotIntervalMin
	if svc, err := uc.repo.GetService(ctx, in.ServiceID); err == nil && svc.DurationMin > 0 {
		duration = svc.DurationMin
	}

	busy, err := uc.repo.ListBusyWindows(
		ctx,
		in.StoreID,
		day,
		day.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}

	return domain.ComputeSlots(day, duration, rule.Capacity, busy), nil
}
