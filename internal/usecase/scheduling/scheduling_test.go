package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chateaupet/petshop-api/internal/audit"
	domain "github.com/chateaupet/petshop-api/internal/domain/scheduling"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/models"
)

// ==========================
// Fake repository
// ==========================

type fakeRepo struct {
	store   *models.Store
	service *models.Service
	rule    *models.CapacityRule

	blockedDates map[string]bool
	busy         []domain.Window
	overlapping  int64

	appointments map[uint]*models.Appointment
	created      *models.Appointment
	updated      *models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		store:        &models.Store{ID: 1, Name: "Mooca"},
		service:      &models.Service{ID: 2, Name: "Banho", DurationMin: 60},
		rule:         &models.CapacityRule{ID: 1, StoreID: 1, ServiceID: 2, Capacity: 2, Active: true},
		blockedDates: map[string]bool{},
		appointments: map[uint]*models.Appointment{},
	}
}

func (f *fakeRepo) GetStoreByID(_ context.Context, id uint) (*models.Store, error) {
	if f.store == nil || f.store.ID != id {
		return nil, httperr.ErrBusiness("loja_nao_encontrada")
	}
	return f.store, nil
}

func (f *fakeRepo) GetService(_ context.Context, serviceID uint) (*models.Service, error) {
	if f.service == nil || f.service.ID != serviceID {
		return nil, httperr.ErrBusiness("servico_nao_encontrado")
	}
	return f.service, nil
}

func (f *fakeRepo) GetCapacityRule(_ context.Context, storeID, serviceID uint) (*models.CapacityRule, error) {
	if f.rule == nil || f.rule.StoreID != storeID || f.rule.ServiceID != serviceID {
		return nil, httperr.ErrBusiness("regra_nao_encontrada")
	}
	return f.rule, nil
}

func (f *fakeRepo) IsDayBlocked(_ context.Context, _ uint, date string) (bool, error) {
	return f.blockedDates[date], nil
}

func (f *fakeRepo) ListBusyWindows(_ context.Context, _ uint, _, _ time.Time) ([]domain.Window, error) {
	return f.busy, nil
}

func (f *fakeRepo) CountOverlapping(_ context.Context, _ uint, _, _ time.Time) (int64, error) {
	return f.overlapping, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	ap.ID = 99
	f.created = ap
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	ap, ok := f.appointments[appointmentID]
	if !ok {
		return nil, httperr.ErrBusiness("agendamento_nao_encontrado")
	}
	return ap, nil
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.updated = ap
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

// ==========================
// CreateAppointment
// ==========================

func TestCreateAppointment_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "cliente-uuid",
		StoreID:   1,
		ServiceID: 2,
		StartTime: "2026-09-14T10:00",
	})

	assert.NoError(t, err)
	assert.NotNil(t, ap)
	assert.Equal(t, "confirmado", ap.Status)
	assert.Equal(t, uint(99), ap.ID)

	// Fim = início + duração do serviço.
	assert.Equal(t, 60*time.Minute, ap.EndTime.Sub(ap.StartTime))
	assert.Equal(t, 10, ap.StartTime.Hour())
}

func TestCreateAppointment_AcceptsRFC3339(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateAppointment(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "cliente-uuid",
		StoreID:   1,
		ServiceID: 2,
		StartTime: "2026-09-14T10:00:00-03:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 10, ap.StartTime.Hour())
}

func TestCreateAppointment_InvalidStart(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "cliente-uuid",
		StoreID:   1,
		ServiceID: 2,
		StartTime: "14/09/2026 10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "data_hora_invalida"))
}

func TestCreateAppointment_UnknownStore(t *testing.T) {
	uc := NewCreateAppointment(newFakeRepo(), testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "cliente-uuid",
		StoreID:   99,
		ServiceID: 2,
		StartTime: "2026-09-14T10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "loja_nao_encontrada"))
}

func TestCreateAppointment_BlockedDay(t *testing.T) {
	repo := newFakeRepo()
	repo.blockedDates["2026-09-14"] = true
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "cliente-uuid",
		StoreID:   1,
		ServiceID: 2,
		StartTime: "2026-09-14T10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "dia_bloqueado"))
	assert.Nil(t, repo.created)
}

func TestCreateAppointment_InactiveRule(t *testing.T) {
	repo := newFakeRepo()
	repo.rule.Active = false
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "cliente-uuid",
		StoreID:   1,
		ServiceID: 2,
		StartTime: "2026-09-14T10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "servico_indisponivel_na_loja"))
}

func TestCreateAppointment_FullSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.overlapping = int64(repo.rule.Capacity)
	uc := NewCreateAppointment(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID:  "cliente-uuid",
		StoreID:   1,
		ServiceID: 2,
		StartTime: "2026-09-14T10:00",
	})

	assert.True(t, httperr.IsBusiness(err, "horario_indisponivel"))
	assert.Nil(t, repo.created)
}

// ==========================
// GetAvailability
// ==========================

func TestGetAvailability_BlockedDayIsEmptyList(t *testing.T) {
	repo := newFakeRepo()
	repo.blockedDates["2026-09-14"] = true
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), GetAvailabilityInput{
		StoreID: 1, ServiceID: 2, Date: "2026-09-14",
	})

	assert.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetAvailability_MissingRuleIsEmptyList(t *testing.T) {
	repo := newFakeRepo()
	repo.rule = nil
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), GetAvailabilityInput{
		StoreID: 1, ServiceID: 2, Date: "2026-09-14",
	})

	assert.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetAvailability_UsesServiceDuration(t *testing.T) {
	repo := newFakeRepo()
	repo.service.DurationMin = 120
	uc := NewGetAvailability(repo)

	slots, err := uc.Execute(context.Background(), GetAvailabilityInput{
		StoreID: 1, ServiceID: 2, Date: "2026-09-14",
	})

	assert.NoError(t, err)
	assert.Contains(t, slots, "09:00")
	assert.Equal(t, "16:00", slots[len(slots)-1])
}

func TestGetAvailability_BadDate(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo())

	_, err := uc.Execute(context.Background(), GetAvailabilityInput{
		StoreID: 1, ServiceID: 2, Date: "14/09/2026",
	})

	assert.Error(t, err)
}

// ==========================
// ChangeStatus
// ==========================

func TestChangeStatus_ValidTransition(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[7] = &models.Appointment{ID: 7, Status: "pendente"}
	uc := NewChangeStatus(repo, testDispatcher())

	ap, err := uc.Execute(context.Background(), "admin-uuid", 7, "Finalizado")

	assert.NoError(t, err)
	assert.Equal(t, "finalizado", ap.Status)
	assert.NotNil(t, repo.updated)
}

func TestChangeStatus_InvalidInputNeverTouchesRepo(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments[7] = &models.Appointment{ID: 7, Status: "pendente"}
	uc := NewChangeStatus(repo, testDispatcher())

	_, err := uc.Execute(context.Background(), "admin-uuid", 7, "qualquer-coisa")

	assert.True(t, httperr.IsBusiness(err, "status_invalido"))
	assert.Equal(t, "pendente", repo.appointments[7].Status)
	assert.Nil(t, repo.updated)
}

func TestChangeStatus_UnknownAppointment(t *testing.T) {
	uc := NewChangeStatus(newFakeRepo(), testDispatcher())

	_, err := uc.Execute(context.Background(), "admin-uuid", 123, "cancelado")

	assert.True(t, httperr.IsBusiness(err, "agendamento_nao_encontrado"))
}
