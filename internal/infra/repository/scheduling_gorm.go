package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/chateaupet/petshop-api/internal/domain/scheduling"
	"github.com/chateaupet/petshop-api/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Loja / serviço
// --------------------------------------------------

func (r *SchedulingGormRepository) GetStoreByID(
	ctx context.Context,
	id uint,
) (*models.Store, error) {

	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, id).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *SchedulingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, serviceID).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Regras
// --------------------------------------------------

func (r *SchedulingGormRepository) GetCapacityRule(
	ctx context.Context,
	storeID uint,
	serviceID uint,
) (*models.CapacityRule, error) {

	var rule models.CapacityRule
	if err := r.db.WithContext(ctx).
		Where("id_loja = ? AND id_servico = ?", storeID, serviceID).
		First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *SchedulingGormRepository) IsDayBlocked(
	ctx context.Context,
	storeID uint,
	date string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DayBlock{}).
		Where(
			"data_bloqueada = ? AND (id_loja = ? OR id_loja IS NULL)",
			date,
			storeID,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Agendamentos
// --------------------------------------------------

func (r *SchedulingGormRepository) ListBusyWindows(
	ctx context.Context,
	storeID uint,
	start time.Time,
	end time.Time,
) ([]domain.Window, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("data_hora_inicio", "data_hora_fim").
		Where(
			"id_loja = ? AND status <> 'cancelado' AND data_hora_inicio >= ? AND data_hora_inicio < ?",
			storeID, start, end,
		).
		Order("data_hora_inicio ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	windows := make([]domain.Window, 0, len(apps))
	for _, ap := range apps {
		windows = append(windows, domain.Window{Start: ap.StartTime, End: ap.EndTime})
	}
	return windows, nil
}

func (r *SchedulingGormRepository) CountOverlapping(
	ctx context.Context,
	storeID uint,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"id_loja = ? AND status <> 'cancelado' AND data_hora_inicio < ? AND data_hora_fim > ?",
			storeID,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, appointmentID).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}
