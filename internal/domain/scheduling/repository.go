package scheduling

import (
	"context"
	"time"

	"github.com/chateaupet/petshop-api/internal/models"
)

type Repository interface {
	// -------- Loja / serviço --------
	GetStoreByID(
		ctx context.Context,
		id uint,
	) (*models.Store, error)

	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Regras --------
	GetCapacityRule(
		ctx context.Context,
		storeID uint,
		serviceID uint,
	) (*models.CapacityRule, error)

	IsDayBlocked(
		ctx context.Context,
		storeID uint,
		date string,
	) (bool, error)

	// -------- Agendamentos --------
	ListBusyWindows(
		ctx context.Context,
		storeID uint,
		start time.Time,
		end time.Time,
	) ([]Window, error)

	CountOverlapping(
		ctx context.Context,
		storeID uint,
		start time.Time,
		end time.Time,
	) (int64, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
