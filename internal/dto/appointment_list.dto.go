package dto

import (
	"time"

	"github.com/chateaupet/petshop-api/internal/models"
)

// AppointmentListDTO é a linha da tabela do painel de agendamentos, já com
// os nomes das referências resolvidos.
type AppointmentListDTO struct {
	ID           uint      `json:"id_agendamento"`
	StartTime    time.Time `json:"data_hora_inicio"`
	Status       string    `json:"status"`
	ClientName   string    `json:"nome_cliente"`
	PetName      string    `json:"nome_pet"`
	ServiceName  string    `json:"nome_servico"`
	StoreName    string    `json:"nome_loja"`
	CustomerNote string    `json:"observacoes_cliente"`
}

func NewAppointmentList(ap models.Appointment) AppointmentListDTO {
	row := AppointmentListDTO{
		ID:           ap.ID,
		StartTime:    ap.StartTime,
		Status:       ap.Status,
		ClientName:   ap.Client.FullName,
		ServiceName:  ap.Service.Name,
		StoreName:    ap.Store.Name,
		CustomerNote: ap.CustomerNote,
	}
	if ap.Pet != nil {
		row.PetName = ap.Pet.Name
	}
	return row
}
