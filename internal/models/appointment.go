package models

import "time"

type Appointment struct {
	ID uint `gorm:"column:id_agendamento;primaryKey" json:"id_agendamento"`

	ClientID string  `gorm:"column:id_cliente;type:uuid;not null" json:"id_cliente"`
	Client   Profile `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	PetID *uint `gorm:"column:id_pet" json:"id_pet"`
	Pet   *Pet  `gorm:"foreignKey:PetID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	StoreID uint  `gorm:"column:id_loja;not null" json:"id_loja"`
	Store   Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"store"`

	ServiceID uint    `gorm:"column:id_servico;not null" json:"id_servico"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StartTime time.Time `gorm:"column:data_hora_inicio;not null" json:"data_hora_inicio"`
	EndTime   time.Time `gorm:"column:data_hora_fim;not null" json:"data_hora_fim"`

	Status string `gorm:"size:20;default:'pendente'" json:"status"`

	CustomerNote string `gorm:"column:observacoes_cliente;size:500" json:"observacoes_cliente"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "agendamentos"
}
