package models

import "time"

// CapacityRule limita agendamentos simultâneos por loja+serviço.
type CapacityRule struct {
	ID uint `gorm:"column:id_regra;primaryKey" json:"id_regra"`

	StoreID uint  `gorm:"column:id_loja;not null;uniqueIndex:idx_loja_servico" json:"id_loja"`
	Store   Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"store"`

	ServiceID uint    `gorm:"column:id_servico;not null;uniqueIndex:idx_loja_servico" json:"id_servico"`
	Service   Service `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	Capacity int  `gorm:"column:capacidade_simultanea;not null;default:1" json:"capacidade_simultanea"`
	Active   bool `gorm:"column:ativo;default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CapacityRule) TableName() string {
	return "servicos_loja_regras"
}
