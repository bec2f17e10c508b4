package models

import "time"

type Service struct {
	ID          uint   `gorm:"column:id_servico;primaryKey" json:"id_servico"`
	Name        string `gorm:"column:nome_servico;size:100;not null" json:"nome_servico"`
	Description string `gorm:"column:descricao;size:255" json:"descricao"`
	DurationMin int    `gorm:"column:duracao_media_minutos" json:"duracao_media_minutos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Service) TableName() string {
	return "servicos"
}
