package models

import "time"

// CMSComponent guarda blocos de conteúdo editáveis pelo admin como JSON livre.
type CMSComponent struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"column:nome_componente;size:100;uniqueIndex;not null" json:"nome_componente"`
	Content string `gorm:"column:conteudo_json;type:jsonb;not null;default:'{}'" json:"conteudo_json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CMSComponent) TableName() string {
	return "conteudo_cms"
}
