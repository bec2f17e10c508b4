package models

import "time"

type Store struct {
	ID       uint   `gorm:"column:id_loja;primaryKey" json:"id_loja"`
	Name     string `gorm:"column:nome_loja;size:100;not null" json:"nome_loja"`
	Address  string `gorm:"column:endereco;size:255" json:"endereco"`
	Phone    string `gorm:"column:telefone;size:20" json:"telefone"`

	// Lojas sem coordenadas ficam fora do cálculo de distância
	Latitude  *float64 `gorm:"column:latitude" json:"latitude"`
	Longitude *float64 `gorm:"column:longitude" json:"longitude"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Store) TableName() string {
	return "lojas"
}
