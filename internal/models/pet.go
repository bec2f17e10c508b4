package models

import "time"

type Pet struct {
	ID uint `gorm:"column:id_pet;primaryKey" json:"id_pet"`

	OwnerID string  `gorm:"column:id_cliente;type:uuid;not null" json:"id_cliente"`
	Owner   Profile `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name    string `gorm:"column:nome_pet;size:100;not null" json:"nome_pet"`
	Species string `gorm:"column:especie;size:50" json:"especie"`
	Breed   string `gorm:"column:raca;size:50" json:"raca"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Pet) TableName() string {
	return "pets"
}
