package models

import "time"

// DayBlock marca uma data sem agendamentos. StoreID nulo bloqueia todas
// as lojas. O par (data, loja) é único; violação vira erro de negócio.
type DayBlock struct {
	ID uint `gorm:"column:id_bloqueio;primaryKey" json:"id_bloqueio"`

	BlockedDate string `gorm:"column:data_bloqueada;size:10;not null;uniqueIndex:idx_data_loja" json:"data_bloqueada"` // YYYY-MM-DD

	StoreID *uint  `gorm:"column:id_loja;uniqueIndex:idx_data_loja" json:"id_loja"`
	Store   *Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"store"`

	Reason *string `gorm:"column:motivo;size:255" json:"motivo"`

	CreatedAt time.Time `json:"created_at"`
}

func (DayBlock) TableName() string {
	return "dias_bloqueados"
}
