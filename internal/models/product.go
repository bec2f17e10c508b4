package models

import "time"

type Product struct {
	ID uint `gorm:"column:id_produto;primaryKey" json:"id_produto"`

	StoreID uint  `gorm:"column:id_loja" json:"id_loja"`
	Store   Store `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name        string `gorm:"column:nome_produto;size:150;not null" json:"nome_produto"`
	Description string `gorm:"column:descricao;type:text" json:"descricao"`
	Brand       string `gorm:"column:marca;size:100" json:"marca"`
	Category    string `gorm:"column:tipo_produto;size:100" json:"tipo_produto"`
	ImageURL    string `gorm:"column:url_imagem;size:500" json:"url_imagem"`

	Price float64 `gorm:"column:preco;not null" json:"preco"`

	// Só vale como promoção quando menor que o preço normal
	PromoPrice *float64 `gorm:"column:preco_promocional" json:"preco_promocional"`

	Stock int `gorm:"column:quantidade_estoque;default:0" json:"quantidade_estoque"`

	CreatedAt time.Time `gorm:"column:data_cadastro" json:"data_cadastro"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Product) TableName() string {
	return "produtos"
}

// HasPromo aplica a regra de exibição do preço promocional:
// presente e estritamente menor que o preço normal.
func (p *Product) HasPromo() bool {
	return p.PromoPrice != nil && *p.PromoPrice < p.Price
}
