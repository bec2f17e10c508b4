package dto

import "github.com/chateaupet/petshop-api/internal/models"

// ProductCardDTO é o shape dos cards da vitrine. PrecoPromocional só vem
// preenchido quando a promoção vale (menor que o preço cheio); caso
// contrário o card mostra apenas o preço normal.
type ProductCardDTO struct {
	ID         uint     `json:"id_produto"`
	Name       string   `json:"nome_produto"`
	ImageURL   string   `json:"url_imagem"`
	Price      float64  `json:"preco"`
	PromoPrice *float64 `json:"preco_promocional"`
	HasPromo   bool     `json:"em_promocao"`
}

func NewProductCard(p models.Product) ProductCardDTO {
	card := ProductCardDTO{
		ID:       p.ID,
		Name:     p.Name,
		ImageURL: p.ImageURL,
		Price:    p.Price,
	}

	if p.HasPromo() {
		card.PromoPrice = p.PromoPrice
		card.HasPromo = true
	}

	return card
}

func NewProductCards(products []models.Product) []ProductCardDTO {
	cards := make([]ProductCardDTO, 0, len(products))
	for _, p := range products {
		cards = append(cards, NewProductCard(p))
	}
	return cards
}
