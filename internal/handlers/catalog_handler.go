package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chateaupet/petshop-api/internal/dto"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/httpresp"
	"github.com/chateaupet/petshop-api/internal/models"
)

// Limites das vitrines da home.
const (
	offersLimit      = 8
	newArrivalsLimit = 8
	bestSellersLimit = 12
	relatedLimit     = 4
)

type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// --------- Vitrines da home ---------

func (h *CatalogHandler) Offers(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Where("preco_promocional IS NOT NULL").
		Order("data_cadastro DESC").
		Limit(offersLimit).
		Find(&products).Error; err != nil {

		httperr.Internal(c, "falha_ao_carregar_ofertas", "Falha ao carregar ofertas.")
		return
	}

	httpresp.List(c, dto.NewProductCards(products))
}

func (h *CatalogHandler) NewArrivals(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Order("data_cadastro DESC").
		Limit(newArrivalsLimit).
		Find(&products).Error; err != nil {

		httperr.Internal(c, "falha_ao_carregar_novidades", "Falha ao carregar novidades.")
		return
	}

	httpresp.List(c, dto.NewProductCards(products))
}

func (h *CatalogHandler) BestSellers(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Order("quantidade_estoque DESC").
		Limit(bestSellersLimit).
		Find(&products).Error; err != nil {

		httperr.Internal(c, "falha_ao_carregar_mais_vendidos", "Falha ao carregar mais vendidos.")
		return
	}

	httpresp.List(c, dto.NewProductCards(products))
}

// --------- Busca / listagem ---------

func (h *CatalogHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Product{})

	if term := strings.TrimSpace(strings.ToLower(c.Query("q"))); term != "" {
		like := "%" + term + "%"
		q = q.Where("LOWER(nome_produto) LIKE ? OR LOWER(descricao) LIKE ?", like, like)
	}

	if categories := c.QueryArray("tipo"); len(categories) > 0 {
		q = q.Where("tipo_produto IN ?", categories)
	}

	if brands := c.QueryArray("marca"); len(brands) > 0 {
		q = q.Where("marca IN ?", brands)
	}

	if storeID := strings.TrimSpace(c.Query("loja")); storeID != "" {
		q = q.Where("id_loja = ?", storeID)
	}

	if c.Query("promocao") == "true" {
		q = q.Where("preco_promocional IS NOT NULL AND preco_promocional < preco")
	}

	var products []models.Product
	if err := q.Order("nome_produto ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "falha_ao_buscar_produtos", "Erro ao buscar produtos.")
		return
	}

	httpresp.List(c, dto.NewProductCards(products))
}

// Filters alimenta os checkboxes da página de busca: categorias e marcas
// distintas, sem vazios.
func (h *CatalogHandler) Filters(c *gin.Context) {
	var categories []string
	if err := h.db.Model(&models.Product{}).
		Distinct("tipo_produto").
		Where("tipo_produto <> ''").
		Order("tipo_produto ASC").
		Pluck("tipo_produto", &categories).Error; err != nil {

		httperr.Internal(c, "falha_ao_carregar_filtros", "Erro ao carregar filtros.")
		return
	}

	var brands []string
	if err := h.db.Model(&models.Product{}).
		Distinct("marca").
		Where("marca <> ''").
		Order("marca ASC").
		Pluck("marca", &brands).Error; err != nil {

		httperr.Internal(c, "falha_ao_carregar_filtros", "Erro ao carregar filtros.")
		return
	}

	httpresp.OK(c, gin.H{
		"categorias": categories,
		"marcas":     brands,
	})
}

// --------- Detalhe ---------

func (h *CatalogHandler) Get(c *gin.Context) {
	var product models.Product
	if err := h.db.First(&product, "id_produto = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "produto_nao_encontrado", "Produto não encontrado.")
			return
		}
		httperr.Internal(c, "falha_ao_buscar_produto", "Erro ao carregar o produto.")
		return
	}

	httpresp.OK(c, product)
}

// Related lista até 4 produtos da mesma categoria, fora o atual.
func (h *CatalogHandler) Related(c *gin.Context) {
	var product models.Product
	if err := h.db.First(&product, "id_produto = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "produto_nao_encontrado", "Produto não encontrado.")
		return
	}

	if product.Category == "" {
		httpresp.List(c, []dto.ProductCardDTO{})
		return
	}

	var related []models.Product
	if err := h.db.
		Where("tipo_produto = ? AND id_produto <> ?", product.Category, product.ID).
		Limit(relatedLimit).
		Find(&related).Error; err != nil {

		httperr.Internal(c, "falha_ao_buscar_relacionados", "Erro ao carregar produtos relacionados.")
		return
	}

	httpresp.List(c, dto.NewProductCards(related))
}
