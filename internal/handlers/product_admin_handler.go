package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chateaupet/petshop-api/internal/audit"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/httpresp"
	"github.com/chateaupet/petshop-api/internal/images"
	"github.com/chateaupet/petshop-api/internal/middleware"
	"github.com/chateaupet/petshop-api/internal/models"
	"github.com/chateaupet/petshop-api/internal/storage"
)

type ProductAdminHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
	audit    *audit.Dispatcher
}

func NewProductAdminHandler(
	db *gorm.DB,
	uploader *storage.Uploader,
	auditDispatcher *audit.Dispatcher,
) *ProductAdminHandler {
	return &ProductAdminHandler{
		db:       db,
		uploader: uploader,
		audit:    auditDispatcher,
	}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string   `json:"nome_produto" binding:"required"`
	Description string   `json:"descricao"`
	Brand       string   `json:"marca"`
	Category    string   `json:"tipo_produto"`
	ImageURL    string   `json:"url_imagem"`
	Price       float64  `json:"preco" binding:"required"`
	PromoPrice  *float64 `json:"preco_promocional"`
	Stock       int      `json:"quantidade_estoque"`
	StoreID     uint     `json:"id_loja"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"nome_produto,omitempty"`
	Description *string  `json:"descricao,omitempty"`
	Brand       *string  `json:"marca,omitempty"`
	Category    *string  `json:"tipo_produto,omitempty"`
	ImageURL    *string  `json:"url_imagem,omitempty"`
	Price       *float64 `json:"preco,omitempty"`
	PromoPrice  *float64 `json:"preco_promocional,omitempty"`
	ClearPromo  bool     `json:"remover_promocao,omitempty"`
	Stock       *int     `json:"quantidade_estoque,omitempty"`
	StoreID     *uint    `json:"id_loja,omitempty"`
}

// --------- Handlers ---------

func (h *ProductAdminHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Order("nome_produto ASC").
		Find(&products).Error; err != nil {

		httperr.Internal(c, "falha_ao_listar_produtos", "Erro ao carregar produtos.")
		return
	}

	httpresp.List(c, products)
}

func (h *ProductAdminHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	product := models.Product{
		StoreID:     req.StoreID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Brand:       req.Brand,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		PromoPrice:  req.PromoPrice,
		Stock:       req.Stock,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "falha_ao_criar_produto", "Erro ao adicionar produto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "produto_criado",
		Entity:   "produto",
		EntityID: &product.ID,
	})

	httpresp.Created(c, product)
}

func (h *ProductAdminHandler) Update(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var product models.Product
	if err := h.db.First(&product, "id_produto = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "produto_nao_encontrado", "Produto não encontrado.")
			return
		}
		httperr.Internal(c, "falha_ao_buscar_produto", "Erro ao buscar produto.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.PromoPrice != nil {
		product.PromoPrice = req.PromoPrice
	}
	if req.ClearPromo {
		product.PromoPrice = nil
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.StoreID != nil {
		product.StoreID = *req.StoreID
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "falha_ao_atualizar_produto", "Erro ao atualizar produto.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "produto_atualizado",
		Entity:   "produto",
		EntityID: &product.ID,
	})

	c.JSON(http.StatusOK, product)
}

func (h *ProductAdminHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "id_invalido", "Id de produto inválido.")
		return
	}

	res := h.db.Delete(&models.Product{}, "id_produto = ?", uint(id))
	if res.Error != nil {
		httperr.Internal(c, "falha_ao_excluir_produto", "Erro ao excluir produto.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "produto_nao_encontrado", "Produto não encontrado.")
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "produto_excluido",
		Entity:   "produto",
		EntityID: &entityID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UploadImage recebe o arquivo do formulário, converte para WebP e grava
// no bucket; a URL resultante substitui url_imagem.
func (h *ProductAdminHandler) UploadImage(c *gin.Context) {
	var product models.Product
	if err := h.db.First(&product, "id_produto = ?", c.Param("id")).Error; err != nil {
		httperr.NotFound(c, "produto_nao_encontrado", "Produto não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("imagem")
	if err != nil {
		httperr.BadRequest(c, "imagem_obrigatoria", "Envie o arquivo no campo 'imagem'.")
		return
	}
	defer file.Close()

	data, err := images.ToWebP(file)
	if err != nil {
		httperr.BadRequest(c, "imagem_invalida", "Não foi possível processar a imagem enviada.")
		return
	}

	url, err := h.uploader.UploadProductImage(c.Request.Context(), product.ID, data)
	if err != nil {
		httperr.Internal(c, "falha_ao_enviar_imagem", "Erro ao enviar a imagem.")
		return
	}

	if err := h.db.Model(&product).Update("url_imagem", url).Error; err != nil {
		httperr.Internal(c, "falha_ao_salvar_imagem", "Erro ao salvar a URL da imagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url_imagem": url})
}
