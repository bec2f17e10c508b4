package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chateaupet/petshop-api/internal/audit"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/middleware"
	"github.com/chateaupet/petshop-api/internal/models"
)

// Conteúdo editável do site (banners, textos da home, destaques).
type CMSHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCMSHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *CMSHandler {
	return &CMSHandler{db: db, audit: auditDispatcher}
}

// GetComponent devolve o JSON do componente pelo nome. Componente ainda
// não publicado responde 404 com conteúdo vazio, e a página usa o seu
// fallback estático.
func (h *CMSHandler) GetComponent(c *gin.Context) {
	name := c.Param("nome")

	var comp models.CMSComponent
	if err := h.db.First(&comp, "nome_componente = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":    "componente_nao_encontrado",
				"message":  "Nenhum conteúdo publicado para este componente.",
				"conteudo": gin.H{},
			})
			return
		}
		httperr.Internal(c, "falha_ao_buscar_conteudo", "Erro ao carregar conteúdo.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nome_componente": comp.Name,
		"conteudo":        json.RawMessage(comp.Content),
	})
}

// UpsertComponent cria ou substitui o conteúdo do componente. O corpo é
// JSON livre; a estrutura é um contrato entre painel e página.
func (h *CMSHandler) UpsertComponent(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)
	name := c.Param("nome")

	var content json.RawMessage
	if err := c.ShouldBindJSON(&content); err != nil {
		httperr.BadRequest(c, "conteudo_invalido", "O conteúdo enviado não é um JSON válido.")
		return
	}

	comp := models.CMSComponent{
		Name:    name,
		Content: string(content),
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "nome_componente"}},
		DoUpdates: clause.AssignmentColumns([]string{"conteudo_json", "updated_at"}),
	}).Create(&comp).Error; err != nil {
		httperr.Internal(c, "falha_ao_salvar_conteudo", "Erro ao salvar conteúdo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "conteudo_cms_publicado",
		Entity:   "conteudo_cms",
		EntityID: &comp.ID,
		Metadata: map[string]string{"componente": name},
	})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Conteúdo salvo com sucesso!",
		"nome_componente": name,
	})
}
