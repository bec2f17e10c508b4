package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chateaupet/petshop-api/internal/audit"
	"github.com/chateaupet/petshop-api/internal/httperr"
	infraRepo "github.com/chateaupet/petshop-api/internal/infra/repository"
	"github.com/chateaupet/petshop-api/internal/middleware"
	"github.com/chateaupet/petshop-api/internal/models"
)

// Painel de gestão de horários: bloqueio de dias e regras de capacidade.
type ScheduleAdminHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewScheduleAdminHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *ScheduleAdminHandler {
	return &ScheduleAdminHandler{db: db, audit: auditDispatcher}
}

// --------- Requests ---------

type CreateDayBlockRequest struct {
	Date    string  `json:"data_bloqueada" binding:"required"` // YYYY-MM-DD
	StoreID *uint   `json:"id_loja"`                           // nulo = todas as lojas
	Reason  *string `json:"motivo"`
}

type UpdateCapacityRuleRequest struct {
	Capacity *int  `json:"capacidade_simultanea,omitempty"`
	Active   *bool `json:"ativo,omitempty"`
}

// --------- Dias bloqueados ---------

func (h *ScheduleAdminHandler) ListDayBlocks(c *gin.Context) {
	var blocks []models.DayBlock
	if err := h.db.
		Preload("Store").
		Order("data_bloqueada DESC").
		Find(&blocks).Error; err != nil {

		httperr.Internal(c, "falha_ao_listar_bloqueios", "Erro ao carregar bloqueios.")
		return
	}

	c.JSON(http.StatusOK, blocks)
}

func (h *ScheduleAdminHandler) CreateDayBlock(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateDayBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httperr.BadRequest(c, "data_invalida", "Por favor, selecione uma data válida para bloquear.")
		return
	}

	// Datas passadas são permitidas; o aviso fica com a página.

	block := models.DayBlock{
		BlockedDate: req.Date,
		StoreID:     req.StoreID,
		Reason:      req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		if infraRepo.IsUniqueViolation(err) {
			httperr.Conflict(c, "dia_ja_bloqueado", dayBlockConflictMessage(req.Date, h.storeName(req.StoreID)))
			return
		}
		httperr.Internal(c, "falha_ao_bloquear_dia", "Erro ao bloquear dia.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "dia_bloqueado",
		Entity:   "dia_bloqueado",
		EntityID: &block.ID,
		Metadata: map[string]string{"data": req.Date},
	})

	c.JSON(http.StatusCreated, block)
}

func (h *ScheduleAdminHandler) DeleteDayBlock(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "id_invalido", "Id de bloqueio inválido.")
		return
	}

	res := h.db.Delete(&models.DayBlock{}, "id_bloqueio = ?", uint(id))
	if res.Error != nil {
		httperr.Internal(c, "falha_ao_desbloquear", "Erro ao desbloquear dia.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "bloqueio_nao_encontrado", "Bloqueio não encontrado.")
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "dia_desbloqueado",
		Entity:   "dia_bloqueado",
		EntityID: &entityID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------- Regras de capacidade ---------

func (h *ScheduleAdminHandler) ListCapacityRules(c *gin.Context) {
	var rules []models.CapacityRule
	if err := h.db.
		Preload("Store").
		Preload("Service").
		Order("id_loja ASC, id_servico ASC").
		Find(&rules).Error; err != nil {

		httperr.Internal(c, "falha_ao_listar_regras", "Erro ao carregar regras de capacidade.")
		return
	}

	c.JSON(http.StatusOK, rules)
}

// UpdateCapacityRule grava somente os campos presentes no corpo: só a
// capacidade, só o ativo ou ambos. Campo não enviado nunca é tocado.
func (h *ScheduleAdminHandler) UpdateCapacityRule(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	var rule models.CapacityRule
	if err := h.db.First(&rule, "id_regra = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "regra_nao_encontrada", "Regra de capacidade não encontrada.")
			return
		}
		httperr.Internal(c, "falha_ao_buscar_regra", "Erro ao buscar regra.")
		return
	}

	var req UpdateCapacityRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	updates, err := capacityRuleUpdates(req)
	if err != nil {
		httperr.BadRequest(c, "capacidade_invalida", "A capacidade deve ser um número igual ou maior que zero.")
		return
	}
	if len(updates) == 0 {
		c.JSON(http.StatusOK, rule)
		return
	}

	if err := h.db.Model(&rule).Updates(updates).Error; err != nil {
		httperr.Internal(c, "falha_ao_salvar_regra", "Erro ao salvar alteração de capacidade.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "regra_capacidade_alterada",
		Entity:   "servicos_loja_regras",
		EntityID: &rule.ID,
		Metadata: updates,
	})

	c.JSON(http.StatusOK, rule)
}

// --------- Apoio aos formulários ---------

func (h *ScheduleAdminHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("nome_servico ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "falha_ao_listar_servicos", "Erro ao carregar serviços.")
		return
	}

	c.JSON(http.StatusOK, services)
}

// --------- Helpers ---------

// capacityRuleUpdates monta o conjunto de colunas a gravar a partir dos
// campos presentes na requisição.
func capacityRuleUpdates(req UpdateCapacityRuleRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{}

	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, fmt.Errorf("capacidade negativa")
		}
		updates["capacidade_simultanea"] = *req.Capacity
	}

	if req.Active != nil {
		updates["ativo"] = *req.Active
	}

	return updates, nil
}

// dayBlockConflictMessage nomeia a loja do conflito, como o alerta do
// painel fazia.
func dayBlockConflictMessage(date, storeName string) string {
	return fmt.Sprintf("Erro: A data %s já está bloqueada para %s.", formatDateBR(date), storeName)
}

func (h *ScheduleAdminHandler) storeName(storeID *uint) string {
	if storeID == nil {
		return "todas as lojas"
	}

	var store models.Store
	if err := h.db.First(&store, *storeID).Error; err != nil {
		return fmt.Sprintf("a loja %d", *storeID)
	}
	return store.Name
}

func formatDateBR(date string) string {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Format("02/01/2006")
	}
	return date
}
