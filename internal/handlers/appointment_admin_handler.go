package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chateaupet/petshop-api/internal/audit"
	domain "github.com/chateaupet/petshop-api/internal/domain/scheduling"
	"github.com/chateaupet/petshop-api/internal/dto"
	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/httpresp"
	"github.com/chateaupet/petshop-api/internal/middleware"
	"github.com/chateaupet/petshop-api/internal/models"
	ucScheduling "github.com/chateaupet/petshop-api/internal/usecase/scheduling"
)

type AppointmentAdminHandler struct {
	db           *gorm.DB
	changeStatus *ucScheduling.ChangeStatus
	audit        *audit.Dispatcher
}

func NewAppointmentAdminHandler(
	db *gorm.DB,
	changeStatus *ucScheduling.ChangeStatus,
	auditDispatcher *audit.Dispatcher,
) *AppointmentAdminHandler {
	return &AppointmentAdminHandler{
		db:           db,
		changeStatus: changeStatus,
		audit:        auditDispatcher,
	}
}

// --------- Requests ---------

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentAdminHandler) List(c *gin.Context) {
	var apps []models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Pet").
		Preload("Service").
		Preload("Store").
		Order("data_hora_inicio DESC").
		Find(&apps).Error; err != nil {

		httperr.Internal(c, "falha_ao_listar_agendamentos", "Erro ao carregar agendamentos.")
		return
	}

	rows := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		rows = append(rows, dto.NewAppointmentList(ap))
	}

	httpresp.List(c, rows)
}

func (h *AppointmentAdminHandler) Get(c *gin.Context) {
	var ap models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Pet").
		Preload("Service").
		Preload("Store").
		First(&ap, "id_agendamento = ?", c.Param("id")).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "falha_ao_buscar_agendamento", "Erro ao buscar detalhes.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// UpdateStatus recebe o status digitado no prompt do painel. A validação
// contra o enum acontece antes de qualquer escrita.
func (h *AppointmentAdminHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "id_invalido", "Id de agendamento inválido.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), adminID, uint(id), req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "status_invalido"):
			httperr.BadRequest(c, "status_invalido", "Status inválido. Use: confirmado, finalizado, cancelado ou pendente.")
		case httperr.IsBusiness(err, "agendamento_nao_encontrado"):
			httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
		default:
			httperr.Internal(c, "falha_ao_atualizar_status", "Erro ao atualizar status.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agendamento": ap,
		"terminal":    domain.IsTerminal(domain.Status(ap.Status)),
	})
}

func (h *AppointmentAdminHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "id_invalido", "Id de agendamento inválido.")
		return
	}

	ap, err := h.changeStatus.Execute(
		c.Request.Context(),
		adminID,
		uint(id),
		string(domain.StatusCancelled),
	)
	if err != nil {
		if httperr.IsBusiness(err, "agendamento_nao_encontrado") {
			httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
			return
		}
		httperr.Internal(c, "falha_ao_cancelar", "Erro ao cancelar agendamento.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentAdminHandler) Delete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "id_invalido", "Id de agendamento inválido.")
		return
	}

	res := h.db.Delete(&models.Appointment{}, "id_agendamento = ?", uint(id))
	if res.Error != nil {
		httperr.Internal(c, "falha_ao_excluir", "Erro ao excluir agendamento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "agendamento_nao_encontrado", "Agendamento não encontrado.")
		return
	}

	entityID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "agendamento_excluido",
		Entity:   "agendamento",
		EntityID: &entityID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
