package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/middleware"
	ucScheduling "github.com/chateaupet/petshop-api/internal/usecase/scheduling"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BookingHandler struct {
	getAvailability   *ucScheduling.GetAvailability
	createAppointment *ucScheduling.CreateAppointment
}

func NewBookingHandler(
	getAvailability *ucScheduling.GetAvailability,
	createAppointment *ucScheduling.CreateAppointment,
) *BookingHandler {
	return &BookingHandler{
		getAvailability:   getAvailability,
		createAppointment: createAppointment,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	PetID        *uint  `json:"id_pet"`
	StoreID      uint   `json:"id_loja" binding:"required"`
	ServiceID    uint   `json:"id_servico" binding:"required"`
	StartTime    string `json:"data_hora_inicio" binding:"required"`
	CustomerNote string `json:"observacoes_cliente"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	storeID, err1 := strconv.ParseUint(c.Query("loja_id"), 10, 32)
	serviceID, err2 := strconv.ParseUint(c.Query("servico_id"), 10, 32)
	date := c.Query("data")

	if err1 != nil || err2 != nil || date == "" {
		httperr.BadRequest(c, "parametros_invalidos", "Parâmetros 'loja_id', 'servico_id' e 'data' são obrigatórios.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), ucScheduling.GetAvailabilityInput{
		StoreID:   uint(storeID),
		ServiceID: uint(serviceID),
		Date:      date,
	})
	if err != nil {
		httperr.Internal(c, "falha_ao_calcular_horarios", "Erro interno ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.createAppointment.Execute(c.Request.Context(), ucScheduling.CreateAppointmentInput{
		ClientID:     clientID,
		PetID:        req.PetID,
		StoreID:      req.StoreID,
		ServiceID:    req.ServiceID,
		StartTime:    req.StartTime,
		CustomerNote: req.CustomerNote,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "data_hora_invalida"):
			httperr.BadRequest(c, "data_hora_invalida", "Data e hora do agendamento inválidas.")
		case httperr.IsBusiness(err, "loja_nao_encontrada"):
			httperr.NotFound(c, "loja_nao_encontrada", "Loja não encontrada.")
		case httperr.IsBusiness(err, "servico_nao_encontrado"):
			httperr.NotFound(c, "servico_nao_encontrado", "Serviço não encontrado.")
		case httperr.IsBusiness(err, "servico_indisponivel_na_loja"):
			httperr.Conflict(c, "servico_indisponivel_na_loja", "Este serviço não está disponível na loja escolhida.")
		case httperr.IsBusiness(err, "dia_bloqueado"):
			httperr.Conflict(c, "dia_bloqueado", "A agenda está fechada nesta data.")
		case httperr.IsBusiness(err, "horario_indisponivel"):
			httperr.Conflict(c, "horario_indisponivel", "Horário não mais disponível. Escolha outro.")
		default:
			httperr.Internal(c, "falha_ao_agendar", "Erro interno ao agendar.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Agendamento criado!",
		"agendamento": ap,
	})
}
