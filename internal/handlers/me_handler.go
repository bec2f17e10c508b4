package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chateaupet/petshop-api/internal/httperr"
	"github.com/chateaupet/petshop-api/internal/middleware"
	"github.com/chateaupet/petshop-api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

type UpdateProfileRequest struct {
	FullName *string `json:"nome_completo,omitempty"`
	Phone    *string `json:"telefone,omitempty"`
}

type CreatePetRequest struct {
	Name    string `json:"nome_pet" binding:"required"`
	Species string `json:"especie"`
	Breed   string `json:"raca"`
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "perfil_nao_encontrado", "Perfil de usuário não encontrado.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "perfil_nao_encontrado", "Perfil de usuário não encontrado.")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "falha_ao_atualizar_perfil", "Erro ao salvar o perfil.")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// --------- Pets ---------

func (h *MeHandler) ListPets(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var pets []models.Pet
	if err := h.db.
		Where("id_cliente = ?", userID).
		Order("nome_pet ASC").
		Find(&pets).Error; err != nil {

		httperr.Internal(c, "falha_ao_listar_pets", "Erro ao carregar seus pets.")
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (h *MeHandler) CreatePet(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	pet := models.Pet{
		OwnerID: userID,
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "falha_ao_criar_pet", "Erro ao cadastrar o pet.")
		return
	}

	c.JSON(http.StatusCreated, pet)
}

// ListMyAppointments é a página "meus agendamentos" do cliente.
func (h *MeHandler) ListMyAppointments(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var apps []models.Appointment
	if err := h.db.
		Preload("Pet").
		Preload("Service").
		Preload("Store").
		Where("id_cliente = ?", userID).
		Order("data_hora_inicio DESC").
		Find(&apps).Error; err != nil {

		httperr.Internal(c, "falha_ao_listar_agendamentos", "Erro ao carregar seus agendamentos.")
		return
	}

	c.JSON(http.StatusOK, apps)
}
